package design

// The 7 moderation designs. ModXYZ reads: X levels, treatment at level Y,
// moderator at level Z. The effect under test is the treatment-by-moderator
// interaction, so EffectSize is the moderated effect-size difference (MDESD
// scale). A binary moderator splits the sample with proportion Q; leaving Q
// at zero selects a standardized continuous moderator of unit variance.
//
// Degrees of freedom follow one rule throughout: independent units at the
// level of the test, minus freely estimated fixed effects at that level,
// minus covariates at that level. Where a level-1 moderator slope varies
// randomly across level-2 units (OmegaM2 > 0), both the variance
// decomposition and the df switch to the random-slope form, mirroring the
// fixed/random split of the main-effect catalog.

// moderatorDenom is p(1-p)q(1-q) for a binary moderator and p(1-p) for a
// standardized continuous one.
func moderatorDenom(p Params) float64 {
	d := p.P * (1 - p.P)
	if p.Q != 0 {
		d *= p.Q * (1 - p.Q)
	}
	return d
}

// Mod211 is the two-level multisite design (treatment at level 1) with a
// level-1 moderator.
var Mod211 = Model{
	Name:   "mod211",
	Needs:  []Level{LevelN, LevelJ},
	Solves: 0,
	DF: func(p Params) float64 {
		if p.OmegaM2 > 0 {
			return p.J - fg(p.G2) - 1
		}
		// Per site: intercept, treatment, moderator, interaction.
		return p.J*(p.N-4) - fg(p.G1)
	},
	SE: func(p Params) (float64, error) {
		v := (1 - p.Rho2) * (1 - p.R21) / (moderatorDenom(p) * p.J * p.N)
		if p.OmegaM2 > 0 {
			v += p.Rho2 * p.OmegaM2 * (1 - p.R2M2Slope) / p.J
		}
		return stdErr("mod211", v)
	},
}

// Mod212 is the two-level multisite design with a level-2 moderator: a
// between-site contrast of site-specific treatment effects.
var Mod212 = Model{
	Name:   "mod212",
	Needs:  []Level{LevelN, LevelJ},
	Solves: 0,
	DF: func(p Params) float64 {
		return p.J - fg(p.G2) - 2
	},
	SE: func(p Params) (float64, error) {
		qv := 1.0
		if p.Q != 0 {
			qv = p.Q * (1 - p.Q)
		}
		v := (p.Rho2*p.Omega2*(1-p.R2T2) +
			(1-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.N)) / (qv * p.J)
		return stdErr("mod212", v)
	},
}

// Mod221 is the two-level cluster-randomized design (treatment at level 2)
// with a level-1 moderator.
var Mod221 = Model{
	Name:   "mod221",
	Needs:  []Level{LevelN, LevelJ},
	Solves: 0,
	DF: func(p Params) float64 {
		if p.OmegaM2 > 0 {
			return p.J - fg(p.G2) - 1
		}
		return p.J*(p.N-2) - fg(p.G1)
	},
	SE: func(p Params) (float64, error) {
		v := (1 - p.Rho2) * (1 - p.R21) / (moderatorDenom(p) * p.J * p.N)
		if p.OmegaM2 > 0 {
			v += p.Rho2 * p.OmegaM2 * (1 - p.R2M2Slope) / p.J
		}
		return stdErr("mod221", v)
	},
}

// Mod222 is the two-level cluster-randomized design with a level-2 moderator.
var Mod222 = Model{
	Name:   "mod222",
	Needs:  []Level{LevelN, LevelJ},
	Solves: 0,
	DF: func(p Params) float64 {
		// Intercept, treatment, moderator, interaction at level 2.
		return p.J - fg(p.G2) - 4
	},
	SE: func(p Params) (float64, error) {
		v := (p.Rho2*(1-p.R22) +
			(1-p.Rho2)*(1-p.R21)/p.N) / (moderatorDenom(p) * p.J)
		return stdErr("mod222", v)
	},
}

// Mod331 is the three-level cluster-randomized design (treatment at level 3)
// with a level-1 moderator.
var Mod331 = Model{
	Name:   "mod331",
	Needs:  []Level{LevelN, LevelJ, LevelK},
	Solves: 0,
	DF: func(p Params) float64 {
		return p.J*p.K*(p.N-2) - fg(p.G1)
	},
	SE: func(p Params) (float64, error) {
		v := (1 - p.Rho3 - p.Rho2) * (1 - p.R21) / (moderatorDenom(p) * p.J * p.K * p.N)
		return stdErr("mod331", v)
	},
}

// Mod332 is the three-level cluster-randomized design with a level-2 moderator.
var Mod332 = Model{
	Name:   "mod332",
	Needs:  []Level{LevelN, LevelJ, LevelK},
	Solves: 0,
	DF: func(p Params) float64 {
		return p.K*(p.J-2) - fg(p.G2)
	},
	SE: func(p Params) (float64, error) {
		v := (p.Rho2*(1-p.R22) +
			(1-p.Rho3-p.Rho2)*(1-p.R21)/p.N) / (moderatorDenom(p) * p.J * p.K)
		return stdErr("mod332", v)
	},
}

// Mod333 is the three-level cluster-randomized design with a level-3 moderator.
var Mod333 = Model{
	Name:   "mod333",
	Needs:  []Level{LevelN, LevelJ, LevelK},
	Solves: 0,
	DF: func(p Params) float64 {
		return p.K - fg(p.G3) - 4
	},
	SE: func(p Params) (float64, error) {
		v := (p.Rho3*(1-p.R23) +
			p.Rho2*(1-p.R22)/p.J +
			(1-p.Rho3-p.Rho2)*(1-p.R21)/(p.J*p.N)) / (moderatorDenom(p) * p.K)
		return stdErr("mod333", v)
	},
}
