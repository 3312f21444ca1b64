package design

import (
	"gopowerup/domain/core"
)

// Params is the parameter bundle shared by every design in the catalog. Each
// design reads only the subset that appears in its formula; the rest is
// ignored. Zero values take the calculation defaults (see defaults.go), so a
// literal with just the design-specific fields filled in is a complete call.
//
// INVARIANTS:
// - All variance proportions (Rho*, R2*, RhoM*, RhoIC) lie in [0,1]
// - Rho2+Rho3+Rho4 <= 1 and RhoM2+RhoM3 <= 1 (shares of one total variance)
// - Alpha, P and the target Power lie strictly inside (0,1)
// - Level counts are positive where a design divides by them
type Params struct {
	EffectSize float64 // standardized effect (Cohen's d scale)
	Power      float64 // target power when solving for MDES or a sample size
	Alpha      float64 // Type I error rate
	OneTailed  bool    // one-tailed test; the default is two-tailed

	// Outcome intraclass correlations at levels 2-4.
	Rho2, Rho3, Rho4 float64
	// Mediator intraclass correlations (mediation designs).
	RhoM2, RhoM3 float64
	// Treatment-effect heterogeneity across random blocks, as a ratio of
	// treatment-effect variance to residual variance at that level.
	Omega2, Omega3, Omega4 float64
	// Moderator-slope heterogeneity across level-2 units (moderation designs).
	OmegaM2 float64

	// Proportion of outcome variance explained by covariates, per level.
	R21, R22, R23, R24 float64
	// Proportion of treatment-effect variance explained by covariates, per level.
	R2T2, R2T3, R2T4 float64
	// Proportion of moderator-slope variance explained by level-2 covariates.
	R2M2Slope float64
	// Proportion of mediator variance explained by covariates, per level.
	R2M1, R2M2, R2M3 float64

	// Mediation path coefficients: treatment->mediator (EsA),
	// mediator->outcome between clusters (EsB), within clusters (EsB1),
	// and the direct path (EsCP). All standardized.
	EsA, EsB, EsB1, EsCP float64

	// Unit counts per level: N level-1 units per level-2 unit, J level-2
	// units per level-3 unit, and so on. Harmonic means are accepted where
	// cluster sizes vary (see HarmonicMean).
	N, J, K, L float64

	P float64 // proportion of units assigned to treatment
	Q float64 // binary moderator proportion; zero selects a continuous moderator

	// Number of covariates per level, used in degrees-of-freedom adjustments.
	G1, G2, G3, G4 int

	// Partially nested designs: intact-cluster size and ICC in the treatment arm.
	ICSize float64
	RhoIC  float64
}

// SolveFor names the one unknown of a call. The public packages fix it
// structurally: power.* solves for power, mdes.* for the effect size,
// mrss.* for the design's top-level count.
type SolveFor int

const (
	SolvePower SolveFor = iota + 1
	SolveEffectSize
	SolveSampleSize
)

// Level identifies one nesting level's unit count inside Params.
type Level int

const (
	LevelN Level = iota + 1
	LevelJ
	LevelK
	LevelL
)

func (l Level) String() string {
	switch l {
	case LevelN:
		return "N"
	case LevelJ:
		return "J"
	case LevelK:
		return "K"
	case LevelL:
		return "L"
	}
	return "?"
}

// Count returns the unit count at the given level.
func (p Params) Count(l Level) float64 {
	switch l {
	case LevelN:
		return p.N
	case LevelJ:
		return p.J
	case LevelK:
		return p.K
	case LevelL:
		return p.L
	}
	return 0
}

// WithCount returns a copy of the bundle with the count at the given level
// replaced. The sample-size solver sweeps candidates through here.
func (p Params) WithCount(l Level, x float64) Params {
	switch l {
	case LevelN:
		p.N = x
	case LevelJ:
		p.J = x
	case LevelK:
		p.K = x
	case LevelL:
		p.L = x
	}
	return p
}

// Normalize applies the calculation defaults for the given unknown, rejects
// calls that supply the unknown, and range-checks every field. The returned
// bundle is the one the formulas consume.
func (p Params) Normalize(unknown SolveFor) (Params, error) {
	switch unknown {
	case SolvePower:
		if p.Power != 0 {
			return p, core.NewUnderdeterminedError("Power")
		}
	case SolveEffectSize:
		if p.EffectSize != 0 {
			return p, core.NewUnderdeterminedError("EffectSize")
		}
	}

	d := Defaults()
	if p.Alpha == 0 {
		p.Alpha = d.Alpha
	}
	if p.P == 0 {
		p.P = d.P
	}
	if p.ICSize == 0 {
		p.ICSize = 1
	}
	if unknown != SolveEffectSize && p.EffectSize == 0 {
		p.EffectSize = d.EffectSize
	}
	if unknown != SolvePower && p.Power == 0 {
		p.Power = d.Power
	}

	if err := p.validate(unknown); err != nil {
		return p, err
	}
	return p, nil
}

func (p Params) validate(unknown SolveFor) error {
	open := func(name string, v float64) error {
		if v <= 0 || v >= 1 {
			return core.NewInvalidParameterError(name, v, "must lie strictly inside (0,1)")
		}
		return nil
	}
	if err := open("Alpha", p.Alpha); err != nil {
		return err
	}
	if err := open("P", p.P); err != nil {
		return err
	}
	if unknown != SolvePower {
		// A target of exactly 0 or 1 is asymptotic, never attainable.
		if err := open("Power", p.Power); err != nil {
			return err
		}
	}
	if p.EffectSize < 0 {
		return core.NewInvalidParameterError("EffectSize", p.EffectSize, "must be nonnegative")
	}
	if p.Q != 0 {
		if err := open("Q", p.Q); err != nil {
			return err
		}
	}

	props := []struct {
		name string
		v    float64
	}{
		{"Rho2", p.Rho2}, {"Rho3", p.Rho3}, {"Rho4", p.Rho4},
		{"RhoM2", p.RhoM2}, {"RhoM3", p.RhoM3}, {"RhoIC", p.RhoIC},
		{"R21", p.R21}, {"R22", p.R22}, {"R23", p.R23}, {"R24", p.R24},
		{"R2T2", p.R2T2}, {"R2T3", p.R2T3}, {"R2T4", p.R2T4},
		{"R2M1", p.R2M1}, {"R2M2", p.R2M2}, {"R2M3", p.R2M3},
		{"R2M2Slope", p.R2M2Slope},
	}
	for _, pr := range props {
		if pr.v < 0 || pr.v > 1 {
			return core.NewInvalidParameterError(pr.name, pr.v, "is a variance proportion and must lie in [0,1]")
		}
	}
	if s := p.Rho2 + p.Rho3 + p.Rho4; s > 1 {
		return core.NewInvalidParameterError("Rho2+Rho3+Rho4", s, "exceeds the total outcome variance")
	}
	if s := p.RhoM2 + p.RhoM3; s > 1 {
		return core.NewInvalidParameterError("RhoM2+RhoM3", s, "exceeds the total mediator variance")
	}

	nonneg := []struct {
		name string
		v    float64
	}{
		{"Omega2", p.Omega2}, {"Omega3", p.Omega3}, {"Omega4", p.Omega4},
		{"OmegaM2", p.OmegaM2},
		{"N", p.N}, {"J", p.J}, {"K", p.K}, {"L", p.L},
	}
	for _, nn := range nonneg {
		if nn.v < 0 {
			return core.NewInvalidParameterError(nn.name, nn.v, "must be nonnegative")
		}
	}
	for _, g := range []struct {
		name string
		v    int
	}{{"G1", p.G1}, {"G2", p.G2}, {"G3", p.G3}, {"G4", p.G4}} {
		if g.v < 0 {
			return core.NewInvalidParameterError(g.name, float64(g.v), "must be nonnegative")
		}
	}
	if p.ICSize < 1 {
		return core.NewInvalidParameterError("ICSize", p.ICSize, "must be at least 1")
	}
	return nil
}

// TwoTailed reports whether the test uses two rejection regions.
func (p Params) TwoTailed() bool {
	return !p.OneTailed
}
