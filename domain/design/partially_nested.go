package design

// The 4 partially nested designs: only the treatment arm is clustered, into
// intact groups of ICSize units with intraclass correlation RhoIC; the
// control arm is unclustered. Collapsing the two arms' variances into the
// shared 1/(p(1-p)N) form yields the treatment-arm-only design effect
// 1 + (1-p)(ICSize-1)RhoIC, which multiplies the level-1 comparison term of
// the corresponding fully nested design.

// pnDesignEffect is the variance inflation from clustering the treatment arm
// only.
func pnDesignEffect(p Params) float64 {
	return 1 + (1-p.P)*(p.ICSize-1)*p.RhoIC
}

// IRAPN is individual random assignment with a partially nested treatment
// arm: N individuals total, the treated share grouped into intact clusters.
var IRAPN = Model{
	Name:   "ira_pn",
	Solves: LevelN,
	Needs:  []Level{LevelN},
	DF: func(p Params) float64 {
		// Independent units per arm: treatment clusters and control
		// individuals, one mean estimated in each arm.
		return (p.P*p.N/p.ICSize - 1) + ((1-p.P)*p.N - 1) - fg(p.G1)
	},
	SE: func(p Params) (float64, error) {
		return stdErr("ira_pn",
			(1-p.R21)*pnDesignEffect(p)/(p.P*(1-p.P)*p.N))
	},
}

// BIRA2PN is the blocked individual random assignment design with a
// partially nested treatment arm inside each of J blocks of N units.
var BIRA2PN = Model{
	Name:   "bira2_pn",
	Solves: LevelJ,
	Needs:  []Level{LevelN, LevelJ},
	DF: func(p Params) float64 {
		return p.J - fg(p.G2) - 1
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bira2_pn",
			p.Rho2*p.Omega2*(1-p.R2T2)/p.J+
				(1-p.Rho2)*(1-p.R21)*pnDesignEffect(p)/(p.P*(1-p.P)*p.J*p.N))
	},
}

// CRA2PN is the two-level cluster random assignment design where treated
// clusters deliver the intervention in intact subgroups.
var CRA2PN = Model{
	Name:   "cra2_pn",
	Solves: LevelJ,
	Needs:  []Level{LevelN, LevelJ},
	DF: func(p Params) float64 {
		return p.J - fg(p.G2) - 2
	},
	SE: func(p Params) (float64, error) {
		return stdErr("cra2_pn",
			p.Rho2*(1-p.R22)/(p.P*(1-p.P)*p.J)+
				(1-p.Rho2)*(1-p.R21)*pnDesignEffect(p)/(p.P*(1-p.P)*p.J*p.N))
	},
}

// BCRA3PN is the three-level blocked cluster random assignment design with a
// partially nested treatment arm.
var BCRA3PN = Model{
	Name:   "bcra3_pn",
	Solves: LevelK,
	Needs:  []Level{LevelN, LevelJ, LevelK},
	DF: func(p Params) float64 {
		return p.K - fg(p.G3) - 1
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bcra3_pn",
			p.Rho3*p.Omega3*(1-p.R2T3)/p.K+
				p.Rho2*(1-p.R22)/(p.P*(1-p.P)*p.J*p.K)+
				(1-p.Rho3-p.Rho2)*(1-p.R21)*pnDesignEffect(p)/(p.P*(1-p.P)*p.J*p.K*p.N))
	},
}
