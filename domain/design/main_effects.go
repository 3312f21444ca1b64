package design

import "math"

// The 14 main-effect designs. Naming follows the published catalog:
// ira/bira/cra/bcra = individual/blocked-individual/cluster/blocked-cluster
// random assignment, then the number of levels, r/f/c for random, fixed or
// constant block effects, then the level of randomization. BCRA3F2 is a
// three-level design with fixed blocks and treatment at level 2, and so on.

// IRA1R1 is the single-level individual random assignment design.
var IRA1R1 = Model{
	Name:   "ira1r1",
	Solves: LevelN,
	Needs:  []Level{LevelN},
	DF: func(p Params) float64 {
		return p.N - fg(p.G1) - 2
	},
	SE: func(p Params) (float64, error) {
		return stdErr("ira1r1", (1-p.R21)/(p.P*(1-p.P)*p.N))
	},
}

// BIRA2C1 is the two-level blocked individual random assignment design with
// constant treatment effect across blocks.
var BIRA2C1 = Model{
	Name:   "bira2c1",
	Solves: LevelJ,
	Needs:  []Level{LevelN, LevelJ},
	DF: func(p Params) float64 {
		return math.Ceil(p.J*(p.N-1) - fg(p.G1) - 1)
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bira2c1", (1-p.R21)/(p.P*(1-p.P)*p.J*p.N))
	},
}

// BIRA2F1 is the two-level blocked individual random assignment design with
// fixed block effects.
var BIRA2F1 = Model{
	Name:   "bira2f1",
	Solves: LevelJ,
	Needs:  []Level{LevelN, LevelJ},
	DF: func(p Params) float64 {
		return p.J*(p.N-2) - fg(p.G1)
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bira2f1", (1-p.R21)/(p.P*(1-p.P)*p.J*p.N))
	},
}

// BIRA2R1 is the two-level blocked individual random assignment design with
// treatment effects varying randomly across blocks.
var BIRA2R1 = Model{
	Name:   "bira2r1",
	Solves: LevelJ,
	Needs:  []Level{LevelN, LevelJ},
	DF: func(p Params) float64 {
		return math.Ceil(p.J - fg(p.G2) - 1)
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bira2r1",
			p.Rho2*p.Omega2*(1-p.R2T2)/p.J+
				(1-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.J*p.N))
	},
}

// CRA2R2 is the two-level simple cluster random assignment design.
var CRA2R2 = Model{
	Name:   "cra2r2",
	Solves: LevelJ,
	Needs:  []Level{LevelN, LevelJ},
	DF: func(p Params) float64 {
		return math.Ceil(p.J - fg(p.G2) - 2)
	},
	SE: func(p Params) (float64, error) {
		return stdErr("cra2r2",
			p.Rho2*(1-p.R22)/(p.P*(1-p.P)*p.J)+
				(1-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.J*p.N))
	},
}

// BIRA3R1 is the three-level blocked individual random assignment design,
// treatment at level 1.
var BIRA3R1 = Model{
	Name:   "bira3r1",
	Solves: LevelK,
	Needs:  []Level{LevelN, LevelJ, LevelK},
	DF: func(p Params) float64 {
		return p.K - fg(p.G3) - 1
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bira3r1",
			p.Rho3*p.Omega3*(1-p.R2T3)/p.K+
				p.Rho2*p.Omega2*(1-p.R2T2)/(p.J*p.K)+
				(1-p.Rho3-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.J*p.K*p.N))
	},
}

// BCRA3F2 is the three-level blocked cluster random assignment design with
// fixed block effects, treatment at level 2.
var BCRA3F2 = Model{
	Name:   "bcra3f2",
	Solves: LevelK,
	Needs:  []Level{LevelN, LevelJ, LevelK},
	DF: func(p Params) float64 {
		return math.Ceil(p.K*(p.J-2) - fg(p.G2))
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bcra3f2",
			p.Rho2*(1-p.R22)/(p.P*(1-p.P)*p.J*p.K)+
				(1-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.J*p.K*p.N))
	},
}

// BCRA3R2 is the three-level blocked cluster random assignment design with
// treatment effects varying randomly across blocks, treatment at level 2.
var BCRA3R2 = Model{
	Name:   "bcra3r2",
	Solves: LevelK,
	Needs:  []Level{LevelN, LevelJ, LevelK},
	DF: func(p Params) float64 {
		return p.K - fg(p.G3) - 1
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bcra3r2",
			p.Rho3*p.Omega3*(1-p.R2T3)/p.K+
				p.Rho2*(1-p.R22)/(p.P*(1-p.P)*p.J*p.K)+
				(1-p.Rho3-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.J*p.K*p.N))
	},
}

// CRA3R3 is the three-level simple cluster random assignment design.
var CRA3R3 = Model{
	Name:   "cra3r3",
	Solves: LevelK,
	Needs:  []Level{LevelN, LevelJ, LevelK},
	DF: func(p Params) float64 {
		return p.K - fg(p.G3) - 2
	},
	SE: func(p Params) (float64, error) {
		return stdErr("cra3r3",
			p.Rho3*(1-p.R23)/(p.P*(1-p.P)*p.K)+
				p.Rho2*(1-p.R22)/(p.P*(1-p.P)*p.J*p.K)+
				(1-p.Rho3-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.J*p.K*p.N))
	},
}

// BIRA4R1 is the four-level blocked individual random assignment design.
var BIRA4R1 = Model{
	Name:   "bira4r1",
	Solves: LevelL,
	Needs:  []Level{LevelN, LevelJ, LevelK, LevelL},
	DF: func(p Params) float64 {
		return p.L - fg(p.G4) - 1
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bira4r1",
			p.Rho4*p.Omega4*(1-p.R2T4)/p.L+
				p.Rho3*p.Omega3*(1-p.R2T3)/(p.K*p.L)+
				p.Rho2*p.Omega2*(1-p.R2T2)/(p.J*p.K*p.L)+
				(1-p.Rho4-p.Rho3-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.J*p.K*p.L*p.N))
	},
}

// BCRA4F3 is the four-level blocked cluster random assignment design with
// fixed block effects, treatment at level 3.
var BCRA4F3 = Model{
	Name:   "bcra4f3",
	Solves: LevelL,
	Needs:  []Level{LevelN, LevelJ, LevelK, LevelL},
	DF: func(p Params) float64 {
		return p.L*(p.K-2) - fg(p.G3)
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bcra4f3",
			p.Rho3*(1-p.R23)/(p.P*(1-p.P)*p.K*p.L)+
				p.Rho2*(1-p.R22)/(p.P*(1-p.P)*p.J*p.K*p.L)+
				(1-p.Rho3-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.J*p.K*p.L*p.N))
	},
}

// BCRA4R2 is the four-level blocked cluster random assignment design,
// treatment at level 2.
var BCRA4R2 = Model{
	Name:   "bcra4r2",
	Solves: LevelL,
	Needs:  []Level{LevelN, LevelJ, LevelK, LevelL},
	DF: func(p Params) float64 {
		return p.L - fg(p.G4) - 1
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bcra4r2",
			p.Rho4*p.Omega4*(1-p.R2T4)/p.L+
				p.Rho3*p.Omega3*(1-p.R2T3)/(p.K*p.L)+
				p.Rho2*(1-p.R22)/(p.P*(1-p.P)*p.J*p.K*p.L)+
				(1-p.Rho4-p.Rho3-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.J*p.K*p.L*p.N))
	},
}

// BCRA4R3 is the four-level blocked cluster random assignment design,
// treatment at level 3.
var BCRA4R3 = Model{
	Name:   "bcra4r3",
	Solves: LevelL,
	Needs:  []Level{LevelN, LevelJ, LevelK, LevelL},
	DF: func(p Params) float64 {
		return p.L - fg(p.G4) - 1
	},
	SE: func(p Params) (float64, error) {
		return stdErr("bcra4r3",
			p.Rho4*p.Omega4*(1-p.R2T4)/p.L+
				p.Rho3*(1-p.R23)/(p.P*(1-p.P)*p.K*p.L)+
				p.Rho2*(1-p.R22)/(p.P*(1-p.P)*p.J*p.K*p.L)+
				(1-p.Rho4-p.Rho3-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.J*p.K*p.L*p.N))
	},
}

// CRA4R4 is the four-level simple cluster random assignment design.
var CRA4R4 = Model{
	Name:   "cra4r4",
	Solves: LevelL,
	Needs:  []Level{LevelN, LevelJ, LevelK, LevelL},
	DF: func(p Params) float64 {
		return p.L - fg(p.G4) - 2
	},
	SE: func(p Params) (float64, error) {
		return stdErr("cra4r4",
			p.Rho4*(1-p.R24)/(p.P*(1-p.P)*p.L)+
				p.Rho3*(1-p.R23)/(p.P*(1-p.P)*p.K*p.L)+
				p.Rho2*(1-p.R22)/(p.P*(1-p.P)*p.J*p.K*p.L)+
				(1-p.Rho4-p.Rho3-p.Rho2)*(1-p.R21)/(p.P*(1-p.P)*p.J*p.K*p.L*p.N))
	},
}
