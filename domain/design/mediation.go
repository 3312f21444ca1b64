package design

// Mediation describes a multilevel mediation design: standardized standard
// errors and degrees of freedom for the treatment->mediator path (a) and the
// mediator->outcome path (b). MedXYZ reads: X levels, treatment at level Y,
// mediator at level Z. Power for the indirect effect a*b is computed either
// from the Sobel first-order standard error or as the joint significance of
// both paths.
type Mediation struct {
	Name  string
	Needs []Level

	SEA func(Params) (float64, error)
	SEB func(Params) (float64, error)
	DFA func(Params) float64
	DFB func(Params) float64

	// Within-cluster mediator path (b1), where the design distinguishes it.
	SEB1 func(Params) (float64, error)
	DFB1 func(Params) float64
}

// Check verifies the counts the path formulas divide by are positive.
func (m Mediation) Check(p Params) error {
	for _, l := range m.Needs {
		if p.Count(l) <= 0 {
			return coreInvalidCount(l, p.Count(l), m.Name)
		}
	}
	return nil
}

// Med221 is the two-level design with treatment and mediator at level 2.
var Med221 = Mediation{
	Name:  "med221",
	Needs: []Level{LevelN, LevelJ},
	SEA: func(p Params) (float64, error) {
		pq := p.P * (1 - p.P)
		v := (1 - (p.R2M2 + pq*p.EsA*p.EsA)) / (pq * p.J)
		return stdErr("med221 a-path", v)
	},
	SEB: func(p Params) (float64, error) {
		pq := p.P * (1 - p.P)
		ab := p.EsA*p.EsB + p.EsCP
		v := (p.Rho2*(1-(p.R22+pq*ab*ab/p.Rho2+
			(p.EsB*p.EsB/p.Rho2)*(1-p.R2M2-pq*p.EsA*p.EsA))) +
			(1-p.Rho2)*(1-p.R21)/p.N) /
			(p.J * (1 - (p.R2M2 + pq*p.EsA*p.EsA)))
		return stdErr("med221 b-path", v)
	},
	// a-path model at level 2: intercept, treatment, plus the mediator and
	// direct effect joining for the b-path.
	DFA: func(p Params) float64 { return p.J - 3 },
	DFB: func(p Params) float64 { return p.J - 5 },
}

// Med211 is the two-level design with treatment at level 2 and a level-1
// mediator. The b path splits into a between-cluster effect (EsB, of the
// cluster mean) and a within-cluster slope (EsB1).
var Med211 = Mediation{
	Name:  "med211",
	Needs: []Level{LevelN, LevelJ},
	SEA: func(p Params) (float64, error) {
		pq := p.P * (1 - p.P)
		t2mbar := p.RhoM2 * (1 - p.R2M2 - pq*p.EsA*p.EsA/p.RhoM2)
		sig2mbar := (1 - p.RhoM2) * (1 - p.R2M1)
		v := (t2mbar + sig2mbar/p.N) / (p.J * pq)
		return stdErr("med211 a-path", v)
	},
	SEB: func(p Params) (float64, error) {
		pq := p.P * (1 - p.P)
		ipq := 1 / pq
		t2mbar := p.RhoM2 * (1 - p.R2M2 - pq*p.EsA*p.EsA/p.RhoM2)
		sig2mbar := (1 - p.RhoM2) * (1 - p.R2M1)
		ab := p.EsA*p.EsB + p.EsCP
		t2ybar := p.Rho2*(1-p.R22) - pq*ab*ab -
			(ipq*p.EsB*p.EsB*p.RhoM2*(1-p.R2M2)+
				ipq*p.EsB*p.EsB*(1-p.RhoM2)*(1-p.R2M1)/p.N-
				p.EsA*p.EsA*p.EsB*p.EsB) / ipq
		sig2ybar := (1 - p.Rho2) * (1 - p.R21 -
			((1-p.RhoM2)/(1-p.Rho2))*p.EsB1*p.EsB1*(1-p.R2M1))
		v := (t2ybar + sig2ybar/p.N) / (p.J * (t2mbar + sig2mbar/p.N))
		return stdErr("med211 b-path", v)
	},
	DFA: func(p Params) float64 { return p.J - 3 },
	DFB: func(p Params) float64 { return p.J - 5 },
	SEB1: func(p Params) (float64, error) {
		sig2mbar := (1 - p.RhoM2) * (1 - p.R2M1)
		sig2ybar := (1 - p.Rho2) * (1 - p.R21 -
			((1-p.RhoM2)/(1-p.Rho2))*p.EsB1*p.EsB1*(1-p.R2M1))
		v := sig2ybar / ((p.J*p.N - p.J) * sig2mbar)
		return stdErr("med211 b1-path", v)
	},
	DFB1: func(p Params) float64 { return p.J*(p.N-1) - 1 },
}

// Med321 is the three-level design with treatment at level 3 and a level-2
// mediator. The df corrections (K-5, K-6) are embedded in the variance
// decompositions themselves, matching the published forms.
var Med321 = Mediation{
	Name:  "med321",
	Needs: []Level{LevelN, LevelJ, LevelK},
	SEA: func(p Params) (float64, error) {
		pq := p.P * (1 - p.P)
		v := (p.RhoM3*(1-p.R2M3) + (1-p.RhoM3)*(1-p.R2M2)/p.J) /
			(pq * (p.K - 5))
		return stdErr("med321 a-path", v)
	},
	SEB: func(p Params) (float64, error) {
		v := (p.Rho3*(1-p.R23) + p.Rho2*(1-p.R22)/p.J +
			(1-p.Rho3-p.Rho2)*(1-p.R21)/(p.N*p.J)) /
			((p.K - 6) * (p.RhoM3*(1-p.R2M3) + (1-p.RhoM3)*(1-p.R2M2)/p.J))
		return stdErr("med321 b-path", v)
	},
	DFA: func(p Params) float64 { return p.K - 5 },
	DFB: func(p Params) float64 { return p.K - 6 },
}

// Med311 is the three-level design with treatment at level 3 and a level-1
// mediator: the level-2 decomposition of med211 extended one level, with the
// med321 df corrections.
var Med311 = Mediation{
	Name:  "med311",
	Needs: []Level{LevelN, LevelJ, LevelK},
	SEA: func(p Params) (float64, error) {
		pq := p.P * (1 - p.P)
		v := mbar311(p) / (pq * (p.K - 5))
		return stdErr("med311 a-path", v)
	},
	SEB: func(p Params) (float64, error) {
		v := (p.Rho3*(1-p.R23) + p.Rho2*(1-p.R22)/p.J +
			(1-p.Rho3-p.Rho2)*(1-p.R21)/(p.N*p.J)) /
			((p.K - 6) * mbar311(p))
		return stdErr("med311 b-path", v)
	},
	DFA: func(p Params) float64 { return p.K - 5 },
	DFB: func(p Params) float64 { return p.K - 6 },
}

// Med331 is the three-level design with treatment and mediator at level 3:
// the med221 decomposition lifted one level.
var Med331 = Mediation{
	Name:  "med331",
	Needs: []Level{LevelN, LevelJ, LevelK},
	SEA: func(p Params) (float64, error) {
		pq := p.P * (1 - p.P)
		v := (1 - (p.R2M3 + pq*p.EsA*p.EsA)) / (pq * (p.K - 3))
		return stdErr("med331 a-path", v)
	},
	SEB: func(p Params) (float64, error) {
		pq := p.P * (1 - p.P)
		v := (p.Rho3*(1-p.R23) + p.Rho2*(1-p.R22)/p.J +
			(1-p.Rho3-p.Rho2)*(1-p.R21)/(p.N*p.J)) /
			((p.K - 5) * (1 - (p.R2M3 + pq*p.EsA*p.EsA)))
		return stdErr("med331 b-path", v)
	},
	DFA: func(p Params) float64 { return p.K - 3 },
	DFB: func(p Params) float64 { return p.K - 5 },
}

// mbar311 is the total variance of the cluster-mean mediator in med311:
// level-3 share net of the treatment effect, plus the level-2 and level-1
// shares shrunk by their counts.
func mbar311(p Params) float64 {
	pq := p.P * (1 - p.P)
	return p.RhoM3*(1-p.R2M3-pq*p.EsA*p.EsA/p.RhoM3) +
		p.RhoM2*(1-p.R2M2)/p.J +
		(1-p.RhoM3-p.RhoM2)*(1-p.R2M1)/(p.J*p.N)
}
