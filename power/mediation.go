package power

import (
	"math"

	"gopowerup/domain/core"
	"gopowerup/domain/design"
	"gopowerup/internal/solve"
)

// The Sobel test treats a*b/SE as asymptotically normal; an effectively
// infinite df routes the kernel to its normal limit.
const sobelDF = 1e8

func sobel(m design.Mediation, p design.Params) (float64, error) {
	p, err := p.Normalize(design.SolvePower)
	if err != nil {
		return 0, err
	}
	if err := m.Check(p); err != nil {
		return 0, err
	}
	sea, err := m.SEA(p)
	if err != nil {
		return 0, err
	}
	seb, err := m.SEB(p)
	if err != nil {
		return 0, err
	}
	se := math.Sqrt(p.EsA*p.EsA*seb*seb + p.EsB*p.EsB*sea*sea)
	if se == 0 {
		return 0, core.NewInvalidParameterError("EsA*EsB", 0, "leaves the Sobel standard error undefined")
	}
	return solve.Power(p.EsA*p.EsB, p.Alpha, se, sobelDF, p.TwoTailed())
}

func joint(m design.Mediation, p design.Params) (float64, error) {
	p, err := p.Normalize(design.SolvePower)
	if err != nil {
		return 0, err
	}
	if err := m.Check(p); err != nil {
		return 0, err
	}
	sea, err := m.SEA(p)
	if err != nil {
		return 0, err
	}
	seb, err := m.SEB(p)
	if err != nil {
		return 0, err
	}
	powA, err := solve.Power(math.Abs(p.EsA), p.Alpha, sea, m.DFA(p), p.TwoTailed())
	if err != nil {
		return 0, err
	}
	powB, err := solve.Power(math.Abs(p.EsB), p.Alpha, seb, m.DFB(p), p.TwoTailed())
	if err != nil {
		return 0, err
	}
	return powA * powB, nil
}

// Med211Sobel computes Sobel-test power for the between-cluster indirect
// effect EsA*EsB in a two-level design with treatment at level 2 and a
// level-1 mediator.
func Med211Sobel(p design.Params) (float64, error) {
	return sobel(design.Med211, p)
}

// Med211Joint computes joint-significance power for the between-cluster
// indirect effect in the med211 design.
func Med211Joint(p design.Params) (float64, error) {
	return joint(design.Med211, p)
}

// Med211JointWithin computes joint-significance power for the within-cluster
// indirect path EsA*EsB1 in the med211 design.
func Med211JointWithin(p design.Params) (float64, error) {
	m := design.Med211
	p, err := p.Normalize(design.SolvePower)
	if err != nil {
		return 0, err
	}
	if err := m.Check(p); err != nil {
		return 0, err
	}
	sea, err := m.SEA(p)
	if err != nil {
		return 0, err
	}
	seb1, err := m.SEB1(p)
	if err != nil {
		return 0, err
	}
	powA, err := solve.Power(math.Abs(p.EsA), p.Alpha, sea, m.DFA(p), p.TwoTailed())
	if err != nil {
		return 0, err
	}
	powB1, err := solve.Power(math.Abs(p.EsB1), p.Alpha, seb1, m.DFB1(p), p.TwoTailed())
	if err != nil {
		return 0, err
	}
	return powA * powB1, nil
}

// Med221Sobel computes Sobel-test power for the indirect effect in a
// two-level design with treatment and mediator at level 2.
func Med221Sobel(p design.Params) (float64, error) {
	return sobel(design.Med221, p)
}

// Med221Joint computes joint-significance power for the med221 design.
func Med221Joint(p design.Params) (float64, error) {
	return joint(design.Med221, p)
}

// Med311Sobel computes Sobel-test power for the indirect effect in a
// three-level design with treatment at level 3 and a level-1 mediator.
func Med311Sobel(p design.Params) (float64, error) {
	return sobel(design.Med311, p)
}

// Med311Joint computes joint-significance power for the med311 design.
func Med311Joint(p design.Params) (float64, error) {
	return joint(design.Med311, p)
}

// Med321Sobel computes Sobel-test power for the indirect effect in a
// three-level design with treatment at level 3 and a level-2 mediator.
func Med321Sobel(p design.Params) (float64, error) {
	return sobel(design.Med321, p)
}

// Med321Joint computes joint-significance power for the med321 design.
func Med321Joint(p design.Params) (float64, error) {
	return joint(design.Med321, p)
}

// Med331Sobel computes Sobel-test power for the indirect effect in a
// three-level design with treatment and mediator at level 3.
func Med331Sobel(p design.Params) (float64, error) {
	return sobel(design.Med331, p)
}

// Med331Joint computes joint-significance power for the med331 design.
func Med331Joint(p design.Params) (float64, error) {
	return joint(design.Med331, p)
}
