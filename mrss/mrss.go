// Package mrss solves for the minimum required sample size at a design's
// randomization level, the smallest count reaching the target power at the
// given effect size. It bisects the exact noncentral-t power function and
// rounds up to an integer count. The count is the unknown here, so supplying
// it is an underdetermined call.
package mrss

import (
	"gopowerup/domain/core"
	"gopowerup/domain/design"
	"gopowerup/internal/solve"
)

func invert(m design.Model, p design.Params) (float64, error) {
	if p.Count(m.Solves) != 0 {
		return 0, core.NewUnderdeterminedError(m.Solves.String())
	}
	p, err := p.Normalize(design.SolveSampleSize)
	if err != nil {
		return 0, err
	}
	for _, l := range m.Needs {
		if l == m.Solves {
			continue
		}
		if p.Count(l) <= 0 {
			return 0, core.NewInvalidParameterError(l.String(), p.Count(l), "must be positive for design "+m.Name)
		}
	}

	cfg := design.Defaults()
	eval := func(x float64) (float64, error) {
		q := p.WithCount(m.Solves, x)
		se, err := m.SE(q)
		if err != nil {
			return 0, err
		}
		return solve.Power(q.EffectSize, q.Alpha, se, m.DF(q), q.TwoTailed())
	}

	// Smallest count with at least one degree of freedom.
	minX := 1.0
	for m.DF(p.WithCount(m.Solves, minX)) < 1 {
		minX++
		if minX > cfg.CountCap {
			return 0, core.NewConvergenceError(p.Power, "has no feasible sample size: the test never gains a degree of freedom")
		}
	}

	res, err := solve.InvertCount(eval, minX, p.Power, cfg)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}
