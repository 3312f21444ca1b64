// Package power evaluates the statistical power of multilevel randomized
// experiments: one named function per design, each a thin composition of the
// design's variance decomposition and the shared noncentral-t kernel. Power
// is the unknown here, so supplying Params.Power is an underdetermined call.
package power

import (
	"gopowerup/domain/design"
	"gopowerup/internal/solve"
)

func eval(m design.Model, p design.Params) (float64, error) {
	p, err := p.Normalize(design.SolvePower)
	if err != nil {
		return 0, err
	}
	if err := m.Check(p); err != nil {
		return 0, err
	}
	se, err := m.SE(p)
	if err != nil {
		return 0, err
	}
	return solve.Power(p.EffectSize, p.Alpha, se, m.DF(p), p.TwoTailed())
}
