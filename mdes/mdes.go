// Package mdes solves for the minimum detectable effect size (MDES) of a
// design at a target power, by bisection on the exact noncentral-t power
// function. For moderation designs the result is the minimum detectable
// effect-size difference (MDESD). The effect size is the unknown here, so
// supplying Params.EffectSize is an underdetermined call.
package mdes

import (
	"gopowerup/domain/design"
	"gopowerup/internal/solve"
)

// Interval is an MDES together with the (1-alpha) confidence interval the
// published tables report alongside it.
type Interval struct {
	Value float64
	Lower float64
	Upper float64
}

func invert(m design.Model, p design.Params) (Interval, error) {
	p, err := p.Normalize(design.SolveEffectSize)
	if err != nil {
		return Interval{}, err
	}
	if err := m.Check(p); err != nil {
		return Interval{}, err
	}
	se, err := m.SE(p)
	if err != nil {
		return Interval{}, err
	}
	df := m.DF(p)
	cfg := design.Defaults()

	// The closed-form approximation seeds the bisection bracket and carries
	// the interval half-width (critical value times standard error) the
	// published tables report.
	seed, err := solve.ClosedFormMDE(p.Power, p.Alpha, se, df, p.TwoTailed())
	if err != nil {
		return Interval{}, err
	}
	res, err := solve.InvertEffectSize(func(es float64) (float64, error) {
		return solve.Power(es, p.Alpha, se, df, p.TwoTailed())
	}, seed.Value, p.Power, cfg)
	if err != nil {
		return Interval{}, err
	}

	half := seed.Value - seed.Lower
	return Interval{
		Value: res.Value,
		Lower: res.Value - half,
		Upper: res.Value + half,
	}, nil
}

// Detail solves a design's MDES and reports it with its confidence interval.
func Detail(m design.Model, p design.Params) (Interval, error) {
	return invert(m, p)
}

func value(m design.Model, p design.Params) (float64, error) {
	iv, err := invert(m, p)
	if err != nil {
		return 0, err
	}
	return iv.Value, nil
}
