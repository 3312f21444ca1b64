// Package solve holds the two evaluation kernels every design shares, power
// of a t test at a given standardized standard error and the closed-form
// minimum detectable effect, plus the bisection inverter that turns either
// into a solver for an effect size or a sample count.
package solve

import (
	"math"

	"gopowerup/domain/core"
	"gopowerup/internal/dist"
)

// Power returns P(reject H0 | true standardized effect es) for a t test with
// standardized standard error sse and df degrees of freedom. The
// noncentrality parameter is es/sse; a two-tailed test counts both rejection
// regions.
func Power(es, alpha, sse, df float64, twoTailed bool) (float64, error) {
	if sse <= 0 {
		return 0, core.NewInvalidParameterError("sse", sse, "standardized standard error must be positive")
	}
	if df < 1 {
		return 0, core.NewInvalidParameterError("df", df, "degrees of freedom must be at least 1")
	}
	if alpha <= 0 || alpha >= 1 {
		return 0, core.NewInvalidParameterError("alpha", alpha, "must lie strictly inside (0,1)")
	}
	lambda := es / sse
	if twoTailed {
		tcrit := dist.CriticalT(alpha/2, df)
		return 1 - dist.NoncentralTCDF(tcrit, df, lambda) +
			dist.NoncentralTCDF(-tcrit, df, lambda), nil
	}
	tcrit := dist.CriticalT(alpha, df)
	return 1 - dist.NoncentralTCDF(tcrit, df, lambda), nil
}

// MDE is a minimum detectable effect with the confidence interval around it.
type MDE struct {
	Value float64
	Lower float64
	Upper float64
}

// ClosedFormMDE returns the shifted-central-t approximation
// (t_alpha + t_power) * sse to the minimum detectable effect, with the
// (1-alpha) confidence interval. The bisection solver uses it as a bracket
// seed; the published tables use it outright.
func ClosedFormMDE(power, alpha, sse, df float64, twoTailed bool) (MDE, error) {
	if sse <= 0 {
		return MDE{}, core.NewInvalidParameterError("sse", sse, "standardized standard error must be positive")
	}
	if df < 1 {
		return MDE{}, core.NewInvalidParameterError("df", df, "degrees of freedom must be at least 1")
	}
	if alpha <= 0 || alpha >= 1 {
		return MDE{}, core.NewInvalidParameterError("alpha", alpha, "must lie strictly inside (0,1)")
	}
	if power <= 0 || power >= 1 {
		return MDE{}, core.NewInvalidParameterError("power", power, "must lie strictly inside (0,1)")
	}
	a := alpha
	if twoTailed {
		a = alpha / 2
	}
	t1 := dist.CriticalT(a, df)
	t2 := math.Abs(dist.TQuantile(power, df))
	m := t1 + t2
	if power < 0.5 {
		m = t1 - t2
	}
	v := m * sse
	return MDE{
		Value: v,
		Lower: v * (1 - t1/m),
		Upper: v * (1 + t1/m),
	}, nil
}
