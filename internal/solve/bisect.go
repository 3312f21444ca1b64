package solve

import (
	"math"

	"gopowerup/domain/core"
	"gopowerup/domain/design"
)

// Result is a solved scalar together with the power achieved at it, so
// callers can verify the inversion.
type Result struct {
	Value         float64
	AchievedPower float64
}

// Bisect solves f(x) = target for x in [lo, hi], assuming f is nondecreasing
// in x (power is monotone in effect size and in every sample count). It stops
// when |f(x) - target| <= tol or the bracket collapses; where f steps across
// the target discontinuously (integer df boundaries) it lands on the smallest
// x at or above the crossing. Returns ErrConvergence when the bracket cannot
// straddle the target or the iteration budget runs out.
func Bisect(f func(float64) (float64, error), lo, hi, target, tol float64, maxIter int) (Result, error) {
	flo, err := f(lo)
	if err != nil {
		return Result{}, err
	}
	fhi, err := f(hi)
	if err != nil {
		return Result{}, err
	}
	if flo > fhi {
		return Result{}, core.NewConvergenceError(target, "is bracketed by a non-monotonic function; the parameter combination is invalid")
	}
	if fhi < target {
		return Result{}, core.NewConvergenceError(target, "is unreachable within the search bounds")
	}
	if flo >= target {
		return Result{Value: lo, AchievedPower: flo}, nil
	}

	xtol := 1e-9 * math.Max(1, hi)
	// Invariant: f(lo) < target <= f(hi).
	for i := 0; i < maxIter; i++ {
		mid := 0.5 * (lo + hi)
		fm, err := f(mid)
		if err != nil {
			return Result{}, err
		}
		if math.Abs(fm-target) <= tol {
			return Result{Value: mid, AchievedPower: fm}, nil
		}
		if fm < target {
			lo = mid
		} else {
			hi, fhi = mid, fm
		}
		if hi-lo <= xtol {
			return Result{Value: hi, AchievedPower: fhi}, nil
		}
	}
	return Result{}, core.NewConvergenceError(target, "was not reached within the iteration budget")
}

// InvertEffectSize solves power(es) = target over the effect-size bracket
// (0, EffectSizeCap]. A positive seed (the closed-form approximation, which
// lands within a few thousandths of the root) narrows the bracket to
// [seed/4, 4*seed] when that still straddles the target, saving most of the
// bisection steps; a seed of zero or a non-straddling bracket falls back to
// the full range.
func InvertEffectSize(f func(es float64) (float64, error), seed, target float64, cfg design.Config) (Result, error) {
	lo, hi := 1e-6, cfg.EffectSizeCap
	if seed > 0 && seed < cfg.EffectSizeCap {
		slo, shi := seed/4, math.Min(cfg.EffectSizeCap, 4*seed)
		flo, err := f(slo)
		if err != nil {
			return Result{}, err
		}
		fhi, err := f(shi)
		if err != nil {
			return Result{}, err
		}
		if flo < target && fhi >= target {
			lo, hi = slo, shi
		}
	}
	return Bisect(f, lo, hi, target, cfg.Tolerance, cfg.MaxIter)
}

// InvertCount solves power(x) = target for a sample count over
// [minX, CountCap], then rounds up to the smallest integer count that still
// meets the target.
func InvertCount(f func(x float64) (float64, error), minX, target float64, cfg design.Config) (Result, error) {
	res, err := Bisect(f, minX, cfg.CountCap, target, cfg.Tolerance, cfg.MaxIter)
	if err != nil {
		return Result{}, err
	}
	k := math.Max(minX, math.Ceil(res.Value-1e-9))
	for {
		pw, err := f(k)
		if err != nil {
			return Result{}, err
		}
		if pw >= target-cfg.Tolerance {
			return Result{Value: k, AchievedPower: pw}, nil
		}
		k++
		if k > cfg.CountCap {
			return Result{}, core.NewConvergenceError(target, "is unreachable within the search bounds")
		}
	}
}
