package solve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopowerup/domain/core"
	"gopowerup/domain/design"
)

func TestBisect_Linear(t *testing.T) {
	f := func(x float64) (float64, error) { return x / 10, nil }
	res, err := Bisect(f, 0, 10, 0.5, 1e-7, 200)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, res.Value, 1e-5)
	assert.InDelta(t, 0.5, res.AchievedPower, 1e-7)
}

func TestBisect_NonMonotonicRejected(t *testing.T) {
	f := func(x float64) (float64, error) { return 1 - x/10, nil }
	_, err := Bisect(f, 0, 10, 0.5, 1e-7, 200)
	assert.True(t, core.IsConvergence(err))
}

func TestBisect_UnreachableTarget(t *testing.T) {
	f := func(x float64) (float64, error) { return x / 10, nil }
	_, err := Bisect(f, 0, 10, 2.0, 1e-7, 200)
	assert.True(t, core.IsConvergence(err))
}

func TestBisect_TargetBelowLowerBound(t *testing.T) {
	f := func(x float64) (float64, error) { return 0.9 + x/100, nil }
	res, err := Bisect(f, 1, 10, 0.5, 1e-7, 200)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Value)
}

func TestBisect_StepFunctionLandsAboveCrossing(t *testing.T) {
	// Discontinuous at 4: the solver must come down onto the smallest x
	// at or above the jump rather than oscillate.
	f := func(x float64) (float64, error) {
		if x < 4 {
			return 0.2, nil
		}
		return 0.9, nil
	}
	res, err := Bisect(f, 0, 10, 0.5, 1e-7, 200)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Value, 1e-6)
	assert.GreaterOrEqual(t, res.AchievedPower, 0.5)
}

func TestInvertEffectSize(t *testing.T) {
	cfg := design.Defaults()
	f := func(es float64) (float64, error) { return math.Min(1, es/0.5), nil }
	res, err := InvertEffectSize(f, 0, 0.8, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, res.Value, 1e-4)
}

func TestInvertEffectSize_SeededBracket(t *testing.T) {
	cfg := design.Defaults()
	var lowest, highest float64
	f := func(es float64) (float64, error) {
		if lowest == 0 || es < lowest {
			lowest = es
		}
		if es > highest {
			highest = es
		}
		return math.Min(1, es/0.5), nil
	}

	// A seed near the root confines the search to its neighborhood; the
	// answer is unchanged.
	res, err := InvertEffectSize(f, 0.38, 0.8, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, res.Value, 1e-4)
	assert.GreaterOrEqual(t, lowest, 0.38/4)
	assert.LessOrEqual(t, highest, 0.38*4)
}

func TestInvertEffectSize_BadSeedFallsBack(t *testing.T) {
	cfg := design.Defaults()
	f := func(es float64) (float64, error) { return math.Min(1, es/0.5), nil }

	// A seed whose narrowed bracket cannot straddle the target must not
	// derail the search.
	res, err := InvertEffectSize(f, 0.01, 0.8, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, res.Value, 1e-4)

	// Seeds outside the cap are ignored outright.
	res, err = InvertEffectSize(f, 50, 0.8, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, res.Value, 1e-4)
}

func TestInvertCount_RoundsUpToInteger(t *testing.T) {
	cfg := design.Defaults()
	f := func(x float64) (float64, error) { return math.Min(1, x/10), nil }
	res, err := InvertCount(f, 1, 0.55, cfg)
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Value)
	assert.GreaterOrEqual(t, res.AchievedPower, 0.55-cfg.Tolerance)
}

func TestInvertCount_AlreadyFeasibleAtMin(t *testing.T) {
	cfg := design.Defaults()
	f := func(x float64) (float64, error) { return math.Min(1, x/10), nil }
	res, err := InvertCount(f, 9, 0.55, cfg)
	require.NoError(t, err)
	assert.Equal(t, 9.0, res.Value)
}
