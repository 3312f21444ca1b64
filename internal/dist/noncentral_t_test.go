package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoncentralTCDF_ZeroDeltaMatchesCentral(t *testing.T) {
	for _, df := range []float64{1, 2.5, 10, 120, 5000} {
		for _, x := range []float64{-4, -1.5, 0, 0.5, 2, 4} {
			got := NoncentralTCDF(x, df, 0)
			assert.InDelta(t, TCDF(x, df), got, 1e-8,
				"df=%v t=%v", df, x)
		}
	}
}

func TestNoncentralTCDF_Symmetry(t *testing.T) {
	for _, df := range []float64{3, 17, 200} {
		for _, delta := range []float64{0.5, 1.8, 3.2} {
			for _, x := range []float64{0.2, 1.1, 2.7} {
				left := NoncentralTCDF(-x, df, -delta)
				right := 1 - NoncentralTCDF(x, df, delta)
				assert.InDelta(t, right, left, 1e-10,
					"df=%v delta=%v t=%v", df, delta, x)
			}
		}
	}
}

func TestNoncentralTCDF_MonotoneInT(t *testing.T) {
	const df, delta = 12.0, 2.0
	prev := 0.0
	for x := -3.0; x <= 8; x += 0.25 {
		got := NoncentralTCDF(x, df, delta)
		assert.GreaterOrEqual(t, got, prev, "t=%v", x)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
		prev = got
	}
}

func TestNoncentralTCDF_LargerDeltaShiftsRight(t *testing.T) {
	// A larger noncentrality pushes mass to the right, so the CDF at a
	// fixed point can only fall.
	const df, x = 25.0, 2.0
	prev := 1.0
	for _, delta := range []float64{0, 0.5, 1, 2, 4} {
		got := NoncentralTCDF(x, df, delta)
		assert.LessOrEqual(t, got, prev, "delta=%v", delta)
		prev = got
	}
}

func TestNoncentralTCDF_NormalLimit(t *testing.T) {
	const df = 1e7
	for _, delta := range []float64{0, 1.2, 2.8} {
		for _, x := range []float64{-1, 0.5, 3} {
			assert.InDelta(t, NormalCDF(x-delta), NoncentralTCDF(x, df, delta), 1e-12)
		}
	}
}

func TestNoncentralTCDF_LargeFiniteDFNearNormal(t *testing.T) {
	// Just below the cutoff the series should already agree with the
	// shifted normal to a few decimals.
	const df = 5e5
	for _, x := range []float64{0, 1.96, 2.8} {
		assert.InDelta(t, NormalCDF(x-1.5), NoncentralTCDF(x, df, 1.5), 1e-3)
	}
}

func TestNoncentralTCDF_ZeroT(t *testing.T) {
	assert.InDelta(t, NormalCDF(-1.7), NoncentralTCDF(0, 9, 1.7), 1e-12)
}
