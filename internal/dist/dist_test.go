package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriticalT(t *testing.T) {
	// Classic table values.
	assert.InDelta(t, 2.086, CriticalT(0.025, 20), 0.001)
	assert.InDelta(t, 1.725, CriticalT(0.05, 20), 0.001)
	// Above the df cutoff the normal critical value takes over.
	assert.InDelta(t, 1.959964, CriticalT(0.025, 1e7), 1e-5)
}

func TestTQuantileRoundTrip(t *testing.T) {
	for _, df := range []float64{2, 30, 500} {
		for _, p := range []float64{0.05, 0.5, 0.8, 0.975} {
			x := TQuantile(p, df)
			assert.InDelta(t, p, TCDF(x, df), 1e-9, "df=%v p=%v", df, p)
		}
	}
}

func TestNormalQuantile(t *testing.T) {
	assert.InDelta(t, 1.644854, NormalQuantile(0.95), 1e-5)
	assert.InDelta(t, 0.95, NormalCDF(NormalQuantile(0.95)), 1e-12)
}
