package design

import (
	"github.com/montanaflynn/stats"

	"gopowerup/domain/core"
)

// The formulas take a single count per level. When real cluster sizes vary,
// the published convention is to plug in their harmonic mean (or, less
// conservatively, the simple average). These helpers derive those inputs
// from raw per-cluster counts.

// HarmonicMean returns the harmonic mean of per-cluster unit counts.
func HarmonicMean(counts []float64) (float64, error) {
	if len(counts) == 0 {
		return 0, core.NewInvalidParameterError("counts", 0, "needs at least one cluster")
	}
	for _, c := range counts {
		if c <= 0 {
			return 0, core.NewInvalidParameterError("counts", c, "cluster sizes must be positive")
		}
	}
	return stats.HarmonicMean(counts)
}

// AverageClusterSize returns the simple average of per-cluster unit counts.
func AverageClusterSize(counts []float64) (float64, error) {
	if len(counts) == 0 {
		return 0, core.NewInvalidParameterError("counts", 0, "needs at least one cluster")
	}
	return stats.Mean(counts)
}
