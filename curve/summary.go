package curve

import (
	"github.com/montanaflynn/stats"

	"gopowerup/domain/core"
)

// Summary describes the spread of solver results across a sweep.
type Summary struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Summarize reduces a sweep to its summary statistics.
func Summarize(points []Point) (Summary, error) {
	if len(points) == 0 {
		return Summary{}, core.NewInvalidParameterError("points", 0, "must have at least one point")
	}
	ys := make(stats.Float64Data, len(points))
	for i, pt := range points {
		ys[i] = pt.Y
	}

	min, err := ys.Min()
	if err != nil {
		return Summary{}, err
	}
	max, err := ys.Max()
	if err != nil {
		return Summary{}, err
	}
	mean, err := ys.Mean()
	if err != nil {
		return Summary{}, err
	}
	median, err := ys.Median()
	if err != nil {
		return Summary{}, err
	}
	return Summary{Min: min, Max: max, Mean: mean, Median: median}, nil
}
