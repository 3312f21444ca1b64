package design

import (
	"math"

	"gopowerup/domain/core"
)

// Model describes one experimental design: the degrees of freedom of its
// treatment-effect test, the standardized standard error of that effect, and
// which level count the sample-size solver owns. Power, MDES and MRSS for a
// design are all derived from these three pieces.
type Model struct {
	Name string

	// Solves is the level whose count the sample-size solver treats as the
	// unknown. Zero for designs without a published sample-size inversion.
	Solves Level

	// Needs lists the counts the formulas divide by.
	Needs []Level

	// DF returns the degrees of freedom of the t test.
	DF func(Params) float64

	// SE returns the standardized standard error of the treatment effect.
	SE func(Params) (float64, error)
}

// Check verifies the counts this design divides by are positive. Range checks
// on proportions happen in Params.Normalize; this is the design-specific part.
func (m Model) Check(p Params) error {
	for _, l := range m.Needs {
		if p.Count(l) <= 0 {
			return coreInvalidCount(l, p.Count(l), m.Name)
		}
	}
	return nil
}

func coreInvalidCount(l Level, v float64, name string) error {
	return core.NewInvalidParameterError(l.String(), v, "must be positive for design "+name)
}

// stdErr guards the variance nonnegativity invariant shared by every design
// formula and takes the square root.
func stdErr(name string, variance float64) (float64, error) {
	if variance < 0 || math.IsNaN(variance) || math.IsInf(variance, 0) {
		return 0, core.NewInvalidParameterError(name+" variance", variance, "is not a nonnegative finite variance; the parameter combination is infeasible")
	}
	return math.Sqrt(variance), nil
}

func fg(g int) float64 {
	return float64(g)
}
