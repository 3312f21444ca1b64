package design

// Config carries the process-wide calculation defaults and solver bounds.
// These mirror the conventions of the published formula tables (two-tailed
// alpha .10, balanced assignment, target power .80) and are fixed at package
// init; nothing in the library mutates them.
type Config struct {
	Alpha      float64 // default Type I error rate
	P          float64 // default proportion assigned to treatment
	EffectSize float64 // assumed effect when evaluating power
	Power      float64 // target power when inverting

	EffectSizeCap float64 // upper bound of the MDES search bracket
	CountCap      float64 // upper bound of the sample-size search bracket
	Tolerance     float64 // |power - target| stopping tolerance
	MaxIter       int     // bisection iteration budget
}

var defaults = Config{
	Alpha:      0.10,
	P:          0.50,
	EffectSize: 0.25,
	Power:      0.80,

	EffectSizeCap: 5.0,
	CountCap:      1e6,
	Tolerance:     1e-5,
	MaxIter:       200,
}

// Defaults returns a copy of the calculation defaults.
func Defaults() Config {
	return defaults
}
