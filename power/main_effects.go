package power

import "gopowerup/domain/design"

// IRA1R1 computes the power of a single-level individual random assignment
// design (a simple randomized controlled trial).
func IRA1R1(p design.Params) (float64, error) {
	return eval(design.IRA1R1, p)
}

// BIRA2C1 computes the power of a two-level blocked individual random
// assignment design with a constant treatment effect across blocks.
func BIRA2C1(p design.Params) (float64, error) {
	return eval(design.BIRA2C1, p)
}

// BIRA2F1 computes the power of a two-level blocked individual random
// assignment design with fixed block effects.
func BIRA2F1(p design.Params) (float64, error) {
	return eval(design.BIRA2F1, p)
}

// BIRA2R1 computes the power of a two-level blocked individual random
// assignment design with treatment effects varying randomly across blocks.
func BIRA2R1(p design.Params) (float64, error) {
	return eval(design.BIRA2R1, p)
}

// CRA2R2 computes the power of a two-level simple cluster random assignment
// design.
func CRA2R2(p design.Params) (float64, error) {
	return eval(design.CRA2R2, p)
}

// BIRA3R1 computes the power of a three-level blocked individual random
// assignment design, treatment at level 1.
func BIRA3R1(p design.Params) (float64, error) {
	return eval(design.BIRA3R1, p)
}

// BCRA3F2 computes the power of a three-level blocked (fixed) cluster random
// assignment design, treatment at level 2.
func BCRA3F2(p design.Params) (float64, error) {
	return eval(design.BCRA3F2, p)
}

// BCRA3R2 computes the power of a three-level blocked cluster random
// assignment design, treatment at level 2.
func BCRA3R2(p design.Params) (float64, error) {
	return eval(design.BCRA3R2, p)
}

// CRA3R3 computes the power of a three-level simple cluster random
// assignment design.
func CRA3R3(p design.Params) (float64, error) {
	return eval(design.CRA3R3, p)
}

// BIRA4R1 computes the power of a four-level blocked individual random
// assignment design.
func BIRA4R1(p design.Params) (float64, error) {
	return eval(design.BIRA4R1, p)
}

// BCRA4F3 computes the power of a four-level blocked (fixed) cluster random
// assignment design, treatment at level 3.
func BCRA4F3(p design.Params) (float64, error) {
	return eval(design.BCRA4F3, p)
}

// BCRA4R2 computes the power of a four-level blocked cluster random
// assignment design, treatment at level 2.
func BCRA4R2(p design.Params) (float64, error) {
	return eval(design.BCRA4R2, p)
}

// BCRA4R3 computes the power of a four-level blocked cluster random
// assignment design, treatment at level 3.
func BCRA4R3(p design.Params) (float64, error) {
	return eval(design.BCRA4R3, p)
}

// CRA4R4 computes the power of a four-level simple cluster random assignment
// design.
func CRA4R4(p design.Params) (float64, error) {
	return eval(design.CRA4R4, p)
}
