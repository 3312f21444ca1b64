package power

import "gopowerup/domain/design"

// IRAPN computes the power of an individual random assignment design whose
// treatment arm is delivered in intact clusters (ICSize, RhoIC) while the
// control arm stays unclustered.
func IRAPN(p design.Params) (float64, error) {
	return eval(design.IRAPN, p)
}

// BIRA2PN computes the power of a blocked individual random assignment
// design with a partially nested treatment arm.
func BIRA2PN(p design.Params) (float64, error) {
	return eval(design.BIRA2PN, p)
}

// CRA2PN computes the power of a two-level cluster random assignment design
// with a partially nested treatment arm.
func CRA2PN(p design.Params) (float64, error) {
	return eval(design.CRA2PN, p)
}

// BCRA3PN computes the power of a three-level blocked cluster random
// assignment design with a partially nested treatment arm.
func BCRA3PN(p design.Params) (float64, error) {
	return eval(design.BCRA3PN, p)
}
