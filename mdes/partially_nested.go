package mdes

import "gopowerup/domain/design"

// IRAPN solves the MDES of an individual random assignment design with a
// partially nested treatment arm.
func IRAPN(p design.Params) (float64, error) {
	return value(design.IRAPN, p)
}

// BIRA2PN solves the MDES of a blocked individual random assignment design
// with a partially nested treatment arm.
func BIRA2PN(p design.Params) (float64, error) {
	return value(design.BIRA2PN, p)
}

// CRA2PN solves the MDES of a two-level cluster random assignment design
// with a partially nested treatment arm.
func CRA2PN(p design.Params) (float64, error) {
	return value(design.CRA2PN, p)
}

// BCRA3PN solves the MDES of a three-level blocked cluster random assignment
// design with a partially nested treatment arm.
func BCRA3PN(p design.Params) (float64, error) {
	return value(design.BCRA3PN, p)
}
