package mrss

import "gopowerup/domain/design"

// IRAPN solves the minimum number of individuals for an individual random
// assignment design with a partially nested treatment arm.
func IRAPN(p design.Params) (float64, error) {
	return invert(design.IRAPN, p)
}

// BIRA2PN solves the minimum number of blocks for a blocked individual
// random assignment design with a partially nested treatment arm.
func BIRA2PN(p design.Params) (float64, error) {
	return invert(design.BIRA2PN, p)
}

// CRA2PN solves the minimum number of clusters for a two-level cluster
// random assignment design with a partially nested treatment arm.
func CRA2PN(p design.Params) (float64, error) {
	return invert(design.CRA2PN, p)
}

// BCRA3PN solves the minimum number of level-3 blocks for a three-level
// blocked cluster random assignment design with a partially nested
// treatment arm.
func BCRA3PN(p design.Params) (float64, error) {
	return invert(design.BCRA3PN, p)
}
