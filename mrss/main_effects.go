package mrss

import "gopowerup/domain/design"

// IRA1R1 solves the minimum number of individuals for a single-level
// individual random assignment design.
func IRA1R1(p design.Params) (float64, error) {
	return invert(design.IRA1R1, p)
}

// BIRA2C1 solves the minimum number of blocks for a two-level blocked
// individual random assignment design with a constant treatment effect.
func BIRA2C1(p design.Params) (float64, error) {
	return invert(design.BIRA2C1, p)
}

// BIRA2F1 solves the minimum number of blocks for a two-level blocked
// individual random assignment design with fixed block effects.
func BIRA2F1(p design.Params) (float64, error) {
	return invert(design.BIRA2F1, p)
}

// BIRA2R1 solves the minimum number of blocks for a two-level blocked
// individual random assignment design with randomly varying effects.
func BIRA2R1(p design.Params) (float64, error) {
	return invert(design.BIRA2R1, p)
}

// CRA2R2 solves the minimum number of clusters for a two-level simple
// cluster random assignment design.
func CRA2R2(p design.Params) (float64, error) {
	return invert(design.CRA2R2, p)
}

// BIRA3R1 solves the minimum number of level-3 blocks for a three-level
// blocked individual random assignment design.
func BIRA3R1(p design.Params) (float64, error) {
	return invert(design.BIRA3R1, p)
}

// BCRA3F2 solves the minimum number of level-3 blocks for a three-level
// blocked (fixed) cluster random assignment design.
func BCRA3F2(p design.Params) (float64, error) {
	return invert(design.BCRA3F2, p)
}

// BCRA3R2 solves the minimum number of level-3 blocks for a three-level
// blocked cluster random assignment design.
func BCRA3R2(p design.Params) (float64, error) {
	return invert(design.BCRA3R2, p)
}

// CRA3R3 solves the minimum number of level-3 clusters for a three-level
// simple cluster random assignment design.
func CRA3R3(p design.Params) (float64, error) {
	return invert(design.CRA3R3, p)
}

// BIRA4R1 solves the minimum number of level-4 blocks for a four-level
// blocked individual random assignment design.
func BIRA4R1(p design.Params) (float64, error) {
	return invert(design.BIRA4R1, p)
}

// BCRA4F3 solves the minimum number of level-4 blocks for a four-level
// blocked (fixed) cluster random assignment design.
func BCRA4F3(p design.Params) (float64, error) {
	return invert(design.BCRA4F3, p)
}

// BCRA4R2 solves the minimum number of level-4 blocks for a four-level
// blocked cluster random assignment design, treatment at level 2.
func BCRA4R2(p design.Params) (float64, error) {
	return invert(design.BCRA4R2, p)
}

// BCRA4R3 solves the minimum number of level-4 blocks for a four-level
// blocked cluster random assignment design, treatment at level 3.
func BCRA4R3(p design.Params) (float64, error) {
	return invert(design.BCRA4R3, p)
}

// CRA4R4 solves the minimum number of level-4 clusters for a four-level
// simple cluster random assignment design.
func CRA4R4(p design.Params) (float64, error) {
	return invert(design.CRA4R4, p)
}
