package mdes

import "gopowerup/domain/design"

// The moderation solvers return the minimum detectable effect-size
// difference (MDESD) between moderator subgroups at the target power.

// Mod211 solves the MDESD for a level-1 moderator in a two-level multisite
// design.
func Mod211(p design.Params) (float64, error) {
	return value(design.Mod211, p)
}

// Mod212 solves the MDESD for a level-2 moderator in a two-level multisite
// design.
func Mod212(p design.Params) (float64, error) {
	return value(design.Mod212, p)
}

// Mod221 solves the MDESD for a level-1 moderator in a two-level
// cluster-randomized design.
func Mod221(p design.Params) (float64, error) {
	return value(design.Mod221, p)
}

// Mod222 solves the MDESD for a level-2 moderator in a two-level
// cluster-randomized design.
func Mod222(p design.Params) (float64, error) {
	return value(design.Mod222, p)
}

// Mod331 solves the MDESD for a level-1 moderator in a three-level
// cluster-randomized design.
func Mod331(p design.Params) (float64, error) {
	return value(design.Mod331, p)
}

// Mod332 solves the MDESD for a level-2 moderator in a three-level
// cluster-randomized design.
func Mod332(p design.Params) (float64, error) {
	return value(design.Mod332, p)
}

// Mod333 solves the MDESD for a level-3 moderator in a three-level
// cluster-randomized design.
func Mod333(p design.Params) (float64, error) {
	return value(design.Mod333, p)
}
