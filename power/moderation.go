package power

import "gopowerup/domain/design"

// For the moderation designs EffectSize is the moderated effect-size
// difference: the treatment-effect gap between moderator subgroups (binary,
// proportion Q) or per standard deviation of a continuous moderator (Q zero).

// Mod211 computes the power to detect a level-1 moderator of the treatment
// effect in a two-level multisite design (treatment at level 1).
func Mod211(p design.Params) (float64, error) {
	return eval(design.Mod211, p)
}

// Mod212 computes the power to detect a level-2 moderator of the treatment
// effect in a two-level multisite design.
func Mod212(p design.Params) (float64, error) {
	return eval(design.Mod212, p)
}

// Mod221 computes the power to detect a level-1 moderator of the treatment
// effect in a two-level cluster-randomized design (treatment at level 2).
func Mod221(p design.Params) (float64, error) {
	return eval(design.Mod221, p)
}

// Mod222 computes the power to detect a level-2 moderator of the treatment
// effect in a two-level cluster-randomized design.
func Mod222(p design.Params) (float64, error) {
	return eval(design.Mod222, p)
}

// Mod331 computes the power to detect a level-1 moderator of the treatment
// effect in a three-level cluster-randomized design (treatment at level 3).
func Mod331(p design.Params) (float64, error) {
	return eval(design.Mod331, p)
}

// Mod332 computes the power to detect a level-2 moderator of the treatment
// effect in a three-level cluster-randomized design.
func Mod332(p design.Params) (float64, error) {
	return eval(design.Mod332, p)
}

// Mod333 computes the power to detect a level-3 moderator of the treatment
// effect in a three-level cluster-randomized design.
func Mod333(p design.Params) (float64, error) {
	return eval(design.Mod333, p)
}
