// Package affect provides the geometry of the circumplex model of
// affect: a bounded two-dimensional space with a pleasantness axis
// (valence) and an activation axis (arousal).
package affect

import "math"

// Bound is the axis limit of the affective space. Every position is
// kept inside [-Bound, Bound] on both axes.
const Bound = 1.0

// Position is a point in valence/arousal space. Immutable value type;
// operations return new positions.
type Position struct {
	Valence float64 `json:"valence"`
	Arousal float64 `json:"arousal"`
}

// Origin returns the neutral position (0, 0).
func Origin() Position {
	return Position{}
}

// Distance returns the Euclidean distance between two positions.
func Distance(a, b Position) float64 {
	dv := a.Valence - b.Valence
	da := a.Arousal - b.Arousal
	return math.Sqrt(dv*dv + da*da)
}

// Clamp constrains both coordinates to [-Bound, Bound].
func Clamp(p Position) Position {
	return Position{
		Valence: clampAxis(p.Valence),
		Arousal: clampAxis(p.Arousal),
	}
}

// Blend interpolates between current and displacement with the given
// weight and clamps the result: current*(1-weight) + displacement*weight.
func Blend(current, displacement Position, weight float64) Position {
	return Clamp(Position{
		Valence: current.Valence*(1-weight) + displacement.Valence*weight,
		Arousal: current.Arousal*(1-weight) + displacement.Arousal*weight,
	})
}

func clampAxis(v float64) float64 {
	if v < -Bound {
		return -Bound
	}
	if v > Bound {
		return Bound
	}
	return v
}
