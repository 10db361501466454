// Package sheet holds the state machine for the mobile bottom sheet that
// hosts the listing results over the full-screen map.
package sheet

import "math"

// State is one of the sheet's three snap positions.
type State string

const (
	Peek State = "peek"
	Mid  State = "mid"
	Full State = "full"
)

// Snap heights as a percentage of viewport height.
const (
	PeekHeightVh = 22.0
	MidHeightVh  = 55.0
	FullHeightVh = 92.0
)

// snapOrder lists states lowest-first. NearestSnap depends on this order
// for its tie-break.
var snapOrder = [...]State{Peek, Mid, Full}

// Valid reports whether s is a known sheet state.
func (s State) Valid() bool {
	return s == Peek || s == Mid || s == Full
}

// HeightVh returns the snap height for the state.
func (s State) HeightVh() float64 {
	switch s {
	case Mid:
		return MidHeightVh
	case Full:
		return FullHeightVh
	default:
		return PeekHeightVh
	}
}

// Advance moves to the next state on a handle tap: peek -> mid -> full,
// wrapping full -> peek.
func Advance(s State) State {
	switch s {
	case Peek:
		return Mid
	case Mid:
		return Full
	default:
		return Peek
	}
}

// NearestSnap picks the snap state closest to the height a drag was
// released at. An exactly equidistant release resolves to the lower state:
// the first <= comparison wins.
func NearestSnap(heightVh float64) State {
	best := snapOrder[0]
	bestDist := math.Abs(heightVh - best.HeightVh())
	for _, s := range snapOrder[1:] {
		if d := math.Abs(heightVh - s.HeightVh()); d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}

// MapInteractive reports whether the map should receive pointer events.
// On mobile the map is interactive exactly when the sheet is peeked; this
// is re-asserted on every state transition.
func MapInteractive(s State) bool {
	return s == Peek
}
