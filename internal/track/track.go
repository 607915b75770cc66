package track

import (
	"math"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
)

// Regulation dimensions, in meters.
const (
	TurnCenterOffset = 5.334 // 17.5 ft from track center to each turn center
	InnerRadius      = 3.81  // 12.5 ft
	OuterRadius      = 8.077 // 26.5 ft
	OuterCenterShift = 0.305 // 1 ft offset of the outer arc centers
	RefereeLane      = 3.05  // 10 ft margin kept around the outer boundary

	PivotLineOffset = 9.144 // 30 ft from the jammer line
)

// HalfExtentX and HalfExtentY bound the drawable area around the track center.
const (
	HalfExtentX = TurnCenterOffset + OuterRadius + RefereeLane
	HalfExtentY = OuterCenterShift + OuterRadius + RefereeLane
)

// NormalizeMeters is the divisor used for normalized (relative) positions.
const NormalizeMeters = TurnCenterOffset + OuterRadius

// Zone identifies one of the four track segments. ZoneNone means off track.
type Zone int

const (
	ZoneNone      Zone = iota
	ZoneStraight1      // top straight, skated towards -x
	ZoneTurn1          // left turn
	ZoneStraight2      // bottom straight, skated towards +x
	ZoneTurn2          // right turn
)

// Zones lists the track zones in skating order.
var Zones = [4]Zone{ZoneStraight1, ZoneTurn1, ZoneStraight2, ZoneTurn2}

// Next returns the zone ahead of z.
func (z Zone) Next() Zone {
	if z == ZoneNone {
		return ZoneNone
	}
	return z%4 + 1
}

// Prev returns the zone behind z.
func (z Zone) Prev() Zone {
	if z == ZoneNone {
		return ZoneNone
	}
	return (z+2)%4 + 1
}

// IsTurn reports whether z is one of the two curved zones.
func (z Zone) IsTurn() bool {
	return z == ZoneTurn1 || z == ZoneTurn2
}

func (z Zone) String() string {
	switch z {
	case ZoneStraight1:
		return "straight 1"
	case ZoneTurn1:
		return "turn 1"
	case ZoneStraight2:
		return "straight 2"
	case ZoneTurn2:
		return "turn 2"
	}
	return "off track"
}

// PointSet holds the twelve control points the whole track is derived from.
//
//	A, B: inner turn centers (+x, -x)
//	C, D, E, F: inner straight endpoints (top right, top left, bottom left, bottom right)
//	G, H: outer arc centers, shifted 1 ft in opposite directions
//	I, J, K, L: outer straight endpoints (top right, top left, bottom left, bottom right)
type PointSet struct {
	A, B, C, D, E, F, G, H, I, J, K, L common.Vec2

	Center common.Vec2
	Scale  float64 // pixels per meter
}

// ScaleFor returns the pixels-per-meter scale that fits the track and its
// referee lane into a canvas of the given size.
func ScaleFor(width, height float64) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	return math.Min(width/(2*HalfExtentX), height/(2*HalfExtentY))
}

// NewPointSet computes the control points for a canvas of the given size.
func NewPointSet(width, height float64) PointSet {
	return NewPointSetScaled(common.Vec2{X: width / 2, Y: height / 2}, ScaleFor(width, height))
}

// NewPointSetScaled computes the control points around center at an explicit scale.
func NewPointSetScaled(center common.Vec2, scale float64) PointSet {
	at := func(x, y float64) common.Vec2 {
		return common.Vec2{X: center.X + x*scale, Y: center.Y + y*scale}
	}

	t, ri, ro, s := TurnCenterOffset, InnerRadius, OuterRadius, OuterCenterShift

	return PointSet{
		A: at(t, 0),
		B: at(-t, 0),
		C: at(t, -ri),
		D: at(-t, -ri),
		E: at(-t, ri),
		F: at(t, ri),
		G: at(t, s),
		H: at(-t, -s),
		I: at(t, s-ro),
		J: at(-t, -s-ro),
		K: at(-t, -s+ro),
		L: at(t, s+ro),

		Center: center,
		Scale:  scale,
	}
}

// Pixels converts meters to canvas pixels.
func (ps PointSet) Pixels(meters float64) float64 {
	return meters * ps.Scale
}

// Meters converts canvas pixels to meters.
func (ps PointSet) Meters(pixels float64) float64 {
	if ps.Scale == 0 {
		return 0
	}
	return pixels / ps.Scale
}
