package track

import (
	"math"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
)

// TrackPoint is a point on the centerline, with its zone and the distance
// along the centerline from the start of that zone.
type TrackPoint struct {
	Pos   common.Vec2
	Zone  Zone
	Along float64
}

// Along returns how far p is along the centerline of zone z, in pixels,
// measured from the start of the zone in skating direction.
// Straights are parametrized by x, turns by angle around the centerline center.
func (g *Geometry) Along(z Zone, p common.Vec2) float64 {
	if z < ZoneStraight1 || z > ZoneTurn2 {
		return 0
	}
	m := g.mid[z]
	if !z.IsTurn() {
		dx := m.end.X - m.start.X
		if dx == 0 {
			return 0
		}
		f := math.Max(0, math.Min(1, (p.X-m.start.X)/dx))
		return f * m.length
	}
	a := common.NormalizeAngle(m.entry - p.Sub(m.center).Angle())
	switch {
	case a > 1.5*math.Pi:
		a = 0
	case a > math.Pi:
		a = math.Pi
	}
	return a * m.radius
}

// Locate returns the centerline position of p. ok is false when p is off track.
func (g *Geometry) Locate(p common.Vec2) (TrackPoint, bool) {
	z := g.ZoneOf(p)
	if z == ZoneNone {
		return TrackPoint{Pos: p}, false
	}
	along := g.Along(z, p)
	return TrackPoint{Pos: g.midPoint(z, along), Zone: z, Along: along}, true
}

// Distance returns the position of p along one lap, measured from the start
// of straight 1. ok is false when p is off track.
func (g *Geometry) Distance(p common.Vec2) (float64, bool) {
	tp, ok := g.Locate(p)
	if !ok {
		return 0, false
	}
	return g.lapOffset(tp.Zone) + tp.Along, true
}

func (g *Geometry) lapOffset(z Zone) float64 {
	off := 0.0
	for _, zz := range Zones {
		if zz == z {
			break
		}
		off += g.mid[zz].length
	}
	return off
}

// midPoint returns the centerline point at along in zone z.
func (g *Geometry) midPoint(z Zone, along float64) common.Vec2 {
	m := g.mid[z]
	if !z.IsTurn() {
		if m.length == 0 {
			return m.start
		}
		return m.start.Lerp(m.end, along/m.length)
	}
	return m.center.Polar(m.radius, m.entry-along/m.radius)
}

// BoundaryAt returns the inner and outer boundary points at along in zone z.
// In straights both share the x of the centerline point; in turns both lie
// on the ray from the centerline center through it.
func (g *Geometry) BoundaryAt(z Zone, along float64) Projection {
	if z < ZoneStraight1 || z > ZoneTurn2 {
		return Projection{}
	}
	m := g.mid[z]
	seg := g.segments[z]
	if !z.IsTurn() {
		x := g.midPoint(z, along).X
		return Projection{
			Inner: common.Vec2{X: x, Y: seg.InnerStart.Y},
			Outer: common.Vec2{X: x, Y: outerLineY(seg, x)},
		}
	}
	a := m.entry - along/m.radius
	return Projection{
		Inner: rayCircle(m.center, a, seg.CenterInner, seg.RadiusInner),
		Outer: rayCircle(m.center, a, seg.CenterOuter, seg.RadiusOuter),
	}
}

// walk moves distance along the centerline from (z, along), chaining through
// as many zones as needed. Negative distances walk backwards.
func (g *Geometry) walk(z Zone, along, distance float64) TrackPoint {
	if g.total > 0 && math.Abs(distance) > g.total {
		distance = math.Mod(distance, g.total)
	}
	for i := 0; i < 16; i++ {
		length := g.mid[z].length
		next := along + distance
		switch {
		case next >= 0 && next <= length:
			return TrackPoint{Pos: g.midPoint(z, next), Zone: z, Along: next}
		case next > length:
			distance = next - length
			z = z.Next()
			along = 0
		default:
			distance = next
			z = z.Prev()
			along = g.mid[z].length
		}
	}
	// Only reachable with a degenerate (zero length) geometry.
	return TrackPoint{Pos: g.midPoint(z, along), Zone: z, Along: along}
}

// PointAhead walks distance pixels ahead of p along the centerline.
// It fails closed: an off-track p is returned unchanged with ok false.
func (g *Geometry) PointAhead(p common.Vec2, distance float64) (TrackPoint, bool) {
	tp, ok := g.Locate(p)
	if !ok {
		return tp, false
	}
	return g.walk(tp.Zone, tp.Along, distance), true
}

// PointBehind walks distance pixels behind p along the centerline.
func (g *Geometry) PointBehind(p common.Vec2, distance float64) (TrackPoint, bool) {
	tp, ok := g.Locate(p)
	if !ok {
		return tp, false
	}
	return g.walk(tp.Zone, tp.Along, -distance), true
}

// Advance orders positions within a single zone: larger is further ahead.
// It is the centerline parameter Along, so ordering agrees with the regions
// built from it. Turns are ranked by angle around the centerline center.
func (g *Geometry) Advance(z Zone, p common.Vec2) float64 {
	return g.Along(z, p)
}
