package track

import (
	"math"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
)

// Segment describes one zone of the track in skating direction.
// Center and radius fields are only set for turns.
type Segment struct {
	Zone       Zone
	InnerStart common.Vec2
	OuterStart common.Vec2
	InnerEnd   common.Vec2
	OuterEnd   common.Vec2

	CenterInner common.Vec2
	CenterOuter common.Vec2
	RadiusInner float64
	RadiusOuter float64
}

// midline is the centerline model of a single zone.
// Straights run from start to end; turns are arcs of radius around center,
// starting at entry and sweeping towards decreasing angles.
type midline struct {
	start, end common.Vec2
	center     common.Vec2
	radius     float64
	entry      float64
	length     float64
}

// Geometry is the piecewise straight/arc model of the track built from a PointSet.
// It is immutable once built; a resize builds a new Geometry.
type Geometry struct {
	points   PointSet
	eps      float64
	segments [5]Segment
	mid      [5]midline
	total    float64
}

// New builds the track geometry from the control points.
func New(ps PointSet) *Geometry {
	g := &Geometry{
		points: ps,
		eps:    1e-6 * math.Max(ps.Scale, 1),
	}

	ri := ps.Pixels(InnerRadius)
	ro := ps.Pixels(OuterRadius)

	g.segments[ZoneStraight1] = Segment{
		Zone:       ZoneStraight1,
		InnerStart: ps.C, OuterStart: ps.I,
		InnerEnd: ps.D, OuterEnd: ps.J,
	}
	g.segments[ZoneTurn1] = Segment{
		Zone:       ZoneTurn1,
		InnerStart: ps.D, OuterStart: ps.J,
		InnerEnd: ps.E, OuterEnd: ps.K,
		CenterInner: ps.B, CenterOuter: ps.H,
		RadiusInner: ri, RadiusOuter: ro,
	}
	g.segments[ZoneStraight2] = Segment{
		Zone:       ZoneStraight2,
		InnerStart: ps.E, OuterStart: ps.K,
		InnerEnd: ps.F, OuterEnd: ps.L,
	}
	g.segments[ZoneTurn2] = Segment{
		Zone:       ZoneTurn2,
		InnerStart: ps.F, OuterStart: ps.L,
		InnerEnd: ps.C, OuterEnd: ps.I,
		CenterInner: ps.A, CenterOuter: ps.G,
		RadiusInner: ri, RadiusOuter: ro,
	}

	for _, z := range Zones {
		seg := g.segments[z]
		if !z.IsTurn() {
			start := seg.InnerStart.Lerp(seg.OuterStart, 0.5)
			end := seg.InnerEnd.Lerp(seg.OuterEnd, 0.5)
			g.mid[z] = midline{start: start, end: end, length: start.Dist(end)}
			continue
		}
		// Pairing inner and outer boundary points by direction puts the
		// midpoint on an arc around the midpoint of the two centers.
		center := seg.CenterInner.Lerp(seg.CenterOuter, 0.5)
		radius := (seg.RadiusInner + seg.RadiusOuter) / 2
		entry := seg.InnerStart.Sub(seg.CenterInner).Angle()
		g.mid[z] = midline{center: center, radius: radius, entry: entry, length: math.Pi * radius}
	}

	for _, z := range Zones {
		g.total += g.mid[z].length
	}
	return g
}

// Points returns the control points the geometry was built from.
func (g *Geometry) Points() PointSet {
	return g.points
}

// Segment returns the descriptor of zone z.
func (g *Geometry) Segment(z Zone) Segment {
	if z < ZoneStraight1 || z > ZoneTurn2 {
		return Segment{}
	}
	return g.segments[z]
}

// ZoneLength returns the centerline length of zone z, in pixels.
func (g *Geometry) ZoneLength(z Zone) float64 {
	if z < ZoneStraight1 || z > ZoneTurn2 {
		return 0
	}
	return g.mid[z].length
}

// TrackLength returns the length of one lap along the centerline, in pixels.
func (g *Geometry) TrackLength() float64 {
	return g.total
}

// outerLineY returns the y of the outer boundary line of a straight at x.
func outerLineY(seg Segment, x float64) float64 {
	dx := seg.OuterEnd.X - seg.OuterStart.X
	if dx == 0 {
		return seg.OuterStart.Y
	}
	t := (x - seg.OuterStart.X) / dx
	return seg.OuterStart.Y + (seg.OuterEnd.Y-seg.OuterStart.Y)*t
}

func (g *Geometry) inStraightSpan(x float64) bool {
	return x >= g.points.B.X && x <= g.points.A.X
}

func (g *Geometry) inStraight1(p common.Vec2) bool {
	seg := g.segments[ZoneStraight1]
	return g.inStraightSpan(p.X) &&
		p.Y <= seg.InnerStart.Y+g.eps &&
		p.Y >= outerLineY(seg, p.X)-g.eps
}

func (g *Geometry) inStraight2(p common.Vec2) bool {
	seg := g.segments[ZoneStraight2]
	return g.inStraightSpan(p.X) &&
		p.Y >= seg.InnerStart.Y-g.eps &&
		p.Y <= outerLineY(seg, p.X)+g.eps
}

func (g *Geometry) inTurn(z Zone, p common.Vec2) bool {
	seg := g.segments[z]
	if z == ZoneTurn1 && p.X >= g.points.B.X {
		return false
	}
	if z == ZoneTurn2 && p.X <= g.points.A.X {
		return false
	}
	return p.Dist(seg.CenterOuter) <= seg.RadiusOuter+g.eps &&
		p.Dist(seg.CenterInner) >= seg.RadiusInner-g.eps
}

// ZoneOf classifies p against the four zone regions in priority order
// straight 1, turn 1, straight 2, turn 2. Points on a straight/turn seam
// belong to the straight. Returns ZoneNone for points off the track surface.
func (g *Geometry) ZoneOf(p common.Vec2) Zone {
	switch {
	case g.inStraight1(p):
		return ZoneStraight1
	case g.inTurn(ZoneTurn1, p):
		return ZoneTurn1
	case g.inStraight2(p):
		return ZoneStraight2
	case g.inTurn(ZoneTurn2, p):
		return ZoneTurn2
	}
	return ZoneNone
}

// InsideOuter reports whether p is inside or on the outer boundary curve.
func (g *Geometry) InsideOuter(p common.Vec2) bool {
	ps := g.points
	switch {
	case g.inStraightSpan(p.X):
		top := outerLineY(g.segments[ZoneStraight1], p.X)
		bottom := outerLineY(g.segments[ZoneStraight2], p.X)
		return p.Y >= top-g.eps && p.Y <= bottom+g.eps
	case p.X > ps.A.X:
		return p.Dist(ps.G) <= ps.Pixels(OuterRadius)+g.eps
	default:
		return p.Dist(ps.H) <= ps.Pixels(OuterRadius)+g.eps
	}
}

// InsideInner reports whether p is strictly inside the inner boundary (the infield).
func (g *Geometry) InsideInner(p common.Vec2) bool {
	ps := g.points
	ri := ps.Pixels(InnerRadius)
	switch {
	case g.inStraightSpan(p.X):
		return math.Abs(p.Y-ps.Center.Y) < ri-g.eps
	case p.X > ps.A.X:
		return p.Dist(ps.A) < ri-g.eps
	default:
		return p.Dist(ps.B) < ri-g.eps
	}
}

// OnSurface reports whether p lies on the skating surface, lines included.
func (g *Geometry) OnSurface(p common.Vec2) bool {
	return g.InsideOuter(p) && !g.InsideInner(p)
}

// SamplePoints returns the center and the four cardinal points at radius.
func SamplePoints(pos common.Vec2, radius float64) [5]common.Vec2 {
	return [5]common.Vec2{
		pos,
		{X: pos.X + radius, Y: pos.Y},
		{X: pos.X - radius, Y: pos.Y},
		{X: pos.X, Y: pos.Y + radius},
		{X: pos.X, Y: pos.Y - radius},
	}
}

// IsInBounds reports whether a circular body at pos fits on the track surface.
// The body is approximated by its center and four cardinal points.
func (g *Geometry) IsInBounds(pos common.Vec2, radius float64) bool {
	for _, s := range SamplePoints(pos, radius) {
		if !g.OnSurface(s) {
			return false
		}
	}
	return true
}
