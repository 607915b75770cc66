package track

import (
	"math"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
)

// Projection holds the feet of the perpendiculars from a point onto the
// inner and outer boundary. Together they give the local width of the track.
type Projection struct {
	Inner common.Vec2
	Outer common.Vec2
}

// Width returns the distance between the two projected points.
func (pr Projection) Width() float64 {
	return pr.Inner.Dist(pr.Outer)
}

// Project computes the inner and outer boundary projections of p.
// Beyond the straight span the projections are radial from the turn centers;
// within it they are perpendicular to the boundary lines, clamped to the straight.
func (g *Geometry) Project(p common.Vec2) Projection {
	ps := g.points
	ri := ps.Pixels(InnerRadius)
	ro := ps.Pixels(OuterRadius)

	switch {
	case p.X > ps.A.X:
		return Projection{
			Inner: radial(p, ps.A, ri),
			Outer: radial(p, ps.G, ro),
		}
	case p.X < ps.B.X:
		return Projection{
			Inner: radial(p, ps.B, ri),
			Outer: radial(p, ps.H, ro),
		}
	}

	seg := g.segments[ZoneStraight1]
	innerY := seg.InnerStart.Y
	if p.Y > ps.Center.Y {
		seg = g.segments[ZoneStraight2]
		innerY = seg.InnerStart.Y
	}
	return Projection{
		Inner: common.Vec2{X: p.X, Y: innerY},
		Outer: footOnSegment(p, seg.OuterStart, seg.OuterEnd),
	}
}

// radial projects p onto the circle of radius r around c along the ray c->p.
// A point at the center projects along +x.
func radial(p, c common.Vec2, r float64) common.Vec2 {
	d := p.Coord().Minus(c.Coord())
	if d.Magnitude() == 0 {
		return common.Vec2{X: c.X + r, Y: c.Y}
	}
	return common.FromCoord(d.Unit().Times(r).Plus(c.Coord()))
}

// footOnSegment returns the closest point to p on the segment a-b.
func footOnSegment(p, a, b common.Vec2) common.Vec2 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return a
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/l2))
	return a.Add(ab.Scale(t))
}

// rayCircle returns where the ray from origin at angle a leaves the circle
// of radius r around c. origin must lie inside the circle.
func rayCircle(origin common.Vec2, a float64, c common.Vec2, r float64) common.Vec2 {
	u := common.Vec2{X: math.Cos(a), Y: math.Sin(a)}
	w := origin.Sub(c)
	b := w.Dot(u)
	disc := b*b - (w.Dot(w) - r*r)
	if disc < 0 {
		disc = 0
	}
	return origin.Add(u.Scale(-b + math.Sqrt(disc)))
}
