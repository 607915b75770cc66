package track

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
)

// RegionSegment is the part of a region inside one zone, between two
// centerline positions. Its edges follow the zone's true boundary: the
// inner and outer lines or arcs, closed by chords at From and To.
type RegionSegment struct {
	Zone Zone
	From float64 // along, pixels from the zone start
	To   float64

	InnerStart, OuterStart common.Vec2
	InnerEnd, OuterEnd     common.Vec2
}

// Region is a closed area of track surface spanning one or more zones in
// skating order, such as the engagement zone.
type Region struct {
	Segments []RegionSegment

	g      *Geometry
	bounds geom.Rect
}

// Span builds the region from the centerline point from forwards to to.
// When to lies behind from in the same zone the region wraps a full lap.
func (g *Geometry) Span(from, to TrackPoint) *Region {
	r := &Region{g: g}
	if from.Zone == ZoneNone || to.Zone == ZoneNone {
		return r
	}

	z, along := from.Zone, from.Along
	for i := 0; i <= len(Zones); i++ {
		if z == to.Zone && to.Along >= along {
			r.add(z, along, to.Along)
			break
		}
		r.add(z, along, g.mid[z].length)
		z = z.Next()
		along = 0
	}
	r.computeBounds()
	return r
}

// FullLap returns a region covering the whole track surface.
func (g *Geometry) FullLap() *Region {
	r := &Region{g: g}
	for _, z := range Zones {
		r.add(z, 0, g.mid[z].length)
	}
	r.computeBounds()
	return r
}

// EngagementRegion builds the region from distance behind rear to distance
// ahead of fore along the centerline. It returns false when either point is
// off track, so callers can hide the region instead of failing.
func (g *Geometry) EngagementRegion(rear, fore common.Vec2, distance float64) (*Region, bool) {
	rearTP, ok := g.Locate(rear)
	if !ok {
		return nil, false
	}
	foreTP, ok := g.Locate(fore)
	if !ok {
		return nil, false
	}

	rd := g.lapOffset(rearTP.Zone) + rearTP.Along
	fd := g.lapOffset(foreTP.Zone) + foreTP.Along
	spread := fd - rd
	if spread < 0 {
		spread += g.total
	}
	if spread+2*distance >= g.total {
		return g.FullLap(), true
	}

	from := g.walk(rearTP.Zone, rearTP.Along, -distance)
	to := g.walk(foreTP.Zone, foreTP.Along, distance)
	return g.Span(from, to), true
}

func (r *Region) add(z Zone, from, to float64) {
	if to < from {
		return
	}
	start := r.g.BoundaryAt(z, from)
	end := r.g.BoundaryAt(z, to)
	r.Segments = append(r.Segments, RegionSegment{
		Zone:       z,
		From:       from,
		To:         to,
		InnerStart: start.Inner,
		OuterStart: start.Outer,
		InnerEnd:   end.Inner,
		OuterEnd:   end.Outer,
	})
}

func (r *Region) computeBounds() {
	outline := r.Outline(r.g.points.Pixels(0.5))
	if len(outline) == 0 {
		return
	}
	r.bounds = geom.Rect{Min: outline[0].Coord(), Max: outline[0].Coord()}
	for _, p := range outline[1:] {
		r.bounds.ExpandToContainCoord(p.Coord())
	}
	// Samples cut the arcs short; pad by more than the sagitta.
	pad := r.g.points.Pixels(0.05)
	r.bounds.Min.X -= pad
	r.bounds.Min.Y -= pad
	r.bounds.Max.X += pad
	r.bounds.Max.Y += pad
}

// Empty reports whether the region covers nothing.
func (r *Region) Empty() bool {
	return r == nil || len(r.Segments) == 0
}

// Bounds returns the axis-aligned bounding box of the region.
func (r *Region) Bounds() geom.Rect {
	return r.bounds
}

// Zones returns the zones the region spans, in skating order.
func (r *Region) Zones() []Zone {
	if r.Empty() {
		return nil
	}
	out := make([]Zone, 0, len(r.Segments))
	for _, s := range r.Segments {
		if len(out) > 0 && out[len(out)-1] == s.Zone {
			continue
		}
		out = append(out, s.Zone)
	}
	return out
}

// Contains reports whether p lies inside the region.
func (r *Region) Contains(p common.Vec2) bool {
	if r.Empty() {
		return false
	}
	eps := r.g.eps
	if p.X < r.bounds.Min.X-eps || p.X > r.bounds.Max.X+eps ||
		p.Y < r.bounds.Min.Y-eps || p.Y > r.bounds.Max.Y+eps {
		return false
	}
	z := r.g.ZoneOf(p)
	if z == ZoneNone {
		return false
	}
	along := r.g.Along(z, p)
	for _, s := range r.Segments {
		if s.Zone == z && along >= s.From-eps && along <= s.To+eps {
			return true
		}
	}
	return false
}

// Outline samples the region boundary as one closed polygon per segment,
// concatenated: inner edge forwards, then outer edge backwards. step is the
// maximum spacing between samples along the centerline, in pixels.
func (r *Region) Outline(step float64) []common.Vec2 {
	var out []common.Vec2
	for _, poly := range r.Polygons(step) {
		out = append(out, poly...)
	}
	return out
}

// Polygons samples each segment of the region as a closed polygon.
func (r *Region) Polygons(step float64) [][]common.Vec2 {
	if r.Empty() {
		return nil
	}
	if step <= 0 {
		step = 1
	}
	polys := make([][]common.Vec2, 0, len(r.Segments))
	for _, s := range r.Segments {
		n := 1
		if s.Zone.IsTurn() {
			n = int(math.Ceil((s.To - s.From) / step))
			if n < 1 {
				n = 1
			}
		}
		inner := make([]common.Vec2, 0, n+1)
		outer := make([]common.Vec2, 0, n+1)
		for i := 0; i <= n; i++ {
			b := r.g.BoundaryAt(s.Zone, s.From+(s.To-s.From)*float64(i)/float64(n))
			inner = append(inner, b.Inner)
			outer = append(outer, b.Outer)
		}
		poly := inner
		for i := len(outer) - 1; i >= 0; i-- {
			poly = append(poly, outer[i])
		}
		polys = append(polys, poly)
	}
	return polys
}
