package track

import (
	"math"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
)

// Waypoint represents a point on the track centerline.
type Waypoint struct {
	ID       int
	Zone     Zone
	Position common.Vec2 // World coordinates (x, y)
	Normal   common.Vec2 // Unit vector from the inner towards the outer boundary
	Width    float64     // Width of the track at this point
	Distance float64     // Distance from the start of straight 1 (s-coordinate)
}

// TrackMesh is a sampled centerline, used by renderers and debug tools.
type TrackMesh struct {
	Waypoints []Waypoint
	TotalLen  float64
}

// Centerline samples the centerline every step pixels (at least once per zone).
func (g *Geometry) Centerline(step float64) *TrackMesh {
	mesh := &TrackMesh{TotalLen: g.total}
	if step <= 0 {
		return mesh
	}

	id := 0
	offset := 0.0
	for _, z := range Zones {
		length := g.mid[z].length
		n := int(math.Ceil(length / step))
		if n < 1 {
			n = 1
		}
		// The last sample of a zone is the first of the next one.
		for i := 0; i < n; i++ {
			along := length * float64(i) / float64(n)
			b := g.BoundaryAt(z, along)
			mesh.Waypoints = append(mesh.Waypoints, Waypoint{
				ID:       id,
				Zone:     z,
				Position: g.midPoint(z, along),
				Normal:   b.Outer.Sub(b.Inner).Normalize(),
				Width:    b.Width(),
				Distance: offset + along,
			})
			id++
		}
		offset += length
	}
	return mesh
}

// GetClosestWaypoint finds the waypoint closest to the given world position.
// Returns the waypoint and its index.
func (m *TrackMesh) GetClosestWaypoint(pos common.Vec2) (Waypoint, int) {
	minDistSq := math.MaxFloat64
	closestIdx := -1

	for i, wp := range m.Waypoints {
		dx := pos.X - wp.Position.X
		dy := pos.Y - wp.Position.Y
		distSq := dx*dx + dy*dy
		if distSq < minDistSq {
			minDistSq = distSq
			closestIdx = i
		}
	}

	if closestIdx == -1 {
		return Waypoint{}, -1
	}
	return m.Waypoints[closestIdx], closestIdx
}

// WorldToFrenet converts World (x,y) to Frenet (s,d).
// s: Progress along track
// d: Lateral offset (positive = towards the outer boundary)
func (m *TrackMesh) WorldToFrenet(pos common.Vec2) (float64, float64) {
	wp, idx := m.GetClosestWaypoint(pos)
	if idx < 0 {
		return 0, 0
	}

	rel := pos.Sub(wp.Position)
	d := rel.Dot(wp.Normal)

	// Tangent is the normal rotated towards the skating direction.
	tangent := common.Vec2{X: wp.Normal.Y, Y: -wp.Normal.X}
	s := wp.Distance + rel.Dot(tangent)
	if m.TotalLen > 0 {
		s = math.Mod(s+m.TotalLen, m.TotalLen)
	}
	return s, d
}
