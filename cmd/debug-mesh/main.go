package main

import (
	"flag"
	"fmt"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

func main() {
	width := flag.Float64("width", 1200, "canvas width in pixels")
	height := flag.Float64("height", 800, "canvas height in pixels")
	step := flag.Float64("step", 2, "waypoint spacing in meters")
	atX := flag.Float64("x", 0, "probe x, meters from the track center")
	atY := flag.Float64("y", -5.9, "probe y, meters from the track center")
	flag.Parse()

	geo := track.New(track.NewPointSet(*width, *height))
	ps := geo.Points()

	fmt.Printf("canvas %.0fx%.0f, scale %.3f px/m, center (%.1f, %.1f)\n", *width, *height, ps.Scale, ps.Center.X, ps.Center.Y)

	points := []struct {
		name string
		x, y float64
	}{
		{"A", ps.A.X, ps.A.Y}, {"B", ps.B.X, ps.B.Y}, {"C", ps.C.X, ps.C.Y},
		{"D", ps.D.X, ps.D.Y}, {"E", ps.E.X, ps.E.Y}, {"F", ps.F.X, ps.F.Y},
		{"G", ps.G.X, ps.G.Y}, {"H", ps.H.X, ps.H.Y}, {"I", ps.I.X, ps.I.Y},
		{"J", ps.J.X, ps.J.Y}, {"K", ps.K.X, ps.K.Y}, {"L", ps.L.X, ps.L.Y},
	}
	for _, p := range points {
		fmt.Printf("  %s (%8.2f, %8.2f)\n", p.name, p.x, p.y)
	}

	fmt.Println("zones:")
	for _, z := range track.Zones {
		fmt.Printf("  %-10s %6.2f m\n", z, ps.Meters(geo.ZoneLength(z)))
	}
	fmt.Printf("  lap        %6.2f m\n", ps.Meters(geo.TrackLength()))

	mesh := geo.Centerline(ps.Pixels(*step))
	fmt.Printf("centerline: %d waypoints\n", len(mesh.Waypoints))
	for _, wp := range mesh.Waypoints {
		fmt.Printf("  #%-3d %-10s s=%6.2f m pos=(%7.1f, %7.1f) width=%5.2f m\n",
			wp.ID, wp.Zone, ps.Meters(wp.Distance), wp.Position.X, wp.Position.Y, ps.Meters(wp.Width))
	}

	p := common.Vec2{X: ps.Center.X + *atX*ps.Scale, Y: ps.Center.Y + *atY*ps.Scale}
	wp, idx := mesh.GetClosestWaypoint(p)
	s, d := mesh.WorldToFrenet(p)
	fmt.Printf("point (%.2f, %.2f) m: zone %s, closest #%d, s=%.2f m d=%.2f m\n",
		*atX, *atY, geo.ZoneOf(p), idx, ps.Meters(s), ps.Meters(d))
	if idx >= 0 {
		fmt.Printf("  nearest waypoint at s=%.2f m\n", ps.Meters(wp.Distance))
	}
}
