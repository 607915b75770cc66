package track

import (
	"math"
	"testing"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
)

const (
	testWidth  = 1200
	testHeight = 800
)

func newTestGeometry() *Geometry {
	return New(NewPointSet(testWidth, testHeight))
}

// at converts meters from the track center into canvas pixels.
func at(g *Geometry, x, y float64) common.Vec2 {
	ps := g.Points()
	return common.Vec2{X: ps.Center.X + x*ps.Scale, Y: ps.Center.Y + y*ps.Scale}
}

func near(a, b common.Vec2, tol float64) bool {
	return a.Dist(b) <= tol
}

func TestScaleForFitsCanvas(t *testing.T) {
	s := ScaleFor(testWidth, testHeight)
	if s <= 0 {
		t.Fatalf("scale=%f", s)
	}
	if 2*HalfExtentX*s > testWidth+1e-9 || 2*HalfExtentY*s > testHeight+1e-9 {
		t.Fatalf("track does not fit: scale=%f", s)
	}
	if ScaleFor(0, 100) != 0 || ScaleFor(100, -1) != 0 {
		t.Fatalf("degenerate canvas should give zero scale")
	}
}

func TestPointSetLayout(t *testing.T) {
	g := newTestGeometry()
	ps := g.Points()

	if ps.Center != (common.Vec2{X: testWidth / 2, Y: testHeight / 2}) {
		t.Fatalf("center=%v", ps.Center)
	}
	if math.Abs(ps.A.Dist(ps.B)-ps.Pixels(2*TurnCenterOffset)) > 1e-9 {
		t.Fatalf("turn centers %.3f px apart", ps.A.Dist(ps.B))
	}
	if !(ps.C.Y < ps.Center.Y && ps.F.Y > ps.Center.Y) {
		t.Fatalf("C should be above and F below the center")
	}
	if math.Abs(ps.I.Dist(ps.G)-ps.Pixels(OuterRadius)) > 1e-9 {
		t.Fatalf("I is not on the outer circle around G")
	}
	if math.Abs(ps.K.Dist(ps.H)-ps.Pixels(OuterRadius)) > 1e-9 {
		t.Fatalf("K is not on the outer circle around H")
	}
	if got := ps.Meters(ps.Pixels(3.05)); math.Abs(got-3.05) > 1e-12 {
		t.Fatalf("meters round trip=%f", got)
	}
}

func TestZoneNextPrev(t *testing.T) {
	for _, z := range Zones {
		if z.Next().Prev() != z {
			t.Fatalf("%v: next/prev not inverse", z)
		}
	}
	if ZoneTurn2.Next() != ZoneStraight1 || ZoneStraight1.Prev() != ZoneTurn2 {
		t.Fatalf("zones do not wrap")
	}
	if ZoneNone.Next() != ZoneNone {
		t.Fatalf("ZoneNone should stay none")
	}
}

func TestZoneOfKnownPoints(t *testing.T) {
	g := newTestGeometry()
	cases := []struct {
		name string
		x, y float64
		want Zone
	}{
		{"top straight", 0, -5.9, ZoneStraight1},
		{"bottom straight", 0, 5.9, ZoneStraight2},
		{"left turn", -TurnCenterOffset - 5.9, -0.15, ZoneTurn1},
		{"right turn", TurnCenterOffset + 5.9, 0.15, ZoneTurn2},
		{"seam goes to straight", -TurnCenterOffset, -5.9, ZoneStraight1},
		{"infield", 0, 0, ZoneNone},
		{"outside", 0, -10, ZoneNone},
		{"outside turn", TurnCenterOffset + 9, 0, ZoneNone},
	}
	for _, c := range cases {
		if got := g.ZoneOf(at(g, c.x, c.y)); got != c.want {
			t.Fatalf("%s: got=%v want=%v", c.name, got, c.want)
		}
	}
}

func TestZonesPartitionSurface(t *testing.T) {
	g := newTestGeometry()
	for y := 0; y < testHeight; y += 7 {
		for x := 0; x < testWidth; x += 7 {
			p := common.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			onSurface := g.OnSurface(p)
			zone := g.ZoneOf(p)
			if onSurface != (zone != ZoneNone) {
				t.Fatalf("p=%v onSurface=%v zone=%v", p, onSurface, zone)
			}
		}
	}
}

func TestIsInBounds(t *testing.T) {
	g := newTestGeometry()
	ps := g.Points()

	if !g.IsInBounds(at(g, 0, -5.9435), ps.Pixels(1.5)) {
		t.Fatalf("body in the middle of straight 1 should be in bounds")
	}
	if g.IsInBounds(at(g, 0, -InnerRadius), ps.Pixels(0.35)) {
		t.Fatalf("body straddling the inner line should be out of bounds")
	}
	if g.IsInBounds(at(g, 0, 0), ps.Pixels(0.35)) {
		t.Fatalf("infield should be out of bounds")
	}
	if g.IsInBounds(at(g, 2*(TurnCenterOffset+OuterRadius), 0), 1) {
		t.Fatalf("far point should be out of bounds")
	}
	if !g.IsInBounds(at(g, TurnCenterOffset+5.9, 0.15), ps.Pixels(0.35)) {
		t.Fatalf("body in turn 2 should be in bounds")
	}
}

func TestInBoundsPointSymmetry(t *testing.T) {
	g := newTestGeometry()
	r := g.Points().Pixels(0.35)
	for _, p := range [][2]float64{{0, -5.9}, {3, -6.5}, {-8, -4}, {10, 2}, {-11, 1}, {4, -4.5}, {0, -7.5}} {
		a := g.IsInBounds(at(g, p[0], p[1]), r)
		b := g.IsInBounds(at(g, -p[0], -p[1]), r)
		if a != b {
			t.Fatalf("(%v) in=%v but mirrored in=%v", p, a, b)
		}
	}
}
