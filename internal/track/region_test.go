package track

import (
	"testing"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
)

func engagementFixture(t *testing.T) (*Geometry, common.Vec2, common.Vec2, *Region) {
	t.Helper()
	g := newTestGeometry()
	rear := at(g, 2, -5.9)
	fore := at(g, -1, -5.9)
	r, ok := g.EngagementRegion(rear, fore, g.Points().Pixels(6.1))
	if !ok {
		t.Fatalf("expected a region for on-track extremes")
	}
	return g, rear, fore, r
}

func TestEngagementRegionZones(t *testing.T) {
	_, _, _, r := engagementFixture(t)
	want := []Zone{ZoneTurn2, ZoneStraight1, ZoneTurn1}
	got := r.Zones()
	if len(got) != len(want) {
		t.Fatalf("zones=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("zones=%v want=%v", got, want)
		}
	}
}

func TestEngagementRegionContains(t *testing.T) {
	g, rear, fore, r := engagementFixture(t)
	ps := g.Points()

	if !r.Contains(rear) || !r.Contains(fore) {
		t.Fatalf("region should contain the pack extremes")
	}
	if !r.Contains(at(g, -1.5, -5.9)) {
		t.Fatalf("0.5 m ahead of the foremost should be engaged")
	}
	if !r.Contains(at(g, 2.5, -5.9)) {
		t.Fatalf("0.5 m behind the rearmost should be engaged")
	}
	far, _ := g.PointAhead(fore, ps.Pixels(7.62))
	if r.Contains(far.Pos) {
		t.Fatalf("25 ft ahead of the foremost should not be engaged")
	}
	back, _ := g.PointBehind(rear, ps.Pixels(7.62))
	if r.Contains(back.Pos) {
		t.Fatalf("25 ft behind the rearmost should not be engaged")
	}
	if r.Contains(at(g, 0, 0)) || r.Contains(at(g, 0, 5.9)) {
		t.Fatalf("infield and the opposite straight are outside the region")
	}
}

func TestEngagementRegionGeometry(t *testing.T) {
	g, rear, fore, r := engagementFixture(t)
	polys := r.Polygons(g.Points().Pixels(0.5))
	if len(polys) != len(r.Segments) {
		t.Fatalf("polygons=%d segments=%d", len(polys), len(r.Segments))
	}
	for i, poly := range polys {
		if len(poly) < 4 {
			t.Fatalf("polygon %d has %d points", i, len(poly))
		}
	}
	b := r.Bounds()
	for _, p := range []common.Vec2{rear, fore} {
		if p.X < b.Min.X || p.X > b.Max.X || p.Y < b.Min.Y || p.Y > b.Max.Y {
			t.Fatalf("bounds %v miss %v", b, p)
		}
	}
}

func TestEngagementRegionFullLap(t *testing.T) {
	g := newTestGeometry()
	rear := at(g, 0, -5.9)
	fore, _ := g.PointBehind(rear, g.Points().Pixels(1))

	r, ok := g.EngagementRegion(rear, fore.Pos, g.Points().Pixels(6.1))
	if !ok {
		t.Fatalf("expected region")
	}
	if len(r.Zones()) != 4 {
		t.Fatalf("a pack spanning the lap should engage all zones, got %v", r.Zones())
	}
	for y := 0; y < testHeight; y += 11 {
		for x := 0; x < testWidth; x += 11 {
			p := common.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if g.OnSurface(p) && !r.Contains(p) {
				t.Fatalf("full lap region misses %v", p)
			}
		}
	}
}

func TestEngagementRegionOffTrack(t *testing.T) {
	g := newTestGeometry()
	if _, ok := g.EngagementRegion(at(g, 0, 0), at(g, 0, -5.9), 10); ok {
		t.Fatalf("off-track rear should give no region")
	}
	var empty *Region
	if !empty.Empty() || empty.Contains(at(g, 0, -5.9)) {
		t.Fatalf("nil region should be empty")
	}
}
