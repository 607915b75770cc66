package track

import (
	"math"
	"testing"
)

func TestTrackLength(t *testing.T) {
	g := newTestGeometry()
	ps := g.Points()
	want := 2*math.Hypot(2*TurnCenterOffset, OuterCenterShift) + math.Pi*(InnerRadius+OuterRadius)
	if got := ps.Meters(g.TrackLength()); math.Abs(got-want) > 1e-6 {
		t.Fatalf("lap=%f m want=%f m", got, want)
	}
	sum := 0.0
	for _, z := range Zones {
		sum += g.ZoneLength(z)
	}
	if math.Abs(sum-g.TrackLength()) > 1e-9 {
		t.Fatalf("zone lengths sum to %f, lap is %f", sum, g.TrackLength())
	}
}

func TestCenterlineIsContinuous(t *testing.T) {
	g := newTestGeometry()
	for _, z := range Zones {
		end := g.midPoint(z, g.ZoneLength(z))
		start := g.midPoint(z.Next(), 0)
		if !near(end, start, 1e-6) {
			t.Fatalf("%v ends at %v but %v starts at %v", z, end, z.Next(), start)
		}
	}
}

func TestPointAheadChains(t *testing.T) {
	g := newTestGeometry()
	ps := g.Points()
	p := at(g, 0, -5.9)

	first, ok := g.PointAhead(p, ps.Pixels(10))
	if !ok {
		t.Fatalf("expected on-track point")
	}
	if first.Zone != ZoneTurn1 {
		t.Fatalf("10 m ahead of mid straight 1 should be in turn 1, got %v", first.Zone)
	}
	second, ok := g.PointAhead(first.Pos, ps.Pixels(15))
	if !ok {
		t.Fatalf("expected on-track point")
	}
	direct, _ := g.PointAhead(p, ps.Pixels(25))
	if !near(second.Pos, direct.Pos, 1e-6) {
		t.Fatalf("chained=%v direct=%v", second.Pos, direct.Pos)
	}
	if direct.Zone != ZoneStraight2 {
		t.Fatalf("25 m ahead should be in straight 2, got %v", direct.Zone)
	}
}

func TestPointAheadFullLap(t *testing.T) {
	g := newTestGeometry()
	p := at(g, 0, -5.9)
	here, _ := g.Locate(p)
	lap, ok := g.PointAhead(p, g.TrackLength())
	if !ok || !near(lap.Pos, here.Pos, 1e-6) {
		t.Fatalf("a full lap should come back: got=%v want=%v", lap.Pos, here.Pos)
	}
}

func TestPointBehindUndoesAhead(t *testing.T) {
	g := newTestGeometry()
	ps := g.Points()
	p := at(g, 0, -5.9)
	here, _ := g.Locate(p)

	back, ok := g.PointBehind(p, ps.Pixels(8))
	if !ok || back.Zone != ZoneTurn2 {
		t.Fatalf("8 m behind mid straight 1 should be in turn 2, got %v", back.Zone)
	}
	again, _ := g.PointAhead(back.Pos, ps.Pixels(8))
	if !near(again.Pos, here.Pos, 1e-6) {
		t.Fatalf("got=%v want=%v", again.Pos, here.Pos)
	}
}

func TestPointAheadOffTrack(t *testing.T) {
	g := newTestGeometry()
	p := at(g, 0, 0)
	tp, ok := g.PointAhead(p, 10)
	if ok {
		t.Fatalf("infield point should fail")
	}
	if tp.Pos != p {
		t.Fatalf("failed walk should return the input, got %v", tp.Pos)
	}
}

func TestDistanceFollowsSkatingDirection(t *testing.T) {
	g := newTestGeometry()
	behind, _ := g.Distance(at(g, 2, -5.9))
	ahead, _ := g.Distance(at(g, -2, -5.9))
	if ahead <= behind {
		t.Fatalf("straight 1 is skated towards -x: behind=%f ahead=%f", behind, ahead)
	}
	bottom, _ := g.Distance(at(g, 0, 5.9))
	if bottom <= ahead {
		t.Fatalf("straight 2 comes after straight 1")
	}
}

func TestAdvance(t *testing.T) {
	g := newTestGeometry()
	if g.Advance(ZoneStraight1, at(g, -2, -5.9)) <= g.Advance(ZoneStraight1, at(g, 2, -5.9)) {
		t.Fatalf("straight 1: -x should be ahead")
	}
	if g.Advance(ZoneStraight2, at(g, 2, 5.9)) <= g.Advance(ZoneStraight2, at(g, -2, 5.9)) {
		t.Fatalf("straight 2: +x should be ahead")
	}
	entry := g.Advance(ZoneTurn2, at(g, TurnCenterOffset+1, 5.9))
	exit := g.Advance(ZoneTurn2, at(g, TurnCenterOffset+1, -5.9))
	if exit <= entry {
		t.Fatalf("turn 2: exit=%f should be ahead of entry=%f", exit, entry)
	}
}

func TestAdvanceMatchesDistanceInTurn(t *testing.T) {
	g := newTestGeometry()
	c := at(g, TurnCenterOffset, 0)
	ps := g.Points()
	inner := c.Polar(ps.Pixels(4.5), 0.005)
	outer := c.Polar(ps.Pixels(7.5), 0)

	di, _ := g.Distance(inner)
	do, _ := g.Distance(outer)
	ai, ao := g.Advance(ZoneTurn2, inner), g.Advance(ZoneTurn2, outer)
	if (ai < ao) != (di < do) {
		t.Fatalf("advance (%f, %f) and distance (%f, %f) disagree", ai, ao, di, do)
	}
}
