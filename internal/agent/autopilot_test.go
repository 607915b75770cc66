package agent

import (
	"testing"

	"github.com/ruihildt/roller-derby-board-sub000/internal/board"
	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
	"github.com/ruihildt/roller-derby-board-sub000/internal/token"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

func TestGlideMovesAhead(t *testing.T) {
	b := board.New(1200, 800)
	g := b.Geometry()
	ps := g.Points()
	pos := common.Vec2{X: ps.Center.X, Y: ps.Center.Y - ps.Pixels(5.9)}

	next, ok := Glide(g, pos, ps.Pixels(1))
	if !ok {
		t.Fatalf("glide failed on track")
	}
	if next.X >= pos.X {
		t.Fatalf("straight 1 is skated towards -x: %v -> %v", pos, next)
	}
	before, _ := g.Distance(pos)
	after, _ := g.Distance(next)
	if d := ps.Meters(after - before); d < 0.99 || d > 1.01 {
		t.Fatalf("moved %f m along the track, want 1", d)
	}
	if !g.OnSurface(next) {
		t.Fatalf("glide left the track surface")
	}
}

func TestGlideOffTrack(t *testing.T) {
	b := board.New(1200, 800)
	center := b.Geometry().Points().Center
	if p, ok := Glide(b.Geometry(), center, 10); ok || p != center {
		t.Fatalf("off-track glide should fail and keep the position")
	}
}

func TestStepMovesSkatersOnly(t *testing.T) {
	b := board.New(1200, 800)
	ps := b.Geometry().Points()
	sk := b.PlaceToken(common.Vec2{X: ps.Center.X, Y: ps.Center.Y - ps.Pixels(5.9)}, token.Skater{Team: token.TeamA, Role: token.Jammer})
	ref := b.PlaceToken(common.Vec2{X: ps.Center.X, Y: ps.Center.Y - ps.Pixels(5.0)}, token.Official{Role: token.JammerReferee})
	off := b.PlaceToken(ps.Center, token.Skater{Team: token.TeamB, Role: token.Blocker})
	skBefore, refBefore, offBefore := sk.Pos, ref.Pos, off.Pos

	a := NewAutopilot(1)
	for i := 0; i < 10; i++ {
		a.Step(b)
	}
	if a.Ticks != 10 {
		t.Fatalf("ticks=%d", a.Ticks)
	}
	got, _ := b.Token(sk.ID)
	if got.Pos == skBefore {
		t.Fatalf("skater did not move")
	}
	if got.State.Zone == track.ZoneNone {
		t.Fatalf("skater left the track")
	}
	if r, _ := b.Token(ref.ID); r.Pos != refBefore {
		t.Fatalf("officials are not skated")
	}
	if o, _ := b.Token(off.ID); o.Pos != offBefore {
		t.Fatalf("off-track skaters are not skated")
	}
}
