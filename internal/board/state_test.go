package board

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/ruihildt/roller-derby-board-sub000/internal/token"
)

func TestNormalizeRoundTrip(t *testing.T) {
	b := New(1200, 800)
	ps := b.Geometry().Points()
	p := at(b, 4, -6)
	back := Denormalize(Normalize(p, ps), ps)
	if back.Dist(p) > 1e-9 {
		t.Fatalf("got=%v want=%v", back, p)
	}
	if rel := Normalize(ps.Center, ps); rel != (Position{}) {
		t.Fatalf("center should normalize to origin, got %+v", rel)
	}
	edge := Normalize(at(b, -13.411, 0), ps)
	if math.Abs(edge.X+1) > 1e-9 {
		t.Fatalf("outer tip should normalize to x=-1, got %f", edge.X)
	}
}

func TestStateRoundTripAcrossSizes(t *testing.T) {
	src := New(1200, 800)
	src.PlaceToken(at(src, 0, -5.9), blocker(token.TeamA))
	src.PlaceToken(at(src, -2, -5.9), blocker(token.TeamB))
	src.PlaceToken(at(src, 8, -2), token.Skater{Team: token.TeamB, Role: token.Jammer})
	src.PlaceToken(at(src, 0, -9.8), token.Official{Role: token.OutsidePackReferee})

	var buf bytes.Buffer
	if err := src.SaveJSON(&buf); err != nil {
		t.Fatal(err)
	}

	for _, size := range [][2]float64{{1200, 800}, {640, 480}, {1920, 1080}} {
		dst := New(size[0], size[1])
		if err := dst.LoadJSON(bytes.NewReader(buf.Bytes())); err != nil {
			t.Fatal(err)
		}
		got, want := dst.ExportState(), src.ExportState()
		if len(got.Skaters) != 3 || len(got.Officials) != 1 {
			t.Fatalf("%v: skaters=%d officials=%d", size, len(got.Skaters), len(got.Officials))
		}
		for i := range want.Skaters {
			g, w := got.Skaters[i], want.Skaters[i]
			if g.Team != w.Team || g.Role != w.Role {
				t.Fatalf("%v: skater %d is %s %s, want %s %s", size, i, g.Team, g.Role, w.Team, w.Role)
			}
			if math.Abs(g.RelativePosition.X-w.RelativePosition.X) > 1e-9 || math.Abs(g.RelativePosition.Y-w.RelativePosition.Y) > 1e-9 {
				t.Fatalf("%v: skater %d moved", size, i)
			}
		}
		if dst.CurrentPack().Outcome != src.CurrentPack().Outcome {
			t.Fatalf("%v: pack outcome %v, want %v", size, dst.CurrentPack().Outcome, src.CurrentPack().Outcome)
		}
	}
}

func TestStateJSONShape(t *testing.T) {
	b := New(1200, 800)
	b.PlaceToken(at(b, 0, -5.9), token.Skater{Team: token.TeamA, Role: token.Pivot})
	b.PlaceToken(at(b, 0, -9.8), token.Official{Role: token.JammerReferee})

	var buf bytes.Buffer
	if err := b.SaveJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var raw map[string][]map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	sk := raw["skaters"][0]
	if sk["team"] != "A" || sk["role"] != "pivot" {
		t.Fatalf("skater=%v", sk)
	}
	if _, ok := sk["relativePosition"].(map[string]any)["x"]; !ok {
		t.Fatalf("missing relativePosition.x in %v", sk)
	}
	if raw["officials"][0]["role"] != "jr" {
		t.Fatalf("official=%v", raw["officials"][0])
	}
}

func TestApplyStateRejectsInvalid(t *testing.T) {
	b := New(1200, 800)
	keep := b.PlaceToken(at(b, 0, -5.9), blocker(token.TeamA))

	bad := []State{
		{Skaters: []SkaterState{{Team: "C", Role: "blocker"}}},
		{Skaters: []SkaterState{{Team: "A", Role: "captain"}}},
		{Officials: []OfficialState{{Role: "nso"}}},
	}
	for i, st := range bad {
		if err := b.ApplyState(st); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
		if _, ok := b.Token(keep.ID); !ok || len(b.Tokens()) != 1 {
			t.Fatalf("case %d: board changed on a rejected state", i)
		}
	}
	if err := b.LoadJSON(strings.NewReader("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestApplyEmptyState(t *testing.T) {
	b := New(1200, 800)
	b.PlaceToken(at(b, 0, -5.9), blocker(token.TeamA))
	if err := b.ApplyState(State{}); err != nil {
		t.Fatal(err)
	}
	if len(b.Tokens()) != 0 {
		t.Fatalf("empty state should clear the board")
	}
	st := b.ExportState()
	if st.Skaters == nil || st.Officials == nil {
		t.Fatalf("exported lists should be empty, not nil")
	}
}
