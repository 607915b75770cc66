package board

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
	"github.com/ruihildt/roller-derby-board-sub000/internal/token"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

// Position is a normalized position: the offset from the track center divided
// by the track's outer half-length, so the track spans roughly [-1, 1] in x.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SkaterState struct {
	RelativePosition Position `json:"relativePosition"`
	Team             string   `json:"team"`
	Role             string   `json:"role"`
}

type OfficialState struct {
	RelativePosition Position `json:"relativePosition"`
	Role             string   `json:"role"`
}

// State is the persisted shape of a board. It is independent of canvas size.
type State struct {
	Skaters   []SkaterState   `json:"skaters"`
	Officials []OfficialState `json:"officials"`
}

// Normalize converts a canvas position into a normalized position.
func Normalize(p common.Vec2, ps track.PointSet) Position {
	unit := ps.Pixels(track.NormalizeMeters)
	if unit == 0 {
		return Position{}
	}
	return Position{X: (p.X - ps.Center.X) / unit, Y: (p.Y - ps.Center.Y) / unit}
}

// Denormalize converts a normalized position into canvas coordinates.
func Denormalize(rel Position, ps track.PointSet) common.Vec2 {
	unit := ps.Pixels(track.NormalizeMeters)
	return common.Vec2{X: ps.Center.X + rel.X*unit, Y: ps.Center.Y + rel.Y*unit}
}

// ExportState snapshots the board in normalized form.
func (b *Board) ExportState() State {
	ps := b.geom.Points()
	st := State{
		Skaters:   []SkaterState{},
		Officials: []OfficialState{},
	}
	for _, t := range b.tokens {
		rel := Normalize(t.Pos, ps)
		switch k := t.Kind.(type) {
		case token.Skater:
			st.Skaters = append(st.Skaters, SkaterState{RelativePosition: rel, Team: k.Team.String(), Role: k.Role.String()})
		case token.Official:
			st.Officials = append(st.Officials, OfficialState{RelativePosition: rel, Role: k.Role.String()})
		}
	}
	return st
}

// ApplyState replaces every token with the ones described by st. Nothing is
// changed if st holds an invalid team or role.
func (b *Board) ApplyState(st State) error {
	ps := b.geom.Points()
	var tokens []*token.Token
	id := 1

	add := func(rel Position, kind token.Kind) {
		pos := Denormalize(rel, ps)
		tokens = append(tokens, token.New(id, pos, ps.Pixels(token.RadiusMeters(kind)), kind))
		id++
	}

	for i, s := range st.Skaters {
		team, err := token.ParseTeam(s.Team)
		if err != nil {
			return fmt.Errorf("skater %d: %w", i, err)
		}
		role, err := token.ParseRole(s.Role)
		if err != nil {
			return fmt.Errorf("skater %d: %w", i, err)
		}
		add(s.RelativePosition, token.Skater{Team: team, Role: role})
	}
	for i, o := range st.Officials {
		role, err := token.ParseOfficialRole(o.Role)
		if err != nil {
			return fmt.Errorf("official %d: %w", i, err)
		}
		add(o.RelativePosition, token.Official{Role: role})
	}

	b.tokens = tokens
	b.nextID = id
	b.recompute()
	return nil
}

// SaveJSON writes the exported state as JSON.
func (b *Board) SaveJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b.ExportState()); err != nil {
		return fmt.Errorf("encode board state: %w", err)
	}
	return nil
}

// LoadJSON reads a JSON state and applies it.
func (b *Board) LoadJSON(r io.Reader) error {
	var st State
	if err := json.NewDecoder(r).Decode(&st); err != nil {
		return fmt.Errorf("decode board state: %w", err)
	}
	return b.ApplyState(st)
}
