// Package board owns the token set and the track geometry and keeps every
// token's derived state consistent with its position.
//
// A Board is not safe for concurrent use. All mutation must happen on the
// goroutine that owns it (the game loop).
package board

import (
	"errors"
	"fmt"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
	"github.com/ruihildt/roller-derby-board-sub000/internal/pack"
	"github.com/ruihildt/roller-derby-board-sub000/internal/physics"
	"github.com/ruihildt/roller-derby-board-sub000/internal/token"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

// ErrUnknownToken is returned for operations on an ID the board does not hold.
var ErrUnknownToken = errors.New("unknown token")

type Board struct {
	width, height float64
	geom          *track.Geometry
	tokens        []*token.Token
	pack          pack.Result
	nextID        int
}

// New creates an empty board for a canvas of the given size.
func New(width, height float64) *Board {
	b := &Board{
		width:  width,
		height: height,
		geom:   track.New(track.NewPointSet(width, height)),
		nextID: 1,
	}
	b.pack = pack.Compute(nil, b.geom)
	return b
}

// Geometry returns the current track geometry.
func (b *Board) Geometry() *track.Geometry {
	return b.geom
}

// Size returns the canvas size.
func (b *Board) Size() (float64, float64) {
	return b.width, b.height
}

// Pixels converts meters to pixels at the current scale.
func (b *Board) Pixels(meters float64) float64 {
	return b.geom.Points().Pixels(meters)
}

// Resize rebuilds the geometry for a new canvas size and moves every token
// so that its position relative to the track is unchanged.
func (b *Board) Resize(width, height float64) {
	if width <= 0 || height <= 0 || (width == b.width && height == b.height) {
		return
	}
	old := b.geom.Points()
	next := track.New(track.NewPointSet(width, height))
	ps := next.Points()

	ratio := 0.0
	if old.Scale > 0 {
		ratio = ps.Scale / old.Scale
	}
	for _, t := range b.tokens {
		t.Pos = Denormalize(Normalize(t.Pos, old), ps)
		t.Radius *= ratio
	}

	b.width, b.height = width, height
	b.geom = next
	b.recompute()
}

// PlaceToken adds a token at pos with the default radius for its kind.
func (b *Board) PlaceToken(pos common.Vec2, kind token.Kind) *token.Token {
	t := token.New(b.nextID, pos, b.Pixels(token.RadiusMeters(kind)), kind)
	b.nextID++
	b.tokens = append(b.tokens, t)
	b.recompute()
	return t
}

// MoveToken moves a token, pushes overlapping tokens out of the way and
// recomputes all derived state.
func (b *Board) MoveToken(id int, pos common.Vec2) error {
	t := b.find(id)
	if t == nil {
		return fmt.Errorf("move %d: %w", id, ErrUnknownToken)
	}
	t.Pos = pos
	physics.Resolve(t, b.tokens, physics.ContactPad)
	b.recompute()
	return nil
}

// SetPositions moves several tokens at once without collision handling and
// recomputes once. Unknown IDs are ignored.
func (b *Board) SetPositions(positions map[int]common.Vec2) {
	for _, t := range b.tokens {
		if p, ok := positions[t.ID]; ok {
			t.Pos = p
		}
	}
	b.recompute()
}

// RemoveToken deletes a token from the board.
func (b *Board) RemoveToken(id int) error {
	for i, t := range b.tokens {
		if t.ID == id {
			b.tokens = append(b.tokens[:i], b.tokens[i+1:]...)
			b.recompute()
			return nil
		}
	}
	return fmt.Errorf("remove %d: %w", id, ErrUnknownToken)
}

// Reset removes every token.
func (b *Board) Reset() {
	b.tokens = nil
	b.nextID = 1
	b.recompute()
}

// Tokens returns a snapshot of all tokens.
func (b *Board) Tokens() []token.Token {
	out := make([]token.Token, len(b.tokens))
	for i, t := range b.tokens {
		out[i] = *t
	}
	return out
}

// Token returns a snapshot of one token.
func (b *Board) Token(id int) (token.Token, bool) {
	t := b.find(id)
	if t == nil {
		return token.Token{}, false
	}
	return *t, true
}

// TokenAt returns the topmost token whose body contains p.
func (b *Board) TokenAt(p common.Vec2) (token.Token, bool) {
	for i := len(b.tokens) - 1; i >= 0; i-- {
		t := b.tokens[i]
		if t.Pos.Dist(p) <= t.Radius {
			return *t, true
		}
	}
	return token.Token{}, false
}

// IsInBounds reports the in-bounds state of a token.
func (b *Board) IsInBounds(id int) (bool, error) {
	t := b.find(id)
	if t == nil {
		return false, fmt.Errorf("in bounds %d: %w", id, ErrUnknownToken)
	}
	return t.State.InBounds, nil
}

// ZoneOf reports the zone of a token.
func (b *Board) ZoneOf(id int) (track.Zone, error) {
	t := b.find(id)
	if t == nil {
		return track.ZoneNone, fmt.Errorf("zone %d: %w", id, ErrUnknownToken)
	}
	return t.State.Zone, nil
}

// BoundaryProjection reports the inner and outer boundary points of a token.
func (b *Board) BoundaryProjection(id int) (track.Projection, error) {
	t := b.find(id)
	if t == nil {
		return track.Projection{}, fmt.Errorf("projection %d: %w", id, ErrUnknownToken)
	}
	return track.Projection{Inner: t.State.InnerPoint, Outer: t.State.OuterPoint}, nil
}

// CurrentPack returns the latest pack computation.
func (b *Board) CurrentPack() pack.Result {
	return b.pack
}

// EngagementZoneRegion returns the engagement zone, or nil when there is none.
func (b *Board) EngagementZoneRegion() *track.Region {
	return b.pack.Region
}

func (b *Board) find(id int) *token.Token {
	for _, t := range b.tokens {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// recompute refreshes every token's geometric state, then the pack, then
// publishes the pack flags in one pass.
func (b *Board) recompute() {
	for _, t := range b.tokens {
		t.Refresh(b.geom)
	}
	b.pack = pack.Compute(b.tokens, b.geom)
	b.pack.Apply(b.tokens)
}
