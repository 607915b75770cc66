package agent

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ruihildt/roller-derby-board-sub000/internal/board"
	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
	"github.com/ruihildt/roller-derby-board-sub000/internal/token"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

// Skating speeds, in meters per tick.
const (
	BlockerSpeed = 0.05
	JammerSpeed  = 0.09
	SpeedJitter  = 0.3 // fraction of the base speed added or removed per tick
)

// Autopilot skates every on-track skater around the track. It keeps each
// skater's lateral fraction between the inner and outer boundary.
type Autopilot struct {
	rng   *rand.Rand
	Ticks int
}

// NewAutopilot creates an autopilot with a seeded random source.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: rand.New(rand.NewSource(seed))}
}

// Step advances all skaters by one tick and recomputes the board once.
func (a *Autopilot) Step(b *board.Board) {
	g := b.Geometry()
	moves := make(map[int]common.Vec2)

	for _, t := range b.Tokens() {
		sk, ok := t.Skater()
		if !ok || t.State.Zone == track.ZoneNone {
			continue
		}
		speed := BlockerSpeed
		if sk.Role == token.Jammer {
			speed = JammerSpeed
		}
		speed *= 1 + SpeedJitter*(2*a.rng.Float64()-1)

		if p, ok := Glide(g, t.Pos, b.Pixels(speed)); ok {
			moves[t.ID] = p
		}
	}

	a.Ticks++
	b.SetPositions(moves)
}

// Glide moves pos distance pixels ahead along the track, keeping its lateral
// fraction between the inner and outer boundary.
func Glide(g *track.Geometry, pos common.Vec2, distance float64) (common.Vec2, bool) {
	here, ok := g.Locate(pos)
	if !ok {
		return pos, false
	}
	b := g.BoundaryAt(here.Zone, here.Along)
	lateral := 0.5
	if w := b.Width(); w > 0 {
		lateral = pos.Sub(b.Inner).Dot(b.Outer.Sub(b.Inner)) / (w * w)
		lateral = math.Max(0, math.Min(1, lateral))
	}

	ahead, ok := g.PointAhead(pos, distance)
	if !ok {
		return pos, false
	}
	nb := g.BoundaryAt(ahead.Zone, ahead.Along)
	return nb.Inner.Lerp(nb.Outer, lateral), true
}

func (a *Autopilot) DebugInfoStr() string {
	return fmt.Sprintf("Autopilot\nTicks: %d", a.Ticks)
}
