package board

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
	"github.com/ruihildt/roller-derby-board-sub000/internal/token"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

// MaxPlacementAttempts bounds the random search for a free start position.
const MaxPlacementAttempts = 1000

// ErrPlacementExhausted means no valid position was found within
// MaxPlacementAttempts. The caller decides what to do; the board never falls
// back to an overlapping or out-of-area position.
var ErrPlacementExhausted = errors.New("could not place token")

// Official stations, in meters from the track center.
var crewStations = map[token.OfficialRole][]common.Vec2{
	token.JammerReferee:      {{X: 4.5, Y: -1.5}, {X: 3.5, Y: -1.5}},
	token.InsidePackReferee:  {{X: -1.0, Y: -2.0}, {X: 1.0, Y: -2.0}},
	token.OutsidePackReferee: {{X: -3.0, Y: -9.8}, {X: 0, Y: -9.8}, {X: 3.0, Y: -9.8}},
}

// PlaceRandom places a token of kind at a random position fully inside area
// and at least one diameter away from every other token.
func (b *Board) PlaceRandom(kind token.Kind, area track.Area, rng *rand.Rand) (*token.Token, error) {
	radius := b.Pixels(token.RadiusMeters(kind))
	min, max := area.Bounds()

	for i := 0; i < MaxPlacementAttempts; i++ {
		p := common.Vec2{
			X: min.X + rng.Float64()*(max.X-min.X),
			Y: min.Y + rng.Float64()*(max.Y-min.Y),
		}
		if !area.Fits(p, radius) || !b.clearOf(p, 2*radius) {
			continue
		}
		return b.PlaceToken(p, kind), nil
	}
	return nil, fmt.Errorf("%w: %v after %d attempts", ErrPlacementExhausted, kind, MaxPlacementAttempts)
}

func (b *Board) clearOf(p common.Vec2, distance float64) bool {
	for _, t := range b.tokens {
		if t.Pos.Dist(p) < distance {
			return false
		}
	}
	return true
}

// StartJam clears the board and lines up both teams and the officials:
// blockers and pivots in the pack start area, jammers behind the jammer line.
func (b *Board) StartJam(rng *rand.Rand) error {
	b.Reset()
	g := b.geom

	for _, kind := range token.Lineup() {
		area := g.StartArea(track.PackStart)
		if sk, ok := kind.(token.Skater); ok && sk.Role == token.Jammer {
			area = g.StartArea(track.JammerStart)
		}
		if _, err := b.PlaceRandom(kind, area, rng); err != nil {
			return fmt.Errorf("start jam: %w", err)
		}
	}

	ps := g.Points()
	used := make(map[token.OfficialRole]int)
	for _, kind := range token.Crew() {
		off := kind.(token.Official)
		stations := crewStations[off.Role]
		at := stations[used[off.Role]%len(stations)]
		used[off.Role]++
		b.PlaceToken(common.Vec2{X: ps.Center.X + ps.Pixels(at.X), Y: ps.Center.Y + ps.Pixels(at.Y)}, kind)
	}
	return nil
}
