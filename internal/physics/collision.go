package physics

import (
	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
	"github.com/ruihildt/roller-derby-board-sub000/internal/token"
)

// ContactPad is the gap, in pixels, left between two tokens after separation.
const ContactPad = 0.5

// touchTolerance absorbs rounding so that separated tokens stay separated.
const touchTolerance = 1e-9

// Overlaps reports whether two tokens are closer than their radii plus pad.
func Overlaps(a, b *token.Token, pad float64) bool {
	return a.Pos.Dist(b.Pos) < a.Radius+b.Radius+pad-touchTolerance
}

// Resolve pushes every token overlapping moved directly away from it until
// the two just touch, then re-checks each displaced token against all others.
// A token pushed back onto moved is pushed off it again, so no token is left
// overlapping moved. It returns the tokens whose position changed. moved
// itself never moves.
//
// The cascade depth is bounded by the number of tokens.
func Resolve(moved *token.Token, all []*token.Token, pad float64) []*token.Token {
	displaced := make(map[int]*token.Token)
	resolve(moved, moved, all, pad, len(all), displaced)

	out := make([]*token.Token, 0, len(displaced))
	for _, t := range all {
		if t == moved {
			continue
		}
		if _, ok := displaced[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out
}

func resolve(anchor, first *token.Token, all []*token.Token, pad float64, depth int, displaced map[int]*token.Token) {
	if depth <= 0 {
		return
	}
	for _, second := range all {
		if second == first || second == anchor || !Overlaps(first, second, pad) {
			continue
		}
		separate(first, second, pad)
		if first != anchor && Overlaps(anchor, second, pad) {
			separate(anchor, second, pad)
		}
		displaced[second.ID] = second
		resolve(anchor, second, all, pad, depth-1, displaced)
	}
}

// separate moves second along the first->second vector to touch first.
// Coincident centers are split along +x.
func separate(first, second *token.Token, pad float64) {
	dir := second.Pos.Sub(first.Pos).Normalize()
	if dir == (common.Vec2{}) {
		dir = common.Vec2{X: 1}
	}
	second.Pos = first.Pos.Add(dir.Scale(first.Radius + second.Radius + pad))
}
