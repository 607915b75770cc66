package pack

import (
	"github.com/ruihildt/roller-derby-board-sub000/internal/token"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

// ZoneSequence orders the zones present into the shortest run that follows
// skating direction, so a pack straddling the lap seam through turn 2 reads
// e.g. [4 1 2] rather than [1 2 4]. Equal spans start at the lowest zone.
func ZoneSequence(present map[track.Zone]bool) []track.Zone {
	want := 0
	for _, z := range track.Zones {
		if present[z] {
			want++
		}
	}
	if want == 0 {
		return nil
	}

	var best []track.Zone
	for _, start := range track.Zones {
		if !present[start] {
			continue
		}
		var seq []track.Zone
		covered := 0
		for z := start; covered < want; z = z.Next() {
			seq = append(seq, z)
			if present[z] {
				covered++
			}
		}
		if best == nil || len(seq) < len(best) {
			best = seq
		}
	}
	return best
}

// Extremes returns the rearmost and foremost of members and the zones they
// span. Exact ties keep the token seen first. Off-track members are ignored.
func Extremes(members []*token.Token, g *track.Geometry) (rear, fore *token.Token, zones []track.Zone) {
	present := make(map[track.Zone]bool)
	zoneOf := make(map[int]track.Zone, len(members))
	for _, t := range members {
		z := g.ZoneOf(t.Pos)
		if z == track.ZoneNone {
			continue
		}
		present[z] = true
		zoneOf[t.ID] = z
	}

	zones = ZoneSequence(present)
	if len(zones) == 0 {
		return nil, nil, nil
	}
	first, last := zones[0], zones[len(zones)-1]

	var rearAdv, foreAdv float64
	for _, t := range members {
		z, ok := zoneOf[t.ID]
		if !ok {
			continue
		}
		adv := g.Advance(z, t.Pos)
		if z == first && (rear == nil || adv < rearAdv) {
			rear, rearAdv = t, adv
		}
		if z == last && (fore == nil || adv > foreAdv) {
			fore, foreAdv = t, adv
		}
	}
	return rear, fore, zones
}
