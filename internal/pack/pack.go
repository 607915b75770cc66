package pack

import (
	"github.com/ruihildt/roller-derby-board-sub000/internal/token"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

// Rule distances, in meters.
const (
	PackDistance       = 3.05 // 10 ft
	EngagementDistance = 6.1  // 20 ft
)

// Outcome tells why a pack does or does not exist.
type Outcome uint8

const (
	// NoCandidates: no in-bounds blocker or pivot on track.
	NoCandidates Outcome = iota
	// NoValidGroup: no group holds skaters of both teams.
	NoValidGroup
	// Tie: two or more valid groups share the largest size.
	Tie
	// Found: a unique largest valid group exists.
	Found
)

func (o Outcome) String() string {
	switch o {
	case NoCandidates:
		return "no candidates"
	case NoValidGroup:
		return "no valid group"
	case Tie:
		return "tie"
	case Found:
		return "pack"
	}
	return "unknown"
}

// None marks an absent rearmost/foremost token.
const None = -1

// Result is the pack state for one token set. It is recomputed from scratch
// on every change and holds token IDs only.
type Result struct {
	Outcome Outcome

	Groups [][]int // every proximity group
	Valid  [][]int // groups with both teams present

	Members  []int
	Zones    []track.Zone // zones spanned by the pack, in skating order
	Rearmost int
	Foremost int

	// Region is nil when there is no pack or its extremes are off track.
	Region  *track.Region
	Engaged []int
}

// HasPack reports whether a pack exists.
func (r Result) HasPack() bool {
	return r.Outcome == Found
}

// Compute determines the pack and engagement zone for tokens. It never
// mutates tokens; use Apply to publish the flags.
func Compute(tokens []*token.Token, g *track.Geometry) Result {
	res := Result{Outcome: NoCandidates, Rearmost: None, Foremost: None}
	if g == nil {
		return res
	}

	var candidates []*token.Token
	for _, t := range tokens {
		sk, ok := t.Skater()
		if !ok || !sk.InPackPlay() {
			continue
		}
		if g.IsInBounds(t.Pos, t.Radius) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return res
	}

	groups := Group(candidates, g.Points().Pixels(PackDistance))
	res.Outcome = NoValidGroup

	var valid [][]*token.Token
	for _, grp := range groups {
		res.Groups = append(res.Groups, ids(grp))
		if mixed(grp) {
			valid = append(valid, grp)
			res.Valid = append(res.Valid, ids(grp))
		}
	}
	if len(valid) == 0 {
		return res
	}

	largest, count := 0, 0
	var pack []*token.Token
	for _, grp := range valid {
		switch {
		case len(grp) > largest:
			largest, count, pack = len(grp), 1, grp
		case len(grp) == largest:
			count++
		}
	}
	if count > 1 {
		res.Outcome = Tie
		return res
	}

	res.Outcome = Found
	res.Members = ids(pack)

	rear, fore, zones := Extremes(pack, g)
	res.Zones = zones
	if rear == nil || fore == nil {
		return res
	}
	res.Rearmost = rear.ID
	res.Foremost = fore.ID

	region, ok := g.EngagementRegion(rear.Pos, fore.Pos, g.Points().Pixels(EngagementDistance))
	if !ok {
		return res
	}
	res.Region = region
	for _, t := range tokens {
		if g.IsInBounds(t.Pos, t.Radius) && region.Contains(t.Pos) {
			res.Engaged = append(res.Engaged, t.ID)
		}
	}
	return res
}

// Apply writes the pack flags of r onto tokens in a single pass.
func (r Result) Apply(tokens []*token.Token) {
	members := set(r.Members)
	engaged := set(r.Engaged)
	for _, t := range tokens {
		t.State.InPack = members[t.ID]
		t.State.Rearmost = r.Rearmost != None && t.ID == r.Rearmost
		t.State.Foremost = r.Foremost != None && t.ID == r.Foremost
		t.State.InEngagementZone = engaged[t.ID]
	}
}

// Group clusters tokens by single linkage: a token joins a group when it is
// within threshold pixels of any token already in it.
func Group(tokens []*token.Token, threshold float64) [][]*token.Token {
	grouped := make([]bool, len(tokens))
	var groups [][]*token.Token

	for i := range tokens {
		if grouped[i] {
			continue
		}
		grouped[i] = true
		grp := []*token.Token{tokens[i]}
		for k := 0; k < len(grp); k++ {
			for j, other := range tokens {
				if grouped[j] {
					continue
				}
				if grp[k].Pos.Dist(other.Pos) <= threshold {
					grouped[j] = true
					grp = append(grp, other)
				}
			}
		}
		groups = append(groups, grp)
	}
	return groups
}

func mixed(grp []*token.Token) bool {
	var a, b bool
	for _, t := range grp {
		sk, ok := t.Skater()
		if !ok {
			continue
		}
		switch sk.Team {
		case token.TeamA:
			a = true
		case token.TeamB:
			b = true
		}
	}
	return a && b
}

func ids(grp []*token.Token) []int {
	out := make([]int, len(grp))
	for i, t := range grp {
		out[i] = t.ID
	}
	return out
}

func set(ids []int) map[int]bool {
	m := make(map[int]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}
