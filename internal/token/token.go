package token

import (
	"fmt"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

// Body sizes, in meters.
const (
	SkaterRadius   = 0.35
	OfficialRadius = 0.3
)

// Team identifies one of the two skating teams.
type Team uint8

const (
	TeamA Team = iota
	TeamB
)

func (t Team) String() string {
	switch t {
	case TeamA:
		return "A"
	case TeamB:
		return "B"
	}
	return fmt.Sprintf("Team(%d)", uint8(t))
}

// Role is a skater's position in the jam.
type Role uint8

const (
	Blocker Role = iota
	Pivot
	Jammer
)

func (r Role) String() string {
	switch r {
	case Blocker:
		return "blocker"
	case Pivot:
		return "pivot"
	case Jammer:
		return "jammer"
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// OfficialRole is a referee position.
type OfficialRole uint8

const (
	InsidePackReferee OfficialRole = iota
	OutsidePackReferee
	JammerReferee
)

func (r OfficialRole) String() string {
	switch r {
	case InsidePackReferee:
		return "ipr"
	case OutsidePackReferee:
		return "opr"
	case JammerReferee:
		return "jr"
	}
	return fmt.Sprintf("OfficialRole(%d)", uint8(r))
}

// Kind is either a Skater or an Official.
type Kind interface {
	isKind()
}

// Skater is a team token.
type Skater struct {
	Team Team
	Role Role
}

// Official is a referee token. Officials never count towards the pack.
type Official struct {
	Role OfficialRole
}

func (Skater) isKind()   {}
func (Official) isKind() {}

// InPackPlay reports whether the skater takes part in pack definition.
func (s Skater) InPackPlay() bool {
	return s.Role == Blocker || s.Role == Pivot
}

// State is recomputed on every move; it is never set by callers.
type State struct {
	Zone       track.Zone
	InBounds   bool
	InnerPoint common.Vec2
	OuterPoint common.Vec2

	InPack           bool
	Rearmost         bool
	Foremost         bool
	InEngagementZone bool
}

// Token is a positioned body on the board.
type Token struct {
	ID     int
	Pos    common.Vec2
	Radius float64
	Kind   Kind
	State  State
}

// New creates a token. radius is in pixels.
func New(id int, pos common.Vec2, radius float64, kind Kind) *Token {
	return &Token{ID: id, Pos: pos, Radius: radius, Kind: kind}
}

// Skater returns the skater variant, if the token is one.
func (t *Token) Skater() (Skater, bool) {
	s, ok := t.Kind.(Skater)
	return s, ok
}

// RadiusMeters returns the default body radius for a kind, in meters.
func RadiusMeters(k Kind) float64 {
	if _, ok := k.(Official); ok {
		return OfficialRadius
	}
	return SkaterRadius
}

// Refresh recomputes the geometric part of the derived state in order:
// in-bounds, zone, boundary projection. Pack flags are left alone.
func (t *Token) Refresh(g *track.Geometry) {
	t.State.InBounds = g.IsInBounds(t.Pos, t.Radius)
	t.State.Zone = g.ZoneOf(t.Pos)
	pr := g.Project(t.Pos)
	t.State.InnerPoint = pr.Inner
	t.State.OuterPoint = pr.Outer
}

func (t *Token) String() string {
	switch k := t.Kind.(type) {
	case Skater:
		return fmt.Sprintf("#%d %s %s", t.ID, k.Team, k.Role)
	case Official:
		return fmt.Sprintf("#%d %s", t.ID, k.Role)
	}
	return fmt.Sprintf("#%d", t.ID)
}
