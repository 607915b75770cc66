package track

import "github.com/ruihildt/roller-derby-board-sub000/internal/common"

// AreaKind names a start area.
type AreaKind uint8

const (
	// PackStart lies between the pivot line and the jammer line on straight 1.
	PackStart AreaKind = iota
	// JammerStart lies behind the jammer line, in the upper half of turn 2.
	JammerStart
)

// Area is a region tokens are placed into at the start of a jam.
type Area struct {
	Kind AreaKind
	g    *Geometry
}

// StartArea returns the start area of the given kind.
func (g *Geometry) StartArea(kind AreaKind) Area {
	return Area{Kind: kind, g: g}
}

// JammerLineX returns the x of the jammer line.
func (g *Geometry) JammerLineX() float64 {
	return g.points.A.X
}

// PivotLineX returns the x of the pivot line, 30 ft ahead of the jammer line.
func (g *Geometry) PivotLineX() float64 {
	return g.points.A.X - g.points.Pixels(PivotLineOffset)
}

// Contains reports whether p is on the track surface inside the area.
func (a Area) Contains(p common.Vec2) bool {
	g := a.g
	if g == nil || !g.OnSurface(p) {
		return false
	}
	switch a.Kind {
	case PackStart:
		return p.Y < g.points.Center.Y && p.X >= g.PivotLineX() && p.X <= g.JammerLineX()
	case JammerStart:
		return p.Y < g.points.Center.Y && p.X > g.JammerLineX()
	}
	return false
}

// Fits reports whether a body of radius at pos lies entirely in the area,
// using the same five-point sampling as the in-bounds test.
func (a Area) Fits(pos common.Vec2, radius float64) bool {
	for _, s := range SamplePoints(pos, radius) {
		if !a.Contains(s) {
			return false
		}
	}
	return true
}

// Bounds returns the rectangle candidate positions are drawn from.
func (a Area) Bounds() (min, max common.Vec2) {
	g := a.g
	ps := g.points
	top := ps.Center.Y - ps.Pixels(OuterCenterShift+OuterRadius)
	switch a.Kind {
	case JammerStart:
		return common.Vec2{X: g.JammerLineX(), Y: top},
			common.Vec2{X: ps.G.X + ps.Pixels(OuterRadius), Y: ps.Center.Y}
	default:
		return common.Vec2{X: g.PivotLineX(), Y: top},
			common.Vec2{X: g.JammerLineX(), Y: ps.C.Y}
	}
}
