// Package termview renders a board onto a terminal grid with tcell.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ruihildt/roller-derby-board-sub000/internal/board"
	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
	"github.com/ruihildt/roller-derby-board-sub000/internal/token"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

// CellAspect is how many board pixels one terminal row spans per column pixel.
// Terminal cells are roughly twice as tall as they are wide.
const CellAspect = 2

const (
	surfaceRune    = '·'
	engagementRune = '░'
	centerRune     = '+'
)

var (
	styleDefault  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleStatus   = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEngaged  = styleDefault.Foreground(tcell.ColorOlive)
	styleCenter   = styleDefault.Foreground(tcell.ColorDarkGray)
	styleOfficial = styleDefault.Foreground(tcell.ColorWhite).Bold(true)

	zoneStyles = map[track.Zone]tcell.Style{
		track.ZoneStraight1: styleDefault.Foreground(tcell.ColorGray),
		track.ZoneTurn1:     styleDefault.Foreground(tcell.ColorSilver),
		track.ZoneStraight2: styleDefault.Foreground(tcell.ColorGray),
		track.ZoneTurn2:     styleDefault.Foreground(tcell.ColorSilver),
	}

	teamStyles = map[token.Team]tcell.Style{
		token.TeamA: styleDefault.Foreground(tcell.ColorRed),
		token.TeamB: styleDefault.Foreground(tcell.ColorBlue),
	}
)

// View draws boards onto a tcell screen. The bottom row is the status line.
type View struct {
	screen tcell.Screen
}

func New(s tcell.Screen) *View {
	return &View{screen: s}
}

// BoardSize returns the board canvas size that fills the screen's field rows.
func (v *View) BoardSize() (float64, float64) {
	w, h := v.screen.Size()
	return float64(w), float64(fieldRows(h) * CellAspect)
}

func fieldRows(h int) int {
	if h <= 1 {
		return 0
	}
	return h - 1
}

// CellOf maps a board position to a screen cell.
func CellOf(p common.Vec2) (int, int) {
	return int(p.X), int(p.Y / CellAspect)
}

func cellCenter(x, y int) common.Vec2 {
	return common.Vec2{X: float64(x) + 0.5, Y: (float64(y) + 0.5) * CellAspect}
}

// Draw renders the track, the engagement zone, the centerline and every token,
// followed by the status line.
func (v *View) Draw(b *board.Board, status string) {
	v.screen.Clear()
	w, h := v.screen.Size()
	rows := fieldRows(h)
	g := b.Geometry()
	region := b.EngagementZoneRegion()

	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			p := cellCenter(x, y)
			if !g.OnSurface(p) {
				continue
			}
			if region != nil && region.Contains(p) {
				v.screen.SetContent(x, y, engagementRune, nil, styleEngaged)
				continue
			}
			v.screen.SetContent(x, y, surfaceRune, nil, zoneStyles[g.ZoneOf(p)])
		}
	}

	step := g.Points().Pixels(1)
	if step > 0 {
		for _, wp := range g.Centerline(step).Waypoints {
			x, y := CellOf(wp.Position)
			if region != nil && region.Contains(wp.Position) {
				continue
			}
			v.put(x, y, rows, centerRune, styleCenter)
		}
	}

	for _, t := range b.Tokens() {
		x, y := CellOf(t.Pos)
		v.put(x, y, rows, TokenRune(t), TokenStyle(t))
	}

	v.drawStatus(status, w, h)
	v.screen.Show()
}

func (v *View) put(x, y, rows int, r rune, style tcell.Style) {
	w, _ := v.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= rows {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *View) drawStatus(status string, w, h int) {
	if h < 1 {
		return
	}
	y := h - 1
	x := 0
	for _, r := range status {
		if x >= w {
			break
		}
		v.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
}

// TokenRune is the glyph for a token: J, P or B for skaters (lower case when
// out of bounds) and R for officials.
func TokenRune(t token.Token) rune {
	sk, ok := t.Skater()
	if !ok {
		return 'R'
	}
	r := 'B'
	switch sk.Role {
	case token.Jammer:
		r = 'J'
	case token.Pivot:
		r = 'P'
	}
	if !t.State.InBounds {
		r += 'a' - 'A'
	}
	return r
}

// TokenStyle colors a token by team; pack members are bold and the pack
// extremes are underlined.
func TokenStyle(t token.Token) tcell.Style {
	sk, ok := t.Skater()
	if !ok {
		return styleOfficial
	}
	style := teamStyles[sk.Team]
	if t.State.InPack {
		style = style.Bold(true)
	}
	if t.State.Rearmost || t.State.Foremost {
		style = style.Underline(true)
	}
	return style
}
