package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ruihildt/roller-derby-board-sub000/internal/agent"
	"github.com/ruihildt/roller-derby-board-sub000/internal/board"
	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
	"github.com/ruihildt/roller-derby-board-sub000/internal/config"
	"github.com/ruihildt/roller-derby-board-sub000/internal/token"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

// Rendering settings
const (
	MeshStepMeters    = 1.0 // Spacing of the centerline ribs
	RegionStepMeters  = 0.5 // Sampling step of the engagement zone outline
	AutopilotTicks    = 1   // Autopilot steps per frame
	MarkerStrokeWidth = 2
)

// Track surface colors
var (
	ColorStraight    = color.RGBA{70, 70, 70, 255}
	ColorTurn        = color.RGBA{85, 85, 85, 255}
	ColorRefereeLane = color.RGBA{30, 30, 30, 255}
	ColorInfield     = color.RGBA{15, 15, 15, 255}
	ColorStartArea   = color.RGBA{90, 90, 110, 255}
)

// Visualization colors
var (
	ColorRib        = color.RGBA{50, 155, 50, 40}
	ColorEngagement = color.RGBA{255, 200, 0, 60}
	ColorTeamA      = color.RGBA{220, 50, 50, 255}
	ColorTeamB      = color.RGBA{50, 110, 230, 255}
	ColorOfficial   = color.RGBA{230, 230, 230, 255}
	ColorOutOfPlay  = color.RGBA{120, 120, 120, 255}
	ColorPackRing   = color.RGBA{255, 255, 0, 200}
	ColorExtreme    = color.RGBA{255, 255, 255, 255}
)

type Game struct {
	Board      *board.Board
	Autopilot  *agent.Autopilot
	TrackImage *ebiten.Image
	Mesh       *track.TrackMesh // centerline ribs, rebuilt on resize
	Config     config.Config
	Rand       *rand.Rand

	Running  bool // Autopilot on
	Dragging int  // ID of the dragged token, 0 when idle
	Message  string

	width, height int
}

func (g *Game) Update() error {
	g.handleKeys()
	g.handleMouse()

	if g.Running {
		for i := 0; i < AutopilotTicks; i++ {
			g.Autopilot.Step(g.Board)
		}
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Running = !g.Running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.Board.StartJam(g.Rand); err != nil {
			g.Message = err.Error()
		} else {
			g.Message = "new jam"
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Message = "saved " + g.Config.StateFile
		if err := saveState(g.Board, g.Config.StateFile); err != nil {
			g.Message = err.Error()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.Message = "loaded " + g.Config.StateFile
		if err := loadState(g.Board, g.Config.StateFile); err != nil {
			g.Message = err.Error()
		}
	}

	cursor := cursorPosition()
	place := map[ebiten.Key]token.Kind{
		ebiten.KeyA: token.Skater{Team: token.TeamA, Role: token.Blocker},
		ebiten.KeyB: token.Skater{Team: token.TeamB, Role: token.Blocker},
		ebiten.KeyO: token.Official{Role: token.OutsidePackReferee},
	}
	for key, kind := range place {
		if inpututil.IsKeyJustPressed(key) {
			g.Board.PlaceToken(cursor, kind)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		if t, ok := g.Board.TokenAt(cursor); ok {
			if err := g.Board.RemoveToken(t.ID); err != nil {
				g.Message = err.Error()
			}
		}
	}
}

func (g *Game) handleMouse() {
	cursor := cursorPosition()
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.Dragging = 0
		return
	}
	if g.Dragging == 0 {
		t, ok := g.Board.TokenAt(cursor)
		if !ok {
			return
		}
		g.Dragging = t.ID
	}
	if err := g.Board.MoveToken(g.Dragging, cursor); err != nil {
		g.Message = err.Error()
		g.Dragging = 0
	}
}

func cursorPosition() common.Vec2 {
	x, y := ebiten.CursorPosition()
	return common.Vec2{X: float64(x), Y: float64(y)}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.TrackImage == nil {
		g.TrackImage = RenderTrack(g.Board.Geometry(), g.width, g.height)
	}
	screen.DrawImage(g.TrackImage, nil)
	if g.Mesh == nil {
		g.Mesh = g.Board.Geometry().Centerline(g.Board.Geometry().Points().Pixels(MeshStepMeters))
	}

	geo := g.Board.Geometry()
	ps := geo.Points()

	toScreen := func(v common.Vec2) (float32, float32) {
		return float32(v.X), float32(v.Y)
	}

	// Engagement zone
	if region := g.Board.EngagementZoneRegion(); region != nil {
		var cs ebiten.ColorScale
		cs.ScaleWithColor(ColorEngagement)
		for _, poly := range region.Polygons(ps.Pixels(RegionStepMeters)) {
			if len(poly) < 3 {
				continue
			}
			var path vector.Path
			for i, p := range poly {
				x, y := toScreen(p)
				if i == 0 {
					path.MoveTo(x, y)
				} else {
					path.LineTo(x, y)
				}
			}
			path.Close()
			vector.FillPath(screen, &path, nil, &vector.DrawPathOptions{
				AntiAlias:  true,
				ColorScale: cs,
			})
		}
	}

	// Centerline ribs
	for _, wp := range g.Mesh.Waypoints {
		half := wp.Normal.Scale(wp.Width / 2)
		p1x, p1y := toScreen(wp.Position.Sub(half))
		p2x, p2y := toScreen(wp.Position.Add(half))
		vector.StrokeLine(screen, p1x, p1y, p2x, p2y, 1, ColorRib, true)
	}

	// Tokens
	for _, t := range g.Board.Tokens() {
		x, y := toScreen(t.Pos)
		r := float32(t.Radius)
		vector.FillCircle(screen, x, y, r, tokenColor(t), true)
		if t.State.InPack {
			vector.StrokeCircle(screen, x, y, r+MarkerStrokeWidth, MarkerStrokeWidth, ColorPackRing, true)
		}
		if t.State.Rearmost || t.State.Foremost {
			vector.StrokeCircle(screen, x, y, r+2*MarkerStrokeWidth, 1, ColorExtreme, true)
		}
	}

	// HUD
	vector.FillRect(screen, 0, 0, 220, 210, color.RGBA{0, 0, 0, 180}, true)
	ebitenutil.DebugPrint(screen, g.hud())
}

func (g *Game) hud() string {
	res := g.Board.CurrentPack()

	msg := "BOARD\n"
	msg += "----------------\n"
	msg += fmt.Sprintf("Tokens:  %d\n", len(g.Board.Tokens()))
	msg += fmt.Sprintf("Pack:    %s\n", res.Outcome)
	if res.HasPack() {
		msg += fmt.Sprintf("Members: %d\n", len(res.Members))
		msg += fmt.Sprintf("Zones:   %v\n", res.Zones)
		msg += fmt.Sprintf("Engaged: %d\n", len(res.Engaged))
	}
	if g.Mesh != nil {
		cursor := cursorPosition()
		ps := g.Board.Geometry().Points()
		s, d := g.Mesh.WorldToFrenet(cursor)
		msg += fmt.Sprintf("Cursor:  s=%.1f d=%.1f m\n", ps.Meters(s), ps.Meters(d))
	}
	if g.Running {
		msg += g.Autopilot.DebugInfoStr() + "\n"
	}
	if g.Message != "" {
		msg += "> " + g.Message + "\n"
	}
	msg += "\nControls:\nSpace = Autopilot  N = New jam\nS/L = Save/Load\nA/B/O = Place at cursor\nDel = Remove"
	return msg
}

func tokenColor(t token.Token) color.Color {
	sk, ok := t.Skater()
	switch {
	case !ok:
		return ColorOfficial
	case !t.State.InBounds:
		return ColorOutOfPlay
	case sk.Team == token.TeamA:
		return ColorTeamA
	default:
		return ColorTeamB
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.Board.Resize(float64(outsideWidth), float64(outsideHeight))
		g.TrackImage = nil
		g.Mesh = nil
	}
	return outsideWidth, outsideHeight
}

// RenderTrack paints the track surface, the referee lane and the start areas
// into an image of the given size.
func RenderTrack(geo *track.Geometry, width, height int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	ps := geo.Points()
	lane := ps.Pixels(track.RefereeLane)
	pack := geo.StartArea(track.PackStart)

	pixels := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := common.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			idx := (y*width + x) * 4

			var c color.RGBA
			switch {
			case pack.Contains(p):
				c = ColorStartArea
			case geo.OnSurface(p):
				c = ColorStraight
				if geo.ZoneOf(p).IsTurn() {
					c = ColorTurn
				}
			case geo.InsideInner(p):
				c = ColorInfield
			case inRefereeLane(geo, p, lane):
				c = ColorRefereeLane
			}

			pixels[idx] = c.R
			pixels[idx+1] = c.G
			pixels[idx+2] = c.B
			pixels[idx+3] = 255
		}
	}

	img.WritePixels(pixels)
	return img
}

func inRefereeLane(geo *track.Geometry, p common.Vec2, lane float64) bool {
	pr := geo.Project(p)
	return p.Dist(pr.Outer) <= lane
}

func saveState(b *board.Board, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.SaveJSON(f)
}

func loadState(b *board.Board, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.LoadJSON(f)
}

func main() {
	if err := config.InitConfig(); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	b := board.New(float64(cfg.WindowWidth), float64(cfg.WindowHeight))
	rng := rand.New(rand.NewSource(cfg.Seed))

	if err := loadState(b, cfg.StateFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("could not load %s: %v", cfg.StateFile, err)
		}
		if err := b.StartJam(rng); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Roller Derby Board")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := &Game{
		Board:     b,
		Autopilot: agent.NewAutopilot(cfg.Seed),
		Config:    cfg,
		Rand:      rng,
		width:     cfg.WindowWidth,
		height:    cfg.WindowHeight,
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
