package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ruihildt/roller-derby-board-sub000/internal/agent"
	"github.com/ruihildt/roller-derby-board-sub000/internal/board"
	"github.com/ruihildt/roller-derby-board-sub000/internal/config"
	"github.com/ruihildt/roller-derby-board-sub000/internal/termview"
)

const tickInterval = 50 * time.Millisecond

type Game struct {
	screen    tcell.Screen
	view      *termview.View
	board     *board.Board
	autopilot *agent.Autopilot
	rng       *rand.Rand
	running   bool
	message   string
}

func NewGame(s tcell.Screen, seed int64) (*Game, error) {
	view := termview.New(s)
	w, h := view.BoardSize()
	g := &Game{
		screen:    s,
		view:      view,
		board:     board.New(w, h),
		autopilot: agent.NewAutopilot(seed),
		rng:       rand.New(rand.NewSource(seed)),
	}
	if err := g.board.StartJam(g.rng); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) status() string {
	res := g.board.CurrentPack()
	s := fmt.Sprintf(" pack: %s", res.Outcome)
	if res.HasPack() {
		s += fmt.Sprintf(" (%d) zones %v engaged %d", len(res.Members), res.Zones, len(res.Engaged))
	}
	if g.running {
		s += fmt.Sprintf(" | tick %d", g.autopilot.Ticks)
	}
	s += " | space run, t step, n new jam, q quit"
	if g.message != "" {
		s += " | " + g.message
	}
	return s
}

func (g *Game) render() {
	g.view.Draw(g.board, g.status())
}

// Run processes events until the user quits.
func (g *Game) Run() {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	g.render()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.board.Resize(g.view.BoardSize())
				g.screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
					return
				}
				switch ev.Rune() {
				case 'q':
					return
				case ' ':
					g.running = !g.running
				case 't':
					g.autopilot.Step(g.board)
				case 'n':
					g.message = ""
					if err := g.board.StartJam(g.rng); err != nil {
						g.message = err.Error()
					}
				}
			}
			g.render()
		case <-ticker.C:
			if g.running {
				g.autopilot.Step(g.board)
				g.render()
			}
		}
	}
}

func main() {
	if err := config.InitConfig(); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(screen, cfg.Seed)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	game.Run()
	screen.Fini()
}
