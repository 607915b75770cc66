package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/ruihildt/roller-derby-board-sub000/internal/common"
	"github.com/ruihildt/roller-derby-board-sub000/internal/config"
	"github.com/ruihildt/roller-derby-board-sub000/internal/track"
)

// Zone colors
var zoneColors = map[track.Zone]color.RGBA{
	track.ZoneStraight1: {60, 60, 60, 255},
	track.ZoneTurn1:     {90, 70, 70, 255},
	track.ZoneStraight2: {60, 60, 60, 255},
	track.ZoneTurn2:     {70, 70, 90, 255},
}

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorInfield    = color.RGBA{0, 120, 0, 255}
	colorJammerLine = color.RGBA{255, 0, 0, 255}
	colorPivotLine  = color.RGBA{255, 255, 0, 255}
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	width := flag.Int("width", cfg.WindowWidth, "image width in pixels")
	height := flag.Int("height", cfg.WindowHeight, "image height in pixels")
	out := flag.String("out", cfg.TrackPNG, "output file")
	flag.Parse()

	geo := track.New(track.NewPointSet(float64(*width), float64(*height)))
	img := image.NewRGBA(image.Rect(0, 0, *width, *height))

	jammerX := int(geo.JammerLineX())
	pivotX := int(geo.PivotLineX())

	for y := 0; y < *height; y++ {
		for x := 0; x < *width; x++ {
			p := common.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			c := colorBackground
			switch {
			case geo.OnSurface(p):
				c = zoneColors[geo.ZoneOf(p)]
				// Start lines cross the first straight only.
				if geo.ZoneOf(p) == track.ZoneStraight1 {
					if x == jammerX {
						c = colorJammerLine
					} else if x == pivotX {
						c = colorPivotLine
					}
				}
			case geo.InsideInner(p):
				c = colorInfield
			}
			img.SetRGBA(x, y, c)
		}
	}

	if dir := filepath.Dir(*out); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d, %.2f px/m)", *out, *width, *height, geo.Points().Scale)
}
