package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvWindowWidth  = "DERBY_WINDOW_WIDTH"
	EnvWindowHeight = "DERBY_WINDOW_HEIGHT"
	EnvStateFile    = "DERBY_STATE_FILE"
	EnvSeed         = "DERBY_SEED"
	EnvTrackPNG     = "DERBY_TRACK_PNG"
)

// Config holds the runtime settings shared by the commands.
type Config struct {
	WindowWidth  int
	WindowHeight int
	StateFile    string // board state loaded at start and saved on request
	Seed         int64
	TrackPNG     string // output of gen-track
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		WindowWidth:  1200,
		WindowHeight: 800,
		StateFile:    "board.json",
		Seed:         time.Now().UnixNano(),
		TrackPNG:     "assets/track.png",
	}
}

// InitConfig loads variables from the given .env files (".env" if none).
// A missing file is not an error; every variable has a default.
func InitConfig(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
		log.Printf("loaded environment from %s", f)
	}
	return nil
}

// Load reads the configuration from the environment on top of Default.
func Load() (Config, error) {
	cfg := Default()

	var err error
	if cfg.WindowWidth, err = intVar(EnvWindowWidth, cfg.WindowWidth); err != nil {
		return cfg, err
	}
	if cfg.WindowHeight, err = intVar(EnvWindowHeight, cfg.WindowHeight); err != nil {
		return cfg, err
	}
	if v, err := GetEnvVariable(EnvSeed); err == nil {
		seed, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, perr)
		}
		cfg.Seed = seed
	}
	if v, err := GetEnvVariable(EnvStateFile); err == nil {
		cfg.StateFile = v
	}
	if v, err := GetEnvVariable(EnvTrackPNG); err == nil {
		cfg.TrackPNG = v
	}

	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return cfg, fmt.Errorf("window size must be positive, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	return cfg, nil
}

// GetEnvVariable returns the value of v, or an error if it is unset or empty.
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

func intVar(name string, def int) (int, error) {
	v, err := GetEnvVariable(name)
	if err != nil {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
