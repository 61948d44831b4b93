package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Renderer selection values for Config.Renderer.
const (
	RendererWindow   = "window"
	RendererTerminal = "terminal"
)

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	CyclesToDie    int           `json:"cycles_to_die"`
	FrameRate      time.Duration `json:"frame_rate"`
	Pattern        string        `json:"pattern"`
	Renderer       string        `json:"renderer"`
	CellSize       int           `json:"cell_size"`
	TargetFPS      int           `json:"target_fps"`
	MaxGenerations int           `json:"max_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          60,
		Height:         40,
		CyclesToDie:    25,
		FrameRate:      150 * time.Millisecond,
		Pattern:        "cluster",
		Renderer:       RendererWindow,
		CellSize:       16,
		TargetFPS:      60,
		MaxGenerations: 0, // run until quit
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the simulation cannot be built from
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] invalid dimensions %dx%d", c.Width, c.Height)
	}
	if c.CyclesToDie <= 0 {
		return errors.Errorf("[Validate] cycles_to_die must be positive, got %d", c.CyclesToDie)
	}
	if c.Renderer != RendererWindow && c.Renderer != RendererTerminal {
		return errors.Errorf("[Validate] unknown renderer %q, want %q or %q",
			c.Renderer, RendererWindow, RendererTerminal)
	}
	if c.Renderer == RendererWindow {
		if c.CellSize <= 0 {
			return errors.Errorf("[Validate] cell_size must be positive, got %d", c.CellSize)
		}
		if c.TargetFPS <= 0 {
			return errors.Errorf("[Validate] target_fps must be positive, got %d", c.TargetFPS)
		}
	}
	if c.Renderer == RendererTerminal && c.FrameRate <= 0 {
		return errors.Errorf("[Validate] frame_rate must be positive, got %v", c.FrameRate)
	}
	return nil
}
