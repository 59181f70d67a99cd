package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RandomPattern is the placement name for a seeded random field
const RandomPattern = "random"

// Placement stamps one pattern onto the board before the first generation
type Placement struct {
	// Pattern is a catalog name ("blinker", "glider") or "random".
	Pattern string `json:"pattern" yaml:"pattern"`
	Row     int    `json:"row" yaml:"row"`
	Column  int    `json:"column" yaml:"column"`

	// Height, Width and Seed size and seed a random field; ignored otherwise.
	Height int   `json:"height,omitempty" yaml:"height,omitempty"`
	Width  int   `json:"width,omitempty" yaml:"width,omitempty"`
	Seed   int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Config holds the configuration for one simulation
type Config struct {
	// Name labels the simulation in logs and batch summaries.
	Name string `json:"name" yaml:"name"`

	Rows        int `json:"rows" yaml:"rows"`
	Columns     int `json:"columns" yaml:"columns"`
	Generations int `json:"generations" yaml:"generations"`

	// FrameRate is the pause between rendered generations.
	FrameRate time.Duration `json:"frame_rate" yaml:"frame_rate"`

	// Render is "ascii" or "blocks".
	Render      string `json:"render" yaml:"render"`
	ClearScreen bool   `json:"clear_screen" yaml:"clear_screen"`

	// StopWhenStable ends the run early once the board dies out or repeats
	// itself with period 1 or 2.
	StopWhenStable bool `json:"stop_when_stable" yaml:"stop_when_stable"`

	// LogLevel is "info", "debug" or "trace".
	LogLevel string `json:"log_level" yaml:"log_level"`

	Placements []Placement `json:"placements" yaml:"placements"`
}

// DefaultConfig returns a 9x9 board with one glider, run for 5 generations
func DefaultConfig() Config {
	return Config{
		Name:        "default",
		Rows:        9,
		Columns:     9,
		Generations: 5,
		Render:      "ascii",
		LogLevel:    "info",
		Placements: []Placement{
			{Pattern: "glider", Row: 1, Column: 2},
		},
	}
}

// LoadConfig loads configuration from a JSON or YAML file, on top of the defaults.
// Placements in the file replace the default placements.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	config.Name = ""
	config.Placements = nil
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if config.Name == "" {
		config.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	return config, nil
}

// Validate checks the configuration before a board is built from it
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return errors.Errorf("[Validate] board must be at least 1x1, got %dx%d", c.Rows, c.Columns)
	}
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame rate must not be negative, got %s", c.FrameRate)
	}
	switch strings.ToLower(c.Render) {
	case "ascii", "blocks":
	default:
		return errors.Errorf("[Validate] unknown render mode: %q", c.Render)
	}
	for i, p := range c.Placements {
		if p.Pattern == "" {
			return errors.Errorf("[Validate] placement %d has no pattern", i)
		}
		if p.Pattern == RandomPattern && (p.Height <= 0 || p.Width <= 0) {
			return errors.Errorf("[Validate] placement %d: random field needs a positive size, got %dx%d",
				i, p.Height, p.Width)
		}
	}
	return nil
}
