// Package simulation provides configuration for the chain simulation.
// Settings are loaded from JSON or TOML files on top of the defaults, so a
// file only needs to name the values it changes.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"chosenoffset.com/serpent/internal/chain"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid simulation config")

// MaxTPS is the fastest tick rate the viewers accept.
const MaxTPS = 1000

// Config holds all settings for a simulation run
type Config struct {
	// Chain layout
	Chain ChainConfig `json:"chain" toml:"chain"`

	// Head kinematics
	Motion MotionConfig `json:"motion" toml:"motion"`

	// World bounds
	World WorldConfig `json:"world" toml:"world"`

	// Interactive viewers
	Viewer ViewerConfig `json:"viewer" toml:"viewer"`

	// Headless recording
	Trace TraceConfig `json:"trace" toml:"trace"`
}

// ChainConfig defines where the chain starts and how it is built
type ChainConfig struct {
	StartX         float64   `json:"start_x" toml:"start_x"`                 // Initial head X (pixels)
	StartY         float64   `json:"start_y" toml:"start_y"`                 // Initial head Y (pixels)
	NodeDistancing float64   `json:"node_distancing" toml:"node_distancing"` // Leash length between segments
	NodeRadials    []float64 `json:"node_radials" toml:"node_radials"`       // Body half-width per segment
}

// MotionConfig defines the head's fixed kinematics
type MotionConfig struct {
	Heading    float64 `json:"heading" toml:"heading"`         // Initial heading (radians)
	Speed      float64 `json:"speed" toml:"speed"`             // Distance per tick
	TurnRate   float64 `json:"turn_rate" toml:"turn_rate"`     // Heading change per tick (radians)
	HeadRadius float64 `json:"head_radius" toml:"head_radius"` // Head bounding circle radius
}

// WorldConfig defines the world bounds
type WorldConfig struct {
	MaxX int `json:"max_x" toml:"max_x"`
	MaxY int `json:"max_y" toml:"max_y"`
}

// ViewerConfig defines how interactive drivers present the chain
type ViewerConfig struct {
	Title     string `json:"title" toml:"title"`           // Window title
	TPS       int    `json:"tps" toml:"tps"`               // Simulation ticks per second
	ShowHUD   bool   `json:"show_hud" toml:"show_hud"`     // Draw the stats panel
	ShowSides bool   `json:"show_sides" toml:"show_sides"` // Draw left/right side markers
	FillBody  bool   `json:"fill_body" toml:"fill_body"`   // Fill the silhouette polygon

	HUD HUDConfig `json:"hud" toml:"hud"`
}

// HUDConfig defines the stats panel of the window viewer
type HUDConfig struct {
	ShowPosition bool    `json:"show_position" toml:"show_position"` // Head position line
	ShowHeading  bool    `json:"show_heading" toml:"show_heading"`   // Heading and speed lines
	ShowTension  bool    `json:"show_tension" toml:"show_tension"`   // Leash tension bar
	Position     string  `json:"position" toml:"position"`           // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity      float64 `json:"opacity" toml:"opacity"`             // Panel background opacity (0-1)
}

// TraceConfig defines a headless recording run
type TraceConfig struct {
	Steps  int    `json:"steps" toml:"steps"`   // Number of ticks to record
	Output string `json:"output" toml:"output"` // CSV path, empty for stdout
}

// DefaultConfig returns the settings of the reference chain
func DefaultConfig() *Config {
	m := chain.DefaultMotion()
	return &Config{
		Chain: ChainConfig{
			StartX:         200,
			StartY:         200,
			NodeDistancing: 32,
			NodeRadials:    []float64{64, 64, 68, 68, 66, 64, 62, 60, 60, 56},
		},
		Motion: MotionConfig{
			Heading:    m.Heading,
			Speed:      m.Speed,
			TurnRate:   m.TurnRate,
			HeadRadius: m.HeadRadius,
		},
		World: WorldConfig{
			MaxX: 1000,
			MaxY: 1000,
		},
		Viewer: ViewerConfig{
			Title:     "Serpent",
			TPS:       15,
			ShowHUD:   true,
			ShowSides: true,
			FillBody:  false,
			HUD: HUDConfig{
				ShowPosition: true,
				ShowHeading:  true,
				ShowTension:  true,
				Position:     "top-left",
				Opacity:      0.7,
			},
		},
		Trace: TraceConfig{
			Steps:  600,
			Output: "",
		},
	}
}

// LoadConfig loads simulation config from a JSON or TOML file.
// The format is picked from the file extension; anything other than
// .toml is read as JSON.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("failed to parse simulation config %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse simulation config %s: %w", path, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Validate checks every setting is usable
func (c *Config) Validate() error {
	if n := len(c.Chain.NodeRadials); n != chain.SegmentCount {
		return fmt.Errorf("%w: chain.node_radials has %d entries, want %d", ErrInvalidConfig, n, chain.SegmentCount)
	}
	if !(c.Chain.NodeDistancing > 0) || math.IsInf(c.Chain.NodeDistancing, 0) {
		return fmt.Errorf("%w: chain.node_distancing must be positive", ErrInvalidConfig)
	}
	for i, r := range c.Chain.NodeRadials {
		if !(r >= 0) || math.IsInf(r, 0) {
			return fmt.Errorf("%w: chain.node_radials[%d] must be non-negative", ErrInvalidConfig, i)
		}
	}
	if !finite(c.Chain.StartX) || !finite(c.Chain.StartY) {
		return fmt.Errorf("%w: chain.start_x and chain.start_y must be finite", ErrInvalidConfig)
	}
	if !finite(c.Motion.Heading) || !finite(c.Motion.Speed) || !finite(c.Motion.TurnRate) {
		return fmt.Errorf("%w: motion.heading, motion.speed and motion.turn_rate must be finite", ErrInvalidConfig)
	}
	if !(c.Motion.HeadRadius >= 0) || math.IsInf(c.Motion.HeadRadius, 0) {
		return fmt.Errorf("%w: motion.head_radius must be non-negative", ErrInvalidConfig)
	}
	if c.World.MaxX <= 0 || c.World.MaxY <= 0 {
		return fmt.Errorf("%w: world bounds must be positive", ErrInvalidConfig)
	}
	if c.Viewer.TPS <= 0 || c.Viewer.TPS > MaxTPS {
		return fmt.Errorf("%w: viewer.tps must be between 1 and %d", ErrInvalidConfig, MaxTPS)
	}
	switch c.Viewer.HUD.Position {
	case "top-left", "top-right", "bottom-left", "bottom-right":
	default:
		return fmt.Errorf("%w: viewer.hud.position %q is not a screen corner", ErrInvalidConfig, c.Viewer.HUD.Position)
	}
	if !(c.Viewer.HUD.Opacity >= 0 && c.Viewer.HUD.Opacity <= 1) {
		return fmt.Errorf("%w: viewer.hud.opacity must be between 0 and 1", ErrInvalidConfig)
	}
	if c.Trace.Steps < 0 {
		return fmt.Errorf("%w: trace.steps must be non-negative", ErrInvalidConfig)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ChainMotion converts the motion section into chain kinematics
func (c *Config) ChainMotion() chain.Motion {
	return chain.Motion{
		Heading:    c.Motion.Heading,
		Speed:      c.Motion.Speed,
		TurnRate:   c.Motion.TurnRate,
		HeadRadius: c.Motion.HeadRadius,
	}
}

// NewChain builds the chain described by the config
func (c *Config) NewChain() (*chain.Chain, error) {
	ch, err := chain.CreateWithMotion(
		c.Chain.StartX,
		c.Chain.StartY,
		c.Chain.NodeDistancing,
		c.Chain.NodeRadials,
		c.World.MaxX,
		c.World.MaxY,
		c.ChainMotion(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chain: %w", err)
	}
	return ch, nil
}
