// Package simulation provides the scene configuration for the visibility demo.
// Scenes are loaded from data files so each one can define its own walls and
// field of view.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"chosenoffset.com/sightline/internal/core/fov"
)

var (
	ErrInvalidFOVAngle  = errors.New("fov angle must be in (0, 360)")
	ErrInvalidFOVLength = errors.New("fov length must be positive")
	ErrInvalidRays      = errors.New("ray count must be positive")
	ErrRayStepTooSmall  = errors.New("ray count leaves less than one degree between rays")
	ErrInvalidScreen    = errors.New("screen size must be positive")
)

// Config holds everything needed to build a scene
type Config struct {
	Screen   ScreenConfig   `json:"screen"`
	FOV      FOVConfig      `json:"fov"`
	Observer ObserverConfig `json:"observer"`
	Walls    []WallConfig   `json:"walls"`
}

// ScreenConfig is the logical screen size walls are placed in
type ScreenConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FOVConfig defines the cone of vision
type FOVConfig struct {
	Angle         int      `json:"angle"`           // Full cone angle in degrees
	Length        float64  `json:"length"`          // Cone radius in pixels
	Rays          int      `json:"rays"`            // Rays cast in raycast mode
	Mode          fov.Mode `json:"mode"`            // "endpoint" or "raycast"
	ShowConeEdges bool     `json:"show_cone_edges"` // Draw cone boundaries in endpoint mode
	ShowHitWalls  bool     `json:"show_hit_walls"`  // Draw lines to hit wall endpoints in raycast mode
}

// ObserverConfig is the observer's starting pose
type ObserverConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Facing int     `json:"facing"`
}

// WallConfig is one wall segment from (x0, y0) to (x1, y1)
type WallConfig struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// DefaultConfig returns the demo scene: five walls on a 400x240 screen
func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  400,
			Height: 240,
		},
		FOV: FOVConfig{
			Angle:         60,
			Length:        150,
			Rays:          10,
			Mode:          fov.ModeEndpoint,
			ShowConeEdges: true,
			ShowHitWalls:  false,
		},
		Observer: ObserverConfig{
			X:      100,
			Y:      80,
			Facing: 0,
		},
		Walls: []WallConfig{
			{X0: 50, Y0: 10, X1: 350, Y1: 5},
			{X0: 50, Y0: 50, X1: 100, Y1: 150},
			{X0: 100, Y0: 150, X1: 200, Y1: 150},
			{X0: 50, Y0: 50, X1: 200, Y1: 30},
			{X0: 260, Y0: 180, X1: 300, Y1: 30},
		},
	}
}

// LoadConfig loads a scene config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects configurations the resolvers cannot run with
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidScreen, c.Screen.Width, c.Screen.Height)
	}
	if c.FOV.Angle <= 0 || c.FOV.Angle >= 360 {
		return fmt.Errorf("%w: got %d", ErrInvalidFOVAngle, c.FOV.Angle)
	}
	if c.FOV.Length <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidFOVLength, c.FOV.Length)
	}
	if c.FOV.Rays <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRays, c.FOV.Rays)
	}
	// Rays are spaced by angle / rays whole degrees
	if c.FOV.Rays > c.FOV.Angle {
		return fmt.Errorf("%w: %d rays over %d°", ErrRayStepTooSmall, c.FOV.Rays, c.FOV.Angle)
	}
	return nil
}

// Params converts the FOV section into resolver parameters
func (c *Config) Params() fov.Params {
	return fov.Params{
		FOVAngle:      c.FOV.Angle,
		FOVLength:     c.FOV.Length,
		Rays:          c.FOV.Rays,
		Mode:          c.FOV.Mode,
		ShowConeEdges: c.FOV.ShowConeEdges,
		ShowHitWalls:  c.FOV.ShowHitWalls,
	}
}

// Scene builds the resolver input. The wall slice is freshly allocated and
// its indices match the order of Walls.
func (c *Config) Scene() fov.Scene {
	walls := make([]fov.Segment, len(c.Walls))
	for i, w := range c.Walls {
		walls[i] = fov.Segment{
			A: fov.Point{X: w.X0, Y: w.Y0},
			B: fov.Point{X: w.X1, Y: w.Y1},
		}
	}

	observer := fov.Observer{Pos: fov.Point{X: c.Observer.X, Y: c.Observer.Y}}
	observer.SetFacing(c.Observer.Facing)

	return fov.Scene{
		Observer: observer,
		Walls:    walls,
		Params:   c.Params(),
	}
}
