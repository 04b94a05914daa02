// Package hud draws a small status readout on top of the scene: facing
// angle, visibility mode and how much geometry the resolver kept.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/sightline/internal/core/fov"
	"chosenoffset.com/sightline/internal/render"
)

const lineHeight = render.TextLineHeight

// HUDConfig defines what to display in the HUD
type HUDConfig struct {
	ShowAngle      bool   `json:"show_angle"`      // Facing angle and cone bounds
	ShowMode       bool   `json:"show_mode"`       // Active visibility mode
	ShowCandidates bool   `json:"show_candidates"` // Walls surviving the cull
	ShowPosition   bool   `json:"show_position"`   // Observer position
	Position       string `json:"position"`        // "top-left" or "bottom-left"
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		ShowAngle:      true,
		ShowMode:       true,
		ShowCandidates: true,
		ShowPosition:   false,
		Position:       "top-left",
	}
}

// Status is the per-frame data the HUD shows
type Status struct {
	Observer   fov.Observer
	Cone       fov.Cone
	Mode       fov.Mode
	Candidates int
	Drawables  int
}

// HUD manages the heads-up display
type HUD struct {
	config *HUDConfig
	color  color.Color
	lines  []string
}

// New creates a new HUD with the given configuration
func New(config *HUDConfig) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config: config,
		color:  color.Black,
	}
}

// Lines formats the status into the lines Draw will show
func (h *HUD) Lines(s Status) []string {
	h.lines = h.lines[:0]
	if h.config.ShowAngle {
		h.lines = append(h.lines, fmt.Sprintf("angle: %d [%d..%d]", s.Observer.Facing, s.Cone.StartDeg, s.Cone.EndDeg))
	}
	if h.config.ShowMode {
		h.lines = append(h.lines, fmt.Sprintf("mode: %s", s.Mode))
	}
	if h.config.ShowCandidates {
		h.lines = append(h.lines, fmt.Sprintf("walls in range: %d  lines: %d", s.Candidates, s.Drawables))
	}
	if h.config.ShowPosition {
		h.lines = append(h.lines, fmt.Sprintf("pos: %.0f,%.0f", s.Observer.Pos.X, s.Observer.Pos.Y))
	}
	return h.lines
}

// Draw renders the HUD onto dst
func (h *HUD) Draw(dst render.Image, s Status) {
	lines := h.Lines(s)
	if len(lines) == 0 {
		return
	}

	_, height := dst.Size()
	x, y := 4, 4
	if h.config.Position == "bottom-left" {
		y = height - 4 - len(lines)*lineHeight
	}

	for _, line := range lines {
		dst.DrawText(line, x, y, h.color)
		y += lineHeight
	}
}
