package game

import (
	"image/color"

	"chosenoffset.com/sightline/internal/core/fov"
)

// markerSize is the side of the square drawn where a ray hits a wall.
const markerSize = 5

// observerSize is the side of the square drawn at the observer.
const observerSize = 4

// Palette holds the colors used to draw a frame.
type Palette struct {
	Background color.Color
	Wall       color.Color
	Sightline  color.Color // endpoint sightlines and rays that hit
	Miss       color.Color // rays that reach the FOV radius
	Edge       color.Color // cone edges and hit wall edges
	Observer   color.Color
}

// DefaultPalette is black geometry on white.
func DefaultPalette() Palette {
	return Palette{
		Background: color.White,
		Wall:       color.Black,
		Sightline:  color.Black,
		Miss:       color.Black,
		Edge:       color.Black,
		Observer:   color.Black,
	}
}

// colorFor picks the palette entry for a drawable kind.
func (p Palette) colorFor(kind fov.DrawKind) color.Color {
	switch kind {
	case fov.KindRayMiss:
		return p.Miss
	case fov.KindConeEdge, fov.KindHitWallEdge:
		return p.Edge
	default:
		return p.Sightline
	}
}
