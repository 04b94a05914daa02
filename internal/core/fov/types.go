// Package fov computes which wall geometry a point observer can see inside a
// cone of vision. Results are plain line segments so any renderer can draw
// them.
package fov

// Point represents a 2D point in screen space
type Point struct {
	X, Y float64
}

// Segment represents a wall or a drawable line between two points
type Segment struct {
	A, B Point
}

// Observer is the viewer's position and facing angle in degrees.
// Facing is kept in [0, 360).
type Observer struct {
	Pos    Point
	Facing int
}

// Direction is a directional input from the host.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Edge is the transition of an input event.
type Edge int

const (
	EdgePressed Edge = iota
	EdgeReleased
)

// DrawKind tags what a Drawable represents.
type DrawKind int

const (
	// KindSightline is a line from a visible wall endpoint to the observer.
	KindSightline DrawKind = iota
	// KindRay is a ray cut short by the nearest wall.
	KindRay
	// KindRayMiss is a ray reaching the full FOV radius.
	KindRayMiss
	// KindHitMarker marks the point a ray hit a wall. Only Seg.A is used.
	KindHitMarker
	// KindHitWallEdge connects the observer to an endpoint of a wall a ray hit.
	KindHitWallEdge
	// KindConeEdge is one of the two boundaries of the FOV cone.
	KindConeEdge
)

func (k DrawKind) String() string {
	switch k {
	case KindSightline:
		return "sightline"
	case KindRay:
		return "ray"
	case KindRayMiss:
		return "ray-miss"
	case KindHitMarker:
		return "hit-marker"
	case KindHitWallEdge:
		return "hit-wall-edge"
	case KindConeEdge:
		return "cone-edge"
	default:
		return "unknown"
	}
}

// Drawable is one ephemeral output of the resolver.
type Drawable struct {
	Kind DrawKind
	Seg  Segment
	// WallIndex is the index of the wall this drawable came from, or -1.
	WallIndex int
}

// FromWall reports whether the drawable was derived from a wall.
func (d Drawable) FromWall() bool {
	return d.WallIndex >= 0
}

// Params are the scene constants of the FOV cone.
type Params struct {
	FOVAngle  int     // full cone angle in degrees
	FOVLength float64 // cone radius
	Rays      int     // number of rays in ray-cast mode
	Mode      Mode

	ShowConeEdges bool // endpoint mode: draw the two cone boundaries
	ShowHitWalls  bool // ray-cast mode: draw lines to the endpoints of each hit wall
}

// Scene is everything one frame's resolve depends on.
type Scene struct {
	Observer Observer
	Walls    []Segment
	Params   Params
}
