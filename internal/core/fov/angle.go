package fov

import "math"

const fullTurn = 2 * math.Pi

// NormalizeAngle maps any degree value into [0, 360).
func NormalizeAngle(angle int) int {
	return ((angle % 360) + 360) % 360
}

// DegToRad converts degrees to radians.
func DegToRad(deg int) float64 {
	return float64(deg) * (math.Pi / 180)
}

// Cone is the angular extent of the field of view for one frame.
// StartDeg and EndDeg are normalized; when EndDeg < StartDeg the cone
// crosses the 0°/360° seam.
type Cone struct {
	StartDeg, EndDeg int
	StartRad, EndRad float64
}

// ConeFor derives the cone for an observer facing the given angle.
func ConeFor(facing, fovAngle int) Cone {
	half := fovAngle / 2
	start := NormalizeAngle(facing - half)
	end := NormalizeAngle(facing + half)
	return Cone{
		StartDeg: start,
		EndDeg:   end,
		StartRad: DegToRad(start),
		EndRad:   DegToRad(end),
	}
}

// Wraps reports whether the cone crosses the 0°/360° seam.
func (c Cone) Wraps() bool {
	return c.EndRad < c.StartRad
}

// Contains reports whether rad, in [0, 2π], lies inside the cone.
// A wrapping cone is the union of [start, 2π] and [0, end].
func (c Cone) Contains(rad float64) bool {
	middle, beginning := c.EndRad, c.StartRad
	if c.Wraps() {
		middle, beginning = fullTurn, 0
	}
	return (c.StartRad <= rad && rad <= middle) ||
		(beginning <= rad && rad <= c.EndRad)
}
