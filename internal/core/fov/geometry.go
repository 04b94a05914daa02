package fov

import "math"

// parallelEpsilon is the denominator below which two segments are treated as parallel
const parallelEpsilon = 1e-10

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleOf returns the angle of the vector from p toward center, shifted by π
// into [0, 2π]. Equivalently, the direction of p as seen from center.
func AngleOf(p, center Point) float64 {
	return math.Atan2(center.Y-p.Y, center.X-p.X) + math.Pi
}

// SegmentIntersection finds where segment a crosses segment b.
// Returns the intersection point, its distance from a.A, and whether the
// segments intersect within both of their extents.
func SegmentIntersection(a, b Segment) (Point, float64, bool) {
	s1x := a.B.X - a.A.X
	s1y := a.B.Y - a.A.Y
	s2x := b.B.X - b.A.X
	s2y := b.B.Y - b.A.Y

	denominator := -s2x*s1y + s1x*s2y
	if math.Abs(denominator) < parallelEpsilon {
		// Parallel, coincident or zero-length
		return Point{}, 0, false
	}

	s := (-s1y*(a.A.X-b.A.X) + s1x*(a.A.Y-b.A.Y)) / denominator
	t := (s2x*(a.A.Y-b.A.Y) - s2y*(a.A.X-b.A.X)) / denominator

	if s < 0 || s > 1 || t < 0 || t > 1 {
		return Point{}, 0, false
	}

	hit := Point{
		X: a.A.X + t*s1x,
		Y: a.A.Y + t*s1y,
	}
	return hit, Distance(a.A, hit), true
}

// SegmentIntersectsCircle reports whether any part of seg lies within the
// circle, endpoints and interior included. The test projects the center onto
// the segment without computing the intersection points.
func SegmentIntersectsCircle(seg Segment, center Point, radius float64) bool {
	dx := seg.B.X - seg.A.X
	dy := seg.B.Y - seg.A.Y
	fx := seg.A.X - center.X
	fy := seg.A.Y - center.Y

	a := dx*dx + dy*dy
	halfB := dx*fx + dy*fy
	c := fx*fx + fy*fy - radius*radius

	if a == 0 {
		// Zero-length wall: a point test
		return c <= 0
	}

	return halfB*halfB >= a*c &&
		(-halfB <= a || c+halfB+halfB+a <= 0) &&
		(halfB <= 0 || c <= 0)
}

// FarPoint rotates the vector (length, 0) by deg degrees and places it at origin.
func FarPoint(origin Point, length float64, deg int) Point {
	rad := DegToRad(deg)
	return Point{
		X: origin.X + length*math.Cos(rad),
		Y: origin.Y + length*math.Sin(rad),
	}
}
