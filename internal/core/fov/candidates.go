package fov

// CandidateSet is the broad-phase cull: the walls touching the full FOV disc
// around the observer. It keeps indices into the wall slice and reuses its
// buffer between rebuilds.
//
// The disc is 360°, so walls behind the observer survive; the resolvers do
// the finer cone test.
type CandidateSet struct {
	indices []int
	pos     Point
	radius  float64
	walls   int
	valid   bool
}

// Update rebuilds the set if the observer moved, the radius or wall count
// changed, or the set was invalidated. Edits that keep the wall count are
// not detected. Angle changes never trigger a
// rebuild. Returns whether a rebuild happened.
func (c *CandidateSet) Update(walls []Segment, pos Point, radius float64) bool {
	if c.valid && c.pos == pos && c.radius == radius && c.walls == len(walls) {
		return false
	}

	c.indices = c.indices[:0]
	for i, wall := range walls {
		if SegmentIntersectsCircle(wall, pos, radius) {
			c.indices = append(c.indices, i)
		}
	}

	c.pos = pos
	c.radius = radius
	c.walls = len(walls)
	c.valid = true
	return true
}

// Invalidate forces the next Update to rebuild, e.g. after the wall set changed.
func (c *CandidateSet) Invalidate() {
	c.valid = false
}

// Indices returns the wall indices in registry order. The slice is owned by
// the set and is overwritten by the next rebuild.
func (c *CandidateSet) Indices() []int {
	return c.indices
}

// Len returns the number of candidate walls.
func (c *CandidateSet) Len() int {
	return len(c.indices)
}
