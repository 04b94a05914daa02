package fov

// HandleInput applies a directional input event. Only the pressed edge of
// left/right rotates the observer, one degree per event. Returns whether the
// facing changed.
func (o *Observer) HandleInput(dir Direction, edge Edge) bool {
	if edge != EdgePressed {
		return false
	}

	switch dir {
	case DirLeft:
		o.Facing--
	case DirRight:
		o.Facing++
	default:
		return false
	}

	o.Facing = NormalizeAngle(o.Facing)
	return true
}

// SetPosition moves the observer. The engine rebuilds its candidate walls on
// the next resolve.
func (o *Observer) SetPosition(p Point) {
	o.Pos = p
}

// SetFacing sets the facing angle, normalized.
func (o *Observer) SetFacing(deg int) {
	o.Facing = NormalizeAngle(deg)
}
