package fov

// Frame is the result of one resolve.
type Frame struct {
	// Drawables in the order they should be drawn. Owned by the Engine and
	// only valid until the next Resolve.
	Drawables []Drawable
	// Candidates is the number of walls that survived the broad-phase cull.
	Candidates int
	// Rebuilt is true when the candidate set was recomputed this frame.
	Rebuilt bool
}

// Engine runs the visibility resolvers frame after frame. It owns the
// candidate set and the output buffer so steady-state frames do not
// allocate. An Engine is not safe for concurrent use.
type Engine struct {
	candidates CandidateSet
	out        []Drawable
}

// NewEngine creates an engine with empty buffers.
func NewEngine() *Engine {
	return &Engine{}
}

// Invalidate discards the cached candidate set.
func (e *Engine) Invalidate() {
	e.candidates.Invalidate()
}

// Resolve computes the drawables for the scene. The candidate set is rebuilt
// only when the observer position, the FOV length or the number of walls
// changed since the previous call. Walls are compared by count, not content:
// after replacing a wall in place, call Invalidate before the next Resolve.
func (e *Engine) Resolve(scene Scene) Frame {
	p := scene.Params
	rebuilt := e.candidates.Update(scene.Walls, scene.Observer.Pos, p.FOVLength)

	e.out = e.out[:0]
	switch p.Mode {
	case ModeRayCast:
		e.out = appendRayCast(e.out, scene)
	default:
		e.out = appendEndpoints(e.out, scene, e.candidates.Indices())
	}

	return Frame{
		Drawables:  e.out,
		Candidates: e.candidates.Len(),
		Rebuilt:    rebuilt,
	}
}

// Resolve is the stateless form of Engine.Resolve: it culls from scratch and
// returns a fresh slice.
func Resolve(scene Scene) []Drawable {
	frame := NewEngine().Resolve(scene)
	out := make([]Drawable, len(frame.Drawables))
	copy(out, frame.Drawables)
	return out
}

// appendEndpoints emits a sightline for every candidate wall endpoint that
// lies inside the cone and within range. Walls do not occlude each other
// here: a far endpoint is reported even when a nearer wall blocks it.
func appendEndpoints(out []Drawable, scene Scene, candidates []int) []Drawable {
	obs := scene.Observer.Pos
	p := scene.Params
	cone := ConeFor(scene.Observer.Facing, p.FOVAngle)

	for _, idx := range candidates {
		wall := scene.Walls[idx]
		for _, end := range [2]Point{wall.A, wall.B} {
			if !cone.Contains(AngleOf(end, obs)) {
				continue
			}
			if Distance(end, obs) > p.FOVLength {
				continue
			}
			out = append(out, Drawable{
				Kind:      KindSightline,
				Seg:       Segment{A: end, B: obs},
				WallIndex: idx,
			})
		}
	}

	if p.ShowConeEdges {
		for _, deg := range [2]int{cone.StartDeg, cone.EndDeg} {
			out = append(out, Drawable{
				Kind:      KindConeEdge,
				Seg:       Segment{A: FarPoint(obs, p.FOVLength, deg), B: obs},
				WallIndex: -1,
			})
		}
	}

	return out
}

// appendRayCast casts Rays rays across the cone, each tested against every
// wall. The nearest hit strictly closer than FOVLength wins; on equal
// distance the earlier wall is kept.
func appendRayCast(out []Drawable, scene Scene) []Drawable {
	obs := scene.Observer.Pos
	p := scene.Params
	step := rayStep(p.FOVAngle, p.Rays)
	angle := scene.Observer.Facing - p.FOVAngle/2

	for ray := 0; ray < p.Rays; ray++ {
		angle = NormalizeAngle(angle)
		far := FarPoint(obs, p.FOVLength, angle)
		probe := Segment{A: obs, B: far}

		nearest := -1
		closest := p.FOVLength
		var hit Point
		for i, wall := range scene.Walls {
			point, dist, ok := SegmentIntersection(probe, wall)
			if ok && dist < closest {
				closest = dist
				hit = point
				nearest = i
			}
		}

		if nearest < 0 {
			out = append(out, Drawable{Kind: KindRayMiss, Seg: probe, WallIndex: -1})
		} else {
			if p.ShowHitWalls {
				wall := scene.Walls[nearest]
				out = append(out,
					Drawable{Kind: KindHitWallEdge, Seg: Segment{A: obs, B: wall.A}, WallIndex: nearest},
					Drawable{Kind: KindHitWallEdge, Seg: Segment{A: obs, B: wall.B}, WallIndex: nearest},
				)
			}
			out = append(out,
				Drawable{Kind: KindHitMarker, Seg: Segment{A: hit, B: hit}, WallIndex: nearest},
				Drawable{Kind: KindRay, Seg: Segment{A: obs, B: hit}, WallIndex: nearest},
			)
		}

		angle += step
	}

	return out
}

// rayStep is the angular distance between rays in whole degrees, truncated
// so the last ray never passes the cone end.
func rayStep(fovAngle, rays int) int {
	if rays <= 0 {
		return 0
	}
	return fovAngle / rays
}
