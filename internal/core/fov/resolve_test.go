package fov

import (
	"math"
	"reflect"
	"testing"
)

func testScene(mode Mode, pos Point, facing int, walls ...Segment) Scene {
	return Scene{
		Observer: Observer{Pos: pos, Facing: facing},
		Walls:    walls,
		Params: Params{
			FOVAngle:  60,
			FOVLength: 150,
			Rays:      10,
			Mode:      mode,
		},
	}
}

func countWallDerived(drawables []Drawable) int {
	n := 0
	for _, d := range drawables {
		if d.FromWall() {
			n++
		}
	}
	return n
}

func pointAt(origin Point, length float64, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{origin.X + length*math.Cos(rad), origin.Y + length*math.Sin(rad)}
}

func TestEndpointModeWraparound(t *testing.T) {
	obs := Point{100, 80}
	visible := pointAt(obs, 50, 350)
	behind := pointAt(obs, 50, 180)

	scene := testScene(ModeEndpoint, obs, 0, Segment{A: visible, B: behind})
	got := Resolve(scene)

	if len(got) != 1 {
		t.Fatalf("Expected 1 sightline, got %d: %v", len(got), got)
	}
	if got[0].Kind != KindSightline {
		t.Errorf("Expected sightline, got %v", got[0].Kind)
	}
	if got[0].Seg.A != visible || got[0].Seg.B != obs {
		t.Errorf("Expected sightline %v -> %v, got %v", visible, obs, got[0].Seg)
	}
	if got[0].WallIndex != 0 {
		t.Errorf("Expected wall index 0, got %d", got[0].WallIndex)
	}
}

func TestEndpointModeRange(t *testing.T) {
	obs := Point{100, 80}
	// Both endpoints straight ahead; only the near one is within range
	scene := testScene(ModeEndpoint, obs, 0, Segment{A: Point{200, 80}, B: Point{400, 80}})
	got := Resolve(scene)

	if len(got) != 1 {
		t.Fatalf("Expected 1 sightline, got %d", len(got))
	}
	if got[0].Seg.A != (Point{200, 80}) {
		t.Errorf("Expected sightline from (200, 80), got %v", got[0].Seg.A)
	}
}

func TestEndpointModeNoOcclusion(t *testing.T) {
	obs := Point{0, 0}
	near := Segment{A: Point{20, -5}, B: Point{20, 5}}
	far := Segment{A: Point{60, -5}, B: Point{60, 5}}

	got := Resolve(testScene(ModeEndpoint, obs, 0, near, far))

	// The far wall is fully behind the near one but still reported
	if countWallDerived(got) != 4 {
		t.Errorf("Expected 4 sightlines, got %d", countWallDerived(got))
	}
	if got[0].WallIndex != 0 || got[2].WallIndex != 1 {
		t.Errorf("Expected wall-then-endpoint order, got %v", got)
	}
}

func TestEndpointModeConeEdges(t *testing.T) {
	obs := Point{100, 80}
	scene := testScene(ModeEndpoint, obs, 0)
	scene.Params.ShowConeEdges = true

	got := Resolve(scene)
	if len(got) != 2 {
		t.Fatalf("Expected 2 cone edges, got %d", len(got))
	}
	for _, d := range got {
		if d.Kind != KindConeEdge || d.FromWall() {
			t.Errorf("Expected a cone edge not tied to a wall, got %+v", d)
		}
	}
	if !approxPoint(got[0].Seg.A, FarPoint(obs, 150, 330)) {
		t.Errorf("Expected first edge at 330°, got %v", got[0].Seg.A)
	}
	if !approxPoint(got[1].Seg.A, FarPoint(obs, 150, 30)) {
		t.Errorf("Expected second edge at 30°, got %v", got[1].Seg.A)
	}
}

func TestRayCastNearestHit(t *testing.T) {
	obs := Point{0, 0}
	far := Segment{A: Point{100, -5}, B: Point{100, 5}}
	near := Segment{A: Point{50, -5}, B: Point{50, 5}}

	got := Resolve(testScene(ModeRayCast, obs, 0, far, near))

	// 9 misses plus marker and ray for the single 0° ray that hits
	if len(got) != 11 {
		t.Fatalf("Expected 11 drawables, got %d", len(got))
	}

	var rays []Drawable
	for _, d := range got {
		if d.Kind == KindRay {
			rays = append(rays, d)
		}
	}
	if len(rays) != 1 {
		t.Fatalf("Expected 1 hit ray, got %d", len(rays))
	}
	if rays[0].WallIndex != 1 {
		t.Errorf("Expected the near wall (1) to win, got %d", rays[0].WallIndex)
	}
	if !approxPoint(rays[0].Seg.B, Point{50, 0}) {
		t.Errorf("Expected hit at (50, 0), got %v", rays[0].Seg.B)
	}
	if !approx(Distance(rays[0].Seg.A, rays[0].Seg.B), 50) {
		t.Errorf("Expected hit distance 50, got %f", Distance(rays[0].Seg.A, rays[0].Seg.B))
	}
}

func TestRayCastTieKeepsFirstWall(t *testing.T) {
	wall := Segment{A: Point{50, -5}, B: Point{50, 5}}
	got := Resolve(testScene(ModeRayCast, Point{0, 0}, 0, wall, wall))

	for _, d := range got {
		if d.Kind == KindRay && d.WallIndex != 0 {
			t.Errorf("Expected the first wall to win a tie, got %d", d.WallIndex)
		}
	}
}

func TestRayCastHitAtRadiusIsMiss(t *testing.T) {
	wall := Segment{A: Point{150, -5}, B: Point{150, 5}}
	got := Resolve(testScene(ModeRayCast, Point{0, 0}, 0, wall))

	if countWallDerived(got) != 0 {
		t.Errorf("Expected a hit at exactly FOVLength to count as a miss, got %v", got)
	}
}

func TestRayCastRayOrderAndSpacing(t *testing.T) {
	obs := Point{0, 0}
	got := Resolve(testScene(ModeRayCast, obs, 0))

	if len(got) != 10 {
		t.Fatalf("Expected 10 rays, got %d", len(got))
	}
	for i, d := range got {
		if d.Kind != KindRayMiss {
			t.Errorf("Ray %d: expected miss, got %v", i, d.Kind)
		}
		want := FarPoint(obs, 150, NormalizeAngle(330+6*i))
		if !approxPoint(d.Seg.B, want) {
			t.Errorf("Ray %d: expected far point %v, got %v", i, want, d.Seg.B)
		}
	}
}

func TestRayCastShowHitWalls(t *testing.T) {
	obs := Point{0, 0}
	wall := Segment{A: Point{50, -5}, B: Point{50, 5}}
	scene := testScene(ModeRayCast, obs, 0, wall)
	scene.Params.ShowHitWalls = true

	got := Resolve(scene)
	var kinds []DrawKind
	for _, d := range got {
		if d.FromWall() {
			kinds = append(kinds, d.Kind)
		}
	}
	want := []DrawKind{KindHitWallEdge, KindHitWallEdge, KindHitMarker, KindRay}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("Expected %v, got %v", want, kinds)
	}
}

func TestResolveEndToEnd(t *testing.T) {
	wall := Segment{A: Point{50, 50}, B: Point{200, 30}}

	for _, mode := range []Mode{ModeEndpoint, ModeRayCast} {
		t.Run(mode.String(), func(t *testing.T) {
			scene := testScene(mode, Point{100, 80}, 0, wall)
			scene.Params.ShowConeEdges = true

			got := Resolve(scene)
			found := false
			for _, d := range got {
				if d.WallIndex == 0 && Distance(d.Seg.A, d.Seg.B) > 0 {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected a visible segment from the wall, got %v", got)
			}

			scene.Observer.SetPosition(Point{1000, 1000})
			got = Resolve(scene)
			if n := countWallDerived(got); n != 0 {
				t.Errorf("Expected no wall-derived drawables far away, got %d", n)
			}
			if mode == ModeRayCast && len(got) != scene.Params.Rays {
				t.Errorf("Expected %d far rays, got %d", scene.Params.Rays, len(got))
			}
			if mode == ModeEndpoint && len(got) != 2 {
				t.Errorf("Expected only the 2 cone edges, got %d", len(got))
			}
		})
	}
}

func TestEngineCachesCandidates(t *testing.T) {
	engine := NewEngine()
	scene := testScene(ModeEndpoint, Point{100, 80}, 0, Segment{A: Point{50, 50}, B: Point{200, 30}})

	frame := engine.Resolve(scene)
	if !frame.Rebuilt || frame.Candidates != 1 {
		t.Errorf("Expected first frame to rebuild with 1 candidate, got rebuilt=%v candidates=%d", frame.Rebuilt, frame.Candidates)
	}

	scene.Observer.HandleInput(DirRight, EdgePressed)
	frame = engine.Resolve(scene)
	if frame.Rebuilt {
		t.Error("Expected no rebuild after an angle-only change")
	}

	scene.Observer.SetPosition(Point{1000, 1000})
	frame = engine.Resolve(scene)
	if !frame.Rebuilt || frame.Candidates != 0 {
		t.Errorf("Expected rebuild with 0 candidates after a move, got rebuilt=%v candidates=%d", frame.Rebuilt, frame.Candidates)
	}

	engine.Invalidate()
	if frame = engine.Resolve(scene); !frame.Rebuilt {
		t.Error("Expected rebuild after Invalidate")
	}
}

func TestResolveIsDeterministicAndCopies(t *testing.T) {
	scene := testScene(ModeRayCast, Point{100, 80}, 0, Segment{A: Point{50, 50}, B: Point{200, 30}})

	first := Resolve(scene)
	second := Resolve(scene)
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output for identical scenes")
	}

	first[0].WallIndex = 99
	if reflect.DeepEqual(first, Resolve(scene)) {
		t.Error("Expected Resolve to return an independent slice")
	}
}

func TestRayStep(t *testing.T) {
	tests := []struct {
		fov, rays, want int
	}{
		{60, 10, 6},
		{60, 7, 8},
		{45, 10, 4},
		{10, 20, 0},
		{10, 10, 1},
		{60, 0, 0},
	}
	for _, tt := range tests {
		if got := rayStep(tt.fov, tt.rays); got != tt.want {
			t.Errorf("rayStep(%d, %d): expected %d, got %d", tt.fov, tt.rays, tt.want, got)
		}
	}
}

func TestRayCastStaysInsideCone(t *testing.T) {
	obs := Point{100, 80}
	// Every angle/ray combination with at least one degree between rays
	for fovAngle := 1; fovAngle < 360; fovAngle += 7 {
		for rays := 1; rays <= fovAngle; rays += 3 {
			scene := testScene(ModeRayCast, obs, 180)
			scene.Params.FOVAngle = fovAngle
			scene.Params.Rays = rays
			cone := ConeFor(180, fovAngle)

			got := Resolve(scene)
			if len(got) != rays {
				t.Fatalf("fov %d, rays %d: expected %d rays, got %d", fovAngle, rays, rays, len(got))
			}
			for i, d := range got {
				deg := math.Atan2(d.Seg.B.Y-obs.Y, d.Seg.B.X-obs.X) * 180 / math.Pi
				angle := NormalizeAngle(int(math.Round(deg)))
				if angle < cone.StartDeg || angle > cone.EndDeg {
					t.Errorf("fov %d, rays %d: ray %d at %d° outside [%d, %d]",
						fovAngle, rays, i, angle, cone.StartDeg, cone.EndDeg)
				}
			}
		}
	}
}

func TestEngineWallSwapNeedsInvalidate(t *testing.T) {
	engine := NewEngine()
	far := Segment{A: Point{900, 900}, B: Point{950, 900}}
	near := Segment{A: Point{120, 70}, B: Point{120, 90}}
	scene := testScene(ModeEndpoint, Point{100, 80}, 0, far)

	if frame := engine.Resolve(scene); frame.Candidates != 0 {
		t.Fatalf("Expected no candidates, got %d", frame.Candidates)
	}

	// Same wall count: the cached set is kept
	scene.Walls = []Segment{near}
	if frame := engine.Resolve(scene); frame.Rebuilt || frame.Candidates != 0 {
		t.Errorf("Expected the stale set to be kept, got rebuilt=%v candidates=%d", frame.Rebuilt, frame.Candidates)
	}

	engine.Invalidate()
	frame := engine.Resolve(scene)
	if !frame.Rebuilt || frame.Candidates != 1 {
		t.Errorf("Expected a rebuild with 1 candidate, got rebuilt=%v candidates=%d", frame.Rebuilt, frame.Candidates)
	}
	if countWallDerived(frame.Drawables) != 2 {
		t.Errorf("Expected sightlines to both endpoints of the new wall, got %v", frame.Drawables)
	}
}
