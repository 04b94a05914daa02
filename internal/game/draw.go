package game

import (
	"chosenoffset.com/sightline/internal/core/fov"
	"chosenoffset.com/sightline/internal/render"
	"chosenoffset.com/sightline/internal/ui/hud"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	// Draw can run before the first tick
	if !g.resolved {
		g.resolve()
	}

	screen.Fill(g.Palette.Background)
	g.drawWalls(screen)
	DrawFrame(screen, g.frame.Drawables, g.Palette)
	g.drawObserver(screen)
	g.drawHUD(screen)
}

// DrawFrame issues one draw call per drawable, in resolver order.
func DrawFrame(screen render.Image, drawables []fov.Drawable, palette Palette) {
	for _, d := range drawables {
		if d.Kind == fov.KindHitMarker {
			screen.DrawRect(d.Seg.A.X, d.Seg.A.Y, markerSize, markerSize, 1, palette.Sightline)
			continue
		}
		screen.DrawLine(d.Seg.A.X, d.Seg.A.Y, d.Seg.B.X, d.Seg.B.Y, 1, palette.colorFor(d.Kind))
	}
}

func (g *Game) drawWalls(screen render.Image) {
	for _, wall := range g.Scene.Walls {
		screen.DrawLine(wall.A.X, wall.A.Y, wall.B.X, wall.B.Y, 1, g.Palette.Wall)
	}
}

func (g *Game) drawObserver(screen render.Image) {
	pos := g.Scene.Observer.Pos
	half := float64(observerSize) / 2
	screen.DrawRect(pos.X-half, pos.Y-half, observerSize, observerSize, 1, g.Palette.Observer)
}

func (g *Game) drawHUD(screen render.Image) {
	if g.GameHUD == nil {
		return
	}
	g.GameHUD.Draw(screen, hud.Status{
		Observer:   g.Scene.Observer,
		Cone:       fov.ConeFor(g.Scene.Observer.Facing, g.Scene.Params.FOVAngle),
		Mode:       g.Scene.Params.Mode,
		Candidates: g.frame.Candidates,
		Drawables:  len(g.frame.Drawables),
	})
}
