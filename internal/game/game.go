package game

import (
	"log/slog"

	"chosenoffset.com/sightline/internal/core/fov"
	"chosenoffset.com/sightline/internal/render"
	"chosenoffset.com/sightline/internal/simulation"
	"chosenoffset.com/sightline/internal/ui/hud"
)

// Game holds the scene and drives one resolve per tick.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Scene        fov.Scene
	Engine       *fov.Engine
	InputMgr     render.InputManager
	GameHUD      *hud.HUD
	Palette      Palette
	Logger       *slog.Logger

	frame    fov.Frame
	resolved bool
}

// New creates a game for the given scene config.
func New(config *simulation.Config, input render.InputManager, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		ScreenWidth:  config.Screen.Width,
		ScreenHeight: config.Screen.Height,
		Scene:        config.Scene(),
		Engine:       fov.NewEngine(),
		InputMgr:     input,
		GameHUD:      hud.New(nil),
		Palette:      DefaultPalette(),
		Logger:       logger,
	}
}

// Update applies this tick's input to the observer, then resolves the frame.
// All input is applied before resolving so the resolver sees one pose.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	g.handleTurn(render.KeyLeft, fov.DirLeft)
	g.handleTurn(render.KeyRight, fov.DirRight)

	if g.InputMgr.IsKeyJustPressed(render.KeyTab) {
		g.Scene.Params.Mode = g.Scene.Params.Mode.Next()
		g.Logger.Info("mode switched", "mode", g.Scene.Params.Mode)
	}

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := g.InputMgr.GetCursorPosition()
		g.Scene.Observer.SetPosition(fov.Point{X: float64(x), Y: float64(y)})
		g.Logger.Debug("observer moved", "x", x, "y", y)
	}

	g.resolve()
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Frame returns the most recently resolved frame.
func (g *Game) Frame() fov.Frame {
	return g.frame
}

func (g *Game) handleTurn(key render.Key, dir fov.Direction) {
	if !g.InputMgr.IsKeyJustPressed(key) {
		return
	}
	if g.Scene.Observer.HandleInput(dir, fov.EdgePressed) {
		g.Logger.Debug("angle", "facing", g.Scene.Observer.Facing)
	}
}

func (g *Game) resolve() {
	g.frame = g.Engine.Resolve(g.Scene)
	g.resolved = true
	if g.frame.Rebuilt {
		g.Logger.Debug("candidates rebuilt", "count", g.frame.Candidates)
	}
}
