package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"chosenoffset.com/sightline/internal/game"
	"chosenoffset.com/sightline/internal/render"
	ebitenrender "chosenoffset.com/sightline/internal/render/ebiten"
	"chosenoffset.com/sightline/internal/render/term"
	"chosenoffset.com/sightline/internal/simulation"
)

func main() {
	flag.Parse()

	if *listFlag {
		listScenes(filepath.Dir(*configFlag))
		return
	}

	config, err := simulation.LoadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if err := applyFlags(config); err != nil {
		log.Fatal(err)
	}

	// Pick the backend
	var (
		engine render.Engine
		input  render.InputManager
	)
	switch *backendFlag {
	case "ebiten":
		engine = ebitenrender.NewEngine()
		input = ebitenrender.NewInputManager()
	case "term":
		termEngine := term.NewEngine()
		engine = termEngine
		input = termEngine.Input()
	default:
		log.Fatalf("Unknown backend %q (want ebiten or term)", *backendFlag)
	}

	if err := run(config, engine, input); err != nil {
		log.Fatal(err)
	}
}

// run starts the game loop. Everything opened here is released before it
// returns.
func run(config *simulation.Config, engine render.Engine, input render.InputManager) error {
	logOut, closeLog, err := openLog(*logFlag, *backendFlag == "term")
	if err != nil {
		return err
	}
	defer closeLog()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	g := game.New(config, input, logger)

	scale := *scaleFlag
	engine.SetWindowSize(config.Screen.Width*scale, config.Screen.Height*scale)
	engine.SetWindowTitle("Sightline")

	logger.Info("scene loaded",
		"walls", len(config.Walls), "mode", config.FOV.Mode,
		"fov", config.FOV.Angle, "length", config.FOV.Length)
	return engine.RunGame(g)
}

func listScenes(dir string) {
	scenes, err := simulation.ScanScenes(dir)
	if err != nil {
		log.Fatalf("Failed to scan scenes: %v", err)
	}
	for _, scene := range scenes {
		fmt.Printf("%-20s %3d walls  %-8s %s\n", scene.Name, scene.Walls, scene.Mode, scene.Path)
	}
}

// openLog returns the log destination and a func releasing it. The terminal
// backend owns the screen, so it only logs when a file is given.
func openLog(path string, terminal bool) (io.Writer, func(), error) {
	if path == "" {
		if terminal {
			return io.Discard, func() {}, nil
		}
		return os.Stderr, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
