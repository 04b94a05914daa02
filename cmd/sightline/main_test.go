package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chosenoffset.com/sightline/internal/render"
	"chosenoffset.com/sightline/internal/simulation"
)

var errEngineFailed = errors.New("engine failed")

type fakeEngine struct {
	width, height int
	title         string
	ran           bool
}

func (e *fakeEngine) SetWindowSize(width, height int) { e.width, e.height = width, height }
func (e *fakeEngine) SetWindowTitle(title string)     { e.title = title }
func (e *fakeEngine) RunGame(game render.Game) error {
	e.ran = true
	return errEngineFailed
}

type idleInput struct{}

func (idleInput) IsKeyJustPressed(render.Key) bool                 { return false }
func (idleInput) IsMouseButtonJustPressed(render.MouseButton) bool { return false }
func (idleInput) GetCursorPosition() (int, int)                    { return 0, 0 }

func TestRunReturnsEngineErrorAndWritesLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "sightline.log")
	if err := flag.Set("log", logPath); err != nil {
		t.Fatalf("Failed to set -log: %v", err)
	}
	t.Cleanup(func() { flag.Set("log", "") })

	engine := &fakeEngine{}
	err := run(simulation.DefaultConfig(), engine, idleInput{})
	if !errors.Is(err, errEngineFailed) {
		t.Fatalf("Expected the engine error, got %v", err)
	}
	if !engine.ran {
		t.Error("Expected the game loop to start")
	}
	if engine.title != "Sightline" {
		t.Errorf("Expected title Sightline, got %q", engine.title)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "msg=\"scene loaded\" walls=5") {
		t.Errorf("Expected a scene loaded record, got %q", data)
	}
}

func TestOpenLog(t *testing.T) {
	out, closeLog, err := openLog("", true)
	if err != nil || out != io.Discard {
		t.Errorf("Expected the terminal backend to discard logs, got %v, %v", out, err)
	}
	closeLog()

	out, closeLog, err = openLog("", false)
	if err != nil || out != os.Stderr {
		t.Errorf("Expected stderr, got %v, %v", out, err)
	}
	closeLog()

	if _, _, err := openLog(t.TempDir(), false); err == nil {
		t.Error("Expected an error when the log path is a directory")
	}
}
