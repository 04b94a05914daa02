package main

import (
	"flag"
	"fmt"

	"chosenoffset.com/sightline/internal/core/fov"
	"chosenoffset.com/sightline/internal/simulation"
)

// Command-line flags. Scene flags override the loaded config only when set.
var (
	configFlag  = flag.String("config", "data/scene.json", "scene config file (defaults are used if missing)")
	backendFlag = flag.String("backend", "ebiten", "render backend: ebiten or term")
	scaleFlag   = flag.Int("scale", 2, "window scale for the ebiten backend")
	debugFlag   = flag.Bool("debug", false, "log angle changes and candidate rebuilds")
	logFlag     = flag.String("log", "", "log file (default stderr; discarded by the term backend)")
	listFlag    = flag.Bool("list", false, "list the scenes next to -config and exit")

	modeFlag       = flag.String("mode", "", "visibility mode: endpoint or raycast")
	raysFlag       = flag.Int("rays", 0, "rays cast in raycast mode")
	fovDegreesFlag = flag.Int("fov-deg", 0, "field of view angle (degrees)")
	fovLengthFlag  = flag.Float64("fov-len", 0, "field of view radius (pixels)")
)

// applyFlags overrides config values with the flags given on the command line.
func applyFlags(config *simulation.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "mode":
			var mode fov.Mode
			mode, err = fov.ParseMode(*modeFlag)
			config.FOV.Mode = mode
		case "rays":
			config.FOV.Rays = *raysFlag
		case "fov-deg":
			config.FOV.Angle = *fovDegreesFlag
		case "fov-len":
			config.FOV.Length = *fovLengthFlag
		}
	})
	if err != nil {
		return err
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}
