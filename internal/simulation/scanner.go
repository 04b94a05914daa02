package simulation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/sightline/internal/core/fov"
)

// SceneEntry represents a discoverable scene in the data directory
type SceneEntry struct {
	Name  string   // Display name (file name without extension)
	Path  string   // Path to the scene file
	Walls int      // Number of walls in the scene
	Mode  fov.Mode // Configured visibility mode
}

// ScanScenes scans the data directory for scene files.
// Files that fail to parse or validate are skipped.
func ScanScenes(dataPath string) ([]SceneEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var scenes []SceneEntry

	for _, entry := range entries {
		// Skip directories and hidden files
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		path := filepath.Join(dataPath, name)
		config, err := LoadConfig(path)
		if err != nil {
			continue
		}

		scenes = append(scenes, SceneEntry{
			Name:  strings.TrimSuffix(name, filepath.Ext(name)),
			Path:  path,
			Walls: len(config.Walls),
			Mode:  config.FOV.Mode,
		})
	}

	return scenes, nil
}
