package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	Name        string `json:"name"`        // Preset name or file name without extension
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "preset" or "file"
	FilePath    string `json:"filePath"`    // Path to the JSON file (file type only)
}

// ListScenes returns the presets followed by the JSON scenes found in dir.
// A missing dir is not an error.
func ListScenes(dir string) ([]SceneInfo, error) {
	var scenes []SceneInfo
	for _, p := range presets {
		scenes = append(scenes, SceneInfo{Name: p.Name, Description: p.Description, Type: "preset"})
	}

	if dir == "" {
		return scenes, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return scenes, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var found []SceneInfo
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			logger.Warningf("failed to parse metadata for %s: %v", filePath, err)
			continue
		}
		found = append(found, info)
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})

	return append(scenes, found...), nil
}

// ParseSceneMetadata reads the name and description of a JSON scene
// without building it.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	info := SceneInfo{
		Name:     strings.TrimSuffix(filename, filepath.Ext(filename)),
		Type:     "file",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, err
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return info, err
	}

	if header.Name != "" {
		info.Name = header.Name
	}
	info.Description = header.Description
	return info, nil
}
