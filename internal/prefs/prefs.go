package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the path to the preferences file, relative to the process
// working directory.
const PrefsPath = "config/cad.json"

// Prefs holds tool-level preferences (output format, preview window, grid).
// Persisted across runs; scene content is separate and handled by scene
// files.
type Prefs struct {
	DefaultUnit  string `json:"default_unit"`
	STLFormat    string `json:"stl_format"` // "binary" or "ascii"
	GridVisible  bool   `json:"grid_visible"`
	WindowWidth  int    `json:"window_width,omitempty"`
	WindowHeight int    `json:"window_height,omitempty"`
}

// Default returns default preferences (millimeters, binary STL, grid on).
func Default() Prefs {
	return Prefs{
		DefaultUnit:  "mm",
		STLFormat:    "binary",
		GridVisible:  true,
		WindowWidth:  1280,
		WindowHeight: 800,
	}
}

// Load reads preferences from config/cad.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/cad.json, creating the config directory
// if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(PrefsPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}
