// Package config persists engine tuning settings. Pack data itself (items,
// trucks, results) is owned by external collaborators and is never stored
// here; only the scoring weights and lookahead parameters are.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Fdeoliveira24/truck-packer-3d-sub002/model"
)

// DefaultConfigDir returns the default directory for tuning configuration.
// On all platforms this is ~/.truckpack/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".truckpack")
}

// DefaultSettingsPath returns the default path for the settings file.
func DefaultSettingsPath() string {
	return filepath.Join(DefaultConfigDir(), "settings.yaml")
}

// SaveSettings persists pack settings to the given path as YAML, creating
// any missing parent directories.
func SaveSettings(path string, settings model.PackSettings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSettings reads pack settings from the given path. A missing file
// returns DefaultSettings with no error. Non-positive tuning values are
// backfilled with their defaults so a hand-edited file cannot disable
// scoring terms by accident.
func LoadSettings(path string) (model.PackSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultSettings(), nil
		}
		return model.PackSettings{}, fmt.Errorf("read settings: %w", err)
	}
	var settings model.PackSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return model.PackSettings{}, fmt.Errorf("decode settings: %w", err)
	}
	normalize(&settings)
	return settings, nil
}

func normalize(s *model.PackSettings) {
	def := model.DefaultSettings()
	if s.Weights.WidthFit <= 0 {
		s.Weights.WidthFit = def.Weights.WidthFit
	}
	if s.Weights.DepthUse <= 0 {
		s.Weights.DepthUse = def.Weights.DepthUse
	}
	if s.Weights.Area <= 0 {
		s.Weights.Area = def.Weights.Area
	}
	if s.Weights.Volume <= 0 {
		s.Weights.Volume = def.Weights.Volume
	}
	// FloorBias of zero is a legitimate tuning choice (no floor
	// preference), so only negative values are corrected.
	if s.Weights.FloorBias < 0 {
		s.Weights.FloorBias = def.Weights.FloorBias
	}
	if s.DepthCandidates < 2 {
		s.DepthCandidates = def.DepthCandidates
	}
	if s.LookaheadWalls < 0 {
		s.LookaheadWalls = def.LookaheadWalls
	}
}
