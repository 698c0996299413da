package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fdeoliveira24/truck-packer-3d-sub002/model"
)

func TestSaveAndLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	settings := model.DefaultSettings()
	settings.Weights.FloorBias = 0.75
	settings.LookaheadWalls = 2

	require.NoError(t, SaveSettings(path, settings))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	loaded, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), loaded)
}

func TestLoadSettings_BackfillsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("weights:\n  width_fit: -1\n  floor_bias: 0\ndepth_candidates: 1\nlookahead_walls: -3\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)

	def := model.DefaultSettings()
	assert.Equal(t, def.Weights.WidthFit, loaded.Weights.WidthFit)
	assert.Equal(t, def.DepthCandidates, loaded.DepthCandidates)
	assert.Equal(t, def.LookaheadWalls, loaded.LookaheadWalls)

	// Zero floor bias is a deliberate tuning choice and survives loading.
	assert.Equal(t, 0.0, loaded.Weights.FloorBias)
}

func TestLoadSettings_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

	_, err := LoadSettings(path)
	require.Error(t, err)
}

func TestDefaultSettingsPath(t *testing.T) {
	path := DefaultSettingsPath()
	assert.Equal(t, "settings.yaml", filepath.Base(path))
	assert.Equal(t, ".truckpack", filepath.Base(filepath.Dir(path)))
}
