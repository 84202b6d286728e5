package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig("demo")

	assert.Equal(t, "demo", c.Name)
	assert.Equal(t, uint32(1280), c.StartWidth)
	assert.Equal(t, uint32(720), c.StartHeight)
	assert.Equal(t, 0.1, c.MaxDeltaTime)
	assert.Equal(t, float64(1), c.TimeScale)
	assert.Equal(t, UpdateModeModern, c.Mode())
}

func TestLoadConfigFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "configured"
start_width = 640
start_height = 480
max_delta_time = 0.25
time_scale = 2.0
update_mode = "legacy"
`), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "configured", c.Name)
	assert.Equal(t, uint32(640), c.StartWidth)
	assert.Equal(t, uint32(480), c.StartHeight)
	assert.Equal(t, 0.25, c.MaxDeltaTime)
	assert.Equal(t, 2.0, c.TimeScale)
	assert.Equal(t, UpdateModeLegacy, c.Mode())
}

func TestLoadConfigAppliesDefaultsForUnsetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lumen.toml")
	require.NoError(t, os.WriteFile(path, []byte(`name = "partial"`), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(1280), c.StartWidth)
	assert.Equal(t, 0.1, c.MaxDeltaTime)
	assert.Equal(t, float64(1), c.TimeScale)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestConfigModeFallsBackOnUnknownValue(t *testing.T) {
	c := DefaultConfig("demo")
	c.UpdateMode = "turbo"

	assert.Equal(t, UpdateModeModern, c.Mode())
}

func TestConfigMaxDeltaTimeReachesFrameClock(t *testing.T) {
	c := DefaultConfig("demo")
	c.MaxDeltaTime = 0.05
	c.TimeScale = 2

	app := New(c)

	assert.Equal(t, 0.05, app.MaxDeltaTime())
	assert.Equal(t, float64(2), app.TimeScale())
}
