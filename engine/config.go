package engine

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lumen3d/lumen/engine/core"
)

// UpdateMode selects which historical update variant the frame loop runs.
// It is chosen once at configuration time, never per-frame.
type UpdateMode int

const (
	// UpdateModeModern is the default: variable-step update only.
	UpdateModeModern UpdateMode = iota
	// UpdateModeLegacy additionally fires a fixed 1/60s step into systems
	// implementing FixedUpdater, for content authored against the old
	// behavior.
	UpdateModeLegacy
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height"`
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`

	// MaxDeltaTime caps the per-frame delta in seconds. Default 0.1.
	MaxDeltaTime float64 `toml:"max_delta_time"`
	// TimeScale multiplies every computed delta. Default 1.
	TimeScale float64 `toml:"time_scale"`
	// UpdateMode is "modern" or "legacy". Default modern.
	UpdateMode string `toml:"update_mode"`
}

func DefaultConfig(name string) *ApplicationConfig {
	c := &ApplicationConfig{
		Name:        name,
		StartWidth:  1280,
		StartHeight: 720,
	}
	c.applyDefaults()
	return c
}

// LoadConfig reads an application config from a TOML file and applies
// defaults for anything unset.
func LoadConfig(path string) (*ApplicationConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &ApplicationConfig{}
	if err := toml.Unmarshal(buf, c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return c, nil
}

func (c *ApplicationConfig) applyDefaults() {
	if c.Name == "" {
		c.Name = "lumen"
	}
	if c.StartWidth == 0 {
		c.StartWidth = 1280
	}
	if c.StartHeight == 0 {
		c.StartHeight = 720
	}
	if c.MaxDeltaTime <= 0 {
		c.MaxDeltaTime = 0.1
	}
	if c.TimeScale == 0 {
		c.TimeScale = 1
	}
}

// Mode resolves the configured update mode string. Unknown values warn and
// fall back to modern.
func (c *ApplicationConfig) Mode() UpdateMode {
	switch c.UpdateMode {
	case "", "modern":
		return UpdateModeModern
	case "legacy":
		return UpdateModeLegacy
	default:
		core.LogWarn("unknown update mode '%s', falling back to modern", c.UpdateMode)
		return UpdateModeModern
	}
}
