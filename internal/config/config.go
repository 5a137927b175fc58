// Package config provides YAML-based scene configuration loading and
// preset management for the snowfall platform.
package config

// SnowConfig contains all configuration for a snowfall scene.
type SnowConfig struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Flakes  int           `yaml:"flakes"`
	Drift   DriftConfig   `yaml:"drift"`
	Display DisplayConfig `yaml:"display"`
}

// CanvasConfig defines the virtual canvas the simulation runs on.
// Canvas units are independent of the terminal cell grid; the scene
// projects canvas coordinates onto the screen at render time.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DriftConfig defines flake movement and the scripted wind schedule.
type DriftConfig struct {
	Near           Vec2    `yaml:"near"`             // Drift vector for the near (slow) half
	Far            Vec2    `yaml:"far"`              // Drift vector for the far (fast) half
	GustIntervalMS int64   `yaml:"gust_interval_ms"` // Wind-change interval; <= 0 disables gusts
	GustSpeed      float64 `yaml:"gust_speed"`       // Horizontal drift applied by a gust lock
}

// DisplayConfig defines presentation parameters with no effect on simulation.
type DisplayConfig struct {
	FrameRate  int    `yaml:"frame_rate"`
	Background string `yaml:"background"` // Hex color, e.g. "#0f141e"
	Caption    string `yaml:"caption"`    // Decorative window title
}

// Vec2 is a 2D vector in canvas units per frame.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Preset represents a named scene intensity.
type Preset string

const (
	PresetCalm     Preset = "calm"
	PresetClassic  Preset = "classic"
	PresetBlizzard Preset = "blizzard"
)

// ParsePreset converts a string to a Preset.
// Returns PresetClassic and false if the string is not recognized.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case PresetCalm, PresetClassic, PresetBlizzard:
		return Preset(s), true
	default:
		return PresetClassic, false
	}
}

// ApplyPreset modifies the config based on a scene preset.
// PresetClassic leaves the config untouched.
func ApplyPreset(cfg *SnowConfig, preset Preset) {
	switch preset {
	case PresetCalm:
		cfg.Flakes = 80
		cfg.Drift.Near = Vec2{X: 0, Y: 1}
		cfg.Drift.Far = Vec2{X: 1, Y: 2}
		cfg.Drift.GustIntervalMS = 0 // No gusts
	case PresetBlizzard:
		cfg.Flakes = 400
		cfg.Drift.Near = Vec2{X: 2, Y: 3}
		cfg.Drift.Far = Vec2{X: 5, Y: 5}
		cfg.Drift.GustIntervalMS = 6000
		cfg.Drift.GustSpeed = 120
	}
}
