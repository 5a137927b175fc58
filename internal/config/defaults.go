package config

import (
	_ "embed"
)

//go:embed defaults/snow.yaml
var defaultSnowYAML []byte

// DefaultSnowConfig returns the default snowfall configuration.
func DefaultSnowConfig() SnowConfig {
	return SnowConfig{
		Canvas: CanvasConfig{
			Width:  700,
			Height: 500,
		},
		Flakes: 200,
		Drift: DriftConfig{
			Near:           Vec2{X: 1, Y: 2},
			Far:            Vec2{X: 4, Y: 4},
			GustIntervalMS: 10000,
			GustSpeed:      100,
		},
		Display: DisplayConfig{
			FrameRate:  24,
			Background: "#0f141e",
			Caption:    "Tried to check if I kept the caption, did you? Ba. Haha. Bahaha. Outsmarted!",
		},
	}
}

// DefaultSnowYAML returns the embedded default YAML.
func DefaultSnowYAML() []byte {
	return defaultSnowYAML
}
