package config

import (
	_ "embed"
)

//go:embed defaults/fluppy.yaml
var defaultYAML []byte

// Default returns the built-in configuration. Values match the original
// desktop release of the game: a 576x1024 world at 60 ticks per second.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:        576,
			Height:       1024,
			GroundHeight: 50,
		},
		Physics: PhysicsConfig{
			Gravity:      2200,
			FlapVelocity: -760,
			MaxDropSpeed: 1020,
			MaxTickDelta: 0.05,
		},
		Bird: BirdConfig{
			BaseWidth:      512,
			BaseHeight:     457,
			XFraction:      0.25,
			AnimationMs:    120,
			FrameCount:     3,
			FloatAmplitude: 8,
			FloatSpeed:     2.2,
		},
		Pipes: PipesConfig{
			Width:         140,
			SpawnOffset:   100,
			DespawnMargin: 10,
			Margin:        180,
		},
		Layers: []LayerConfig{
			{Name: "clouds", Speed: 12},
			{Name: "trees", Speed: 30},
			{Name: "buildings", Speed: 60},
		},
		Presets: []Preset{
			{
				Name:            "easy",
				PipeSpeed:       180,
				PipeGap:         320,
				SpawnIntervalMs: 1750,
				BirdScale:       0.166,
			},
			{
				Name:            "normal",
				PipeSpeed:       220,
				PipeGap:         260,
				SpawnIntervalMs: 1600,
				BirdScale:       0.187,
			},
			{
				Name:            "hard",
				PipeSpeed:       260,
				PipeGap:         220,
				SpawnIntervalMs: 1450,
				BirdScale:       0.208,
				Sway: SwayConfig{
					Enabled:   true,
					Amplitude: 40,
					Speed:     2.2,
				},
			},
		},
	}
}
