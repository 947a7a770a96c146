package config

import (
	_ "embed"
)

//go:embed defaults/birdo.yaml
var defaultYAML []byte

// Default returns the reference configuration: a 300x512 unit world at 30
// ticks per second with the tuned pipe and physics constants.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:    300,
			Height:   512,
			TickRate: 30,
		},
		Physics: PhysicsConfig{
			Gravity:      1,
			JumpVelocity: -8,
			MaxFallSpeed: 10,
			MinVelocity:  -8,
		},
		Player: PlayerConfig{
			X:      100,
			StartY: 300,
			Width:  34,
			Height: 24,
		},
		Pipes: PipesConfig{
			Width:       52,
			Height:      270,
			Gap:         110,
			Speed:       -4,
			SpawnWindow: 5,
			PassWindow:  4,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}
