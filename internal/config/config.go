// Package config provides YAML-based configuration loading for the birdo
// simulation: world geometry, player physics, and pipe tuning.
package config

import "fmt"

// Config contains the full game configuration.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Pipes   PipesConfig   `yaml:"pipes"`
	Audio   AudioConfig   `yaml:"audio"`
}

// ScreenConfig defines the simulation world extent and tick rate.
// The world is measured in simulation units, not terminal cells; the
// platform scales it to whatever surface it renders on.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// PhysicsConfig defines player physics parameters, all in units per tick.
type PhysicsConfig struct {
	Gravity      int `yaml:"gravity"`       // Velocity gained per tick while falling
	JumpVelocity int `yaml:"jump_velocity"` // Velocity set on a flap (negative = up)
	MaxFallSpeed int `yaml:"max_fall_speed"`
	MinVelocity  int `yaml:"min_velocity"`
}

// PlayerConfig defines the player sprite geometry and spawn position.
type PlayerConfig struct {
	X      int `yaml:"x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PipesConfig defines pipe geometry and lifecycle tuning.
//
// SpawnWindow and PassWindow are tied to Speed: a pipe spawns when the
// oldest pair's x lands in (0, SpawnWindow), and a pass is scored when the
// player's midpoint lands within PassWindow of a pair's midpoint. Both
// windows must be at least |Speed| or a pair can step over them.
type PipesConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	Gap         int `yaml:"gap"`          // Vertical opening between top and bottom pipe
	Speed       int `yaml:"speed"`        // Horizontal velocity per tick (negative = leftward)
	SpawnWindow int `yaml:"spawn_window"` // Width of the spawn-trigger window at x=0
	PassWindow  int `yaml:"pass_window"`  // Width of the score-detection window
}

// AudioConfig controls the platform sound sink.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Validate checks the invariants the simulation relies on. A config that
// fails validation would miss spawns or score detections at runtime.
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Screen.TickRate)
	}
	if c.Pipes.Speed >= 0 {
		return fmt.Errorf("config: pipes.speed must be negative (leftward scroll), got %d", c.Pipes.Speed)
	}
	if c.Pipes.SpawnWindow <= -c.Pipes.Speed {
		// The trigger interval (0, spawn_window) is open at both ends, so
		// x values stepping by exactly the window width can jump over it.
		return fmt.Errorf("config: pipes.spawn_window %d must be wider than scroll step %d; spawns would be skipped",
			c.Pipes.SpawnWindow, -c.Pipes.Speed)
	}
	if c.Pipes.PassWindow < -c.Pipes.Speed {
		return fmt.Errorf("config: pipes.pass_window %d is narrower than scroll step %d; passes would be missed",
			c.Pipes.PassWindow, -c.Pipes.Speed)
	}
	if c.Pipes.Gap >= c.Pipes.Height {
		return fmt.Errorf("config: pipes.gap %d must be smaller than pipes.height %d", c.Pipes.Gap, c.Pipes.Height)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: physics.gravity must be positive, got %d", c.Physics.Gravity)
	}
	if c.Physics.JumpVelocity >= 0 {
		return fmt.Errorf("config: physics.jump_velocity must be negative (upward), got %d", c.Physics.JumpVelocity)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player dimensions must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	}
	return nil
}
