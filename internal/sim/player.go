package sim

import (
	"github.com/tuigames/birdo/internal/config"
	"github.com/tuigames/birdo/internal/core"
)

// Player is the bird. Vertical velocity integrates gravity each tick; a
// jump replaces the velocity with the jump impulse and suppresses gravity
// for exactly one tick (the flap flag).
type Player struct {
	Sprite
	Velocity int

	flapping bool
	phys     config.PhysicsConfig
	worldH   int
}

// NewPlayer creates a player at the given position. The initial velocity
// equals the jump impulse, so a fresh scene starts with the bird rising.
func NewPlayer(x, y int, cfg *config.Config) *Player {
	return &Player{
		Sprite: Sprite{
			X:     x,
			Y:     y,
			W:     cfg.Player.Width,
			H:     cfg.Player.Height,
			Asset: AssetBird,
		},
		Velocity: cfg.Physics.JumpVelocity,
		phys:     cfg.Physics,
		worldH:   cfg.Screen.Height,
	}
}

// Jump sets the velocity to the jump impulse and arms the flap flag.
// Callable on any tick; the boundary clamp in Update handles the edges.
func (p *Player) Jump() {
	p.Velocity = p.phys.JumpVelocity
	p.flapping = true
}

// Update advances the player by one tick: apply gravity unless a flap was
// armed this tick, integrate position, and clamp to the world. Crossing
// either vertical bound zeroes the velocity.
func (p *Player) Update() {
	if p.flapping {
		p.flapping = false
	} else if p.Velocity < p.phys.MaxFallSpeed {
		p.Velocity += p.phys.Gravity
	}

	p.Y += p.Velocity

	if clamped := core.Clamp(p.Y, 0, p.worldH-p.H); clamped != p.Y {
		p.Y = clamped
		p.Velocity = 0
	}
}
