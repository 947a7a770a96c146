package sim

import (
	"math/rand"

	"github.com/tuigames/birdo/internal/config"
)

// Pipe is one half of an obstacle pair, scrolling left at a constant
// velocity.
type Pipe struct {
	Sprite
	Velocity int
}

// Update advances the pipe by one tick.
func (p *Pipe) Update() {
	p.X += p.Velocity
}

// Collides reports whether the pipe's rectangle overlaps the player's.
func (p Pipe) Collides(player *Player) bool {
	return p.Bounds().Intersects(player.Bounds())
}

// PipePair is a top/bottom obstacle pair sharing one scroll velocity and a
// fixed vertical gap.
type PipePair struct {
	Top    Pipe
	Bottom Pipe
}

// Update advances both pipes by one tick.
func (pp *PipePair) Update() {
	pp.Top.Update()
	pp.Bottom.Update()
}

// MidX returns the horizontal midpoint of the pair, used for score
// detection.
func (pp PipePair) MidX() int {
	return pp.Top.Bounds().MidX()
}

// GeneratePair creates a fresh pair at the right world edge. The top
// pipe's y is uniform in [-pipeHeight+gap, 0), which keeps the gap fully
// on screen; the bottom pipe sits exactly gap units below the top pipe's
// lower edge.
func GeneratePair(rng *rand.Rand, cfg *config.Config) PipePair {
	pipeY := -cfg.Pipes.Height + cfg.Pipes.Gap + rng.Intn(cfg.Pipes.Height-cfg.Pipes.Gap)
	x := cfg.Screen.Width

	top := Pipe{
		Sprite: Sprite{
			X:     x,
			Y:     pipeY,
			W:     cfg.Pipes.Width,
			H:     cfg.Pipes.Height,
			Asset: AssetPipeTop,
		},
		Velocity: cfg.Pipes.Speed,
	}
	bottom := Pipe{
		Sprite: Sprite{
			X:     x,
			Y:     pipeY + cfg.Pipes.Height + cfg.Pipes.Gap,
			W:     cfg.Pipes.Width,
			H:     cfg.Pipes.Height,
			Asset: AssetPipeBottom,
		},
		Velocity: cfg.Pipes.Speed,
	}

	return PipePair{Top: top, Bottom: bottom}
}
