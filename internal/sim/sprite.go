package sim

import "github.com/tuigames/birdo/internal/core"

// Sprite is the shared record of every game object: a position, a size,
// and the asset handle the renderer resolves. Variants (player, pipe,
// background) embed it and add their own behavior.
type Sprite struct {
	X, Y  int
	W, H  int
	Asset Asset
}

// Bounds returns the sprite's collision rectangle.
func (s Sprite) Bounds() core.Rect {
	return core.NewRect(s.X, s.Y, s.W, s.H)
}
