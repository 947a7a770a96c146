// Package sim implements the birdo game simulation: player physics, pipe
// generation and recycling, collision detection, scoring, and the
// menu/play scene machine. It is pure, tick-driven, and single-threaded;
// rendering and audio are consumed through sink interfaces so the core can
// run headless under the environment adapter.
package sim

import "github.com/tuigames/birdo/internal/core"

// Asset identifies a drawable resource. The simulation only knows asset
// handles and positions; the platform decides what each asset looks like.
type Asset int

const (
	AssetBackground Asset = iota
	AssetBird
	AssetPipeTop
	AssetPipeBottom
	AssetMenu
)

// Effect identifies a sound effect. Playback is fire-and-forget.
type Effect int

const (
	EffectFlap Effect = iota
	EffectScore
	EffectCollision
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectFlap:
		return "flap"
	case EffectScore:
		return "score"
	case EffectCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Renderer receives draw requests from the active scene. Positions are in
// world units; the renderer scales them to its own surface. For DrawText
// the x coordinate is the anchor the text is centered on.
type Renderer interface {
	DrawSprite(a Asset, x, y int)
	DrawText(text string, x, y int, c core.Color)
	Present()
}

// Audio receives play-effect requests. Implementations must not block the
// tick; failures are the sink's concern, not the simulation's.
type Audio interface {
	Play(e Effect)
}

// NopRenderer discards all draw requests. Used for headless simulation.
type NopRenderer struct{}

func (NopRenderer) DrawSprite(Asset, int, int)             {}
func (NopRenderer) DrawText(string, int, int, core.Color) {}
func (NopRenderer) Present()                              {}

// NopAudio discards all effect requests.
type NopAudio struct{}

func (NopAudio) Play(Effect) {}
