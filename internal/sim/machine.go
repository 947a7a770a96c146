package sim

import (
	"math/rand"

	"github.com/tuigames/birdo/internal/config"
	"github.com/tuigames/birdo/internal/core"
)

// Mode selects who drives the game and what a crash means.
type Mode int

const (
	// ModeInteractive starts in the main menu; a collision returns there.
	ModeInteractive Mode = iota
	// ModeAgent starts directly in play; a collision resets the play
	// scene so the environment adapter can run back-to-back episodes.
	ModeAgent
)

// TickResult reports what happened during one machine tick.
type TickResult struct {
	Transition Transition
	Collided   bool
	Score      int // Score of the play scene as of this tick, pre-reset on a crash
}

// Machine owns the active scene and applies transitions. All scene
// construction and teardown goes through it; scenes never outlive a
// transition.
type Machine struct {
	cfg   *config.Config
	rng   *rand.Rand
	audio Audio
	mode  Mode
	scene Scene
}

// NewMachine creates a machine seeded for deterministic pipe placement.
// Interactive machines start in the menu, agent machines directly in play.
func NewMachine(cfg *config.Config, seed int64, mode Mode, audio Audio) *Machine {
	if audio == nil {
		audio = NopAudio{}
	}

	m := &Machine{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		audio: audio,
		mode:  mode,
	}

	if mode == ModeAgent {
		m.scene = NewGameScene(cfg, m.rng, audio, true)
	} else {
		m.scene = NewMainMenu(cfg, m.rng)
	}
	return m
}

// HandleInput forwards this tick's actions to the active scene and applies
// any transition it requests.
func (m *Machine) HandleInput(in core.InputFrame) Transition {
	tr := m.scene.HandleInput(in)
	m.apply(tr)
	return tr
}

// Tick advances the active scene by one tick and applies any transition.
// A non-none transition out of the play scene always means a collision.
func (m *Machine) Tick() TickResult {
	tr := m.scene.Update()
	res := TickResult{Transition: tr}

	if g, ok := m.scene.(*GameScene); ok {
		res.Score = g.Score()
		res.Collided = tr != TransitionNone
	}

	m.apply(tr)
	return res
}

// Draw renders the active scene and presents the frame.
func (m *Machine) Draw(r Renderer) {
	m.scene.Draw(r)
	r.Present()
}

// Reset discards the active scene and starts a fresh play scene. Used by
// the environment adapter between episodes.
func (m *Machine) Reset() {
	m.apply(TransitionToPlay)
}

// Scene returns the active scene.
func (m *Machine) Scene() Scene {
	return m.scene
}

// Game returns the active play scene, if the machine is in one.
func (m *Machine) Game() (*GameScene, bool) {
	g, ok := m.scene.(*GameScene)
	return g, ok
}

func (m *Machine) apply(tr Transition) {
	switch tr {
	case TransitionToMenu:
		m.scene = NewMainMenu(m.cfg, m.rng)
	case TransitionToPlay:
		m.scene = NewGameScene(m.cfg, m.rng, m.audio, m.mode == ModeAgent)
	}
}
