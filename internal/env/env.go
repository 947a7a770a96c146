// Package env wraps the birdo simulation in an episodic reinforcement
// learning interface: discrete actions in, observation vectors and scalar
// rewards out. The environment always runs the simulation headless in
// agent mode, so a crash rolls straight into a fresh episode.
package env

import (
	"errors"
	"fmt"
	"math"

	"github.com/tuigames/birdo/internal/config"
	"github.com/tuigames/birdo/internal/core"
	"github.com/tuigames/birdo/internal/sim"
)

// ErrInvalidAction is returned by Step for actions outside the action
// space.
var ErrInvalidAction = errors.New("invalid action")

// Action is a discrete environment action.
type Action int

const (
	// ActionFlap makes the bird jump this tick.
	ActionFlap Action = 0
	// ActionNoOp lets gravity act.
	ActionNoOp Action = 1
)

func (a Action) String() string {
	switch a {
	case ActionFlap:
		return "flap"
	case ActionNoOp:
		return "noop"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Observation is the agent-visible state: the bird's vertical velocity and
// its distances to the leading pipe pair, all in simulation units.
type Observation struct {
	PlayerVelocity float64
	XDistance      float64
	YUpperDistance float64
	YLowerDistance float64
}

// Vector returns the observation as a flat vector, ordered as the fields
// are declared.
func (o Observation) Vector() [4]float64 {
	return [4]float64{o.PlayerVelocity, o.XDistance, o.YUpperDistance, o.YLowerDistance}
}

// Bounds is a closed scalar interval.
type Bounds struct {
	Low  float64
	High float64
}

// Space describes the observation space, one interval per observation
// field.
type Space struct {
	PlayerVelocity Bounds
	XDistance      Bounds
	YUpperDistance Bounds
	YLowerDistance Bounds
}

// Info carries diagnostic values alongside a step result. Score is the
// episode score as of the step, before any crash reset.
type Info struct {
	Score int
}

// StepResult is the outcome of one environment step.
type StepResult struct {
	Observation Observation
	Reward      float64
	Terminated  bool
	Truncated   bool
	Info        Info
}

// Env is an episodic environment over the birdo simulation.
type Env struct {
	cfg     *config.Config
	machine *sim.Machine
	ticks   int
}

// New creates an environment with the given tuning and pipe seed.
func New(cfg *config.Config, seed int64) *Env {
	return &Env{
		cfg:     cfg,
		machine: sim.NewMachine(cfg, seed, sim.ModeAgent, sim.NopAudio{}),
	}
}

// Reset starts a fresh episode and returns its first observation and
// info record. A
// non-zero seed reseeds pipe generation; zero continues the current
// stream, which keeps back-to-back episodes independent but reproducible
// from the constructor seed.
func (e *Env) Reset(seed int64) (Observation, Info) {
	if seed != 0 {
		e.machine = sim.NewMachine(e.cfg, seed, sim.ModeAgent, sim.NopAudio{})
	} else {
		e.machine.Reset()
	}
	e.ticks = 0
	return e.observe(), e.info()
}

// Step applies the action, advances the simulation one tick, and scores
// the outcome: +1 for clearing a pipe pair, -500 and termination on a
// crash. After a terminal step the returned observation already belongs
// to the next episode.
func (e *Env) Step(a Action) (StepResult, error) {
	if a != ActionFlap && a != ActionNoOp {
		return StepResult{}, fmt.Errorf("%w: %d", ErrInvalidAction, int(a))
	}

	in := core.NewInputFrame()
	if a == ActionFlap {
		in.Set(core.ActionJump)
	}
	e.machine.HandleInput(in)

	game, _ := e.machine.Game()
	res := e.machine.Tick()
	e.ticks++

	out := StepResult{Info: Info{Score: res.Score}}
	if res.Collided {
		out.Reward = -500
		out.Terminated = true
		e.ticks = 0
	} else if game.ConsumePass() {
		out.Reward = 1
	}
	out.Observation = e.observe()
	return out, nil
}

// Ticks returns the number of steps taken in the current episode.
func (e *Env) Ticks() int {
	return e.ticks
}

// ObservationSpace returns the per-field observation bounds, derived from
// the world geometry.
func (e *Env) ObservationSpace() Space {
	sc, ph := e.cfg.Screen, e.cfg.Physics
	pl, pp := e.cfg.Player, e.cfg.Pipes

	right := pl.X + pl.Width
	return Space{
		PlayerVelocity: Bounds{
			Low:  float64(ph.MinVelocity),
			High: float64(ph.MaxFallSpeed),
		},
		XDistance: Bounds{
			Low:  float64(-right),
			High: float64(sc.Width - right),
		},
		YUpperDistance: Bounds{
			Low:  float64(-(pp.Height - 1)),
			High: float64(sc.Height - pl.Height - pp.Gap),
		},
		YLowerDistance: Bounds{
			Low:  float64(2*pp.Gap - sc.Height),
			High: float64(pp.Height + pp.Gap - 1 - pl.Height),
		},
	}
}

// ActionSpace returns the number of discrete actions.
func (e *Env) ActionSpace() int {
	return 2
}

// RewardRange returns the smallest and largest per-step reward.
func (e *Env) RewardRange() (low, high float64) {
	return -500, math.Inf(1)
}

func (e *Env) info() Info {
	game, _ := e.machine.Game()
	return Info{Score: game.Score()}
}

func (e *Env) observe() Observation {
	game, _ := e.machine.Game()
	return Observation{
		PlayerVelocity: float64(game.Player().Velocity),
		XDistance:      float64(game.HorizontalPipeDistance()),
		YUpperDistance: float64(game.UpperPipeDistance()),
		YLowerDistance: float64(game.LowerPipeDistance()),
	}
}
