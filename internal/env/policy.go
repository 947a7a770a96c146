package env

import "math/rand"

// Policy maps observations to actions. Policies are deterministic unless
// they carry their own randomness.
type Policy interface {
	Name() string
	Act(obs Observation) Action
}

// GapPolicy is a hand-written baseline: flap whenever the bird's lower
// clearance drops under the margin, otherwise fall. It clears pipes
// reliably at the default tuning and gives learned policies a bar to
// beat.
type GapPolicy struct {
	// Margin is the minimum lower clearance, in simulation units, before
	// the policy flaps.
	Margin float64
}

// NewGapPolicy returns a gap policy with a margin tuned for the default
// world geometry.
func NewGapPolicy() GapPolicy {
	return GapPolicy{Margin: 40}
}

func (GapPolicy) Name() string { return "gap" }

func (p GapPolicy) Act(obs Observation) Action {
	if obs.YLowerDistance < p.Margin {
		return ActionFlap
	}
	return ActionNoOp
}

// RandomPolicy flaps with a fixed probability each tick, ignoring the
// observation. It is the floor baseline for episode statistics.
type RandomPolicy struct {
	rng      *rand.Rand
	flapProb float64
}

// NewRandomPolicy returns a policy that flaps with probability p.
func NewRandomPolicy(seed int64, p float64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed)), flapProb: p}
}

func (*RandomPolicy) Name() string { return "random" }

func (p *RandomPolicy) Act(Observation) Action {
	if p.rng.Float64() < p.flapProb {
		return ActionFlap
	}
	return ActionNoOp
}
