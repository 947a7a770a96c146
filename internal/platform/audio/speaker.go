package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tuigames/birdo/internal/sim"
)

const sampleRate = beep.SampleRate(48000)

// Speaker plays the game's sound effects through the system audio device.
// It implements sim.Audio. Callers that fail Open fall back to
// sim.NopAudio.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// Open initializes the audio device and starts the mixer.
func Open() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}

	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// Play synthesizes and queues the tone for the given effect.
func (s *Speaker) Play(e sim.Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	var streamer beep.Streamer
	switch e {
	case sim.EffectFlap:
		streamer = tone(620, 60*time.Millisecond, WaveSquare, sampleRate)
	case sim.EffectScore:
		streamer = beep.Seq(
			tone(880, 70*time.Millisecond, WaveSine, sampleRate),
			tone(1320, 90*time.Millisecond, WaveSine, sampleRate),
		)
	case sim.EffectCollision:
		streamer = tone(110, 280*time.Millisecond, WaveSaw, sampleRate)
	default:
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops all sounds.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

var _ sim.Audio = (*Speaker)(nil)
