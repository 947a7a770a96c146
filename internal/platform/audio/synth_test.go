package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestOscillatorRangeAndLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		osc := newOscillator(440, 100*time.Millisecond, wave, rate)

		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		if !ok || n != 100 {
			t.Fatalf("wave %d: Stream() = %d, %v, want 100, true", wave, n, ok)
		}

		for i := 0; i < n; i++ {
			if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
				t.Fatalf("wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Fatalf("wave %d: sample %d channels differ", wave, i)
			}
		}

		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error: %v", wave, osc.Err())
		}
	}
}

func TestOscillatorEndsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	total := rate.N(duration)

	osc := newOscillator(440, duration, WaveSine, rate)

	streamed := 0
	samples := make([][2]float64, 128)
	for {
		n, ok := osc.Stream(samples)
		streamed += n
		if !ok {
			break
		}
	}

	if streamed != total {
		t.Errorf("streamed %d samples, want %d", streamed, total)
	}
}

func TestEnvelopeRampsUpAndDown(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 20 * time.Millisecond

	// A square wave gives constant amplitude, so the envelope's shape is
	// directly visible in the output.
	osc := newOscillator(100, duration, WaveSquare, rate)
	env := newEnvelope(osc, duration, 5*time.Millisecond, 5*time.Millisecond, rate)

	total := rate.N(duration)
	samples := make([][2]float64, total)
	n, _ := env.Stream(samples)
	if n != total {
		t.Fatalf("Stream() = %d samples, want %d", n, total)
	}

	first := samples[0][0]
	if first < -0.05 || first > 0.05 {
		t.Errorf("attack start amplitude = %f, want near 0", first)
	}

	mid := samples[total/2][0]
	if mid != 1.0 && mid != -1.0 {
		t.Errorf("sustain amplitude = %f, want full scale", mid)
	}

	last := samples[n-1][0]
	if last < -0.05 || last > 0.05 {
		t.Errorf("release end amplitude = %f, want near 0", last)
	}
}
