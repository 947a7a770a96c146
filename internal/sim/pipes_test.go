package sim

import (
	"math/rand"
	"testing"

	"github.com/tuigames/birdo/internal/config"
)

func TestGeneratePairGeometry(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		pp := GeneratePair(rng, &cfg)

		if pp.Top.X != cfg.Screen.Width {
			t.Fatalf("pair %d: top x = %d, want %d", i, pp.Top.X, cfg.Screen.Width)
		}
		if pp.Top.X != pp.Bottom.X {
			t.Fatalf("pair %d: top x %d != bottom x %d", i, pp.Top.X, pp.Bottom.X)
		}

		lo, hi := -cfg.Pipes.Height+cfg.Pipes.Gap, 0
		if pp.Top.Y < lo || pp.Top.Y >= hi {
			t.Fatalf("pair %d: top y = %d, want in [%d, %d)", i, pp.Top.Y, lo, hi)
		}

		if gap := pp.Bottom.Y - (pp.Top.Y + pp.Top.H); gap != cfg.Pipes.Gap {
			t.Fatalf("pair %d: gap = %d, want %d", i, gap, cfg.Pipes.Gap)
		}
	}
}

func TestPipePairUpdate(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(1))

	pp := GeneratePair(rng, &cfg)
	topY, bottomY := pp.Top.Y, pp.Bottom.Y

	pp.Update()

	if want := cfg.Screen.Width + cfg.Pipes.Speed; pp.Top.X != want {
		t.Errorf("top x = %d, want %d", pp.Top.X, want)
	}
	if pp.Top.X != pp.Bottom.X {
		t.Errorf("pair drifted apart: top %d, bottom %d", pp.Top.X, pp.Bottom.X)
	}
	if pp.Top.Y != topY || pp.Bottom.Y != bottomY {
		t.Error("pipe y changed on update")
	}
}

func TestPipeCollides(t *testing.T) {
	cfg := config.Default()

	pipe := Pipe{Sprite: Sprite{X: 100, Y: 0, W: 52, H: 270}}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 110, 100, true},
		{"left of pipe", 40, 100, false},
		{"below pipe", 110, 280, false},
		{"edge adjacent", 100 - cfg.Player.Width, 100, false},
		{"one unit overlap", 100 - cfg.Player.Width + 1, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.x, tt.y, &cfg)
			if got := pipe.Collides(p); got != tt.want {
				t.Errorf("Collides(player at %d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPipeCollidesCoincident(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Width, cfg.Player.Height = 50, 50
	player := NewPlayer(100, 300, &cfg)

	on := Pipe{Sprite: Sprite{X: 100, Y: 300, W: 50, H: 50}}
	if !on.Collides(player) {
		t.Error("coincident boxes should collide")
	}
	off := Pipe{Sprite: Sprite{X: 200, Y: 300, W: 50, H: 50}}
	if off.Collides(player) {
		t.Error("boxes with no x overlap should not collide")
	}
}

func TestPipePairMidX(t *testing.T) {
	pp := PipePair{
		Top:    Pipe{Sprite: Sprite{X: 100, W: 52}},
		Bottom: Pipe{Sprite: Sprite{X: 100, W: 52}},
	}
	if got := pp.MidX(); got != 126 {
		t.Errorf("MidX() = %d, want 126", got)
	}
}
