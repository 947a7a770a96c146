package sim

import (
	"math/rand"
	"strconv"

	"github.com/tuigames/birdo/internal/config"
	"github.com/tuigames/birdo/internal/core"
)

// Transition is the result of a scene update or input pass, consumed by
// the Machine that owns scene construction and teardown.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionToMenu
	TransitionToPlay
)

// Scene is one state of the game: the main menu or the live play scene.
// A scene exclusively owns its entities; replacing it discards them all.
type Scene interface {
	// HandleInput reacts to the actions collected for this tick and may
	// request a transition.
	HandleInput(in core.InputFrame) Transition

	// Update advances the scene by one tick and may request a transition.
	Update() Transition

	// Draw issues the scene's draw requests to the renderer.
	Draw(r Renderer)
}

// MainMenu shows an idle player and a decorative, continuously looping
// pipe pair. A confirm input starts the game.
type MainMenu struct {
	cfg        *config.Config
	player     *Player
	pipes      PipePair
	background Sprite
}

// NewMainMenu creates the menu scene. The decorative pair gets a widened
// gap centered on the idle player so the menu never looks like a crash.
func NewMainMenu(cfg *config.Config, rng *rand.Rand) *MainMenu {
	w, h := cfg.Screen.Width, cfg.Screen.Height

	player := NewPlayer(w/2-20, h/2, cfg)

	pipes := GeneratePair(rng, cfg)
	menuGap := cfg.Pipes.Gap + 60
	pipes.Top.Y = h/2 - menuGap/2 - cfg.Pipes.Height
	pipes.Bottom.Y = h/2 + menuGap/2
	pipes.Top.X -= 100
	pipes.Bottom.X -= 100

	return &MainMenu{
		cfg:        cfg,
		player:     player,
		pipes:      pipes,
		background: Sprite{X: 0, Y: 0, W: w, H: h, Asset: AssetBackground},
	}
}

// HandleInput starts the game on a confirm or jump input.
func (m *MainMenu) HandleInput(in core.InputFrame) Transition {
	if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
		return TransitionToPlay
	}
	return TransitionNone
}

// Update scrolls the decorative pair and wraps it around once it leaves
// the left edge. The idle player has no physics.
func (m *MainMenu) Update() Transition {
	m.pipes.Update()

	wrap := -2 * m.cfg.Pipes.Width
	if m.pipes.Top.X < wrap {
		reset := m.cfg.Screen.Width - wrap
		m.pipes.Top.X = reset
		m.pipes.Bottom.X = reset
	}
	return TransitionNone
}

// Draw renders the background, the idle scene, and the menu overlay.
func (m *MainMenu) Draw(r Renderer) {
	r.DrawSprite(m.background.Asset, m.background.X, m.background.Y)
	r.DrawSprite(m.player.Asset, m.player.X, m.player.Y)
	r.DrawSprite(m.pipes.Top.Asset, m.pipes.Top.X, m.pipes.Top.Y)
	r.DrawSprite(m.pipes.Bottom.Asset, m.pipes.Bottom.X, m.pipes.Bottom.Y)
	r.DrawSprite(AssetMenu, 0, 0)
}

// GameScene is the live play scene: the player, the scrolling pipe
// sequence (oldest first), and the score.
type GameScene struct {
	cfg   *config.Config
	rng   *rand.Rand
	audio Audio
	agent bool

	player     *Player
	pipes      []PipePair
	background Sprite
	score      int
	passedPipe bool
}

// NewGameScene creates a fresh play scene with one generated pair at the
// right edge. In agent mode a collision self-transitions into a new
// GameScene instead of returning to the menu.
func NewGameScene(cfg *config.Config, rng *rand.Rand, audio Audio, agent bool) *GameScene {
	pipes := make([]PipePair, 0, 4)
	pipes = append(pipes, GeneratePair(rng, cfg))

	return &GameScene{
		cfg:        cfg,
		rng:        rng,
		audio:      audio,
		agent:      agent,
		player:     NewPlayer(cfg.Player.X, cfg.Player.StartY, cfg),
		pipes:      pipes,
		background: Sprite{X: 0, Y: 0, W: cfg.Screen.Width, H: cfg.Screen.Height, Asset: AssetBackground},
	}
}

// HandleInput applies this tick's actions: jump flaps the player, menu
// returns to the main menu.
func (g *GameScene) HandleInput(in core.InputFrame) Transition {
	if in.Has(core.ActionJump) {
		g.audio.Play(EffectFlap)
		g.player.Jump()
	}
	if in.Has(core.ActionMenu) {
		return TransitionToMenu
	}
	return TransitionNone
}

// Update runs one tick of the play scene in fixed order: collision check
// first (on last tick's positions), then score detection, then entity
// movement, then pipe lifecycle. On a collision the scene stops and
// requests its exit transition.
func (g *GameScene) Update() Transition {
	if g.CheckCollisions() {
		g.audio.Play(EffectCollision)
		if g.agent {
			return TransitionToPlay
		}
		return TransitionToMenu
	}

	g.checkPassed()

	g.player.Update()
	for i := range g.pipes {
		g.pipes[i].Update()
	}

	g.checkPipes()
	return TransitionNone
}

// checkPassed scores a pass when the player's horizontal midpoint lands in
// the detection window at a pair's midpoint. The window width matches the
// scroll step, so each pair scores exactly once.
func (g *GameScene) checkPassed() {
	playerMid := g.player.Bounds().MidX()
	for i := range g.pipes {
		pipeMid := g.pipes[i].MidX()
		if pipeMid <= playerMid && playerMid < pipeMid+g.cfg.Pipes.PassWindow {
			g.audio.Play(EffectScore)
			g.score++
			g.passedPipe = true
		}
	}
}

// checkPipes runs the obstacle lifecycle on the oldest pair: spawn a new
// pair when it enters the trigger window near the left generation
// boundary, and drop it once it is fully off screen. Both checks run
// every tick; they are independent.
func (g *GameScene) checkPipes() {
	if x := g.pipes[0].Top.X; 0 < x && x < g.cfg.Pipes.SpawnWindow {
		g.pipes = append(g.pipes, GeneratePair(g.rng, g.cfg))
	}

	if g.pipes[0].Top.X < -g.cfg.Pipes.Width {
		g.pipes = append(g.pipes[:0], g.pipes[1:]...)
	}

	// A spawn window no wider than the scroll step can jump over the
	// open trigger interval; respawn rather than run out of obstacles.
	if len(g.pipes) == 0 {
		g.pipes = append(g.pipes, GeneratePair(g.rng, g.cfg))
	}
}

// CheckCollisions reports whether the player overlaps any pipe of any
// active pair or rests on the ground.
func (g *GameScene) CheckCollisions() bool {
	for i := range g.pipes {
		if g.pipes[i].Top.Collides(g.player) || g.pipes[i].Bottom.Collides(g.player) {
			return true
		}
	}
	return g.player.Y+g.player.H >= g.cfg.Screen.Height
}

// Draw renders the background, the player, every pipe, and the score.
func (g *GameScene) Draw(r Renderer) {
	r.DrawSprite(g.background.Asset, g.background.X, g.background.Y)
	r.DrawSprite(g.player.Asset, g.player.X, g.player.Y)
	for i := range g.pipes {
		r.DrawSprite(g.pipes[i].Top.Asset, g.pipes[i].Top.X, g.pipes[i].Top.Y)
		r.DrawSprite(g.pipes[i].Bottom.Asset, g.pipes[i].Bottom.X, g.pipes[i].Bottom.Y)
	}
	r.DrawText(strconv.Itoa(g.score), g.cfg.Screen.Width/2, 50, core.ColorWhite)
}

// Score returns the current score.
func (g *GameScene) Score() int {
	return g.score
}

// ConsumePass returns the edge-triggered pass flag and clears it. The
// environment adapter reads it once per tick.
func (g *GameScene) ConsumePass() bool {
	passed := g.passedPipe
	g.passedPipe = false
	return passed
}

// Player returns the live player.
func (g *GameScene) Player() *Player {
	return g.player
}

// LeadingPair returns the most recently spawned pair, the one the player
// has not yet passed.
func (g *GameScene) LeadingPair() PipePair {
	return g.pipes[len(g.pipes)-1]
}

// Pairs returns the active pairs, oldest first.
func (g *GameScene) Pairs() []PipePair {
	return g.pipes
}

// HorizontalPipeDistance returns the leading pipe's x minus the player's
// right edge. Negative once the player is past the pipe's left edge.
func (g *GameScene) HorizontalPipeDistance() int {
	return g.LeadingPair().Top.X - (g.player.X + g.player.W)
}

// UpperPipeDistance returns the player's top minus the leading top pipe's
// lower edge. Negative when the player is inside or above the top pipe.
func (g *GameScene) UpperPipeDistance() int {
	top := g.LeadingPair().Top
	return g.player.Y - (top.Y + top.H)
}

// LowerPipeDistance returns the leading bottom pipe's top minus the
// player's bottom edge. Negative when the player is below the gap.
func (g *GameScene) LowerPipeDistance() int {
	return g.LeadingPair().Bottom.Y - (g.player.Y + g.player.H)
}
