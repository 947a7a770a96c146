package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/tuigames/birdo/internal/config"
	"github.com/tuigames/birdo/internal/core"
	"github.com/tuigames/birdo/internal/sim"
	"github.com/tuigames/birdo/internal/storage"
)

// Model is the Bubble Tea model hosting the game machine. It collects key
// presses into an input frame, feeds the frame to the machine on every
// tick, and renders the active scene.
type Model struct {
	machine  *sim.Machine
	screen   *core.Screen
	renderer *ScreenRenderer
	store    *storage.Store
	cfg      *config.Config
	keys     *KeyMapper
	input    core.InputFrame
	quitting bool
}

// NewModel creates the terminal model. A zero seed picks a time-based one.
// The store may be nil; scores are then not persisted.
func NewModel(cfg *config.Config, seed int64, store *storage.Store, audio sim.Audio, width, height int) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Resized again on the first WindowSizeMsg.
	screen := core.NewScreen(width, height)

	return Model{
		machine:  sim.NewMachine(cfg, seed, sim.ModeInteractive, audio),
		screen:   screen,
		renderer: NewScreenRenderer(screen, cfg),
		store:    store,
		cfg:      cfg,
		keys:     NewKeyMapper(),
		input:    core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Screen.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.input) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick feeds the collected input frame to the machine and advances
// it one tick. A crash with a positive score is persisted once, here.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.machine.HandleInput(m.input)
	res := m.machine.Tick()

	if res.Collided && res.Score > 0 && m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(res.Score)
	}

	m.input.Clear()
	return m, tickCmd(m.cfg.Screen.TickRate)
}

// View renders the active scene to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.machine.Draw(m.renderer)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(cfg *config.Config, seed int64, store *storage.Store, audio sim.Audio) error {
	width, height := terminalSize()

	p := tea.NewProgram(
		NewModel(cfg, seed, store, audio, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// terminalSize probes the controlling terminal, falling back to 80x24.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
