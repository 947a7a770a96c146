package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tuigames/birdo/internal/config"
	"github.com/tuigames/birdo/internal/core"
	"github.com/tuigames/birdo/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// ScreenRenderer draws the simulation into a cell buffer, scaling world
// units down to terminal cells. It implements sim.Renderer.
type ScreenRenderer struct {
	screen *core.Screen
	cfg    *config.Config
}

// NewScreenRenderer creates a renderer drawing into the given buffer.
func NewScreenRenderer(screen *core.Screen, cfg *config.Config) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, cfg: cfg}
}

func (r *ScreenRenderer) scaleX(x int) int {
	return x * r.screen.Width() / r.cfg.Screen.Width
}

func (r *ScreenRenderer) scaleY(y int) int {
	return y * r.screen.Height() / r.cfg.Screen.Height
}

// DrawSprite draws the asset at the given world position.
func (r *ScreenRenderer) DrawSprite(a sim.Asset, x, y int) {
	switch a {
	case sim.AssetBackground:
		r.screen.Clear()
		r.screen.DrawHLine(0, r.screen.Height()-1, r.screen.Width(), '▔', core.ColorGray)
	case sim.AssetBird:
		r.fillWorldRect(x, y, r.cfg.Player.Width, r.cfg.Player.Height, '█', core.ColorBrightYellow)
	case sim.AssetPipeTop, sim.AssetPipeBottom:
		r.fillWorldRect(x, y, r.cfg.Pipes.Width, r.cfg.Pipes.Height, '█', core.ColorGreen)
	case sim.AssetMenu:
		r.screen.DrawTextCentered(r.screen.Height()/4, "B I R D O", core.ColorBrightYellow)
		r.screen.DrawTextCentered(r.screen.Height()/4+2, "space to start, q to quit", core.ColorWhite)
	}
}

// DrawText draws text centered on the given world x position.
func (r *ScreenRenderer) DrawText(text string, x, y int, c core.Color) {
	cx := r.scaleX(x) - len(text)/2
	r.screen.DrawText(cx, r.scaleY(y), text, c)
}

// Present is a no-op: the Bubble Tea view pulls the finished buffer.
func (r *ScreenRenderer) Present() {}

// fillWorldRect fills the scaled rectangle, keeping at least one cell so
// small sprites never vanish at low terminal sizes.
func (r *ScreenRenderer) fillWorldRect(x, y, w, h int, fill rune, c core.Color) {
	x0, y0 := r.scaleX(x), r.scaleY(y)
	x1, y1 := r.scaleX(x+w), r.scaleY(y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	r.screen.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), fill, c)
}

var _ sim.Renderer = (*ScreenRenderer)(nil)
