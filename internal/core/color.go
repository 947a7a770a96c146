package core

// Color is a foreground color for a screen cell, resolved to a concrete
// terminal color by the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightGreen
	ColorOrange
	ColorGray
)
