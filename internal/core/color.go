package core

// Color represents a foreground color for a screen cell.
// The pond palette is a fixed set of ANSI colors used only for grouping
// visual elements.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
)
