package core

import (
	"strings"
)

// Surface is the drawing contract the game renders through.
// Implementations clip out-of-bounds writes silently.
type Surface interface {
	// Size returns the visible area in cells.
	Size() (width, height int)
	// PutGlyph writes a single rune at column x, row y.
	PutGlyph(x, y int, r rune, c Color)
	// PutString writes at most maxLen runes of text starting at (x, y).
	// A negative maxLen means no limit.
	PutString(x, y int, text string, maxLen int, c Color)
	// Clear blanks the whole surface.
	Clear()
}

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer for rendering game graphics.
// The buffer persists between frames: whatever is not erased stays visible,
// exactly like a curses window.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

var _ Surface = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(0, width),
		height: max(0, height),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Size returns the screen dimensions.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune at the given position with the default color.
func (s *Screen) Set(x, y int, r rune) {
	s.PutGlyph(x, y, r, ColorDefault)
}

// PutGlyph places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) PutGlyph(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// PutString writes text horizontally starting at (x, y), clipped to maxLen
// runes and to the screen bounds.
func (s *Screen) PutString(x, y int, text string, maxLen int, c Color) {
	i := 0
	for _, r := range text {
		if maxLen >= 0 && i >= maxLen {
			return
		}
		s.PutGlyph(x+i, y, r, c)
		i++
	}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.PutString(x, y, text, -1, ColorDefault)
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Count returns how many cells currently hold the rune r.
func (s *Screen) Count(r rune) int {
	n := 0
	for y := range s.cells {
		for _, c := range s.cells[y] {
			if c.Rune == r {
				n++
			}
		}
	}
	return n
}
