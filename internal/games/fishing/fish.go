package fishing

import "github.com/vovakirdan/tui-fishing/internal/core"

// Direction is the horizontal heading of a fish.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Fish glyph dimensions.
const (
	FishWidth = 5
	FishLines = 3
)

var (
	fishLeftArt  = [FishLines]string{" /,", "<')=<", " \\`"}
	fishRightArt = [FishLines]string{" ,'", "=>('>", " '/"}
)

// Fish is one swimming entity. Pos is the left edge of its glyph.
type Fish struct {
	Pos          int
	Row          int
	Dir          Direction
	Width        int
	StepInterval int // ticks per one-column move
	StepCounter  int
}

// Art returns the glyph lines for the fish's heading.
func (f *Fish) Art() [FishLines]string {
	if f.Dir == DirLeft {
		return fishLeftArt
	}
	return fishRightArt
}

// Rect returns the cells covered by the fish glyph.
func (f *Fish) Rect() core.Rect {
	return core.NewRect(f.Pos, f.Row, f.Width, FishLines)
}

// Advance counts one tick and moves the fish a column when its interval
// elapses, wrapping at the viewport edges.
func (f *Fish) Advance(viewW int) {
	f.StepCounter++
	if f.StepCounter < f.StepInterval {
		return
	}
	f.StepCounter = 0
	f.Pos = wrapColumn(f.Pos+int(f.Dir), f.Width, viewW)
}

// Reverse flips the heading.
func (f *Fish) Reverse() {
	f.Dir = -f.Dir
}

// wrapColumn maps a candidate left edge back into [0, viewW-width].
// Leaving either side re-enters from the opposite side.
func wrapColumn(next, width, viewW int) int {
	maxStart := max(0, viewW-width)
	switch {
	case next < 0:
		return maxStart
	case next > maxStart:
		return 0
	default:
		return next
	}
}
