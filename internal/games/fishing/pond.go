package fishing

import (
	"math/rand"

	"github.com/vovakirdan/tui-fishing/internal/config"
)

// Band is a vertical zone of the pond.
type Band int

const (
	BandShallow Band = iota
	BandMiddle
	BandDeep
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandShallow:
		return "shallow"
	case BandMiddle:
		return "middle"
	case BandDeep:
		return "deep"
	default:
		return "unknown"
	}
}

// Boat art, two rows above the water surface.
const (
	boatTop  = "    __/\\__   "
	boatHull = "___/______\\__"

	BoatWidth = len(boatHull)
)

// Pond holds the layout derived from the viewport.
type Pond struct {
	Width, Height int

	WaterRow   int // surface row, full of '~'
	BoatRow    int // top row of the boat
	Top        int // first row fish may occupy
	Bottom     int
	BandHeight int

	MaxHookDepth int
}

// NewPond computes the layout for a w by h viewport. Tiny viewports are
// clamped so every band keeps at least one row.
func NewPond(w, h int) Pond {
	p := Pond{Width: max(0, w), Height: max(0, h)}
	p.WaterRow = p.Height / 4
	p.BoatRow = p.WaterRow - 2
	p.Top = p.WaterRow + 3
	p.Bottom = p.Height - 1

	span := max(3, p.Bottom-p.Top-FishLines)
	p.BandHeight = max(1, span/3)

	p.MaxHookDepth = max(0, p.Height-p.Height/4-4)
	return p
}

// BandRange returns the rows [lo, hi) a fish in band b may start on.
func (p Pond) BandRange(b Band) (lo, hi int) {
	switch b {
	case BandShallow:
		lo, hi = p.Top, p.Top+p.BandHeight
	case BandMiddle:
		lo, hi = p.Top+p.BandHeight, p.Top+2*p.BandHeight
	default:
		lo, hi = p.Top+2*p.BandHeight, p.Bottom-FishLines
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// RespawnRange returns the rows a caught fish re-enters on: the shallow
// and middle bands together.
func (p Pond) RespawnRange() (lo, hi int) {
	lo, _ = p.BandRange(BandShallow)
	_, hi = p.BandRange(BandMiddle)
	return lo, hi
}

// HookColumn returns the column of the line for a boat at boatCol.
func (p Pond) HookColumn(boatCol int) int {
	return boatCol + BoatWidth/2
}

// HookRow returns the row of the hook tip at the given depth.
func (p Pond) HookRow(depth int) int {
	return p.WaterRow + 1 + depth
}

// MaxBoatColumn returns the rightmost column the boat may start at.
func (p Pond) MaxBoatColumn() int {
	return max(0, p.Width-BoatWidth-1)
}

// maxFishColumn returns the rightmost left edge for a fish glyph.
func (p Pond) maxFishColumn() int {
	return max(0, p.Width-FishWidth)
}

// bandFor assigns the i-th of n spawned fish to a band. Fish are dealt
// middle first, then deep, then shallow, in proportion to the weights.
func bandFor(i, n int, w config.BandWeights) Band {
	total := w.Total()
	if total <= 0 || n <= 0 {
		return BandMiddle
	}
	slot := i * total / n
	switch {
	case slot < w.Middle:
		return BandMiddle
	case slot < w.Middle+w.Deep:
		return BandDeep
	default:
		return BandShallow
	}
}

// randIn returns a value in [lo, hi), or lo when the range is empty.
func randIn(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

func randDir(rng *rand.Rand) Direction {
	if rng.Intn(2) == 0 {
		return DirLeft
	}
	return DirRight
}

// spawnFish creates the initial population.
func spawnFish(rng *rand.Rand, p Pond, cfg config.PondConfig) []Fish {
	fish := make([]Fish, cfg.FishCount)
	for i := range fish {
		lo, hi := p.BandRange(bandFor(i, cfg.FishCount, cfg.Bands))
		fish[i] = Fish{
			Pos:          randIn(rng, 0, p.maxFishColumn()),
			Row:          randIn(rng, lo, hi),
			Dir:          randDir(rng),
			Width:        FishWidth,
			StepInterval: randIn(rng, cfg.MinStepInterval, cfg.MaxStepInterval+1),
		}
	}
	return fish
}

// respawn moves a caught fish to a fresh spot in the upper bands.
func respawn(rng *rand.Rand, p Pond, f *Fish) {
	lo, hi := p.RespawnRange()
	f.Pos = randIn(rng, 0, p.maxFishColumn())
	f.Row = randIn(rng, lo, hi)
	f.Dir = randDir(rng)
	f.StepCounter = 0
}
