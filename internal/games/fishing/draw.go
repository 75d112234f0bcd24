package fishing

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// Scenery
const (
	waveChars  = "~~~~    "
	mossHeight = 5
	boatErase  = BoatWidth + 1
)

var (
	mossNormal = [mossHeight]string{"(", " )", "(", " )", "("}
	mossSwayed = [mossHeight]string{" )", "(", " )", "(", " )"}

	castleArt = []string{
		"               T~~",
		"               |",
		"              /^\\",
		"             /   \\",
		" _   _   _  /     \\  _   _   _",
		"[ ]_[ ]_[ ]/ _   _ \\[ ]_[ ]_[ ]",
		"|_=__-_ =_|_[ ]_[ ]_|_=-___-__|",
		" | _- =  | =_ = _    |= _=   |",
		" |= -[]  |- = _ =    |_-=_[] |",
		" | =_    |= - ___    | =_ =  |",
		" |=  []- |-  /| |\\   |=_ =[] |",
		" |- =_   |=|       | |- = -  |",
		" |_______|__|_|_|_|__|_______|",
	}
	castleWidth = widest(castleArt)
)

func widest(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	return w
}

// borderAnim advances the scenery once per wall-clock second.
type borderAnim struct {
	lastSecond int64
	swayed     bool
	waveOffset int
}

func (b *borderAnim) advance(now int64) {
	if now == b.lastSecond {
		return
	}
	b.swayed = !b.swayed
	b.waveOffset = (b.waveOffset + 1) % len(waveChars)
	b.lastSecond = now
}

// mossColumns returns where the moss tufts grow for a viewport width.
func mossColumns(w int) []int {
	half := w / 2
	return []int{5, 10, 15, 20, half, half + 10, half + 15, half + 20, half + 40, half + 45}
}

func (g *Game) drawBorder() {
	g.border.advance(g.clock.Now().Unix())
	w, h := g.pond.Width, g.pond.Height

	moss := mossNormal
	if g.border.swayed {
		moss = mossSwayed
	}
	mossRow := max(0, h-mossHeight-1)
	cols := mossColumns(w)
	for i := 0; i < mossHeight; i++ {
		for _, x := range cols {
			g.dst.PutString(x, mossRow+i, "  ", -1, core.ColorGreen)
			g.dst.PutString(x, mossRow+i, moss[i], -1, core.ColorGreen)
		}
	}

	for i := 0; i < w-1; i++ {
		g.dst.PutGlyph(i, g.pond.WaterRow, '~', core.ColorCyan)
		g.dst.PutGlyph(i, g.pond.WaterRow+1, rune(waveChars[(i+g.border.waveOffset)%len(waveChars)]), core.ColorCyan)
		g.dst.PutGlyph(i, g.pond.WaterRow+2, rune(waveChars[(i+g.border.waveOffset+2)%len(waveChars)]), core.ColorCyan)
	}

	castleCol := max(0, w-castleWidth-1)
	castleRow := max(0, h-len(castleArt)-1)
	for i, line := range castleArt {
		g.dst.PutString(castleCol, castleRow+i, line, -1, core.ColorBlue)
	}
}

func (g *Game) drawFish(f *Fish) {
	avail := g.pond.Width - f.Pos
	if avail <= 0 {
		return
	}
	for i, line := range f.Art() {
		g.dst.PutString(f.Pos, f.Row+i, line, avail, core.ColorCyan)
	}
}

func (g *Game) eraseFish(f *Fish) {
	avail := g.pond.Width - f.Pos
	if avail <= 0 {
		return
	}
	blank := strings.Repeat(" ", f.Width)
	for i := 0; i < FishLines; i++ {
		g.dst.PutString(f.Pos, f.Row+i, blank, avail, core.ColorDefault)
	}
}

func (g *Game) drawBoat() {
	avail := g.pond.Width - g.boatCol
	g.dst.PutString(g.boatCol, g.pond.BoatRow, boatTop, avail, core.ColorRed)
	g.dst.PutString(g.boatCol, g.pond.BoatRow+1, boatHull, avail, core.ColorRed)
	g.drawnBoatCol = g.boatCol
}

func (g *Game) eraseBoat(col int) {
	blank := strings.Repeat(" ", boatErase)
	g.dst.PutString(col, g.pond.BoatRow, blank, -1, core.ColorDefault)
	g.dst.PutString(col, g.pond.BoatRow+1, blank, -1, core.ColorDefault)
}

func (g *Game) drawHook() {
	x := g.pond.HookColumn(g.boatCol)
	tip := g.pond.HookRow(g.hook.Depth)
	for y := g.pond.HookRow(0); y < tip; y++ {
		g.dst.PutGlyph(x, y, '|', core.ColorMagenta)
	}
	g.dst.PutGlyph(x, tip, 'J', core.ColorMagenta)
	g.drawnHookCol, g.drawnHookDepth = x, g.hook.Depth
}

// eraseHook blanks the line drawn on the previous frame.
func (g *Game) eraseHook() {
	if g.drawnHookDepth < 0 {
		return
	}
	for d := 0; d <= g.drawnHookDepth; d++ {
		g.dst.PutGlyph(g.drawnHookCol, g.pond.HookRow(d), ' ', core.ColorDefault)
	}
	g.drawnHookDepth = -1
}

func (g *Game) statusLine() string {
	lvl := g.session.SpeedLevel
	prefix := "a:left d:right h:hook s:slower f:faster"
	if g.overlay != OverlayPlaying {
		prefix = "[PAUSED]"
	}
	return fmt.Sprintf("%s | Lives: %s| Speed: %d (%dx points) | score:%d | time:%2ds",
		prefix, strings.Repeat("* ", max(0, g.session.Lives)), lvl, g.dial.Points(lvl),
		g.session.Score, g.session.Clock.Remaining())
}

func (g *Game) drawStatus() {
	g.dst.PutString(0, 0, strings.Repeat(" ", g.pond.Width), -1, core.ColorDefault)
	g.dst.PutString(2, 0, g.statusLine(), -1, core.ColorGreen)
}

func (g *Game) drawHelp() {
	if g.overlay == OverlayQuitConfirm {
		return
	}
	help := fmt.Sprintf("Player: %s | Press Ctrl+C to quit, Ctrl+Z to pause", g.player)
	g.dst.PutString(2, 1, help, -1, core.ColorBlue)
}

func (g *Game) drawPauseBanner() {
	x := max(0, (g.pond.Width-40)/2)
	y := g.pond.Height / 2
	g.dst.PutString(x, y+1, "*** GAME PAUSED ***", -1, core.ColorYellow)
	g.dst.PutString(x, y+2, "Press 'p' or Ctrl+Z to resume", -1, core.ColorYellow)
}

func (g *Game) drawQuitPrompt() {
	x := max(0, (g.pond.Width-60)/2)
	g.dst.PutString(x, g.pond.Height/2, "Are you sure you want to quit? (y/n)", -1, core.ColorRed)
}

// redraw repaints everything from scratch, overlays included.
func (g *Game) redraw() {
	g.dst.Clear()
	g.drawnBoatCol, g.drawnHookDepth = -1, -1
	g.drawStatus()
	g.drawFrame()
	switch g.overlay {
	case OverlayPaused:
		g.drawPauseBanner()
	case OverlayQuitConfirm:
		g.drawQuitPrompt()
	}
}

// drawFrame erases what moved since the last frame and draws the scene.
func (g *Game) drawFrame() {
	if g.drawnBoatCol >= 0 && g.drawnBoatCol != g.boatCol {
		g.eraseBoat(g.drawnBoatCol)
	}
	g.eraseHook()
	g.drawBorder()
	g.drawHelp()
	for i := range g.fish {
		g.drawFish(&g.fish[i])
	}
	g.drawBoat()
	g.drawHook()
}
