// Package fishing implements the pond fishing game.
// A boat drifts on the surface and lowers a hook to catch fish swimming in
// three depth bands before the time runs out. The game draws incrementally
// onto a persistent surface: everything that moves is erased before it moves.
package fishing

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
)

// Overlay is the session controller state.
type Overlay int

const (
	OverlayPlaying Overlay = iota
	OverlayPaused
	OverlayQuitConfirm
)

// String returns the overlay name.
func (o Overlay) String() string {
	switch o {
	case OverlayPlaying:
		return "playing"
	case OverlayPaused:
		return "paused"
	case OverlayQuitConfirm:
		return "quit_confirm"
	default:
		return "unknown"
	}
}

// Game owns one fishing session and renders it onto a surface.
type Game struct {
	cfg    config.FishingConfig
	dial   config.SpeedDial
	dst    core.Surface
	clock  Clock
	rng    *rand.Rand
	player string
	tick   uint64

	pond    Pond
	fish    []Fish
	hook    Hook
	boatCol int
	session Session

	overlay  Overlay
	resumeTo Overlay // where a denied quit prompt returns
	over     bool
	reason   EndReason
	endedAt  time.Time

	// Last drawn positions, for erasing
	drawnBoatCol   int
	drawnHookCol   int
	drawnHookDepth int
	border         borderAnim
}

// New creates a game drawing onto dst. A nil clock means the system clock.
func New(cfg config.FishingConfig, dst core.Surface, clock Clock) *Game {
	cfg.Normalize()
	if clock == nil {
		clock = SystemClock{}
	}
	return &Game{
		cfg:   cfg,
		dial:  config.NewSpeedDial(cfg.Speed, cfg.Timing),
		dst:   dst,
		clock: clock,
	}
}

// Reset starts a new session for the given viewport and seed, then
// draws the first frame.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.player = rc.Player
	g.tick = 0

	g.pond = NewPond(rc.ScreenW, rc.ScreenH)
	g.fish = spawnFish(g.rng, g.pond, g.cfg.Pond)
	g.hook = Hook{MaxDepth: g.pond.MaxHookDepth}
	g.boatCol = core.Clamp(g.pond.Width/4, 0, g.pond.MaxBoatColumn())
	g.session = Session{
		Lives:      g.cfg.Session.Lives,
		SpeedLevel: g.dial.Initial(),
		Clock:      NewPauseClock(g.clock, g.cfg.Session.TimeLimitSeconds),
	}

	g.overlay = OverlayPlaying
	g.resumeTo = OverlayPlaying
	g.over = false
	g.reason = EndNone
	g.endedAt = time.Time{}
	g.border = borderAnim{lastSecond: g.clock.Now().Unix()}

	g.redraw()
}

// Step advances the session by one tick and reports how long the caller
// should wait before the next one.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.over {
		return g.result(0)
	}
	g.tick++

	if in.Terminate {
		g.finish(EndQuit)
		return g.result(0)
	}

	switch g.overlay {
	case OverlayQuitConfirm:
		return g.stepQuitConfirm(in)
	case OverlayPaused:
		return g.stepPaused(in)
	}

	if in.Quit {
		g.enterQuitConfirm()
		return g.result(g.dial.PausedDelay())
	}
	if in.Pause {
		g.session.Clock.TogglePause()
		g.overlay = OverlayPaused
		g.drawStatus()
		g.drawPauseBanner()
		return g.result(g.dial.PausedDelay())
	}

	g.simulate(in.Key)
	if g.over {
		return g.result(0)
	}
	g.drawFrame()
	return g.result(g.dial.FrameDelay(g.session.SpeedLevel))
}

func (g *Game) stepPaused(in core.InputFrame) core.StepResult {
	if in.Quit {
		g.enterQuitConfirm()
	} else if in.Pause || in.Has(core.ActionResume) {
		g.resume(OverlayPlaying)
	}
	return g.result(g.dial.PausedDelay())
}

// stepQuitConfirm waits for an answer. Pause gestures are ignored here.
func (g *Game) stepQuitConfirm(in core.InputFrame) core.StepResult {
	switch in.Key {
	case core.ActionConfirm:
		g.finish(EndQuit)
		return g.result(0)
	case core.ActionDeny:
		g.resume(g.resumeTo)
	}
	return g.result(g.dial.PausedDelay())
}

func (g *Game) enterQuitConfirm() {
	g.resumeTo = g.overlay
	if !g.session.Clock.Paused() {
		g.session.Clock.TogglePause()
	}
	g.overlay = OverlayQuitConfirm
	g.drawStatus()
	g.drawQuitPrompt()
}

func (g *Game) resume(to Overlay) {
	g.overlay = to
	if to == OverlayPlaying && g.session.Clock.Paused() {
		g.session.Clock.TogglePause()
	}
	g.redraw()
}

// simulate moves the world one tick: fish, hook, catches, the clock and
// finally the player's command.
func (g *Game) simulate(key core.Action) {
	for i := range g.fish {
		g.eraseFish(&g.fish[i])
	}
	for i := range g.fish {
		g.fish[i].Advance(g.pond.Width)
	}

	if g.hook.Update() {
		g.session.Lives--
		g.session.HooksMissed++
		if g.session.Lives <= 0 {
			g.finish(EndLivesExhausted)
			return
		}
	}

	g.checkCatch()

	if g.session.Clock.Remaining() <= 0 {
		g.finish(EndTimeUp)
		return
	}

	g.drawStatus()
	g.apply(key)
}

// checkCatch takes the first fish under the hook tip.
func (g *Game) checkCatch() {
	if !g.hook.CanCatch() {
		return
	}
	x := g.pond.HookColumn(g.boatCol)
	y := g.pond.HookRow(g.hook.Depth)
	for i := range g.fish {
		f := &g.fish[i]
		if !f.Rect().Contains(x, y) {
			continue
		}
		g.session.Score += g.dial.Points(g.session.SpeedLevel)
		g.session.FishCaught++
		respawn(g.rng, g.pond, f)
		g.hook.Catch()
		return
	}
}

func (g *Game) apply(key core.Action) {
	switch key {
	case core.ActionQuit:
		g.finish(EndQuit)
	case core.ActionLeft:
		if g.boatCol > 0 {
			g.boatCol--
		}
	case core.ActionRight:
		if g.boatCol < g.pond.MaxBoatColumn() {
			g.boatCol++
		}
	case core.ActionDropHook:
		g.hook.Drop()
	case core.ActionReverse:
		for i := range g.fish {
			g.fish[i].Reverse()
		}
	case core.ActionSlower:
		g.session.SpeedLevel = g.dial.Slower(g.session.SpeedLevel)
	case core.ActionFaster:
		g.session.SpeedLevel = g.dial.Faster(g.session.SpeedLevel)
	}
}

func (g *Game) finish(reason EndReason) {
	g.over = true
	g.reason = reason
	g.endedAt = g.clock.Now()
}

// Resize adapts the running session to a new viewport. The surface must
// already have the new size. Entities are clamped into the new pond and
// the scene is redrawn.
func (g *Game) Resize(w, h int) {
	g.pond = NewPond(w, h)
	maxCol := g.pond.maxFishColumn()
	top, _ := g.pond.BandRange(BandShallow)
	_, bottom := g.pond.BandRange(BandDeep)
	for i := range g.fish {
		f := &g.fish[i]
		f.Pos = core.Clamp(f.Pos, 0, maxCol)
		f.Row = core.Clamp(f.Row, top, bottom-1)
	}
	g.hook.SetMaxDepth(g.pond.MaxHookDepth)
	g.boatCol = core.Clamp(g.boatCol, 0, g.pond.MaxBoatColumn())

	if !g.over {
		g.redraw()
	}
}

// Delay returns the wait before the next tick in the current state.
func (g *Game) Delay() time.Duration {
	if g.overlay != OverlayPlaying {
		return g.dial.PausedDelay()
	}
	return g.dial.FrameDelay(g.session.SpeedLevel)
}

func (g *Game) result(delay time.Duration) core.StepResult {
	return core.StepResult{State: g.State(), Delay: delay}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	left := 0
	if g.session.Clock != nil {
		if g.over {
			left = g.session.Clock.RemainingAt(g.endedAt)
		} else {
			left = g.session.Clock.Remaining()
		}
	}
	return core.GameState{
		Score:    g.session.Score,
		Lives:    g.session.Lives,
		TimeLeft: left,
		GameOver: g.over,
		Paused:   g.overlay != OverlayPlaying,
	}
}

// Summary returns the record of the session. Before the session ends it
// reflects the game so far.
func (g *Game) Summary() Summary {
	at := g.endedAt
	if !g.over {
		at = g.clock.Now()
	}
	return BuildSummary(&g.session, g.player, g.reason, at)
}

// Overlay returns the controller state.
func (g *Game) Overlay() Overlay { return g.overlay }

// Over reports whether the session has ended.
func (g *Game) Over() bool { return g.over }

// Player returns the name shown in the help line.
func (g *Game) Player() string { return g.player }
