package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/games/fishing"
)

// ErrTerminated is returned by Play when the process was asked to stop.
// The summary is still valid.
var ErrTerminated = errors.New("tui: session terminated by signal")

// maxQueuedKeys bounds the keys waiting for a tick. Extra keys are dropped.
const maxQueuedKeys = 16

// GameModel is the Bubble Tea model running one fishing session.
// Each tick consumes at most one queued key plus any pending gestures.
type GameModel struct {
	game       *fishing.Game
	screen     *core.Screen
	signals    *core.Signals
	keys       *KeyMapper
	queue      []core.Action
	state      core.GameState
	done       bool
	terminated bool
}

// NewGameModel creates a model and starts a fresh session on a screen of
// the runtime size. A nil clock uses the system clock; signals may be
// shared with an OS signal notifier.
func NewGameModel(cfg config.FishingConfig, rc core.RuntimeConfig, clock fishing.Clock, signals *core.Signals) GameModel {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if signals == nil {
		signals = &core.Signals{}
	}

	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	game := fishing.New(cfg, screen, clock)
	game.Reset(rc)

	return GameModel{
		game:    game,
		screen:  screen,
		signals: signals,
		keys:    NewKeyMapper(),
		state:   game.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.game.Delay())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game keys and raises gestures.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, gesture := m.keys.MapKey(msg)

	switch gesture {
	case GesturePause:
		m.signals.Pause.Raise()
	case GestureQuit:
		m.signals.Quit.Raise()
	}

	if action != core.ActionNone && len(m.queue) < maxQueuedKeys {
		m.queue = append(m.queue, action)
	}
	return m, nil
}

// handleResize keeps the session and redraws it at the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.screen.Width() && msg.Height == m.screen.Height() {
		return m, nil
	}
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	frame := core.NewInputFrame()
	if len(m.queue) > 0 {
		frame.Key = m.queue[0]
		m.queue = m.queue[1:]
	}
	m.signals.Drain(&frame)
	if frame.Terminate {
		m.terminated = true
	}

	result := m.game.Step(frame)
	m.state = result.State

	if m.state.GameOver {
		m.done = true
		return m, tea.Quit
	}
	return m, tickCmd(result.Delay)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.done {
		return ""
	}
	return RenderScreen(m.screen)
}

// Summary returns the record of the session.
func (m GameModel) Summary() fishing.Summary {
	return m.game.Summary()
}

// Terminated reports whether the session ended on a termination signal.
func (m GameModel) Terminated() bool {
	return m.terminated
}

// Done reports whether the session has ended.
func (m GameModel) Done() bool {
	return m.done
}

// Play runs one session in the alternate screen and returns its summary.
// The terminal is restored on every exit path. OS signals are routed into
// the session as gestures for as long as it runs.
func Play(cfg config.FishingConfig, rc core.RuntimeConfig) (fishing.Summary, error) {
	signals := &core.Signals{}
	stop := notifySignals(signals)
	defer stop()

	model := NewGameModel(cfg, rc, nil, signals)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	finalModel, err := p.Run()
	m, ok := finalModel.(GameModel)
	if !ok {
		return model.Summary(), err
	}
	if err == nil && m.Terminated() {
		err = ErrTerminated
	}
	return m.Summary(), err
}
