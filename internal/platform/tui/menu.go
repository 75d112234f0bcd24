package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceHighScores
	ChoiceHistory
	ChoiceStats
	ChoiceExit
)

// Menu input errors.
var (
	ErrNotANumber = errors.New("menu: input is not a number")
	ErrBadChoice  = errors.New("menu: choice out of range")
)

// menuMessages are shown inline before prompting again.
var menuMessages = map[error]string{
	ErrNotANumber: "Invalid input! Please enter a number.",
	ErrBadChoice:  "Invalid choice! Please try again.",
}

var menuEntries = []string{
	"1. Start New Game",
	"2. View High Scores",
	"3. View Game History",
	"4. View Player Statistics",
	"5. Exit",
}

// ParseChoice validates one line of menu input.
func ParseChoice(input string) (MenuChoice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return ChoiceNone, ErrNotANumber
	}
	if n < int(ChoiceStart) || n > int(ChoiceExit) {
		return ChoiceNone, ErrBadChoice
	}
	return MenuChoice(n), nil
}

type menuStage int

const (
	stageChoice menuStage = iota
	stageStatsName
)

// MenuModel is the Bubble Tea model for the numbered main menu.
type MenuModel struct {
	input     textinput.Model
	stage     menuStage
	choice    MenuChoice
	statsName string
	errMsg    string
	width     int
	quitting  bool
	done      bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width int) MenuModel {
	m := MenuModel{width: width}
	m.input = newMenuInput()
	return m
}

func newMenuInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 4
	ti.Width = 6
	ti.Prompt = promptStyle.Render("Enter your choice: ")
	ti.Focus()
	return ti
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles Enter in either stage.
func (m MenuModel) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	m.input.SetValue("")

	if m.stage == stageStatsName {
		m.statsName = strings.TrimSpace(value)
		m.done = true
		return m, tea.Quit
	}

	choice, err := ParseChoice(value)
	if err != nil {
		m.errMsg = menuMessages[err]
		return m, nil
	}
	m.errMsg = ""
	m.choice = choice

	if choice == ChoiceStats {
		m.stage = stageStatsName
		m.input.CharLimit = MaxNameLength
		m.input.Width = MaxNameLength + 1
		m.input.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("Enter player name: ")
		return m, nil
	}

	m.done = true
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder

	box := bannerStyle.Width(46)
	if m.width > 0 {
		box = box.MarginLeft(max(0, (m.width-box.GetHorizontalFrameSize()-46)/2))
	}
	b.WriteString(box.Render("FISHING GAME MENU\n\n" + strings.Join(menuEntries, "\n")))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")

	return b.String()
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice    MenuChoice
	StatsName string // set for ChoiceStats
	Quit      bool
}

// Result returns the selection. An interrupted menu reads as Exit.
func (m MenuModel) Result() MenuResult {
	if m.quitting || !m.done {
		return MenuResult{Choice: ChoiceExit, Quit: true}
	}
	return MenuResult{Choice: m.choice, StatsName: m.statsName}
}

// RunMenu shows the menu inline until a valid choice is made.
func RunMenu(width int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(width))

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceExit, Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceExit, Quit: true}, nil
	}
	return m.Result(), nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
