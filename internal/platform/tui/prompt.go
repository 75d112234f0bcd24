package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultPlayerName is used when the name prompt is left empty.
const DefaultPlayerName = "Player"

// MaxNameLength matches the stored name field.
const MaxNameLength = 19

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 2)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// NameModel asks for the player name once.
type NameModel struct {
	input     textinput.Model
	submitted bool
	aborted   bool
}

// NewNameModel creates a focused name prompt.
func NewNameModel() NameModel {
	ti := textinput.New()
	ti.Placeholder = DefaultPlayerName
	ti.CharLimit = MaxNameLength
	ti.Width = MaxNameLength + 1
	ti.Prompt = promptStyle.Render("Enter your name (max 19 characters): ")
	ti.Focus()
	return NameModel{input: ti}
}

// Init starts the cursor blink.
func (m NameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NameModel) View() string {
	if m.submitted || m.aborted {
		return ""
	}
	return bannerStyle.Render("WELCOME TO FISHING GAME!") + "\n\n" + m.input.View() + "\n"
}

// Name returns the entered name, or DefaultPlayerName when it is blank.
func (m NameModel) Name() string {
	return NormalizeName(m.input.Value())
}

// Aborted reports whether the prompt was cancelled.
func (m NameModel) Aborted() bool {
	return m.aborted
}

// NormalizeName trims spaces and substitutes the default for a blank name.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPlayerName
	}
	return name
}

// RunNamePrompt asks for the player name inline. ok is false when the
// player cancelled.
func RunNamePrompt() (name string, ok bool, err error) {
	p := tea.NewProgram(NewNameModel())

	finalModel, err := p.Run()
	if err != nil {
		return DefaultPlayerName, false, err
	}

	m, isName := finalModel.(NameModel)
	if !isName || m.Aborted() {
		return DefaultPlayerName, false, nil
	}
	return m.Name(), true, nil
}
