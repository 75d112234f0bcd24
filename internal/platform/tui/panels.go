package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/tui-fishing/internal/games/fishing"
	"github.com/vovakirdan/tui-fishing/internal/scoring"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

var (
	cyan   = lipgloss.Color("6")
	green  = lipgloss.Color("2")
	blue   = lipgloss.Color("4")
	yellow = lipgloss.Color("3")
	red    = lipgloss.Color("1")

	titleStyle = lipgloss.NewStyle().Bold(true)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	noteStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
)

// boxed renders a titled block of "label: value" lines.
func boxed(title string, color lipgloss.Color, lines [][2]string) string {
	labelWidth := 0
	for _, l := range lines {
		labelWidth = max(labelWidth, lipgloss.Width(l[0]))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Foreground(color).Render(title))
	b.WriteString("\n\n")
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%-*s  %s", labelWidth+1, l[0]+":", l[1])
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(color).
		Padding(0, 2).
		Width(48).
		Render(b.String())
}

// SummaryPanel shows the final results of a game.
func SummaryPanel(sum fishing.Summary) string {
	return boxed("GAME OVER - FINAL RESULTS", cyan, [][2]string{
		{"Player", sum.Player},
		{"Final Score", strconv.Itoa(sum.Score)},
		{"Fish Caught", strconv.Itoa(sum.FishCaught)},
		{"Hooks Missed", strconv.Itoa(sum.HooksMissed)},
		{"Lives Remaining", strconv.Itoa(sum.LivesRemaining)},
		{"Final Speed Level", strconv.Itoa(sum.SpeedLevel)},
		{"Time Played", fmt.Sprintf("%ds", sum.DurationSeconds)},
		{"Ended", sum.Reason.String()},
	})
}

// OutcomePanel shows the summary and, for a qualifying score, the
// congratulation lines.
func OutcomePanel(out scoring.Outcome) string {
	var b strings.Builder
	b.WriteString(SummaryPanel(out.Summary))
	b.WriteString("\n")
	if out.HighScore {
		congrats := lipgloss.NewStyle().Bold(true).Foreground(green)
		b.WriteString("\n")
		b.WriteString(congrats.Render("CONGRATULATIONS! You achieved a HIGH SCORE!"))
		b.WriteString("\n")
		if out.Recorded {
			b.WriteString(lipgloss.NewStyle().Foreground(green).Render("Your score has been saved to the high score table!"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func newTable(color lipgloss.Color, headers ...string) *table.Table {
	headerStyle := cellStyle.Bold(true).Foreground(color)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(color)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// HighScorePanel renders the table best first.
func HighScorePanel(scores []storage.HighScore) string {
	title := titleStyle.Foreground(yellow).Render("HIGH SCORES")
	if len(scores) == 0 {
		return title + "\n" + noteStyle.Render("No high scores yet!") + "\n"
	}

	t := newTable(yellow, "#", "Name", "Score", "Speed", "Date")
	for i, hs := range scores {
		t.Row(
			strconv.Itoa(i+1),
			hs.Name,
			strconv.Itoa(hs.Score),
			strconv.Itoa(hs.SpeedLevel),
			hs.Date.Format("2006-01-02"),
		)
	}
	return title + "\n" + t.String() + "\n"
}

// HistoryPanel renders records in the order given, numbered from 1.
func HistoryPanel(records []storage.HistoryRecord) string {
	title := titleStyle.Foreground(blue).Render("GAME HISTORY")
	if len(records) == 0 {
		return title + "\n" + noteStyle.Render("No game history available") + "\n"
	}

	t := newTable(blue, "#", "Date", "Player", "Score", "Catch", "Miss", "Speed", "L")
	for i, r := range records {
		t.Row(
			strconv.Itoa(i+1),
			r.Timestamp.Format("2006-01-02"),
			r.Name,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.FishCaught),
			strconv.Itoa(r.HooksMissed),
			strconv.Itoa(r.SpeedLevel),
			strconv.Itoa(r.LivesRemaining),
		)
	}
	legend := lipgloss.NewStyle().Foreground(red).Render("L = Lives Remaining")
	return title + "\n" + t.String() + "\n" + legend + "\n"
}

// StatsPanel renders one player's aggregates.
func StatsPanel(st storage.PlayerStats) string {
	if st.Games == 0 {
		return lipgloss.NewStyle().Foreground(green).
			Render("No statistics found for player: "+st.Name) + "\n"
	}
	return boxed("PLAYER STATISTICS: "+st.Name, green, [][2]string{
		{"Total Games Played", strconv.Itoa(st.Games)},
		{"Best Score", strconv.Itoa(st.BestScore)},
		{"Average Score", strconv.Itoa(st.AverageScore)},
		{"Total Fish Caught", strconv.Itoa(st.FishCaught)},
		{"Total Hooks Missed", strconv.Itoa(st.HooksMissed)},
		{"Catch Rate", strconv.Itoa(st.CatchRate) + "%"},
	}) + "\n"
}

// GoodbyePanel is printed on exit.
func GoodbyePanel() string {
	return lipgloss.NewStyle().Foreground(blue).Render("Thank you for playing! Goodbye!") + "\n"
}
