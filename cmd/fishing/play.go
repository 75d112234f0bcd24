package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/platform/tui"
)

// runInteractive asks for the player name once, then loops on the menu.
func runInteractive(cmd *cobra.Command, args []string) error {
	a, err := loadApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()

	name, ok, err := tui.RunNamePrompt()
	if err != nil {
		return fmt.Errorf("name prompt: %w", err)
	}
	if !ok {
		return nil
	}

	for {
		width, height := terminalSize()
		res, err := tui.RunMenu(width)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		switch res.Choice {
		case tui.ChoiceStart:
			err := playOnce(a, name, width, height, cmd)
			if errors.Is(err, tui.ErrTerminated) {
				a.logger.Debug("terminated during a session")
				return nil
			}
			if err != nil {
				return err
			}

		case tui.ChoiceHighScores, tui.ChoiceHistory:
			tab := tui.TabHighScores
			if res.Choice == tui.ChoiceHistory {
				tab = tui.TabHistory
			}
			if _, err := tui.RunScoreboard(a.bridge.HighScores(), a.bridge.RecentHistory(a.cfg.Scores.HistoryDisplay), tab, width, height); err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}

		case tui.ChoiceStats:
			fmt.Fprint(out, tui.StatsPanel(a.bridge.PlayerStats(res.StatsName)))

		case tui.ChoiceExit:
			fmt.Fprint(out, tui.GoodbyePanel())
			return nil
		}
	}
}

// playOnce runs a session, records it and prints the results.
func playOnce(a *app, name string, width, height int, cmd *cobra.Command) error {
	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Player:  name,
	}

	a.logger.Debug("session starting", "player", name, "size", fmt.Sprintf("%dx%d", width, height))
	summary, err := tui.Play(a.cfg, rc)
	terminated := errors.Is(err, tui.ErrTerminated)
	if err != nil && !terminated {
		return fmt.Errorf("game: %w", err)
	}

	outcome := a.bridge.Finish(summary)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprint(out, tui.OutcomePanel(outcome))
	fmt.Fprintln(out)
	fmt.Fprint(out, tui.HighScorePanel(a.bridge.HighScores()))
	if terminated {
		return tui.ErrTerminated
	}
	return nil
}
