package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fishing/internal/platform/tui"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

var (
	flagLimit int
	flagOut   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the high score table, best first. Each player appears once.

Examples:
  fishing scores
  fishing scores --driver sqlite`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(true)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprint(cmd.OutOrStdout(), tui.HighScorePanel(a.bridge.HighScores()))
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recent games",
	Long: `Display the most recent games, newest first.

Examples:
  fishing history
  fishing history --limit 50`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(true)
		if err != nil {
			return err
		}
		defer a.Close()

		n := flagLimit
		if n <= 0 {
			n = a.cfg.Scores.HistoryDisplay
		}
		fmt.Fprint(cmd.OutOrStdout(), tui.HistoryPanel(a.bridge.RecentHistory(n)))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Show statistics for one player",
	Long: `Display games played, best and average score, fish caught, hooks
missed and catch rate for the named player. Names match exactly.

Examples:
  fishing stats Alice`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(true)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Fprint(cmd.OutOrStdout(), tui.StatsPanel(a.bridge.PlayerStats(args[0])))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the game history as CSV",
	Long: `Write every logged game, oldest first, as CSV with a header row.
Without --out the CSV goes to stdout.

Examples:
  fishing export
  fishing export --out history.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 0, "Number of games to show (0 = config default)")
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := loadApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	var w io.Writer = cmd.OutOrStdout()
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", flagOut, err)
		}
		defer f.Close()
		w = f
	}

	records := a.bridge.History()
	if err := storage.ExportHistoryCSV(w, records); err != nil {
		return err
	}
	if flagOut != "" {
		a.logger.Info("history exported", "games", len(records), "file", flagOut)
	}
	return nil
}
