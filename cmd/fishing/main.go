// fishing is a terminal pond fishing game.
//
// Usage:
//
//	fishing                  - Enter your name and open the game menu
//	fishing scores           - Show the high score table
//	fishing history          - Show the most recent games
//	fishing stats <name>     - Show aggregates for one player
//	fishing export           - Write the game history as CSV
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--seed <value>   - RNG seed for reproducible ponds
//	--data-dir <dir> - Where scores and history are kept
//	--driver <name>  - Storage backend: file or sqlite
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDataDir string
	flagDriver  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fishing",
	Short: "Catch fish from a boat in your terminal",
	Long: `Lower the hook from your boat and catch as many fish as you can
before the time runs out. Every missed hook costs a life.

Controls:
  A/Left, D/Right  - Move the boat
  H/Down           - Drop the hook
  Space            - Turn every fish around
  S / F            - Slower (fewer points) / faster (more points)
  Ctrl+Z           - Pause, P resumes
  Ctrl+C           - Quit with confirmation (Y/N)
  Q                - Quit now

Examples:
  fishing
  fishing scores
  fishing stats Alice
  fishing export --out history.csv`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Directory for scores and history (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "Storage backend: file or sqlite (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
}
