// matchcards is a "Match the Cards" memory game for the terminal.
//
// Usage:
//
//	matchcards play            - Play a game
//	matchcards scores          - Show finished games
//	matchcards themes          - List tile themes
//	matchcards best [--reset]  - Show or clear the best time
//	matchcards serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set history database path (default: ~/.matchcards/history.db)
//	--best-file <path>   - Set best time file (default: ~/.matchcards/time.txt)
//	--config <path>      - Use a custom match.yaml
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to this file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagBestFile string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matchcards",
	Short: "Match the Cards - a memory game in your terminal",
	Long: `Match the Cards is a tile matching game on a 5x5 board.
Twelve pairs hide under the covers; find them all as fast as you can.

Available commands:
  play     - Play a game
  scores   - View finished games
  themes   - List tile themes
  best     - Show or reset the best time
  serve    - Start SSH server for remote play

Examples:
  matchcards play
  matchcards play --theme ascii --difficulty hard
  matchcards scores --recent
  matchcards serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.matchcards/history.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagBestFile, "best-file", "~/.matchcards/time.txt", "Path to best time file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play defaults to ~/.matchcards/matchcards.log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(serveCmd)
}
