package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/match-cards/internal/core"
	"github.com/vovakirdan/match-cards/internal/logging"
	"github.com/vovakirdan/match-cards/internal/platform/tui"
	"github.com/vovakirdan/match-cards/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Match the Cards.

Controls:
  Mouse click      - Reveal a tile
  Arrows/hjkl      - Move the cursor
  Space/Enter      - Reveal the tile under the cursor
  Ctrl+S           - Save a screenshot
  Esc/Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Pairs stay up longer, mismatched tiles never move
  normal - One second to memorise, 1 in 3 mismatches swap places
  hard   - Half a second, every other mismatch swaps places

Examples:
  matchcards play
  matchcards play --theme ascii
  matchcards play --difficulty hard
  matchcards play --seed 42 --config ./my-match.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	logFile := flagLogFile
	if logFile == "" {
		logFile = "~/.matchcards/matchcards.log"
	}
	logger, closer, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   logFile,
		Prefix: "matchcards",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	gameCfg, matchCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	best, err := storage.NewBestTimeFile(flagBestFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gameCfg.Session.Best = best
	gameCfg.Session.Logger = logger

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cmd, matchCfg),
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results database unavailable", "path", flagDBPath, "error", err)
		// Continue without history - the game still works
		store = nil
	}

	logger.Info("starting game", "theme", gameCfg.Session.Theme.Name, "seed", flagSeed, "best_file", best.Path())

	runErr := tui.Run(tui.Options{
		Game:    gameCfg,
		Runtime: cfg,
		Store:   store,
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
