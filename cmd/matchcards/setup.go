package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match-cards/internal/config"
	"github.com/vovakirdan/match-cards/internal/games/match"
	"github.com/vovakirdan/match-cards/internal/theme"
)

var (
	flagTheme      string
	flagThemeFile  string
	flagDifficulty string
)

// loadGameConfig reads match.yaml, applies the difficulty preset and
// resolves the theme. A theme that cannot be drawn is an error.
func loadGameConfig() (match.GameConfig, config.MatchConfig, error) {
	cfg, err := config.LoadMatch(flagConfig)
	if err != nil {
		return match.GameConfig{}, cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return match.GameConfig{}, cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	name := cfg.Theme.Name
	if flagTheme != "" {
		name = flagTheme
	}
	th, err := theme.Resolve(name, flagThemeFile, cfg.LabelWidth())
	if err != nil {
		return match.GameConfig{}, cfg, fmt.Errorf("cannot load theme: %w", err)
	}

	return match.GameConfig{
		Session: match.Options{
			Theme:       th,
			Back:        cfg.Theme.Back,
			DefaultBest: cfg.Rules.DefaultBestSecs,
			RevealPause: cfg.RevealPause(),
			SwapOdds:    cfg.Rules.SwapOdds,
		},
		CellW: cfg.Board.CellWidth,
		CellH: cfg.Board.CellHeight,
	}, cfg, nil
}

// addGameFlags registers the flags that shape a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagTheme, "theme", "", "Built-in theme name (see 'matchcards themes')")
	cmd.Flags().StringVar(&flagThemeFile, "theme-file", "", "Path to a custom theme YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// tickRate prefers an explicit --fps over the configured rate.
func tickRate(cmd *cobra.Command, cfg config.MatchConfig) int {
	if cmd.Flags().Changed("fps") {
		return flagFPS
	}
	return cfg.Timing.TickRate
}
