// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

import (
	"fmt"
	"time"
)

// MatchConfig contains all configuration for the game.
type MatchConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// BoardConfig defines how big a tile is drawn in the terminal.
type BoardConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// TimingConfig defines frame rate and pacing.
type TimingConfig struct {
	TickRate      int `yaml:"tick_rate"`
	RevealPauseMs int `yaml:"reveal_pause_ms"`
}

// RulesConfig defines gameplay rules that are allowed to vary.
type RulesConfig struct {
	SwapOdds        int `yaml:"swap_odds"`
	DefaultBestSecs int `yaml:"default_best_secs"`
}

// ThemeConfig selects the asset set.
type ThemeConfig struct {
	Name string `yaml:"name"`
	Back int    `yaml:"back"`
}

// RevealPause returns the reveal pause as a duration.
func (c MatchConfig) RevealPause() time.Duration {
	return time.Duration(c.Timing.RevealPauseMs) * time.Millisecond
}

// LabelWidth returns the widest label that fits inside a tile border.
func (c MatchConfig) LabelWidth() int {
	return c.Board.CellWidth - 2
}

// Validate checks the configuration for values the game cannot run with.
func (c MatchConfig) Validate() error {
	if c.Board.CellWidth < 6 {
		return fmt.Errorf("config: board.cell_width must be at least 6, got %d", c.Board.CellWidth)
	}
	if c.Board.CellHeight < 3 {
		return fmt.Errorf("config: board.cell_height must be at least 3, got %d", c.Board.CellHeight)
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("config: timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.RevealPauseMs < 0 {
		return fmt.Errorf("config: timing.reveal_pause_ms must not be negative, got %d", c.Timing.RevealPauseMs)
	}
	if c.Rules.SwapOdds < 0 {
		return fmt.Errorf("config: rules.swap_odds must not be negative, got %d", c.Rules.SwapOdds)
	}
	if c.Rules.DefaultBestSecs <= 0 {
		return fmt.Errorf("config: rules.default_best_secs must be positive, got %d", c.Rules.DefaultBestSecs)
	}
	if c.Theme.Back < 0 {
		return fmt.Errorf("config: theme.back must not be negative, got %d", c.Theme.Back)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}
