package config

import (
	_ "embed"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultBestSecs is the best time assumed when none has been recorded.
const DefaultBestSecs = 250

// DefaultMatchConfig returns the default configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Board: BoardConfig{
			CellWidth:  10,
			CellHeight: 4,
		},
		Timing: TimingConfig{
			TickRate:      60,
			RevealPauseMs: 1000,
		},
		Rules: RulesConfig{
			SwapOdds:        3,
			DefaultBestSecs: DefaultBestSecs,
		},
		Theme: ThemeConfig{
			Name: "mahjong",
			Back: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMatchYAML
}
