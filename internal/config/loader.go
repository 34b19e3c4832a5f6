package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMatch loads the game configuration.
// Search order: customPath -> ~/.matchcards/configs/match.yaml -> ./configs/match.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys
// it changes.
func LoadMatch(customPath string) (MatchConfig, error) {
	cfg := DefaultMatchConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("match.yaml"), filepath.Join("configs", "match.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMatchYAML, &cfg); err != nil {
		return DefaultMatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so the next candidate in the search order gets a chance.
func tryLoad(path string) (MatchConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MatchConfig{}, false
	}
	cfg := DefaultMatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MatchConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return MatchConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".matchcards", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy keeps pairs up longer and never swaps them; hard flashes them
// briefly and swaps every other mismatch.
func ApplyPreset(cfg *MatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.RevealPauseMs = 1500
		cfg.Rules.SwapOdds = 0
	case DifficultyNormal:
		cfg.Timing.RevealPauseMs = 1000
		cfg.Rules.SwapOdds = 3
	case DifficultyHard:
		cfg.Timing.RevealPauseMs = 500
		cfg.Rules.SwapOdds = 2
	}
}
