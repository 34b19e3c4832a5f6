package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/match-cards/internal/theme"
)

func resetGameFlags(t *testing.T) {
	t.Helper()
	oldConfig, oldTheme, oldFile, oldDiff := flagConfig, flagTheme, flagThemeFile, flagDifficulty
	t.Cleanup(func() {
		flagConfig, flagTheme, flagThemeFile, flagDifficulty = oldConfig, oldTheme, oldFile, oldDiff
	})
	flagConfig, flagTheme, flagThemeFile, flagDifficulty = "", "", "", ""
}

func TestLoadGameConfigDefaults(t *testing.T) {
	resetGameFlags(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "match.yaml")
	if err := os.WriteFile(path, []byte("theme:\n  name: mahjong\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	cfg, matchCfg, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() error = %v", err)
	}
	if cfg.Session.Theme.Name != "mahjong" {
		t.Errorf("theme = %q, want mahjong", cfg.Session.Theme.Name)
	}
	if cfg.Session.RevealPause != time.Second {
		t.Errorf("reveal pause = %v, want 1s", cfg.Session.RevealPause)
	}
	if cfg.Session.SwapOdds != 3 || cfg.Session.DefaultBest != 250 {
		t.Errorf("rules = odds %d best %d", cfg.Session.SwapOdds, cfg.Session.DefaultBest)
	}
	if cfg.CellW != matchCfg.Board.CellWidth || cfg.CellH != matchCfg.Board.CellHeight {
		t.Errorf("cell size %dx%d does not follow config", cfg.CellW, cfg.CellH)
	}
}

func TestLoadGameConfigPresetAndTheme(t *testing.T) {
	resetGameFlags(t)
	flagDifficulty = "easy"
	flagTheme = "ascii"

	cfg, _, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() error = %v", err)
	}
	if cfg.Session.Theme.Name != "ascii" {
		t.Errorf("theme = %q, want ascii", cfg.Session.Theme.Name)
	}
	if cfg.Session.SwapOdds != 0 {
		t.Errorf("easy odds = %d, want 0", cfg.Session.SwapOdds)
	}
	if cfg.Session.RevealPause != 1500*time.Millisecond {
		t.Errorf("easy pause = %v", cfg.Session.RevealPause)
	}
}

func TestLoadGameConfigErrors(t *testing.T) {
	t.Run("unknown theme", func(t *testing.T) {
		resetGameFlags(t)
		flagTheme = "nope"
		if _, _, err := loadGameConfig(); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("broken theme file", func(t *testing.T) {
		resetGameFlags(t)
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("name: bad\nfaces: []\nbacks: [{fill: \"#\"}]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		flagThemeFile = path
		_, _, err := loadGameConfig()
		if !errors.Is(err, theme.ErrInvalidTheme) {
			t.Errorf("error = %v, want ErrInvalidTheme", err)
		}
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		resetGameFlags(t)
		flagDifficulty = "impossible"
		if _, _, err := loadGameConfig(); err == nil {
			t.Error("expected error")
		}
	})
}
