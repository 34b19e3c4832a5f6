// Package theme holds the asset sets the game draws with. A theme is the
// terminal counterpart of an image folder: twelve card faces, one or more
// card backs and the four images used on the centre status cell.
//
// Built-in themes register themselves in init(); custom themes are loaded
// from YAML files and must pass the same validation.
package theme

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/match-cards/internal/core"
)

// FaceCount is the number of distinct card faces a theme must provide.
const FaceCount = 12

// CenterImage indexes the special images of the centre cell.
type CenterImage int

const (
	CenterNeutral CenterImage = iota
	CenterHappy
	CenterSad
	CenterGameOver
	centerCount
)

// String returns the YAML key of the centre image.
func (c CenterImage) String() string {
	switch c {
	case CenterNeutral:
		return "neutral"
	case CenterHappy:
		return "happy"
	case CenterSad:
		return "sad"
	case CenterGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ErrInvalidTheme is returned when a theme is missing assets or has
// assets that cannot be drawn.
var ErrInvalidTheme = errors.New("theme: invalid theme")

// Glyph is a drawable "image": a short label drawn in the middle of a
// cell, an optional background fill rune and a color.
type Glyph struct {
	Label string
	Fill  rune
	Color core.Color
}

// Theme is a complete asset set.
type Theme struct {
	Name    string
	Title   string
	Faces   []Glyph
	Backs   []Glyph
	Centers [centerCount]Glyph
}

// Face returns the glyph for a symbol id.
func (t Theme) Face(symbol int) Glyph {
	return t.Faces[symbol]
}

// Back returns the card back glyph. Indices past the end wrap around.
func (t Theme) Back(i int) Glyph {
	return t.Backs[i%len(t.Backs)]
}

// Center returns one of the centre cell images.
func (t Theme) Center(c CenterImage) Glyph {
	return t.Centers[c]
}

// Validate checks that the theme has every asset the game needs and that
// every label fits inside a cell of the given inner width.
func (t Theme) Validate(maxLabel int) error {
	if t.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTheme)
	}
	if len(t.Faces) != FaceCount {
		return fmt.Errorf("%w %q: need %d faces, got %d", ErrInvalidTheme, t.Name, FaceCount, len(t.Faces))
	}
	if len(t.Backs) == 0 {
		return fmt.Errorf("%w %q: need at least one back", ErrInvalidTheme, t.Name)
	}

	seen := make(map[string]int, len(t.Faces))
	for i, f := range t.Faces {
		if f.Label == "" {
			return fmt.Errorf("%w %q: face %d has no label", ErrInvalidTheme, t.Name, i)
		}
		if prev, dup := seen[f.Label]; dup {
			return fmt.Errorf("%w %q: faces %d and %d share label %q", ErrInvalidTheme, t.Name, prev, i, f.Label)
		}
		seen[f.Label] = i
		if err := checkLabel(t.Name, f.Label, maxLabel); err != nil {
			return err
		}
	}

	for i, c := range t.Centers {
		if c.Label == "" {
			return fmt.Errorf("%w %q: centre image %q has no label", ErrInvalidTheme, t.Name, CenterImage(i))
		}
		if err := checkLabel(t.Name, c.Label, maxLabel); err != nil {
			return err
		}
	}

	return nil
}

// checkLabel rejects labels that are too long or use double-width runes;
// the screen buffer holds exactly one rune per terminal column.
func checkLabel(name, label string, maxLabel int) error {
	n := utf8.RuneCountInString(label)
	if runewidth.StringWidth(label) != n {
		return fmt.Errorf("%w %q: label %q uses wide characters", ErrInvalidTheme, name, label)
	}
	if maxLabel > 0 && n > maxLabel {
		return fmt.Errorf("%w %q: label %q is wider than %d", ErrInvalidTheme, name, label, maxLabel)
	}
	return nil
}

// glyphFile is the YAML form of a Glyph.
type glyphFile struct {
	Label string `yaml:"label"`
	Fill  string `yaml:"fill"`
	Color string `yaml:"color"`
}

// themeFile is the YAML form of a Theme.
type themeFile struct {
	Name    string      `yaml:"name"`
	Title   string      `yaml:"title"`
	Faces   []glyphFile `yaml:"faces"`
	Backs   []glyphFile `yaml:"backs"`
	Centers struct {
		Neutral  glyphFile `yaml:"neutral"`
		Happy    glyphFile `yaml:"happy"`
		Sad      glyphFile `yaml:"sad"`
		GameOver glyphFile `yaml:"game_over"`
	} `yaml:"centers"`
}

// Parse decodes a theme from YAML. It does not validate label widths;
// call Validate with the cell size in use.
func Parse(data []byte) (Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}

	t := Theme{Name: f.Name, Title: f.Title}
	if t.Title == "" {
		t.Title = t.Name
	}

	var err error
	if t.Faces, err = toGlyphs(f.Faces); err != nil {
		return Theme{}, err
	}
	if t.Backs, err = toGlyphs(f.Backs); err != nil {
		return Theme{}, err
	}
	centers := []glyphFile{f.Centers.Neutral, f.Centers.Happy, f.Centers.Sad, f.Centers.GameOver}
	for i, c := range centers {
		if t.Centers[i], err = toGlyph(c); err != nil {
			return Theme{}, err
		}
	}

	return t, nil
}

// LoadFile reads and parses a theme file.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: cannot read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func toGlyphs(in []glyphFile) ([]Glyph, error) {
	out := make([]Glyph, 0, len(in))
	for _, g := range in {
		glyph, err := toGlyph(g)
		if err != nil {
			return nil, err
		}
		out = append(out, glyph)
	}
	return out, nil
}

func toGlyph(g glyphFile) (Glyph, error) {
	color, ok := core.ParseColor(g.Color)
	if !ok {
		return Glyph{}, fmt.Errorf("%w: unknown color %q", ErrInvalidTheme, g.Color)
	}

	fill := ' '
	if g.Fill != "" {
		if utf8.RuneCountInString(g.Fill) != 1 {
			return Glyph{}, fmt.Errorf("%w: fill %q must be a single character", ErrInvalidTheme, g.Fill)
		}
		fill, _ = utf8.DecodeRuneInString(g.Fill)
	}

	return Glyph{Label: g.Label, Fill: fill, Color: color}, nil
}
