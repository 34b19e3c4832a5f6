package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/match-cards/internal/core"
)

func TestBuiltinThemesAreValid(t *testing.T) {
	infos := List()
	if len(infos) < 2 {
		t.Fatalf("expected at least 2 built-in themes, got %d", len(infos))
	}

	for _, info := range infos {
		th, err := Get(info.Name)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", info.Name, err)
		}
		if err := th.Validate(8); err != nil {
			t.Errorf("built-in theme %q is invalid: %v", info.Name, err)
		}
	}
}

func TestListSorted(t *testing.T) {
	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Name > infos[i].Name {
			t.Errorf("List() not sorted: %q before %q", infos[i-1].Name, infos[i].Name)
		}
	}
}

func TestDefaultThemeRegistered(t *testing.T) {
	if !Exists(DefaultName) {
		t.Fatalf("default theme %q is not registered", DefaultName)
	}
	th, err := Resolve("", "", 8)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if th.Name != DefaultName {
		t.Errorf("Resolve() picked %q, expected %q", th.Name, DefaultName)
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, err := Resolve("nope", "", 8); err == nil {
		t.Error("Resolve() should fail for an unknown theme")
	}
}

func TestParseGlyphs(t *testing.T) {
	th, err := Get("mahjong")
	if err != nil {
		t.Fatal(err)
	}

	if th.Face(0).Label != "1 DOT" || th.Face(0).Color != core.ColorBrightRed {
		t.Errorf("unexpected first face: %+v", th.Face(0))
	}
	if th.Back(0).Fill != '░' {
		t.Errorf("unexpected back fill %q", th.Back(0).Fill)
	}
	if th.Back(len(th.Backs)) != th.Back(0) {
		t.Error("Back() should wrap around")
	}
	if th.Center(CenterSad).Label != ":-(" {
		t.Errorf("unexpected sad image %+v", th.Center(CenterSad))
	}
}

func TestValidateErrors(t *testing.T) {
	base, err := Get("ascii")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(th *Theme)
		width  int
	}{
		{"missing face", func(th *Theme) { th.Faces = th.Faces[:11] }, 8},
		{"no backs", func(th *Theme) { th.Backs = nil }, 8},
		{"empty face label", func(th *Theme) { th.Faces[3].Label = "" }, 8},
		{"duplicate face", func(th *Theme) { th.Faces[1].Label = th.Faces[0].Label }, 8},
		{"empty centre", func(th *Theme) { th.Centers[CenterHappy].Label = "" }, 8},
		{"label too wide", func(th *Theme) {}, 1},
		{"wide runes", func(th *Theme) { th.Faces[0].Label = "東" }, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th := base
			th.Faces = append([]Glyph(nil), base.Faces...)
			th.Backs = append([]Glyph(nil), base.Backs...)
			tc.mutate(&th)

			err := th.Validate(tc.width)
			if !errors.Is(err, ErrInvalidTheme) {
				t.Errorf("Validate() = %v, expected ErrInvalidTheme", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	data, err := builtinFS.ReadFile("builtin/ascii.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(good, data, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve("", good, 8); err != nil {
		t.Errorf("Resolve() with a valid file failed: %v", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile() should fail for a missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("faces: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("LoadFile() on corrupt YAML = %v, expected ErrInvalidTheme", err)
	}

	badColor := filepath.Join(dir, "color.yaml")
	if err := os.WriteFile(badColor, []byte("name: x\nfaces:\n  - {label: A, color: chartreuse}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(badColor); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("LoadFile() with unknown color = %v, expected ErrInvalidTheme", err)
	}
}
