package theme

import (
	"embed"
	"fmt"
	"sort"
	"sync"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "mahjong"

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Info contains metadata about a registered theme.
type Info struct {
	Name  string
	Title string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

func init() {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(fmt.Sprintf("theme: cannot read built-in themes: %v", err))
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("theme: cannot read %s: %v", e.Name(), err))
		}
		t, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("theme: built-in %s: %v", e.Name(), err))
		}
		Register(t)
	}
}

// Register adds a theme to the registry.
// Panics if a theme with the same name is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.Name]; exists {
		panic(fmt.Sprintf("theme: %q already registered", t.Name))
	}
	themes[t.Name] = t
}

// List returns information about all registered themes, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(themes))
	for name, t := range themes {
		result = append(result, Info{Name: name, Title: t.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns a registered theme by name.
func Get(name string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("theme: unknown theme %q", name)
	}
	return t, nil
}

// Exists checks if a theme with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[name]
	return ok
}

// Resolve picks the theme to play with: a theme file wins over a name,
// an empty name means DefaultName. The result is validated against the
// inner width of a board cell.
func Resolve(name, file string, maxLabel int) (Theme, error) {
	var (
		t   Theme
		err error
	)

	switch {
	case file != "":
		t, err = LoadFile(file)
	case name == "":
		t, err = Get(DefaultName)
	default:
		t, err = Get(name)
	}
	if err != nil {
		return Theme{}, err
	}

	if err := t.Validate(maxLabel); err != nil {
		return Theme{}, err
	}
	return t, nil
}
