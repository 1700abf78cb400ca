// Package layouts loads fixed starting boards written in YAML.
//
// A layout names a board and lists its rows using the ASCII glyphs of
// core.ParseGrid: digits and letters for ordinary tokens, '*' for the wild
// token and '.' for an empty cell.
package layouts

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Layout is a named starting board.
type Layout struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Rows        []string `yaml:"rows"`
}

// Parse decodes a layout document.
func Parse(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("layouts: %w", err)
	}
	if len(l.Rows) == 0 {
		return Layout{}, fmt.Errorf("layouts: %q has no rows", l.Name)
	}
	return l, nil
}

// Load reads a layout from a file, or a built-in layout when name has no
// path separator and no extension.
func Load(name string) (Layout, error) {
	if !strings.ContainsAny(name, `/\`) && path.Ext(name) == "" {
		return Builtin(name)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: failed to read %s: %w", name, err)
	}
	return Parse(data)
}

// Builtin returns an embedded layout by name.
func Builtin(name string) (Layout, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: unknown layout %q", name)
	}
	return Parse(data)
}

// Names returns the names of the built-in layouts, sorted.
func Names() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Grid builds the board described by the layout and checks its tokens
// against the rules.
func (l Layout) Grid(rules core.Rules) (*core.Grid, error) {
	g, err := core.ParseGrid(strings.Join(l.Rows, "\n"), rules.Wild)
	if err != nil {
		return nil, fmt.Errorf("layouts: %q: %w", l.Name, err)
	}
	for i, cell := range g.Cells {
		if cell.Filled && cell.Type != rules.Wild && !rules.IsOrdinary(cell.Type) {
			return nil, fmt.Errorf("layouts: %q: token %d at %v exceeds %d types",
				l.Name, cell.Type, core.P(i/g.Cols, i%g.Cols), rules.Types)
		}
	}
	return g, nil
}
