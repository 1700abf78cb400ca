package layouts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

func TestBuiltinLayouts(t *testing.T) {
	names := Names()
	want := []string{"shapes", "starter", "stuck", "wild"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}

	for i, name := range want {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}

		l, err := Builtin(name)
		if err != nil {
			t.Fatalf("Builtin(%q) failed: %v", name, err)
		}
		if l.Name != name {
			t.Errorf("layout %q declares name %q", name, l.Name)
		}
		g, err := l.Grid(core.DefaultRules())
		if err != nil {
			t.Fatalf("%q: Grid() failed: %v", name, err)
		}
		if g.Rows != 8 || g.Cols != 8 || g.FilledCount() != 64 {
			t.Errorf("%q: expected a full 8x8 board, got %dx%d with %d tokens", name, g.Rows, g.Cols, g.FilledCount())
		}
	}
}

func TestBuiltinLayoutContents(t *testing.T) {
	rules := core.DefaultRules()

	grid := func(name string) *core.Grid {
		t.Helper()
		l, err := Builtin(name)
		if err != nil {
			t.Fatalf("Builtin(%q) failed: %v", name, err)
		}
		g, err := l.Grid(rules)
		if err != nil {
			t.Fatalf("Grid() failed: %v", err)
		}
		return g
	}

	if core.HasMatch(grid("starter")) {
		t.Error("starter should have no run")
	}
	if core.HasMatch(grid("stuck")) {
		t.Error("stuck should have no run")
	}

	shapes := core.FindSpecialCombinations(grid("shapes"), rules.Wild)
	kinds := map[core.ShapeKind]bool{}
	for _, s := range shapes {
		kinds[s.Kind] = true
	}
	for _, k := range []core.ShapeKind{core.FourInRow, core.FiveInRow, core.Square, core.LShape, core.TShape} {
		if !kinds[k] {
			t.Errorf("shapes layout is missing a %v", k)
		}
	}

	if !grid("wild").At(0, 0).Is(rules.Wild) {
		t.Error("wild layout should start with a wild token")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mini.yaml")
	data := []byte("name: mini\nrows:\n  - \"012\"\n  - \"1.0\"\n  - \"20*\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	g, err := l.Grid(core.DefaultRules())
	if err != nil {
		t.Fatalf("Grid() failed: %v", err)
	}
	if got := core.RenderASCII(g, core.DefaultWild); got != "012\n1.0\n20*" {
		t.Errorf("unexpected board:\n%s", got)
	}
}

func TestLayoutErrors(t *testing.T) {
	if _, err := Load("no-such-layout"); err == nil {
		t.Error("expected error for unknown builtin")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Parse([]byte("name: empty\n")); err == nil {
		t.Error("expected error for a layout without rows")
	}

	ragged := Layout{Name: "ragged", Rows: []string{"012", "01"}}
	if _, err := ragged.Grid(core.DefaultRules()); !errors.Is(err, core.ErrInvalidGridShape) {
		t.Errorf("expected ErrInvalidGridShape, got %v", err)
	}

	tooMany := Layout{Name: "nine", Rows: []string{"019", "120"}}
	if _, err := tooMany.Grid(core.DefaultRules()); err == nil {
		t.Error("expected error for token outside the rules")
	}
}
