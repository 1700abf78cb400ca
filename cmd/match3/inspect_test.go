package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	m3 "github.com/vovakirdan/match3/internal/games/match3/core"
	"github.com/vovakirdan/match3/internal/games/match3/resolve"
)

func TestLoadBoardSources(t *testing.T) {
	rules := m3.Rules{Types: 6, Wild: m3.DefaultWild}

	dir := t.TempDir()
	textPath := filepath.Join(dir, "board.txt")
	if err := os.WriteFile(textPath, []byte("012\n120\n201\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name string
		arg  string
		in   string
		rows int
		cols int
	}{
		{"builtin layout", "starter", "", 8, 8},
		{"text file", textPath, "", 3, 3},
		{"stdin", "-", "0011\n1100\n", 2, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := loadBoard(tc.arg, rules, strings.NewReader(tc.in))
			if err != nil {
				t.Fatalf("loadBoard(%q) failed: %v", tc.arg, err)
			}
			if g.Rows != tc.rows || g.Cols != tc.cols {
				t.Errorf("expected %dx%d, got %dx%d", tc.rows, tc.cols, g.Rows, g.Cols)
			}
		})
	}
}

func TestLoadBoardErrors(t *testing.T) {
	rules := m3.Rules{Types: 3, Wild: m3.DefaultWild}

	testCases := []struct {
		name string
		arg  string
		in   string
	}{
		{"unknown layout", "nope", ""},
		{"missing file", filepath.Join(t.TempDir(), "none.txt"), ""},
		{"ragged rows", "-", "012\n01\n"},
		{"token out of range", "-", "015\n120\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadBoard(tc.arg, rules, strings.NewReader(tc.in)); err == nil {
				t.Errorf("loadBoard(%q) should fail", tc.arg)
			}
		})
	}
}

func TestBuildReport(t *testing.T) {
	rules := m3.Rules{Types: 4, Wild: m3.DefaultWild}
	g, err := m3.ParseGrid("0000\n1231\n2312", rules.Wild)
	if err != nil {
		t.Fatal(err)
	}

	r := buildReport(g, rules, nil)

	if r.Rows != 3 || r.Cols != 4 || len(r.Board) != 3 {
		t.Errorf("unexpected dimensions %+v", r)
	}
	if len(r.Runs) != 1 || r.Runs[0] != (runReport{Dir: "h", Start: "(0,0)", Len: 4}) {
		t.Errorf("unexpected runs %+v", r.Runs)
	}
	if len(r.Shapes) != 1 || r.Shapes[0].Kind != "four-in-row" || r.Shapes[0].Target != "(0,1)" {
		t.Errorf("unexpected shapes %+v", r.Shapes)
	}
	if r.Moves == nil {
		t.Error("legal moves should never be nil")
	}
	if r.Resolve != nil {
		t.Error("no resolve report without a resolver")
	}
}

func TestBuildReportResolve(t *testing.T) {
	rules := m3.Rules{Types: 4, Wild: m3.DefaultWild}
	g, err := m3.ParseGrid("0000\n1231\n2312", rules.Wild)
	if err != nil {
		t.Fatal(err)
	}
	before := g.Hash()

	r := buildReport(g, rules, resolve.New(rules, resolve.DefaultScoring(), 0, 42))

	if r.Resolve == nil || len(r.Resolve.Steps) == 0 {
		t.Fatal("expected at least one cascade")
	}
	first := r.Resolve.Steps[0]
	if first.Combo != 1 || first.Cleared != 4 || first.Points != 40 {
		t.Errorf("unexpected first step %+v", first)
	}
	if len(first.Spawned) != 1 || first.Spawned[0] != "(0,1)" {
		t.Errorf("four in a row should spawn a wild at (0,1), got %v", first.Spawned)
	}
	if r.Hash == r.Resolve.Hash || g.Hash() == before {
		t.Error("resolving should change the board")
	}

	var buf bytes.Buffer
	printReport(&buf, r)
	if !strings.Contains(buf.String(), "Resolve:") {
		t.Errorf("text report misses the resolve section:\n%s", buf.String())
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "legal_moves:") || !strings.Contains(string(data), "kind: four-in-row") {
		t.Errorf("unexpected yaml:\n%s", data)
	}
}
