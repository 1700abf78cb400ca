package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

func assertRuns(t *testing.T, got, want []core.Run) {
	t.Helper()
	if got == nil {
		t.Fatal("FindMatches returned nil")
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d runs %v, got %d %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestFindMatchesHorizontal(t *testing.T) {
	g := mustParse(t, `
		00012345
		12345012
		23450123
		34501234
		45012345
		50123450
		01234501
		12345012
	`)

	assertRuns(t, core.FindMatches(g), []core.Run{
		{Dir: core.Horizontal, Row: 0, Col: 0, Len: 3},
	})
}

func TestFindMatchesVertical(t *testing.T) {
	g := mustParse(t, `
		01234501
		02345012
		03450123
		04501234
		45012345
		50123450
		01234501
		12345012
	`)

	assertRuns(t, core.FindMatches(g), []core.Run{
		{Dir: core.Vertical, Row: 0, Col: 0, Len: 4},
	})
}

func TestFindMatchesOrderAndOverlap(t *testing.T) {
	g := mustParse(t, `
		000
		102
		301
	`)

	// Horizontal runs first, then vertical; the shared cell is reported twice.
	assertRuns(t, core.FindMatches(g), []core.Run{
		{Dir: core.Horizontal, Row: 0, Col: 0, Len: 3},
		{Dir: core.Vertical, Row: 0, Col: 1, Len: 3},
	})
}

func TestFindMatchesEmptyBreaksRuns(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []core.Run
	}{
		{"gap", "00.00", []core.Run{}},
		{"two runs", "000.000", []core.Run{
			{Dir: core.Horizontal, Row: 0, Col: 0, Len: 3},
			{Dir: core.Horizontal, Row: 0, Col: 4, Len: 3},
		}},
		{"all empty", "...\n...\n...", []core.Run{}},
		{"vertical gap", "0\n0\n.\n0", []core.Run{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertRuns(t, core.FindMatches(mustParse(t, tc.text)), tc.want)
		})
	}
}

func TestFindMatchesWildFormsPlainRuns(t *testing.T) {
	g := mustParse(t, "***\n123")

	assertRuns(t, core.FindMatches(g), []core.Run{
		{Dir: core.Horizontal, Row: 0, Col: 0, Len: 3},
	})
}

func TestFindMatchesDegenerateGrids(t *testing.T) {
	for _, g := range []*core.Grid{core.NewGrid(0, 0), core.NewGrid(1, 1), core.NewGrid(2, 2)} {
		assertRuns(t, core.FindMatches(g), []core.Run{})
	}
}

func TestRunCells(t *testing.T) {
	r := core.Run{Dir: core.Vertical, Row: 1, Col: 2, Len: 3}

	want := []core.Pos{core.P(1, 2), core.P(2, 2), core.P(3, 2)}
	got := r.Cells()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
		if !r.Contains(want[i]) {
			t.Errorf("run should contain %v", want[i])
		}
	}
	if r.Contains(core.P(4, 2)) || r.Contains(core.P(1, 3)) {
		t.Error("run contains a cell outside it")
	}
}

func TestCreatesMatchAt(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		pos      core.Pos
		token    core.Token
		expected bool
	}{
		{"two before", "00.", core.P(0, 2), 0, true},
		{"two after", ".00", core.P(0, 0), 0, true},
		{"flanking", "0.0", core.P(0, 1), 0, true},
		{"two above", "0\n0\n.", core.P(2, 0), 0, true},
		{"two below", ".\n0\n0", core.P(0, 0), 0, true},
		{"flanking vertical", "0\n.\n0", core.P(1, 0), 0, true},
		{"other token", "00.", core.P(0, 2), 1, false},
		{"mixed neighbours", "0.1", core.P(0, 1), 0, false},
		{"single neighbour", "0..", core.P(0, 1), 0, false},
		{"current content ignored", "001", core.P(0, 2), 0, true},
		{"empty neighbours", "...", core.P(0, 1), 0, false},
		{"wild neighbours, ordinary token", "**.", core.P(0, 2), 0, false},
		{"wild neighbours, wild token", "**.", core.P(0, 2), core.DefaultWild, true},
		{"edge", ".0\n00", core.P(0, 0), 0, false},
		{"out of bounds", "00.", core.P(0, 3), 0, false},
		{"negative", "00.", core.P(-1, 0), 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.text)
			if got := core.CreatesMatchAt(g, tc.pos.Row, tc.pos.Col, tc.token); got != tc.expected {
				t.Errorf("CreatesMatchAt(%v, %d) = %v, want %v", tc.pos, tc.token, got, tc.expected)
			}
		})
	}
}

// CreatesMatchAt must agree with FindMatches about runs through the placed cell.
func TestCreatesMatchAtAgreesWithFindMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		g := core.NewGrid(6, 7)
		for i := range g.Cells {
			if rng.Intn(8) == 0 {
				continue
			}
			g.Cells[i] = core.TokenCell(core.Token(rng.Intn(4)))
		}

		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				for tok := core.Token(0); tok < 4; tok++ {
					placed := g.Clone()
					placed.SetToken(core.P(r, c), tok)

					through := false
					for _, run := range core.FindMatches(placed) {
						if run.Contains(core.P(r, c)) {
							through = true
							break
						}
					}

					if got := core.CreatesMatchAt(g, r, c, tok); got != through {
						t.Fatalf("trial %d: CreatesMatchAt(%d,%d,%d) = %v, run through cell = %v\n%s",
							trial, r, c, tok, got, through, core.RenderASCII(g, core.DefaultWild))
					}
				}
			}
		}
	}
}

func TestHasMatch(t *testing.T) {
	if core.HasMatch(mustParse(t, "010\n101")) {
		t.Error("expected no match")
	}
	if !core.HasMatch(mustParse(t, "010\n111")) {
		t.Error("expected a match")
	}
}
