package core_test

import (
	"testing"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

// countingHandle records every address it is told about.
type countingHandle struct {
	moves []core.Pos
}

func (h *countingHandle) Relocate(p core.Pos) {
	h.moves = append(h.moves, p)
}

func TestSwapCells(t *testing.T) {
	g := mustParse(t, "01\n23")
	ha, hb := &countingHandle{}, &countingHandle{}
	g.Set(core.P(0, 0), core.Cell{Filled: true, Type: 0, Handle: ha})
	g.Set(core.P(0, 1), core.Cell{Filled: true, Type: 1, Handle: hb})

	core.SwapCells(g, core.P(0, 0), core.P(0, 1))

	if !g.At(0, 0).Is(1) || !g.At(0, 1).Is(0) {
		t.Fatalf("tokens not exchanged:\n%s", core.RenderASCII(g, core.DefaultWild))
	}
	if g.At(0, 1).Handle != ha || g.At(0, 0).Handle != hb {
		t.Error("handles should travel with their tokens")
	}
	if len(ha.moves) != 1 || ha.moves[0] != core.P(0, 1) {
		t.Errorf("handle a: expected relocation to (0,1), got %v", ha.moves)
	}
	if len(hb.moves) != 1 || hb.moves[0] != core.P(0, 0) {
		t.Errorf("handle b: expected relocation to (0,0), got %v", hb.moves)
	}
}

func TestSwapCellsWithEmpty(t *testing.T) {
	g := mustParse(t, "0.")
	h := &countingHandle{}
	g.Set(core.P(0, 0), core.Cell{Filled: true, Type: 0, Handle: h})

	core.SwapCells(g, core.P(0, 0), core.P(0, 1))

	if g.At(0, 0).Filled || !g.At(0, 1).Is(0) {
		t.Errorf("unexpected board after swap:\n%s", core.RenderASCII(g, core.DefaultWild))
	}
	if len(h.moves) != 1 || h.moves[0] != core.P(0, 1) {
		t.Errorf("expected relocation to (0,1), got %v", h.moves)
	}
}

func TestSwapCellsOutOfRangeIsNoop(t *testing.T) {
	g := mustParse(t, "01\n23")
	before := g.Hash()

	core.SwapCells(g, core.P(0, 0), core.P(0, 2))
	core.SwapCells(g, core.P(-1, 0), core.P(0, 0))
	core.SwapCells(g, core.P(1, 1), core.P(1, 1))

	if g.Hash() != before {
		t.Errorf("grid changed:\n%s", core.RenderASCII(g, core.DefaultWild))
	}
}

func TestSwapCellsIsInvolution(t *testing.T) {
	g := mustParse(t, "012\n345\n210")
	before := g.Clone()

	core.SwapCells(g, core.P(1, 1), core.P(2, 1))
	core.SwapCells(g, core.P(1, 1), core.P(2, 1))

	if !g.Equal(before) {
		t.Error("swapping twice should restore the grid")
	}
}

func TestWouldSwapCreateMatch(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		a, b     core.Pos
		expected bool
	}{
		{
			name: "vertical runs after swap",
			text: `
				01234501
				11234501
				12234501
				34501234
				45012345
				50123450
				01234501
				12345012
			`,
			a:        core.P(1, 0),
			b:        core.P(0, 0),
			expected: true,
		},
		{
			name:     "completes a row",
			text:     "0010\n1201",
			a:        core.P(0, 2),
			b:        core.P(0, 3),
			expected: true,
		},
		{
			name: "pairs only",
			text: `
				12123450
				34501234
				45012345
				50123450
				01234501
				12345012
				23450123
				34501234
			`,
			a:        core.P(0, 1),
			b:        core.P(0, 2),
			expected: false,
		},
		{
			name:     "out of range",
			text:     "001",
			a:        core.P(0, 2),
			b:        core.P(0, 3),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.text)
			if got := core.WouldSwapCreateMatch(g, tc.a, tc.b); got != tc.expected {
				t.Errorf("WouldSwapCreateMatch(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestWouldSwapCreateMatchDoesNotMutate(t *testing.T) {
	g := mustParse(t, `
		12123450
		34501234
		45012345
		50123450
		01234501
		12345012
		23450123
		34501234
	`)
	handles := make([]*countingHandle, len(g.Cells))
	for i := range g.Cells {
		handles[i] = &countingHandle{}
		g.Cells[i].Handle = handles[i]
	}
	before := g.Clone()
	hash := g.Hash()

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			core.WouldSwapCreateMatch(g, core.P(r, c), core.P(r, c+1))
			core.WouldSwapCreateMatch(g, core.P(r, c), core.P(r+1, c))
		}
	}

	if g.Hash() != hash || !g.Equal(before) {
		t.Error("grid changed during speculative swaps")
	}
	for i, h := range handles {
		if len(h.moves) != 0 {
			t.Errorf("handle %d was relocated: %v", i, h.moves)
		}
		if g.Cells[i].Handle != h {
			t.Errorf("handle %d moved to another cell", i)
		}
	}
}
