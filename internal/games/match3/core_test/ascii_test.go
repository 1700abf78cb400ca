package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

func TestParseGrid(t *testing.T) {
	g := mustParse(t, `
		0 1 *
		. a 2
	`)

	if g.Rows != 2 || g.Cols != 3 {
		t.Fatalf("expected 2x3, got %dx%d", g.Rows, g.Cols)
	}

	testCases := []struct {
		pos    core.Pos
		filled bool
		token  core.Token
	}{
		{core.P(0, 0), true, 0},
		{core.P(0, 1), true, 1},
		{core.P(0, 2), true, core.DefaultWild},
		{core.P(1, 0), false, 0},
		{core.P(1, 1), true, 10},
		{core.P(1, 2), true, 2},
	}

	for _, tc := range testCases {
		cell := g.Get(tc.pos)
		if cell.Filled != tc.filled {
			t.Errorf("at %v: expected filled=%v, got %v", tc.pos, tc.filled, cell.Filled)
		}
		if tc.filled && cell.Type != tc.token {
			t.Errorf("at %v: expected token %d, got %d", tc.pos, tc.token, cell.Type)
		}
	}
}

func TestParseGridErrors(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{"empty", "\n  \n"},
		{"ragged", "012\n01"},
		{"unknown glyph", "01#"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.ParseGrid(tc.text, core.DefaultWild)
			if !errors.Is(err, core.ErrInvalidGridShape) {
				t.Errorf("expected ErrInvalidGridShape, got %v", err)
			}
		})
	}
}

func TestRenderASCIIRoundTrip(t *testing.T) {
	text := "01*\n.a2\n543"
	g := mustParse(t, text)

	if got := core.RenderASCII(g, core.DefaultWild); got != text {
		t.Errorf("RenderASCII mismatch:\nwant:\n%s\ngot:\n%s", text, got)
	}
}
