package core

import (
	"fmt"
	"strings"
)

// Glyphs used by the ASCII board format.
const (
	GlyphEmpty = '.'
	GlyphWild  = '*'
)

// Glyph returns the ASCII character for a cell: '.' empty, '*' wild,
// 0-9 then a-z for ordinary tokens, '?' for anything else.
func Glyph(c Cell, wild Token) rune {
	switch {
	case !c.Filled:
		return GlyphEmpty
	case c.Type == wild:
		return GlyphWild
	case c.Type >= 0 && c.Type <= 9:
		return '0' + rune(c.Type)
	case c.Type >= 10 && c.Type < 36:
		return 'a' + rune(c.Type-10)
	default:
		return '?'
	}
}

// ParseGlyph converts an ASCII board character back to a cell.
func ParseGlyph(ch rune, wild Token) (Cell, bool) {
	switch {
	case ch == GlyphEmpty:
		return Empty(), true
	case ch == GlyphWild:
		return TokenCell(wild), true
	case ch >= '0' && ch <= '9':
		return TokenCell(Token(ch - '0')), true
	case ch >= 'a' && ch <= 'z':
		return TokenCell(Token(ch-'a') + 10), true
	default:
		return Cell{}, false
	}
}

// ParseGrid reads a board written one row per line using the glyphs above.
// Spaces inside a row and blank lines are ignored. Rows must be equally long.
func ParseGrid(text string, wild Token) (*Grid, error) {
	var rows [][]Cell
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			cell, ok := ParseGlyph(ch, wild)
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q in row %d",
					ErrInvalidGridShape, ch, len(rows))
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidGridShape)
	}

	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrInvalidGridShape, r, len(row), g.Cols)
		}
		for c, cell := range row {
			g.Set(P(r, c), cell)
		}
	}
	return g, nil
}

// RenderASCII writes the grid one row per line using the glyphs above.
// It is the inverse of ParseGrid and is used for debugging and golden tests.
func RenderASCII(g *Grid, wild Token) string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))

	for r := 0; r < g.Rows; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := 0; c < g.Cols; c++ {
			sb.WriteRune(Glyph(g.At(r, c), wild))
		}
	}
	return sb.String()
}
