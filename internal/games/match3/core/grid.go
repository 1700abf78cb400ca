package core

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Grid is the board as a rectangular grid of cells.
// Cells are stored in row-major order: index = row*Cols + col.
type Grid struct {
	Rows  int    // Number of rows
	Cols  int    // Number of columns
	Cells []Cell // Flat array of cells, length Rows*Cols
}

// NewGrid creates an empty grid with the given dimensions.
// Non-positive dimensions produce a grid with no cells.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
}

// FromRows builds a fully populated grid from rows of tokens.
// Every row must have the same length.
func FromRows(rows [][]Token) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidGridShape)
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrInvalidGridShape, r, len(row), g.Cols)
		}
		for c, t := range row {
			g.Cells[g.index(P(r, c))] = TokenCell(t)
		}
	}
	return g, nil
}

// Validate checks that the declared dimensions match the cell storage.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidGridShape)
	}
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGridShape, g.Rows, g.Cols)
	}
	if len(g.Cells) != g.Rows*g.Cols {
		return fmt.Errorf("%w: %dx%d grid holds %d cells",
			ErrInvalidGridShape, g.Rows, g.Cols, len(g.Cells))
	}
	return nil
}

// index converts a position to a flat array index.
func (g *Grid) index(p Pos) int {
	return p.Row*g.Cols + p.Col
}

// InBounds returns true if the position is within the grid boundaries.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols &&
		g.index(p) < len(g.Cells)
}

// Get returns the cell at the given position.
// Returns an empty cell if out of bounds.
func (g *Grid) Get(p Pos) Cell {
	if !g.InBounds(p) {
		return Empty()
	}
	return g.Cells[g.index(p)]
}

// At is shorthand for Get(P(row, col)).
func (g *Grid) At(row, col int) Cell {
	return g.Get(P(row, col))
}

// Set stores a cell record at the given position.
func (g *Grid) Set(p Pos, cell Cell) {
	if g.InBounds(p) {
		g.Cells[g.index(p)] = cell
	}
}

// SetToken places token t at p, keeping no handle.
func (g *Grid) SetToken(p Pos, t Token) {
	g.Set(p, TokenCell(t))
}

// SetEmpty clears the cell at p, dropping its handle.
func (g *Grid) SetEmpty(p Pos) {
	g.Set(p, Empty())
}

// Clone returns a copy of the grid. Cell records are copied; handles are
// shared with the original and must not be notified through the copy.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Cells: cells,
	}
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// EmptyPositions returns the empty cells in row-major order.
func (g *Grid) EmptyPositions() []Pos {
	positions := make([]Pos, 0)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if !g.At(r, c).Filled {
				positions = append(positions, P(r, c))
			}
		}
	}
	return positions
}

// Equal returns true if two grids have the same dimensions and tokens.
// Handles are not compared.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols || len(g.Cells) != len(other.Cells) {
		return false
	}
	for i, cell := range g.Cells {
		o := other.Cells[i]
		if cell.Filled != o.Filled || (cell.Filled && cell.Type != o.Type) {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit fingerprint of the dimensions and tokens.
// Equal grids hash equally; handles do not contribute.
func (g *Grid) Hash() uint64 {
	buf := make([]byte, 8, 8+2*len(g.Cells))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(g.Rows))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(g.Cols))
	for _, cell := range g.Cells {
		if !cell.Filled {
			buf = append(buf, 0, 0)
			continue
		}
		buf = append(buf, 1, byte(cell.Type))
	}
	return xxhash.Sum64(buf)
}
