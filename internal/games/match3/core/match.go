package core

// Dir is the orientation of a run.
type Dir uint8

const (
	Horizontal Dir = iota
	Vertical
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	default:
		return "?"
	}
}

// MinRun is the shortest line of equal tokens that counts as a match.
const MinRun = 3

// Run is a straight line of MinRun or more adjacent cells holding the same token.
type Run struct {
	Dir Dir
	Row int // Row of the first cell
	Col int // Column of the first cell
	Len int
}

// Start returns the position of the run's first cell.
func (r Run) Start() Pos {
	return P(r.Row, r.Col)
}

// Cells returns the positions covered by the run, from its first cell.
func (r Run) Cells() []Pos {
	cells := make([]Pos, r.Len)
	for i := range r.Len {
		if r.Dir == Horizontal {
			cells[i] = P(r.Row, r.Col+i)
		} else {
			cells[i] = P(r.Row+i, r.Col)
		}
	}
	return cells
}

// Contains reports whether the run covers p.
func (r Run) Contains(p Pos) bool {
	if r.Dir == Horizontal {
		return p.Row == r.Row && p.Col >= r.Col && p.Col < r.Col+r.Len
	}
	return p.Col == r.Col && p.Row >= r.Row && p.Row < r.Row+r.Len
}

// CreatesMatchAt reports whether placing token t at (row, col) would complete a
// run. The current content of (row, col) is ignored. All six completions are
// checked: two before, two after and flanking, both along the row and the column.
// Out-of-bounds neighbours never match.
func CreatesMatchAt(g *Grid, row, col int, t Token) bool {
	if !g.InBounds(P(row, col)) {
		return false
	}
	same := func(r, c int) bool {
		return g.At(r, c).Is(t)
	}

	// Horizontal: xx@, @xx, x@x
	if same(row, col-1) && same(row, col-2) {
		return true
	}
	if same(row, col+1) && same(row, col+2) {
		return true
	}
	if same(row, col-1) && same(row, col+1) {
		return true
	}

	// Vertical
	if same(row-1, col) && same(row-2, col) {
		return true
	}
	if same(row+1, col) && same(row+2, col) {
		return true
	}
	if same(row-1, col) && same(row+1, col) {
		return true
	}
	return false
}

// FindMatches scans the whole grid and returns every run.
// Horizontal runs come first in row-major order, then vertical runs in
// column-major order. Empty cells always break a run. Overlapping runs are
// reported independently. The result is never nil.
func FindMatches(g *Grid) []Run {
	matches := make([]Run, 0)

	// Horizontal
	for r := 0; r < g.Rows; r++ {
		run := 1
		for c := 1; c <= g.Cols; c++ {
			if c < g.Cols && sameToken(g.At(r, c), g.At(r, c-1)) {
				run++
				continue
			}
			if run >= MinRun {
				matches = append(matches, Run{Dir: Horizontal, Row: r, Col: c - run, Len: run})
			}
			run = 1
		}
	}

	// Vertical
	for c := 0; c < g.Cols; c++ {
		run := 1
		for r := 1; r <= g.Rows; r++ {
			if r < g.Rows && sameToken(g.At(r, c), g.At(r-1, c)) {
				run++
				continue
			}
			if run >= MinRun {
				matches = append(matches, Run{Dir: Vertical, Row: r - run, Col: c, Len: run})
			}
			run = 1
		}
	}

	return matches
}

// HasMatch reports whether the grid contains at least one run.
func HasMatch(g *Grid) bool {
	return len(FindMatches(g)) > 0
}

// sameToken reports whether two cells are both filled with the same token.
func sameToken(a, b Cell) bool {
	return a.Filled && b.Filled && a.Type == b.Type
}
