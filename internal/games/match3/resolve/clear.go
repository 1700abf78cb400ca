package resolve

import "github.com/vovakirdan/match3/internal/games/match3/core"

// Clear empties every listed cell. Positions may repeat or already be empty;
// each cell is cleared at most once. Returns the number of cells emptied.
func Clear(g *core.Grid, positions []core.Pos) int {
	cleared := 0
	for _, p := range positions {
		if g.Get(p).Filled {
			g.SetEmpty(p)
			cleared++
		}
	}
	return cleared
}

// ClearType empties every cell holding token t and returns their positions in
// row-major order.
func ClearType(g *core.Grid, t core.Token) []core.Pos {
	positions := make([]core.Pos, 0)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			p := core.P(r, c)
			if g.Get(p).Is(t) {
				g.SetEmpty(p)
				positions = append(positions, p)
			}
		}
	}
	return positions
}
