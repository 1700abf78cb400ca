package resolve

import (
	"math/rand"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

// Drop records a token falling from one cell to another during Collapse.
type Drop struct {
	From core.Pos
	To   core.Pos
}

// Collapse lets tokens fall to the bottom of each column, keeping their order.
// Moved handles are told their new address. Drops are listed column by
// column, bottom-up.
func Collapse(g *core.Grid) []Drop {
	drops := make([]Drop, 0)

	for c := 0; c < g.Cols; c++ {
		write := g.Rows - 1
		for r := g.Rows - 1; r >= 0; r-- {
			cell := g.At(r, c)
			if !cell.Filled {
				continue
			}
			if r != write {
				from, to := core.P(r, c), core.P(write, c)
				g.Set(to, cell)
				g.SetEmpty(from)
				if cell.Handle != nil {
					cell.Handle.Relocate(to)
				}
				drops = append(drops, Drop{From: from, To: to})
			}
			write--
		}
	}

	return drops
}

// Refill puts a random ordinary token in every empty cell and returns the
// refilled positions in row-major order. Unlike Fill it does not avoid runs:
// whatever lands may start the next cascade.
func Refill(g *core.Grid, rules core.Rules, rng *rand.Rand) []core.Pos {
	positions := g.EmptyPositions()
	for _, p := range positions {
		g.SetToken(p, randomToken(rules, rng))
	}
	return positions
}
