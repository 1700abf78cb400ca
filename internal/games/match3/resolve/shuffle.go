package resolve

import (
	"math/rand"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

// DefaultMaxShuffles bounds the redistributions tried by Shuffle.
const DefaultMaxShuffles = 100

// Shuffle redistributes the tokens already on the board over the filled cells
// until the board has no run, no special shape and at least one legal move. It reports whether
// such an arrangement was found within maxAttempts; on failure the board is
// restored. Handles travel with their tokens and are told their new address.
func Shuffle(g *core.Grid, rules core.Rules, rng *rand.Rand, maxAttempts int) bool {
	slots := make([]core.Pos, 0, len(g.Cells))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.At(r, c).Filled {
				slots = append(slots, core.P(r, c))
			}
		}
	}
	if len(slots) < 2 {
		return false
	}

	original := make([]core.Cell, len(slots))
	for i, p := range slots {
		original[i] = g.Get(p)
	}

	cells := make([]core.Cell, len(original))
	for attempt := 0; attempt < maxAttempts; attempt++ {
		copy(cells, original)
		rng.Shuffle(len(cells), func(i, j int) {
			cells[i], cells[j] = cells[j], cells[i]
		})
		for i, p := range slots {
			g.Set(p, cells[i])
		}

		if !core.HasMatch(g) && HasLegalMove(g, rules) &&
			len(core.FindSpecialCombinations(g, rules.Wild)) == 0 {
			for i, p := range slots {
				if cells[i].Handle != nil {
					cells[i].Handle.Relocate(p)
				}
			}
			return true
		}
	}

	for i, p := range slots {
		g.Set(p, original[i])
	}
	return false
}
