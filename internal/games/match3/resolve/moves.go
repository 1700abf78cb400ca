package resolve

import (
	"errors"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

// ErrIllegalMove is returned when a swap neither forms a run nor activates a
// wild token. The board is left as it was.
var ErrIllegalMove = errors.New("resolve: illegal move")

// ErrNotAdjacent is returned for swaps between cells that do not share an edge.
var ErrNotAdjacent = errors.New("resolve: cells are not adjacent")

// Move is a swap of two adjacent cells.
type Move struct {
	A core.Pos
	B core.Pos
}

// IsWildActivation reports whether the move swaps a wild token with an
// ordinary one. It returns the ordinary token that would be wiped.
func IsWildActivation(g *core.Grid, rules core.Rules, m Move) (core.Token, bool) {
	a, b := g.Get(m.A), g.Get(m.B)
	if !a.Filled || !b.Filled {
		return 0, false
	}
	switch {
	case a.Type == rules.Wild && rules.IsOrdinary(b.Type):
		return b.Type, true
	case b.Type == rules.Wild && rules.IsOrdinary(a.Type):
		return a.Type, true
	}
	return 0, false
}

// IsLegal reports whether m is an adjacent swap that forms a run or
// activates a wild token.
func IsLegal(g *core.Grid, rules core.Rules, m Move) bool {
	if !m.A.Adjacent(m.B) || !g.InBounds(m.A) || !g.InBounds(m.B) {
		return false
	}
	if _, ok := IsWildActivation(g, rules, m); ok {
		return true
	}
	return core.WouldSwapCreateMatch(g, m.A, m.B)
}

// LegalMoves lists every legal swap in row-major order of the first cell,
// trying the right neighbour before the one below.
func LegalMoves(g *core.Grid, rules core.Rules) []Move {
	moves := make([]Move, 0)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			a := core.P(r, c)
			for _, b := range []core.Pos{a.Add(0, 1), a.Add(1, 0)} {
				m := Move{A: a, B: b}
				if IsLegal(g, rules, m) {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// HasLegalMove reports whether at least one legal swap exists.
func HasLegalMove(g *core.Grid, rules core.Rules) bool {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			a := core.P(r, c)
			if IsLegal(g, rules, Move{A: a, B: a.Add(0, 1)}) || IsLegal(g, rules, Move{A: a, B: a.Add(1, 0)}) {
				return true
			}
		}
	}
	return false
}
