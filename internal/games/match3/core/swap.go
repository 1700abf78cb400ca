package core

// SwapCells exchanges the records at a and b in place and tells each moved
// handle its new address. It does not check legality; callers decide whether
// to keep or revert the exchange. Out-of-range positions make it a no-op.
func SwapCells(g *Grid, a, b Pos) {
	if !g.InBounds(a) || !g.InBounds(b) || a == b {
		return
	}
	exchange(g, a, b)

	if h := g.Get(a).Handle; h != nil {
		h.Relocate(a)
	}
	if h := g.Get(b).Handle; h != nil {
		h.Relocate(b)
	}
}

// WouldSwapCreateMatch reports whether exchanging a and b would produce at
// least one run. It works on a private copy: neither g nor any handle is
// touched, so it is safe to call speculatively, e.g. to highlight every legal
// move.
func WouldSwapCreateMatch(g *Grid, a, b Pos) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	clone := g.Clone()
	exchange(clone, a, b)
	return HasMatch(clone)
}

// exchange swaps two cell records without notifying handles.
func exchange(g *Grid, a, b Pos) {
	ia, ib := g.index(a), g.index(b)
	g.Cells[ia], g.Cells[ib] = g.Cells[ib], g.Cells[ia]
}
