package resolve

import (
	"math/rand"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

// Settle breaks up the special shapes of a run-free board without scoring
// anything. Each pass rerolls one cell of the first shape found to a token
// that completes no run, preferring tokens that lower the number of shapes.
// It reports whether the board ended up free of shapes within maxPasses.
// Rerolled cells lose their handle.
func Settle(g *core.Grid, rules core.Rules, rng *rand.Rand, maxPasses int) bool {
	shapes := core.FindSpecialCombinations(g, rules.Wild)
	for pass := 0; pass < maxPasses && len(shapes) > 0; pass++ {
		if !breakShape(g, shapes[0], len(shapes), rules, rng) {
			return false
		}
		shapes = core.FindSpecialCombinations(g, rules.Wild)
	}
	return len(shapes) == 0
}

// breakShape rerolls one cell of s, trying the target first.
func breakShape(g *core.Grid, s core.SpecialShape, count int, rules core.Rules, rng *rand.Rand) bool {
	cells := make([]core.Pos, 0, len(s.Positions))
	cells = append(cells, s.Target)
	for _, p := range s.Positions {
		if p != s.Target {
			cells = append(cells, p)
		}
	}

	var fallback *core.Pos
	var fallbackTok core.Token
	for _, p := range cells {
		original := g.Get(p)
		for _, n := range rng.Perm(rules.Types) {
			t := core.Token(n)
			if t == original.Type || core.CreatesMatchAt(g, p.Row, p.Col, t) {
				continue
			}
			g.SetToken(p, t)
			if len(core.FindSpecialCombinations(g, rules.Wild)) < count {
				return true
			}
			g.Set(p, original)
			if fallback == nil {
				at := p
				fallback, fallbackTok = &at, t
			}
		}
	}

	if fallback == nil {
		return false
	}
	g.SetToken(*fallback, fallbackTok)
	return true
}
