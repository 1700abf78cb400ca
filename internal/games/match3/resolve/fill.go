// Package resolve drives a board through the consequences of a move: initial
// fill, clearing, gravity, refill, chain reactions, wild activation and
// scoring. It builds on the pure queries of package core.
package resolve

import (
	"math/rand"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

// DefaultMaxFillRetries bounds the rerolls spent on a single cell by Fill.
const DefaultMaxFillRetries = 32

// FillStats reports what Fill had to do to produce a match-free board.
type FillStats struct {
	Filled    int // Cells populated
	Rerolls   int // Rolls rejected because they completed a run
	Fallbacks int // Cells where the retry budget ran out
	Relaxed   int // Fallback cells that still complete a run
}

// Fill populates every empty cell in row-major order with a random ordinary
// token that does not complete a run. Each cell gets at most maxRetries
// rerolls; after that the first token that does not match is used, and if
// none exists the last roll is kept.
func Fill(g *core.Grid, rules core.Rules, rng *rand.Rand, maxRetries int) FillStats {
	if maxRetries < 0 {
		maxRetries = 0
	}
	var stats FillStats

	for _, p := range g.EmptyPositions() {
		t := randomToken(rules, rng)
		retries := 0
		for core.CreatesMatchAt(g, p.Row, p.Col, t) && retries < maxRetries {
			t = randomToken(rules, rng)
			retries++
			stats.Rerolls++
		}

		if core.CreatesMatchAt(g, p.Row, p.Col, t) {
			stats.Fallbacks++
			if safe, ok := firstSafeToken(g, p, rules); ok {
				t = safe
			} else {
				stats.Relaxed++
			}
		}

		g.SetToken(p, t)
		stats.Filled++
	}

	return stats
}

// NewBoard creates and fills a rows x cols board.
func NewBoard(rows, cols int, rules core.Rules, rng *rand.Rand, maxRetries int) (*core.Grid, FillStats) {
	g := core.NewGrid(rows, cols)
	stats := Fill(g, rules, rng, maxRetries)
	return g, stats
}

func randomToken(rules core.Rules, rng *rand.Rand) core.Token {
	return core.Token(rng.Intn(rules.Types))
}

func firstSafeToken(g *core.Grid, p core.Pos, rules core.Rules) (core.Token, bool) {
	for t := range rules.Types {
		if !core.CreatesMatchAt(g, p.Row, p.Col, core.Token(t)) {
			return core.Token(t), true
		}
	}
	return 0, false
}
