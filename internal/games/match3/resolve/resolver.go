package resolve

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

// DefaultMaxCascades caps the chain reactions resolved after a single move.
const DefaultMaxCascades = 50

// Step is one cascade of a resolution: everything cleared before gravity runs.
type Step struct {
	Combo    int                 // 1 for the move itself, then +1 per chain reaction
	Wild     bool                // Step is a wild activation
	WildType core.Token          // Ordinary token wiped by the activation
	Shapes   []core.SpecialShape // Special shapes found at the start of the step
	Spawned  []core.Pos          // Distinct shape targets that received a wild token
	Runs     []core.Run          // Runs left once the shape cells were emptied
	Cleared  int                 // Cells emptied
	Points   int
	Drops    []Drop
	Refilled []core.Pos
}

// Result summarises a resolution.
type Result struct {
	Steps  []Step
	Points int
	Capped bool // Stopped at MaxCascades while the board was still unstable
}

// Cascades returns the number of steps that cleared something.
func (r Result) Cascades() int {
	return len(r.Steps)
}

// Cleared returns the total number of cells emptied.
func (r Result) Cleared() int {
	return lo.SumBy(r.Steps, func(s Step) int { return s.Cleared })
}

// Resolver applies moves and resolves chain reactions on a board.
// It is not safe for concurrent use because of its RNG.
type Resolver struct {
	Rules       core.Rules
	Scoring     Scoring
	MaxCascades int
	RNG         *rand.Rand
}

// New creates a resolver with the given rules and a seeded RNG.
func New(rules core.Rules, scoring Scoring, maxCascades int, seed int64) *Resolver {
	if maxCascades <= 0 {
		maxCascades = DefaultMaxCascades
	}
	return &Resolver{
		Rules:       rules,
		Scoring:     scoring,
		MaxCascades: maxCascades,
		RNG:         rand.New(rand.NewSource(seed)),
	}
}

// Resolve clears shapes and runs, lets tokens fall and refills, repeating
// until a pass finds nothing or MaxCascades passes have run.
func (rs *Resolver) Resolve(g *core.Grid) Result {
	return rs.resolveFrom(g, 1, Result{Steps: make([]Step, 0)})
}

// Play performs the swap described by m. A swap that neither forms a run nor
// activates a wild token is reverted and reported as ErrIllegalMove.
func (rs *Resolver) Play(g *core.Grid, m Move) (Result, error) {
	if !g.InBounds(m.A) || !g.InBounds(m.B) || !m.A.Adjacent(m.B) {
		return Result{}, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, m.A, m.B)
	}

	wiped, wild := IsWildActivation(g, rs.Rules, m)

	core.SwapCells(g, m.A, m.B)
	if !wild && !core.HasMatch(g) {
		core.SwapCells(g, m.A, m.B)
		return Result{}, fmt.Errorf("%w: %v <-> %v", ErrIllegalMove, m.A, m.B)
	}

	res := Result{Steps: make([]Step, 0)}
	combo := 1
	if wild {
		step := Step{Combo: combo, Wild: true, WildType: wiped}
		wildAt := m.A
		if !g.Get(m.A).Is(rs.Rules.Wild) {
			wildAt = m.B
		}
		step.Cleared = Clear(g, []core.Pos{wildAt}) + len(ClearType(g, wiped))
		step.Points = rs.Scoring.Points(step.Cleared, combo)
		step.Drops = Collapse(g)
		step.Refilled = Refill(g, rs.Rules, rs.RNG)
		res.Steps = append(res.Steps, step)
		res.Points += step.Points
		combo++
	}

	return rs.resolveFrom(g, combo, res), nil
}

func (rs *Resolver) resolveFrom(g *core.Grid, combo int, res Result) Result {
	limit := rs.MaxCascades
	if limit <= 0 {
		limit = DefaultMaxCascades
	}

	for passes := 0; ; passes++ {
		if passes >= limit {
			res.Capped = core.HasMatch(g) ||
				len(core.FindSpecialCombinations(g, rs.Rules.Wild)) > 0
			return res
		}

		step, ok := rs.cascade(g, combo)
		if !ok {
			return res
		}
		res.Steps = append(res.Steps, step)
		res.Points += step.Points
		combo++
	}
}

// cascade runs one pass. It reports false when the board is stable.
// Shape cells are emptied first so the runs found afterwards are disjoint
// from them; wild tokens land on the targets only after both are cleared.
func (rs *Resolver) cascade(g *core.Grid, combo int) (Step, bool) {
	step := Step{Combo: combo}

	step.Shapes = core.FindSpecialCombinations(g, rs.Rules.Wild)
	if len(step.Shapes) > 0 {
		shapeCells := lo.Uniq(lo.FlatMap(step.Shapes, func(s core.SpecialShape, _ int) []core.Pos {
			return s.Positions
		}))
		step.Cleared += Clear(g, shapeCells)
	}

	step.Runs = core.FindMatches(g)
	if len(step.Runs) > 0 {
		runCells := lo.Uniq(lo.FlatMap(step.Runs, func(r core.Run, _ int) []core.Pos {
			return r.Cells()
		}))
		step.Cleared += Clear(g, runCells)
	}

	if len(step.Shapes) == 0 && len(step.Runs) == 0 {
		return Step{}, false
	}

	if len(step.Shapes) > 0 {
		step.Spawned = lo.Uniq(lo.Map(step.Shapes, func(s core.SpecialShape, _ int) core.Pos {
			return s.Target
		}))
		for _, p := range step.Spawned {
			g.SetToken(p, rs.Rules.Wild)
		}
	}

	step.Points = rs.Scoring.Points(step.Cleared, combo)
	step.Drops = Collapse(g)
	step.Refilled = Refill(g, rs.Rules, rs.RNG)
	return step, true
}
