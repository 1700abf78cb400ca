// Package match3 implements the match-3 puzzle as a registry.Game: a cursor
// driven board where swapping two adjacent tokens must form a run, and runs,
// special shapes and wild tokens clear in chain reactions.
package match3

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/match3/internal/config"
	"github.com/vovakirdan/match3/internal/core"
	m3 "github.com/vovakirdan/match3/internal/games/match3/core"
	"github.com/vovakirdan/match3/internal/games/match3/layouts"
	"github.com/vovakirdan/match3/internal/games/match3/resolve"
	"github.com/vovakirdan/match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeLimited Mode = "limited"
	ModeEndless Mode = "endless"
)

// Package-level variables for config
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	layoutName       string
)

// SetConfigPath sets the custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard", "fixed").
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLayout sets the starting layout: a built-in name or a YAML file path.
// An empty name starts from a random board.
func SetLayout(name string) {
	layoutName = name
}

// Game implements the match-3 puzzle game.
type Game struct {
	mode Mode
	tick uint64

	cfg        config.Match3Config
	rules      m3.Rules // Rules at the start of the game
	difficulty *config.DifficultyManager
	resolver   *resolve.Resolver
	rng        *rand.Rand

	layout   string // Per-instance layout, overrides SetLayout
	board    *m3.Grid
	cursor   m3.Pos
	selected *m3.Pos
	hint     *resolve.Move

	score      int
	movesLeft  int // Remaining moves, -1 when unlimited
	movesMade  int
	lastCombo  int
	lastPoints int
	bestCombo  int
	shuffles   int
	message    string

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a new limited-moves match-3 game.
func New() *Game {
	return &Game{
		mode: ModeLimited,
	}
}

// NewEndless creates a new endless match-3 game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "match3_endless"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultMatch3Config()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.rules = m3.Rules{Types: cfg.Board.Types, Wild: m3.Token(cfg.Board.Wild)}
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.resolver = resolve.New(g.rules, resolve.Scoring{
		BasePoints:  cfg.Scoring.BasePoints,
		ComboFactor: cfg.Scoring.ComboFactor,
	}, cfg.Rules.MaxCascades, runtime.Seed)
	g.rng = g.resolver.RNG

	g.tick = 0
	g.score = 0
	g.movesMade = 0
	g.lastCombo = 0
	g.lastPoints = 0
	g.bestCombo = 0
	g.shuffles = 0
	g.selected = nil
	g.hint = nil
	g.gameOver = false
	g.paused = false
	g.message = ""

	g.movesLeft = -1
	if g.mode == ModeLimited {
		g.movesLeft = cfg.Rules.Moves
	}

	g.board = g.newBoard()
	g.cursor = m3.P(g.board.Rows/2, g.board.Cols/2)
	g.ensurePlayable()

	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.checkScreenSize()
}

// newBoard loads the configured layout, or fills a random board free of runs
// and special shapes.
func (g *Game) newBoard() *m3.Grid {
	name := g.layout
	if name == "" {
		name = layoutName
	}
	if name != "" {
		board, err := g.loadLayout(name)
		if err == nil {
			return board
		}
		g.message = err.Error()
	}

	board, _ := resolve.NewBoard(g.cfg.Board.Rows, g.cfg.Board.Cols, g.rules, g.rng, g.cfg.Rules.MaxFillRetries)
	resolve.Settle(board, g.rules, g.rng, board.Rows*board.Cols)
	return board
}

// loadLayout builds the board from a layout. Holes are filled and anything
// already matching is resolved without scoring.
func (g *Game) loadLayout(name string) (*m3.Grid, error) {
	l, err := layouts.Load(name)
	if err != nil {
		return nil, err
	}
	board, err := l.Grid(g.rules)
	if err != nil {
		return nil, err
	}
	if board.Rows < config.MinBoardSize || board.Cols < config.MinBoardSize ||
		board.Rows > config.MaxBoardSize || board.Cols > config.MaxBoardSize {
		return nil, fmt.Errorf("layout %q: board %dx%d out of range", l.Name, board.Rows, board.Cols)
	}

	resolve.Fill(board, g.rules, g.rng, g.cfg.Rules.MaxFillRetries)
	g.resolver.Resolve(board)
	return board, nil
}

// ensurePlayable shuffles the board when no legal move is left and ends the
// game when no shuffle helps.
func (g *Game) ensurePlayable() {
	if resolve.HasLegalMove(g.board, g.resolver.Rules) {
		return
	}
	if resolve.Shuffle(g.board, g.resolver.Rules, g.rng, g.cfg.Rules.MaxShuffles) {
		g.shuffles++
		g.message = "No moves left - shuffled"
		return
	}
	g.gameOver = true
	g.message = "No moves left"
}

// UseLayout makes the next Reset start from the named layout.
func (g *Game) UseLayout(name string) {
	g.layout = name
}

// Resize adapts to a new screen size without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.board != nil {
		g.checkScreenSize()
	}
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.Has(core.ActionHint) {
		g.showHint()
	}
	if in.Has(core.ActionBack) {
		g.selected = nil
	}

	moved := false
	if in.Has(core.ActionSelect) {
		moved = g.selectCell()
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor = m3.P(
		core.Clamp(g.cursor.Row+dr, 0, g.board.Rows-1),
		core.Clamp(g.cursor.Col+dc, 0, g.board.Cols-1),
	)
}

func (g *Game) showHint() {
	moves := resolve.LegalMoves(g.board, g.resolver.Rules)
	if len(moves) == 0 {
		g.hint = nil
		return
	}
	g.hint = &moves[0]
	g.message = fmt.Sprintf("Try %v <-> %v", moves[0].A, moves[0].B)
}

// selectCell picks the cell under the cursor, or swaps it with the picked
// cell when they are adjacent. Reports whether a move was played.
func (g *Game) selectCell() bool {
	cur := g.cursor
	switch {
	case g.selected == nil:
		g.selected = &cur
		return false
	case *g.selected == cur:
		g.selected = nil
		return false
	case !g.selected.Adjacent(cur):
		g.selected = &cur
		return false
	}

	from := *g.selected
	g.selected = nil
	return g.play(resolve.Move{A: from, B: cur})
}

// play applies a swap. Illegal swaps are reverted and cost nothing.
func (g *Game) play(m resolve.Move) bool {
	res, err := g.resolver.Play(g.board, m)
	if err != nil {
		if errors.Is(err, resolve.ErrIllegalMove) {
			g.message = "No match"
		} else {
			g.message = err.Error()
		}
		return false
	}

	g.hint = nil
	g.score += res.Points
	g.lastPoints = res.Points
	g.lastCombo = res.Cascades()
	g.bestCombo = core.Max(g.bestCombo, g.lastCombo)
	g.movesMade++
	g.message = describe(res)

	if g.movesLeft > 0 {
		g.movesLeft--
	}
	if g.mode == ModeEndless {
		g.resolver.Rules.Types = g.difficulty.Types(g.rules.Types, g.score, g.movesMade)
	}

	if g.movesLeft == 0 {
		g.gameOver = true
		g.message = "Out of moves"
		return true
	}
	g.ensurePlayable()
	return true
}

// describe summarises a move for the message line.
func describe(res resolve.Result) string {
	msg := fmt.Sprintf("+%d", res.Points)
	if n := res.Cascades(); n > 1 {
		msg += fmt.Sprintf("  combo x%d", n)
	}
	for _, s := range res.Steps {
		if s.Wild {
			msg += "  wild!"
			break
		}
	}
	spawned := 0
	for _, s := range res.Steps {
		spawned += len(s.Spawned)
	}
	if spawned > 0 {
		msg += fmt.Sprintf("  %d special", spawned)
	}
	return msg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Board returns the live board.
func (g *Game) Board() *m3.Grid {
	return g.board
}

// Rules returns the rules currently used for refills.
func (g *Game) Rules() m3.Rules {
	return g.resolver.Rules
}

// Summary returns moves made and the best cascade count of this game.
func (g *Game) Summary() (moves, bestCombo int) {
	return g.movesMade, g.bestCombo
}
