package match3

import (
	"strings"

	m3 "github.com/vovakirdan/match3/internal/games/match3/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "limited" or "endless"
	Score     int
	MovesLeft int // -1 in endless mode
	MovesMade int
	BestCombo int
	Shuffles  int
	Types     int // Token kinds refills currently draw from
	BoardHash uint64
	Board     []string // One row per line, core.RenderASCII glyphs
	Cursor    m3.Pos
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score,
		MovesLeft: g.movesLeft,
		MovesMade: g.movesMade,
		BestCombo: g.bestCombo,
		Shuffles:  g.shuffles,
		Types:     g.resolver.Rules.Types,
		BoardHash: g.board.Hash(),
		Board:     strings.Split(m3.RenderASCII(g.board, g.resolver.Rules.Wild), "\n"),
		Cursor:    g.cursor,
		State:     state,
	}
}
