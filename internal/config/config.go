// Package config provides YAML-based game configuration loading and
// difficulty management for the match-3 game.
package config

import "fmt"

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board geometry and token set.
type BoardConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Types int `yaml:"types"` // Number of ordinary token kinds
	Wild  int `yaml:"wild"`  // Token value used for wild tokens
}

// ScoringConfig defines how cleared cells turn into points.
type ScoringConfig struct {
	BasePoints  int     `yaml:"base_points"`
	ComboFactor float64 `yaml:"combo_factor"`
}

// RulesConfig defines move limits and the bounds of the resolution loops.
type RulesConfig struct {
	Moves          int `yaml:"moves"` // Moves per game in limited mode
	MaxFillRetries int `yaml:"max_fill_retries"`
	MaxCascades    int `yaml:"max_cascades"`
	MaxShuffles    int `yaml:"max_shuffles"`
}

// DifficultyConfig defines the difficulty progression used in endless mode.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraTypes int `yaml:"extra_types"` // Token kinds added at max difficulty
}

// Limits on board geometry. The renderer draws one glyph per token kind.
const (
	MinBoardSize = 3
	MaxBoardSize = 16
	MinTypes     = 3
	MaxTypes     = 12
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable game.
func (c Match3Config) Validate() error {
	b := c.Board
	if b.Rows < MinBoardSize || b.Rows > MaxBoardSize || b.Cols < MinBoardSize || b.Cols > MaxBoardSize {
		return ValidationError{
			Code:    "BOARD_SIZE",
			Message: fmt.Sprintf("board must be between %dx%d and %dx%d, got %dx%d",
				MinBoardSize, MinBoardSize, MaxBoardSize, MaxBoardSize, b.Rows, b.Cols),
		}
	}
	maxTypes := b.Types
	if c.Difficulty.Enabled {
		maxTypes += c.Difficulty.Scaling.ExtraTypes
	}
	if b.Types < MinTypes || maxTypes > MaxTypes {
		return ValidationError{
			Code:    "TOKEN_TYPES",
			Message: fmt.Sprintf("token types must stay within %d..%d, got %d..%d", MinTypes, MaxTypes, b.Types, maxTypes),
		}
	}
	if b.Wild >= 0 && b.Wild < MaxTypes {
		return ValidationError{
			Code:    "WILD_TOKEN",
			Message: fmt.Sprintf("wild token %d collides with ordinary tokens", b.Wild),
		}
	}
	if b.Wild < -128 || b.Wild > 127 {
		return ValidationError{
			Code:    "WILD_TOKEN",
			Message: fmt.Sprintf("wild token %d out of range", b.Wild),
		}
	}
	if c.Scoring.BasePoints <= 0 || c.Scoring.ComboFactor < 0 {
		return ValidationError{
			Code:    "SCORING",
			Message: fmt.Sprintf("base_points must be positive and combo_factor non-negative, got %d and %g",
				c.Scoring.BasePoints, c.Scoring.ComboFactor),
		}
	}
	r := c.Rules
	if r.Moves < 1 || r.MaxFillRetries < 0 || r.MaxCascades < 1 || r.MaxShuffles < 1 {
		return ValidationError{
			Code:    "RULES",
			Message: fmt.Sprintf("moves, max_cascades and max_shuffles must be positive, max_fill_retries non-negative: %+v", r),
		}
	}
	return nil
}
