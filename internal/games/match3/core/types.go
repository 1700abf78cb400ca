// Package core is the match-3 rules engine: run detection, placement prediction,
// swap legality and special-shape detection over a rectangular grid of tokens.
// It is UI-agnostic, deterministic and keeps no state between calls.
package core

import (
	"errors"
	"fmt"
)

// Token identifies the kind of a token occupying a cell.
// Ordinary tokens are 0..Rules.Types-1; one value is reserved for the wild token.
type Token int8

// DefaultWild is the token value used for wild tokens unless configured otherwise.
const DefaultWild Token = -1

// ErrInvalidGridShape is returned when a grid's declared dimensions do not
// match its cell storage or input rows are ragged.
var ErrInvalidGridShape = errors.New("match3: invalid grid shape")

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("match3: invalid rules")

// Handle is an opaque reference owned by the renderer (a sprite, an index, an id).
// The engine moves it together with its cell and tells it its new address after a
// swap; it never inspects it otherwise.
type Handle interface {
	Relocate(p Pos)
}

// Cell is a single board slot. The zero value is an empty cell.
type Cell struct {
	Filled bool   // Whether a token occupies the cell
	Type   Token  // Valid only when Filled is true
	Handle Handle // Renderer payload, nil when not tracked
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// TokenCell returns a filled cell holding the given token and no handle.
func TokenCell(t Token) Cell {
	return Cell{Filled: true, Type: t}
}

// Is reports whether the cell holds token t.
func (c Cell) Is(t Token) bool {
	return c.Filled && c.Type == t
}

// Pos addresses a cell by row and column, both 0-indexed.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns a new Pos offset by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Adjacent reports whether two positions share an edge.
func (p Pos) Adjacent(other Pos) bool {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Rules carries the token configuration shared by the engine and its callers.
type Rules struct {
	Types int   // Number of distinct ordinary tokens
	Wild  Token // Token value denoting a wild token
}

// DefaultRules returns the rules of the classic six-token board.
func DefaultRules() Rules {
	return Rules{Types: 6, Wild: DefaultWild}
}

// Validate checks that the wild token does not collide with an ordinary token.
func (r Rules) Validate() error {
	if r.Types < 2 || r.Types > 127 {
		return fmt.Errorf("%w: token types must be in 2..127, got %d", ErrInvalidRules, r.Types)
	}
	if r.Wild >= 0 && int(r.Wild) < r.Types {
		return fmt.Errorf("%w: wild token %d collides with ordinary tokens 0..%d",
			ErrInvalidRules, r.Wild, r.Types-1)
	}
	return nil
}

// IsOrdinary reports whether t is one of the ordinary tokens.
func (r Rules) IsOrdinary(t Token) bool {
	return t != r.Wild && t >= 0 && int(t) < r.Types
}
