package resolve

import "math"

// Scoring converts cleared cells into points.
type Scoring struct {
	BasePoints  int     // Points per cleared cell
	ComboFactor float64 // Multiplier growth per cascade
}

// DefaultScoring returns 10 points per cell with a 0.6 combo factor.
func DefaultScoring() Scoring {
	return Scoring{BasePoints: 10, ComboFactor: 0.6}
}

// Points returns floor(cleared * base * max(1, combo * factor)).
// combo counts cascades from 1.
func (s Scoring) Points(cleared, combo int) int {
	if cleared <= 0 {
		return 0
	}
	mult := math.Max(1, float64(combo)*s.ComboFactor)
	return int(math.Floor(float64(cleared*s.BasePoints) * mult))
}
