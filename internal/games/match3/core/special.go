package core

// ShapeKind names a special arrangement of equal tokens.
type ShapeKind uint8

const (
	FourInRow ShapeKind = iota
	FiveInRow
	Square
	LShape
	TShape
)

// String returns the string representation of a shape kind.
func (k ShapeKind) String() string {
	switch k {
	case FourInRow:
		return "four-in-row"
	case FiveInRow:
		return "five-in-row"
	case Square:
		return "square"
	case LShape:
		return "l-shape"
	case TShape:
		return "t-shape"
	default:
		return "unknown"
	}
}

// SpecialShape is one template match found by FindSpecialCombinations.
type SpecialShape struct {
	Kind      ShapeKind
	Positions []Pos // Exactly the template's cells
	Target    Pos   // Where the upgraded token should spawn
	Type      Token // Token that formed the shape
}

// template is a shape expressed as offsets from its anchor cell.
type template struct {
	kind    ShapeKind
	offsets []Pos
	target  int // Index into offsets
}

// catalogue is scanned in this order at every anchor.
// Straight-4 targets its second cell, straight-5 its middle, the square its
// top-left cell, L shapes their corner and T shapes their junction. Every L and
// T arm is three cells long including the shared cell.
var catalogue = []template{
	{kind: FourInRow, offsets: []Pos{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, target: 1},
	{kind: FourInRow, offsets: []Pos{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, target: 1},
	{kind: Square, offsets: []Pos{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, target: 0},
	{kind: FiveInRow, offsets: []Pos{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}, target: 2},
	{kind: FiveInRow, offsets: []Pos{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}, target: 2},

	// L: corner top-left, top-right, bottom-left, bottom-right
	{kind: LShape, offsets: []Pos{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {2, 0}}, target: 0},
	{kind: LShape, offsets: []Pos{{0, 0}, {0, -1}, {0, -2}, {1, 0}, {2, 0}}, target: 0},
	{kind: LShape, offsets: []Pos{{0, 0}, {0, 1}, {0, 2}, {-1, 0}, {-2, 0}}, target: 0},
	{kind: LShape, offsets: []Pos{{0, 0}, {0, -1}, {0, -2}, {-1, 0}, {-2, 0}}, target: 0},

	// T: bar on top with the stem going down, bar at the bottom with the stem going up
	{kind: TShape, offsets: []Pos{{0, 0}, {0, -1}, {0, 1}, {1, 0}, {2, 0}}, target: 0},
	{kind: TShape, offsets: []Pos{{0, 0}, {0, -1}, {0, 1}, {-1, 0}, {-2, 0}}, target: 0},
}

// FindSpecialCombinations tests every cell as an anchor against the whole shape
// catalogue and returns every match, in anchor row-major order and catalogue
// order within an anchor. Empty and wild cells never take part in a shape.
// Overlapping and nested shapes are all reported; callers clear them with set
// semantics. The result is never nil.
func FindSpecialCombinations(g *Grid, wild Token) []SpecialShape {
	shapes := make([]SpecialShape, 0)

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			anchor := g.At(r, c)
			if !anchor.Filled || anchor.Type == wild {
				continue
			}
			origin := P(r, c)
			for _, tpl := range catalogue {
				if shape, ok := tpl.match(g, origin, anchor.Type); ok {
					shapes = append(shapes, shape)
				}
			}
		}
	}

	return shapes
}

// match checks the template anchored at origin against token t.
func (tpl template) match(g *Grid, origin Pos, t Token) (SpecialShape, bool) {
	positions := make([]Pos, len(tpl.offsets))
	for i, off := range tpl.offsets {
		p := origin.Add(off.Row, off.Col)
		if !g.Get(p).Is(t) {
			return SpecialShape{}, false
		}
		positions[i] = p
	}
	return SpecialShape{
		Kind:      tpl.kind,
		Positions: positions,
		Target:    positions[tpl.target],
		Type:      t,
	}, true
}
