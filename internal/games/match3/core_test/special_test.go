package core_test

import (
	"testing"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

type shapeWant struct {
	kind   core.ShapeKind
	target core.Pos
	token  core.Token
}

func assertShapes(t *testing.T, got []core.SpecialShape, want []shapeWant) {
	t.Helper()
	if got == nil {
		t.Fatal("FindSpecialCombinations returned nil")
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d shapes, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		s := got[i]
		if s.Kind != w.kind || s.Target != w.target || s.Type != w.token {
			t.Errorf("shape %d: expected %v target %v token %d, got %v target %v token %d",
				i, w.kind, w.target, w.token, s.Kind, s.Target, s.Type)
		}
	}
}

func TestFindSpecialCombinations(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []shapeWant
	}{
		{
			name: "four in row",
			text: `
				22220134
				12345012
				23450123
			`,
			want: []shapeWant{{core.FourInRow, core.P(0, 1), 2}},
		},
		{
			name: "four in column",
			text: "0123\n0234\n0345\n0451\n4512",
			want: []shapeWant{{core.FourInRow, core.P(1, 0), 0}},
		},
		{
			name: "square",
			text: "0012\n0023\n1234",
			want: []shapeWant{{core.Square, core.P(0, 0), 0}},
		},
		{
			name: "five in row",
			text: "00000\n12312\n23123",
			want: []shapeWant{
				{core.FourInRow, core.P(0, 1), 0},
				{core.FiveInRow, core.P(0, 2), 0},
				{core.FourInRow, core.P(0, 2), 0},
			},
		},
		{
			name: "l corner top-left",
			text: "000\n012\n023",
			want: []shapeWant{{core.LShape, core.P(0, 0), 0}},
		},
		{
			name: "l corner top-right",
			text: "2000\n1310\n1230",
			want: []shapeWant{{core.LShape, core.P(0, 3), 0}},
		},
		{
			name: "l corner bottom-left",
			text: "012\n013\n000",
			want: []shapeWant{{core.LShape, core.P(2, 0), 0}},
		},
		{
			name: "l corner bottom-right",
			text: "120\n130\n000",
			want: []shapeWant{{core.LShape, core.P(2, 2), 0}},
		},
		{
			name: "t bar on top",
			text: "000\n102\n301",
			want: []shapeWant{{core.TShape, core.P(0, 1), 0}},
		},
		{
			name: "t bar at bottom",
			text: "102\n304\n000",
			want: []shapeWant{{core.TShape, core.P(2, 1), 0}},
		},
		{
			name: "overlapping squares",
			text: "000\n000",
			want: []shapeWant{
				{core.Square, core.P(0, 0), 0},
				{core.Square, core.P(0, 1), 0},
			},
		},
		{
			name: "wild excluded",
			text: "**0*\n1234",
			want: []shapeWant{},
		},
		{
			name: "wild square excluded",
			text: "**\n**",
			want: []shapeWant{},
		},
		{
			name: "plain run is not special",
			text: "0001\n1234",
			want: []shapeWant{},
		},
		{
			name: "empty grid",
			text: "...\n...",
			want: []shapeWant{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.text)
			assertShapes(t, core.FindSpecialCombinations(g, core.DefaultWild), tc.want)
		})
	}
}

func TestFindSpecialCombinationsPositions(t *testing.T) {
	g := mustParse(t, "012\n013\n000")

	shapes := core.FindSpecialCombinations(g, core.DefaultWild)
	if len(shapes) != 1 {
		t.Fatalf("expected one shape, got %d", len(shapes))
	}

	want := map[core.Pos]bool{
		core.P(0, 0): true, core.P(1, 0): true, core.P(2, 0): true,
		core.P(2, 1): true, core.P(2, 2): true,
	}
	if len(shapes[0].Positions) != len(want) {
		t.Fatalf("expected %d positions, got %v", len(want), shapes[0].Positions)
	}
	for _, p := range shapes[0].Positions {
		if !want[p] {
			t.Errorf("unexpected position %v", p)
		}
		if !g.Get(p).Is(0) {
			t.Errorf("position %v does not hold the shape's token", p)
		}
	}
}

func TestFindSpecialCombinationsCustomWild(t *testing.T) {
	// With 9 as the wild token, the square of 9s does not count, the square of 0s does.
	g := mustParse(t, "9900\n9900")

	assertShapes(t, core.FindSpecialCombinations(g, 9), []shapeWant{
		{core.Square, core.P(0, 2), 0},
	})
}

func TestFindSpecialCombinationsIsPure(t *testing.T) {
	g := mustParse(t, "000\n000\n012")
	hash := g.Hash()

	first := core.FindSpecialCombinations(g, core.DefaultWild)
	second := core.FindSpecialCombinations(g, core.DefaultWild)

	if g.Hash() != hash {
		t.Error("detection modified the grid")
	}
	if len(first) != len(second) {
		t.Fatalf("repeated calls differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind || first[i].Target != second[i].Target {
			t.Errorf("shape %d differs between calls", i)
		}
	}
}

func TestShapeKindString(t *testing.T) {
	testCases := []struct {
		kind core.ShapeKind
		want string
	}{
		{core.FourInRow, "four-in-row"},
		{core.FiveInRow, "five-in-row"},
		{core.Square, "square"},
		{core.LShape, "l-shape"},
		{core.TShape, "t-shape"},
	}

	for _, tc := range testCases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
