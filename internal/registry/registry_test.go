package registry

import (
	"testing"

	"github.com/vovakirdan/match3/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                            { return g.id }
func (g stubGame) Title() string                         { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)              {}
func (g stubGame) Step(core.InputFrame) core.StepResult  { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                   {}
func (g stubGame) State() core.GameState                 { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Error("Exists reports wrong registrations")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create returned %q", g.ID())
	}

	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	posA, posB := -1, -1
	for i, id := range ids {
		switch id {
		case "stub_a":
			posA = i
		case "stub_b":
			posB = i
		}
	}
	if posA < 0 || posB < 0 || posA > posB {
		t.Errorf("List should be sorted by ID, got %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
