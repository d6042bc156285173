package registry

import (
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) TogglePause() {}
func (g *stubGame) KeyDown(core.Key) {}
func (g *stubGame) KeyUp(core.Key) {}
func (g *stubGame) Step() core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(core.Surface) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Playfield() (float64, float64) { return 100, 100 }
func (g *stubGame) SetScoreSink(core.ScoreSink) {}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist after Register")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Create() returned game %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "Stub stub_a" {
				t.Errorf("List() title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
	if Exists("does_not_exist") {
		t.Error("Exists() should be false for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
