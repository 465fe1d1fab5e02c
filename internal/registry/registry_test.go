package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/highjump/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz_stub", Title: "Stub"}, func(Env) (Game, error) {
		return &stubGame{id: "zz_stub"}, nil
	})
	Register(GameInfo{ID: "zz_hidden", Title: "Hidden", Hidden: true}, func(Env) (Game, error) {
		return &stubGame{id: "zz_hidden"}, nil
	})

	if !Exists("zz_stub") {
		t.Fatal("registered game not found")
	}
	g, err := Create("zz_stub", Env{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID = %q", g.ID())
	}

	for _, info := range Visible() {
		if info.ID == "zz_hidden" {
			t.Error("hidden game listed as visible")
		}
	}
	found := false
	for _, info := range List() {
		if info.ID == "zz_hidden" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include hidden games")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist", Env{}); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register(GameInfo{ID: "zz_broken"}, func(Env) (Game, error) { return nil, boom })

	_, err := Create("zz_broken", Env{})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "zz_dup"}, func(Env) (Game, error) { return &stubGame{}, nil })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "zz_dup"}, func(Env) (Game, error) { return &stubGame{}, nil })
}
