package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

type nopGame struct {
	id   string
	seed int64
}

func (g *nopGame) ID() string                  { return g.id }
func (g *nopGame) Title() string               { return "Nop" }
func (g *nopGame) SessionID() string           { return "nop-session" }
func (g *nopGame) ApplyCommand(core.Command)   {}
func (g *nopGame) Tick() bool                  { return false }
func (g *nopGame) Snapshot() core.GameInfo     { return core.GameInfo{} }
func (g *nopGame) Status() core.Status         { return core.StatusStart }
func (g *nopGame) Err() error                  { return nil }
func (g *nopGame) Close(context.Context) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_create", "Create Test", func(cfg core.RuntimeConfig) Game {
		return &nopGame{id: "test_create", seed: cfg.Seed}
	})

	if !Exists("test_create") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("test_create", core.RuntimeConfig{Seed: 7})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_create" {
		t.Errorf("ID() = %q, expected test_create", g.ID())
	}
	if seed := g.(*nopGame).seed; seed != 7 {
		t.Errorf("factory got seed %d, expected 7", seed)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game", core.DefaultConfig())
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
	if Exists("no_such_game") {
		t.Error("Exists() = true for an unregistered game")
	}
}

func TestListSorted(t *testing.T) {
	Register("test_zz", "ZZ", func(core.RuntimeConfig) Game { return &nopGame{id: "test_zz"} })
	Register("test_aa", "AA", func(core.RuntimeConfig) Game { return &nopGame{id: "test_aa"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Fatalf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	found := false
	for _, g := range games {
		if g.ID == "test_aa" {
			found = true
			if g.Title != "AA" {
				t.Errorf("Title = %q, expected AA", g.Title)
			}
		}
	}
	if !found {
		t.Error("registered game missing from List()")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", "Dup", func(core.RuntimeConfig) Game { return &nopGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate ID should panic")
		}
	}()
	Register("test_dup", "Dup", func(core.RuntimeConfig) Game { return &nopGame{id: "test_dup"} })
}
