// Package registry provides a global registry for brick game factories.
// Engines register themselves in init() functions, so frontends can list
// and start games without importing them directly.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("unknown game")

// Game is one owned game session. All methods are called from the single
// frontend loop; no method blocks.
type Game interface {
	// ID returns the registry key (e.g. "tetris"), also used as the
	// high-score key.
	ID() string

	// Title returns a display name.
	Title() string

	// SessionID returns the unique identifier of this session.
	SessionID() string

	// ApplyCommand feeds one abstract command into the session.
	// Illegal moves are silently ignored.
	ApplyCommand(cmd core.Command)

	// Tick advances the simulation if the current speed interval elapsed.
	// Returns true when the state advanced.
	Tick() bool

	// Snapshot returns a copy of everything a renderer needs.
	Snapshot() core.GameInfo

	// Status returns the current lifecycle state.
	Status() core.Status

	// Err returns the reason for StatusError, nil otherwise.
	Err() error

	// Close persists the high score. The session must not be used after.
	Close(ctx context.Context) error
}

// Booster is implemented by games that speed up while the key matching
// the current heading is held.
type Booster interface {
	BoostOrNot(rawKey string) bool
	SpeedBoost(hold bool)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new session.
type Factory func(cfg core.RuntimeConfig) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create starts a new session of the game registered under id.
func Create(id string, cfg core.RuntimeConfig) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %q: %w", id, ErrUnknownGame)
	}

	return f(cfg), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
