package core

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Clock supplies the wall-clock time used to gate ticks.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads time.Now.
var SystemClock Clock = ClockFunc(time.Now)

// HighScoreStore persists one best score per game.
// Load returns 0 with a nil error when nothing was stored yet.
type HighScoreStore interface {
	LoadHighScore(ctx context.Context, gameID string) (int, error)
	SaveHighScore(ctx context.Context, gameID string, score int) error
}

// RuntimeConfig carries the collaborators a session is built with.
type RuntimeConfig struct {
	Seed   int64          // RNG seed for piece bag and food placement
	Clock  Clock          // nil means SystemClock
	Scores HighScoreStore // nil disables persistence
	Logger *log.Logger    // nil discards
}

// DefaultConfig returns a RuntimeConfig using the system clock and no store.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:  time.Now().UnixNano(),
		Clock: SystemClock,
	}
}

// ClockOrSystem returns the configured clock or SystemClock.
func (c RuntimeConfig) ClockOrSystem() Clock {
	if c.Clock == nil {
		return SystemClock
	}
	return c.Clock
}

// LoggerOrDiscard returns the configured logger or one writing nowhere.
func (c RuntimeConfig) LoggerOrDiscard() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard)
	}
	return c.Logger
}

// LoadHighScore reads the stored best score for gameID. Missing stores and
// read failures yield 0; failures are logged.
func (c RuntimeConfig) LoadHighScore(ctx context.Context, gameID string) int {
	if c.Scores == nil {
		return 0
	}
	score, err := c.Scores.LoadHighScore(ctx, gameID)
	if err != nil {
		c.LoggerOrDiscard().Warn("high score unavailable", "game", gameID, "err", err)
		return 0
	}
	return max(score, 0)
}

// SaveHighScore writes score for gameID when a store is configured.
func (c RuntimeConfig) SaveHighScore(ctx context.Context, gameID string, score int) error {
	if c.Scores == nil {
		return nil
	}
	return c.Scores.SaveHighScore(ctx, gameID, score)
}
