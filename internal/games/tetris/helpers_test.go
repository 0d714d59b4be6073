package tetris

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeScores struct {
	scores map[string]int
	saves  int
}

func (s *fakeScores) LoadHighScore(_ context.Context, gameID string) (int, error) {
	return s.scores[gameID], nil
}

func (s *fakeScores) SaveHighScore(_ context.Context, gameID string, score int) error {
	s.scores[gameID] = score
	s.saves++
	return nil
}

// newTestGame returns a started session on a manual clock.
func newTestGame(t *testing.T) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	g := New(core.RuntimeConfig{Seed: 42, Clock: clock})
	require.Equal(t, core.StatusStart, g.Status())
	g.ApplyCommand(core.CommandStart)
	require.Equal(t, core.StatusRunning, g.Status())
	return g, clock
}

// place puts a fresh piece of shape s at (x, y).
func place(g *Game, s Shape, x, y int) {
	p := NewPiece(s)
	p.X, p.Y = x, y
	g.piece = p
}

// fillRow sets every cell of 1-based row y to Static except the listed
// 1-based columns.
func fillRow(g *Game, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 1; x <= core.FieldWidth; x++ {
		if !skip[x] {
			g.field.Set(x-1, y-1, core.CellStatic)
		}
	}
}
