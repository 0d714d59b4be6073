package snake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type memScores map[string]int

func (m memScores) LoadHighScore(_ context.Context, id string) (int, error) { return m[id], nil }
func (m memScores) SaveHighScore(_ context.Context, id string, s int) error {
	m[id] = s
	return nil
}

func newTestGame(t *testing.T) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	g := New(core.RuntimeConfig{Seed: 3, Clock: clock})
	g.ApplyCommand(core.CommandStart)
	require.Equal(t, core.StatusRunning, g.Status())
	return g, clock
}

// advance moves the clock by the active interval and ticks once.
func advance(t *testing.T, g *Game, clock *fakeClock) {
	t.Helper()
	clock.Advance(g.speed)
	require.True(t, g.Tick())
}

func TestNewSession(t *testing.T) {
	g := New(core.RuntimeConfig{Seed: 1})

	assert.Equal(t, core.StatusStart, g.Status())
	assert.Equal(t, []Point{{7, 1}, {7, 2}, {7, 3}, {7, 4}}, g.Body())
	assert.Equal(t, DirDown, g.Heading())

	food, ok := g.Food()
	require.True(t, ok)
	assert.False(t, g.body.Occupies(food))

	info := g.Snapshot()
	assert.Equal(t, 1, info.Level)
	assert.Equal(t, core.BaseSpeed, info.Speed)
	assert.Equal(t, 5, info.Field.Count(core.CellMoving), "four body cells and the food")
	assert.Equal(t, core.CellMoving, info.Field.Get(3, 3), "head at logical column 3")
}

func TestTurnThenTick(t *testing.T) {
	g, clock := newTestGame(t)

	// Given: a fresh snake heading down
	require.Equal(t, 4, g.body.Len())

	// When: up is requested, then left
	g.ApplyCommand(core.CommandUp)
	assert.Equal(t, DirDown, g.Heading(), "reversal is rejected")
	g.ApplyCommand(core.CommandLeft)
	assert.Equal(t, DirLeft, g.Heading())

	// Then: the next tick moves the head two columns left
	advance(t, g, clock)
	assert.Equal(t, Point{X: 5, Y: 4}, g.body.Head())
}

func TestTickIsGatedBySpeed(t *testing.T) {
	g, clock := newTestGame(t)
	g.hasFood = false

	clock.Advance(g.speed - time.Millisecond)
	assert.False(t, g.Tick())
	assert.Equal(t, Point{X: 7, Y: 4}, g.body.Head())

	clock.Advance(time.Millisecond)
	assert.True(t, g.Tick())
	assert.Equal(t, Point{X: 7, Y: 5}, g.body.Head())
	assert.Equal(t, 4, g.body.Len())
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		body *Body
	}{
		{"left wall", NewBody(7, 5, 4, DirLeft)},
		{"right wall", NewBody(13, 5, 4, DirRight)},
		{"top wall", NewBody(7, 4, 4, DirUp)},
		{"bottom wall", NewBody(7, core.FieldHeight-3, 4, DirDown)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, clock := newTestGame(t)
			g.body = tc.body
			g.hasFood = false

			advance(t, g, clock)

			assert.Equal(t, core.StatusGameOver, g.Status())
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g, clock := newTestGame(t)
	g.hasFood = false
	// Tail first: head at (5,1) came up from (5,2); turning left hits (3,1).
	g.body = &Body{
		cells:   []Point{{1, 1}, {3, 1}, {3, 2}, {5, 2}, {5, 1}},
		heading: DirUp,
		next:    DirUp,
	}
	require.True(t, g.body.SetDirection(DirLeft))

	advance(t, g, clock)

	assert.Equal(t, core.StatusGameOver, g.Status())
}

func TestChasingTailIsAllowed(t *testing.T) {
	g, clock := newTestGame(t)
	g.hasFood = false
	// A 2x2 loop: the head steps into the cell the tail leaves.
	g.body = &Body{
		cells:   []Point{{3, 1}, {5, 1}, {5, 2}, {3, 2}},
		heading: DirLeft,
		next:    DirLeft,
	}
	require.True(t, g.body.SetDirection(DirUp))

	advance(t, g, clock)

	assert.Equal(t, core.StatusRunning, g.Status())
	assert.Equal(t, Point{X: 3, Y: 1}, g.body.Head())
	assert.Equal(t, 4, g.body.Len())
}

func TestEatingFood(t *testing.T) {
	g, clock := newTestGame(t)
	g.food = g.body.NextHead()
	g.hasFood = true

	advance(t, g, clock)

	assert.Equal(t, 5, g.body.Len())
	assert.Equal(t, 1, g.score)
	assert.Equal(t, 1, g.highScore)
	food, ok := g.Food()
	require.True(t, ok)
	assert.False(t, g.body.Occupies(food), "food respawns off the body")
}

func TestLevelUpEveryFiveApples(t *testing.T) {
	g, clock := newTestGame(t)
	g.score = 4
	g.food = g.body.NextHead()

	advance(t, g, clock)

	assert.Equal(t, 5, g.score)
	assert.Equal(t, 2, g.level)
	assert.Equal(t, 900*time.Millisecond, g.baseSpeed)
	assert.Equal(t, 900*time.Millisecond, g.Snapshot().Speed)
}

func TestWin(t *testing.T) {
	t.Run("at max score", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.score = WinScore

		assert.True(t, g.Tick())
		assert.Equal(t, core.StatusWin, g.Status())
	})

	t.Run("on the last apple", func(t *testing.T) {
		g, clock := newTestGame(t)
		g.score = WinScore - 1
		g.food = g.body.NextHead()

		advance(t, g, clock)

		assert.Equal(t, WinScore, g.score)
		assert.Equal(t, core.StatusWin, g.Status())
	})
}

func TestBoostOrNot(t *testing.T) {
	g, _ := newTestGame(t)

	assert.True(t, g.BoostOrNot("down"))
	assert.True(t, g.BoostOrNot("s"))
	assert.False(t, g.BoostOrNot("up"))
	assert.False(t, g.BoostOrNot("left"))
	assert.False(t, g.BoostOrNot("x"))

	g.ApplyCommand(core.CommandLeft)
	assert.True(t, g.BoostOrNot("left"))
	assert.False(t, g.BoostOrNot("down"))
}

func TestSpeedBoost(t *testing.T) {
	g, _ := newTestGame(t)

	g.SpeedBoost(true)
	assert.Equal(t, core.BaseSpeed/5, g.speed)
	g.SpeedBoost(true)
	assert.Equal(t, core.BaseSpeed/5, g.speed, "holding does not compound")

	g.SpeedBoost(false)
	assert.Equal(t, core.BaseSpeed, g.speed)

	g.level = 7
	g.baseSpeed = core.ComputeSpeed(7)
	g.SpeedBoost(true)
	assert.Equal(t, core.ComputeSpeed(7)/3, g.speed)
	g.SpeedBoost(false)
	assert.Equal(t, core.ComputeSpeed(7), g.speed)
}

func TestBoostSurvivesScoring(t *testing.T) {
	g, clock := newTestGame(t)
	g.score = 4
	g.SpeedBoost(true)
	g.food = g.body.NextHead()

	advance(t, g, clock)
	require.Equal(t, 2, g.level)

	assert.Equal(t, core.ComputeSpeed(2)/5, g.speed)
	g.SpeedBoost(false)
	assert.Equal(t, core.ComputeSpeed(2), g.speed, "release restores the new baseline")
}

func TestPause(t *testing.T) {
	g, clock := newTestGame(t)

	g.ApplyCommand(core.CommandAction)
	require.Equal(t, core.StatusPaused, g.Status())
	assert.True(t, g.Snapshot().Paused)

	clock.Advance(time.Minute)
	assert.False(t, g.Tick())
	g.ApplyCommand(core.CommandLeft)
	assert.Equal(t, DirDown, g.Heading(), "turns are ignored while paused")

	g.ApplyCommand(core.CommandPause)
	assert.Equal(t, core.StatusRunning, g.Status())

	g.ApplyCommand(core.CommandPause)
	g.ApplyCommand(core.CommandTerminate)
	assert.Equal(t, core.StatusGameOver, g.Status())
}

func TestRestart(t *testing.T) {
	g, clock := newTestGame(t)
	g.food = g.body.NextHead()
	advance(t, g, clock)
	g.ApplyCommand(core.CommandTerminate)

	g.ApplyCommand(core.CommandStart)

	assert.Equal(t, core.StatusRunning, g.Status())
	assert.Equal(t, 0, g.score)
	assert.Equal(t, 1, g.highScore)
	assert.Equal(t, 4, g.body.Len())
}

func TestFoodNeverOnBody(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := New(core.RuntimeConfig{Seed: seed})
		food, ok := g.Food()
		require.True(t, ok)
		assert.False(t, g.body.Occupies(food), "seed %d", seed)
		assert.Equal(t, 1, food.X%2, "food sits on a logical cell")
		assert.True(t, food.Y >= 1 && food.Y <= core.FieldHeight)
	}
}

func TestFoodDeterministicPerSeed(t *testing.T) {
	a := New(core.RuntimeConfig{Seed: 77})
	b := New(core.RuntimeConfig{Seed: 77})

	fa, _ := a.Food()
	fb, _ := b.Food()
	assert.Equal(t, fa, fb)
}

func TestAllocationFailure(t *testing.T) {
	orig := newField
	newField = func(int, int) (*core.Field, error) { return nil, core.ErrInvalidDimensions }
	t.Cleanup(func() { newField = orig })

	g := New(core.RuntimeConfig{})

	assert.Equal(t, core.StatusError, g.Status())
	assert.True(t, errors.Is(g.Err(), core.ErrInvalidDimensions))
	assert.False(t, g.BoostOrNot("down"))
	assert.Nil(t, g.Snapshot().Field)
	assert.Nil(t, g.Body())
	assert.Equal(t, DirDown, g.Heading())
	g.ApplyCommand(core.CommandStart)
	assert.False(t, g.Tick())
}

func TestHighScorePersistence(t *testing.T) {
	scores := memScores{GameID: 10}
	clock := &fakeClock{now: time.Unix(0, 0)}
	g := New(core.RuntimeConfig{Clock: clock, Scores: scores})
	assert.Equal(t, 10, g.Snapshot().HighScore)

	g.ApplyCommand(core.CommandStart)
	g.score = 10
	g.food = g.body.NextHead()
	advance(t, g, clock)

	require.NoError(t, g.Close(context.Background()))
	assert.Equal(t, 11, scores[GameID])
}
