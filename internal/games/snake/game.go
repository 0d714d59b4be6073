// Package snake implements the grid snake engine: a growing body that
// steers between walls, eats food placed at random and speeds up with
// every level.
package snake

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/registry"
)

// GameID is the registry and high-score key.
const GameID = "snake"

const (
	// WinScore fills the board: 200 cells minus the starting body.
	WinScore = core.FieldWidth*core.FieldHeight - startLength

	// ScorePerLevel is the number of apples per level.
	ScorePerLevel = 5

	startLength = 4
	startX      = 7
	startY      = 1

	// Boost divides the interval by 5 up to this level and by 3 above.
	boostLevelSplit = 5
)

// newField allocates the render field; replaced in tests.
var newField = core.NewField

// Game is one snake session.
type Game struct {
	cfg       core.RuntimeConfig
	logger    *log.Logger
	rng       *rand.Rand
	gate      core.TickGate
	sessionID string

	field   *core.Field
	body    *Body
	food    Point
	hasFood bool

	score     int
	highScore int
	level     int
	baseSpeed time.Duration // level-derived interval
	speed     time.Duration // active interval, possibly boosted
	boosted   bool

	status core.Status
	err    error
}

func init() {
	registry.Register(GameID, "Snake", func(cfg core.RuntimeConfig) registry.Game {
		return New(cfg)
	})
}

// New creates a session in StatusStart with the stored high score loaded.
func New(cfg core.RuntimeConfig) *Game {
	g := &Game{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		gate:      core.NewTickGate(cfg.ClockOrSystem()),
		sessionID: uuid.NewString(),
	}
	g.logger = cfg.LoggerOrDiscard().With("game", GameID, "session", g.sessionID)
	g.highScore = cfg.LoadHighScore(context.Background(), GameID)
	g.reset()
	return g
}

// reset lays out a fresh body heading down from the top and places food.
func (g *Game) reset() {
	field, err := newField(core.FieldWidth, core.FieldHeight)
	if err != nil {
		g.field = nil
		g.body = nil
		g.status = core.StatusError
		g.err = err
		g.logger.Error("field allocation failed", "err", err)
		return
	}

	g.field = field
	g.body = NewBody(startX, startY, startLength, DirDown)
	g.score = 0
	g.level = 1
	g.baseSpeed = core.ComputeSpeed(g.level)
	g.boosted = false
	g.speed = g.baseSpeed
	g.spawnFood()
	g.status = core.StatusStart
	g.err = nil
	g.gate.Disarm()
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// SessionID returns this session's unique identifier.
func (g *Game) SessionID() string { return g.sessionID }

// Status returns the lifecycle state.
func (g *Game) Status() core.Status { return g.status }

// Err returns the allocation error behind StatusError.
func (g *Game) Err() error { return g.err }

// ApplyCommand steers the snake. Action and Pause both toggle pause;
// turns are ignored unless running.
func (g *Game) ApplyCommand(cmd core.Command) {
	switch g.status {
	case core.StatusError:
		return
	case core.StatusGameOver, core.StatusWin:
		if cmd == core.CommandStart {
			g.logger.Info("restarting")
			g.reset()
			g.begin()
		}
		return
	}

	switch cmd {
	case core.CommandStart:
		if g.status == core.StatusStart {
			g.begin()
		}
	case core.CommandPause, core.CommandAction:
		g.togglePause()
	case core.CommandTerminate:
		g.finish(core.StatusGameOver)
	case core.CommandUp:
		g.turn(DirUp)
	case core.CommandDown:
		g.turn(DirDown)
	case core.CommandLeft:
		g.turn(DirLeft)
	case core.CommandRight:
		g.turn(DirRight)
	}
}

func (g *Game) turn(dir Direction) {
	if g.status != core.StatusRunning {
		return
	}
	if !g.body.SetDirection(dir) {
		g.logger.Debug("reversal rejected", "dir", dir)
	}
}

func (g *Game) begin() {
	g.status = core.StatusRunning
	g.gate.Arm()
	g.logger.Debug("started", "high_score", g.highScore)
}

func (g *Game) togglePause() {
	switch g.status {
	case core.StatusRunning:
		g.status = core.StatusPaused
		g.gate.Disarm()
	case core.StatusPaused:
		g.status = core.StatusRunning
		g.gate.Arm()
	}
}

func (g *Game) finish(status core.Status) {
	g.status = status
	g.gate.Disarm()
	g.logger.Info("session finished", "status", status, "score", g.score, "level", g.level, "length", g.body.Len())
}

// Tick steps the snake once the active interval has elapsed: it eats and
// grows when the next head is the food, dies on a wall or its own body,
// and otherwise moves.
func (g *Game) Tick() bool {
	if g.status != core.StatusRunning {
		return false
	}
	if g.score >= WinScore {
		g.finish(core.StatusWin)
		return true
	}
	if !g.gate.Due(g.speed) {
		return false
	}

	next := g.body.NextHead()
	switch {
	case g.hasFood && next == g.food:
		g.body.Grow()
		g.scoreApple()
		if g.score >= WinScore {
			g.finish(core.StatusWin)
			return true
		}
		g.spawnFood()
	case g.collides(next):
		g.finish(core.StatusGameOver)
	default:
		g.body.Move()
	}
	return true
}

// collides reports whether the head at p leaves the board or runs into
// the body. The tail is excluded since it moves out of the way.
func (g *Game) collides(p Point) bool {
	if p.X < 1 || p.X > 2*core.FieldWidth || p.Y < 1 || p.Y > core.FieldHeight {
		return true
	}
	return g.body.HitsSelf(p)
}

// scoreApple counts one apple and recomputes level and both speeds.
func (g *Game) scoreApple() {
	g.score++
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.level = core.ClampLevel(1 + g.score/ScorePerLevel)
	g.baseSpeed = core.ComputeSpeed(g.level)
	g.speed = g.effectiveSpeed()

	g.logger.Debug("apple eaten", "score", g.score, "level", g.level, "length", g.body.Len())
}

// Close saves the high score.
func (g *Game) Close(ctx context.Context) error {
	if err := g.cfg.SaveHighScore(ctx, GameID, g.highScore); err != nil {
		g.logger.Error("saving high score", "err", err)
		return err
	}
	return nil
}
