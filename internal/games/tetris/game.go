// Package tetris implements the falling-block engine: a shuffled piece
// bag, move/rotate/drop with collision against landed blocks, line clears
// and the level-driven fall speed.
package tetris

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
const GameID = "tetris"

// newField allocates the playfield; replaced in tests.
var newField = core.NewField

// Game is one tetris session.
type Game struct {
	cfg       core.RuntimeConfig
	logger    *log.Logger
	rng       *rand.Rand
	gate      core.TickGate
	sessionID string

	field *core.Field
	bag   *Bag
	piece Piece
	next  Piece

	score     int
	highScore int
	level     int
	lines     int
	speed     time.Duration

	status core.Status
	err    error
}

func init() {
	registry.Register(GameID, "Tetris", func(cfg core.RuntimeConfig) registry.Game {
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

// reset clears the board and deals the first two pieces.
func (g *Game) reset() {
	field, err := newField(core.FieldWidth, core.FieldHeight)
	if err != nil {
		g.field = nil
		g.status = core.StatusError
		g.err = err
		g.logger.Error("field allocation failed", "err", err)
		return
	}

	g.field = field
	g.bag = NewBag(g.rng)
	g.score = 0
	g.lines = 0
	g.level = 1
	g.speed = core.ComputeSpeed(g.level)
	g.next = NewPiece(g.bag.Next())
	g.spawnNext()
	g.status = core.StatusStart
	g.err = nil
	g.gate.Disarm()
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// SessionID returns this session's unique identifier.
func (g *Game) SessionID() string { return g.sessionID }

// Status returns the lifecycle state.
func (g *Game) Status() core.Status { return g.status }

// Err returns the allocation error behind StatusError.
func (g *Game) Err() error { return g.err }

// ApplyCommand maps a command onto the piece. Action and Up rotate, Down
// hard drops. Movement is ignored unless running; Terminate
// ends the session from any live state, including pause.
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
	case core.CommandPause:
		g.togglePause()
	case core.CommandTerminate:
		g.finish(core.StatusGameOver)
	case core.CommandLeft:
		if g.status == core.StatusRunning {
			g.MoveLeft()
		}
	case core.CommandRight:
		if g.status == core.StatusRunning {
			g.MoveRight()
		}
	case core.CommandDown:
		if g.status == core.StatusRunning {
			g.DropHard()
		}
	case core.CommandAction, core.CommandUp:
		if g.status == core.StatusRunning {
			g.Rotate()
		}
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
	g.logger.Info("session finished", "status", status, "score", g.score, "level", g.level, "lines", g.lines)
}

// Tick drops the piece one row once the speed interval has elapsed. A piece
// that cannot descend is locked, full rows are cleared and the next piece
// spawns; a spawn that collides ends the game.
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

	if !g.collides(g.piece, 0, 1) {
		g.piece.Y++
		return true
	}

	g.lock()
	g.scoreLines(g.clearLines())
	if g.score >= WinScore {
		g.finish(core.StatusWin)
		return true
	}

	g.spawnNext()
	if g.collides(g.piece, 0, 0) {
		g.finish(core.StatusGameOver)
	}
	return true
}

// spawnNext promotes the preview piece to active, centered on the top row,
// and deals a new preview.
func (g *Game) spawnNext() {
	g.piece = g.next
	g.piece.X = (core.FieldWidth-g.piece.Width)/2 + 1
	g.piece.Y = 1
	g.next = NewPiece(g.bag.Next())
}

// lock burns the active piece into the field as Static cells.
func (g *Game) lock() {
	for _, b := range g.piece.Blocks() {
		g.field.Set(b[0]-1, b[1]-1, core.CellStatic)
	}
	g.logger.Debug("piece locked", "shape", g.piece.Shape, "x", g.piece.X, "y", g.piece.Y)
}

// collides reports whether p shifted by (dx, dy) leaves [1,W]x[1,H] or
// overlaps a Static cell.
func (g *Game) collides(p Piece, dx, dy int) bool {
	for _, b := range p.Blocks() {
		x, y := b[0]+dx, b[1]+dy
		if x < 1 || x > core.FieldWidth || y < 1 || y > core.FieldHeight {
			return true
		}
		if g.field.Get(x-1, y-1) == core.CellStatic {
			return true
		}
	}
	return false
}

// Rotate turns the piece clockwise if the result fits where it stands.
func (g *Game) Rotate() bool {
	candidate := g.piece.Rotated()
	if g.collides(candidate, 0, 0) {
		return false
	}
	g.piece = candidate
	return true
}

// MoveLeft shifts the piece one column left if free.
func (g *Game) MoveLeft() bool {
	return g.shift(-1)
}

// MoveRight shifts the piece one column right if free.
func (g *Game) MoveRight() bool {
	return g.shift(1)
}

func (g *Game) shift(dx int) bool {
	if g.collides(g.piece, dx, 0) {
		return false
	}
	g.piece.X += dx
	return true
}

// DropHard moves the piece straight down to the lowest free row. It lands
// on the next due tick.
func (g *Game) DropHard() int {
	rows := 0
	for !g.collides(g.piece, 0, 1) {
		g.piece.Y++
		rows++
	}
	return rows
}

// Close saves the high score.
func (g *Game) Close(ctx context.Context) error {
	if err := g.cfg.SaveHighScore(ctx, GameID, g.highScore); err != nil {
		g.logger.Error("saving high score", "err", err)
		return err
	}
	return nil
}
