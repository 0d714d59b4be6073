package tetris

import "github.com/vovakirdan/brick-arcade/internal/core"

// Snapshot returns the field with landed blocks as Static and the active
// piece as Moving, the next-piece preview and the scoring counters.
// Field is nil in StatusError.
func (g *Game) Snapshot() core.GameInfo {
	info := core.GameInfo{
		Score:     g.score,
		HighScore: g.highScore,
		Level:     g.level,
		Speed:     g.speed,
		Paused:    g.status == core.StatusPaused,
		Status:    g.status,
	}
	if g.field == nil {
		return info
	}

	info.Field = g.field.Clone()
	for _, b := range g.piece.Blocks() {
		x, y := b[0]-1, b[1]-1
		if info.Field.Get(x, y) == core.CellEmpty {
			info.Field.Set(x, y, core.CellMoving)
		}
	}
	info.Preview = g.next.Cells
	return info
}

// Lines returns the total number of rows cleared this round.
func (g *Game) Lines() int { return g.lines }

// Active returns a copy of the falling piece.
func (g *Game) Active() Piece { return g.piece }

// Next returns a copy of the preview piece.
func (g *Game) Next() Piece { return g.next }
