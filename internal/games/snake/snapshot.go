package snake

import "github.com/vovakirdan/brick-arcade/internal/core"

// Snapshot returns the field with body and food marked as Moving cells.
// Snake has no preview. Field is nil in StatusError.
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

	g.field.Clear()
	for _, p := range g.body.cells {
		g.field.Set(p.Column(), p.Y-1, core.CellMoving)
	}
	if g.hasFood {
		g.field.Set(g.food.Column(), g.food.Y-1, core.CellMoving)
	}
	info.Field = g.field.Clone()
	return info
}

// Body returns a copy of the snake, tail first.
func (g *Game) Body() []Point {
	if g.body == nil {
		return nil
	}
	return g.body.Cells()
}

// Food returns the food cell and whether one is on the board.
func (g *Game) Food() (Point, bool) { return g.food, g.hasFood }

// Heading returns the direction of the next step, DirDown without a body.
func (g *Game) Heading() Direction {
	if g.body == nil {
		return DirDown
	}
	return g.body.Direction()
}
