package tetris

import "github.com/vovakirdan/brick-arcade/internal/core"

// Scoring thresholds.
const (
	WinScore      = 10000
	ScorePerLevel = 600
)

// lineScores is indexed by the number of rows cleared at once.
var lineScores = [...]int{0, 100, 300, 700, 1500}

// clearLines removes every full Static row, bottom to top, re-examining a
// row after the rows above drop into it. Returns the number removed.
func (g *Game) clearLines() int {
	cleared := 0
	for row := g.field.Height() - 1; row >= 0; row-- {
		if g.field.RowFull(row, core.CellStatic) {
			g.field.RemoveRow(row)
			cleared++
			row++
		}
	}
	return cleared
}

// scoreLines applies the line bonus and recomputes level and speed.
func (g *Game) scoreLines(count int) {
	if count <= 0 {
		return
	}
	count = min(count, len(lineScores)-1)

	g.score += lineScores[count]
	g.lines += count
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.level = core.ClampLevel(1 + g.score/ScorePerLevel)
	g.speed = core.ComputeSpeed(g.level)

	g.logger.Debug("lines cleared", "count", count, "score", g.score, "level", g.level)
}
