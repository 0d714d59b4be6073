package snake

import "github.com/vovakirdan/brick-arcade/internal/core"

// spawnFood places food on a uniformly chosen cell not covered by the body.
// With no free cell left the board has no food.
func (g *Game) spawnFood() {
	free := make([]Point, 0, core.FieldWidth*core.FieldHeight)
	for y := 1; y <= core.FieldHeight; y++ {
		for col := 0; col < core.FieldWidth; col++ {
			p := Point{X: col*2 + 1, Y: y}
			if !g.body.Occupies(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		g.hasFood = false
		return
	}

	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
}
