package snake

import "time"

// Keys that count as holding each heading.
var headingKeys = map[Direction][]string{
	DirUp:    {"up", "w"},
	DirDown:  {"down", "s"},
	DirLeft:  {"left", "a"},
	DirRight: {"right", "d"},
}

// BoostOrNot reports whether rawKey is a key for the current heading.
func (g *Game) BoostOrNot(rawKey string) bool {
	if g.body == nil {
		return false
	}
	for _, k := range headingKeys[g.body.Direction()] {
		if k == rawKey {
			return true
		}
	}
	return false
}

// SpeedBoost shortens the tick interval while hold is true and restores
// the level baseline when released. Repeated holds do not compound.
func (g *Game) SpeedBoost(hold bool) {
	g.boosted = hold
	g.speed = g.effectiveSpeed()
}

func (g *Game) effectiveSpeed() time.Duration {
	if !g.boosted {
		return g.baseSpeed
	}
	if g.level <= boostLevelSplit {
		return g.baseSpeed / 5
	}
	return g.baseSpeed / 3
}
