package core

import "time"

const (
	// BaseSpeed is the tick interval at level 1.
	BaseSpeed = 1000 * time.Millisecond

	// MaxLevel is the level at which the curve flattens.
	MaxLevel = 10
)

// ClampLevel caps level at MaxLevel.
func ClampLevel(level int) int {
	if level >= MaxLevel {
		return MaxLevel
	}
	return level
}

// ComputeSpeed maps a level to its tick interval. Each level below MaxLevel
// takes 10% of BaseSpeed off the interval; MaxLevel and above run at 5%.
// Integer arithmetic keeps the result exact (900ms, 800ms, ... 200ms, 50ms).
func ComputeSpeed(level int) time.Duration {
	if level >= MaxLevel {
		return BaseSpeed * 5 / 100
	}
	return BaseSpeed - time.Duration(level-1)*BaseSpeed/10
}
