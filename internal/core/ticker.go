package core

import "time"

// TickGate decides whether enough wall-clock time has passed for the next
// tick. The zero value is unarmed and never fires.
type TickGate struct {
	clock Clock
	last  time.Time
	armed bool
}

// NewTickGate creates an unarmed gate reading clock.
func NewTickGate(clock Clock) TickGate {
	if clock == nil {
		clock = SystemClock
	}
	return TickGate{clock: clock}
}

// Arm starts measuring from now.
func (g *TickGate) Arm() {
	g.last = g.clock.Now()
	g.armed = true
}

// Disarm stops the gate until the next Arm.
func (g *TickGate) Disarm() {
	g.armed = false
}

// Due reports whether interval has elapsed since the last firing and, if
// so, restarts the measurement from now.
func (g *TickGate) Due(interval time.Duration) bool {
	if !g.armed {
		return false
	}
	now := g.clock.Now()
	if now.Sub(g.last) < interval {
		return false
	}
	g.last = now
	return true
}
