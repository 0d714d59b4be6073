package core

import "time"

// PreviewSize is the side of the square next-piece preview.
const PreviewSize = 4

// Preview is the next-piece occupancy matrix, indexed [row][col].
type Preview [PreviewSize][PreviewSize]bool

// GameInfo is the read-only snapshot a frontend renders each frame.
// Field is a private copy; mutating it does not affect the session.
type GameInfo struct {
	Field     *Field
	Preview   Preview
	Score     int
	HighScore int
	Level     int
	Speed     time.Duration
	Paused    bool
	Status    Status
}
