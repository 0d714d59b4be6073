// Package core holds the vocabulary shared by both brick engines and their
// frontends: commands, session status, the cell grid, the speed curve and the
// snapshot handed to renderers. It has no UI dependencies so engines stay pure
// and testable.
package core

// Command is an abstract player intent, already decoupled from raw keys.
// Engines bind the same command differently (Action rotates in tetris and
// toggles pause in snake).
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandPause
	CommandTerminate
	CommandLeft
	CommandRight
	CommandUp
	CommandDown
	CommandAction
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandStart:
		return "Start"
	case CommandPause:
		return "Pause"
	case CommandTerminate:
		return "Terminate"
	case CommandLeft:
		return "Left"
	case CommandRight:
		return "Right"
	case CommandUp:
		return "Up"
	case CommandDown:
		return "Down"
	case CommandAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// Status is the lifecycle state of a game session.
type Status int

const (
	StatusStart Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
	StatusWin
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusStart:
		return "Start"
	case StatusRunning:
		return "Running"
	case StatusPaused:
		return "Paused"
	case StatusGameOver:
		return "GameOver"
	case StatusWin:
		return "Win"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Finished reports whether the session reached a terminal state.
func (s Status) Finished() bool {
	return s == StatusGameOver || s == StatusWin || s == StatusError
}
