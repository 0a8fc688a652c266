// Package ui holds the collaborators the main loop talks to: frontends that
// read input and draw frames, and the pacer that decides when to tick.
package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"
)

// Frontend reads player input and draws the game. Implementations are driven
// from the goroutine that owns the game.
type Frontend interface {
	// Poll returns the direction keys pressed since the last call, oldest
	// first, and whether the player asked to quit.
	Poll() (dirs []types.Direction, quit bool)
	// Draw renders one frame.
	Draw(f Frame)
	Close() error
}

// Frame is a snapshot plus what the HUD shows beyond the running game.
type Frame struct {
	game.Snapshot
	Best      int // best score on record, history included
	Autopilot bool
}

// NewFrame wraps s. best is the best score loaded from history; the session
// high score wins when it is higher.
func NewFrame(s game.Snapshot, best int, autopilot bool) Frame {
	return Frame{Snapshot: s, Best: max(best, s.HighScore), Autopilot: autopilot}
}

// Status is the HUD line shared by every frontend.
func (f Frame) Status() string {
	line := fmt.Sprintf("Score: %d  Speed: %d  Best: %d  Games: %d", f.Score, f.Speed, f.Best, f.GamesPlayed)
	if f.Autopilot {
		line += "  [autopilot]"
	}
	return line
}
