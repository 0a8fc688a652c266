package ui

import "time"

// Pacer spaces ticks out so the game advances speed times per second while
// frames are drawn as often as the frontend likes.
type Pacer struct {
	last time.Time
}

// NewPacer starts counting from now.
func NewPacer(now time.Time) *Pacer {
	return &Pacer{last: now}
}

// Interval is the time between two ticks at speed ticks per second.
func Interval(speed int) time.Duration {
	if speed <= 0 {
		return 0
	}
	return time.Second / time.Duration(speed)
}

// Due reports whether a tick should run at now. A true result restarts the
// interval. A speed of zero or less never ticks.
func (p *Pacer) Due(now time.Time, speed int) bool {
	if speed <= 0 {
		return false
	}
	if now.Sub(p.last) < Interval(speed) {
		return false
	}
	p.last = now
	return true
}
