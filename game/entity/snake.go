package entity

import (
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Occupant is anything that covers cells on the board.
type Occupant interface {
	Cells() []types.Point
}

// Snake holds the body, heading and growth target of the player's snake.
// Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Speed     int

	pending      types.Direction
	targetLength int
	growthCount  int
}

// NewSnake creates a snake of length one at startPos heading in dir.
func NewSnake(startPos types.Point, dir types.Direction, speed int) *Snake {
	return &Snake{
		Body:         []types.Point{startPos},
		Direction:    dir,
		Speed:        speed,
		pending:      types.NONE,
		targetLength: 1,
	}
}

// Head returns the front segment.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Len is the number of segments currently on the board.
func (s *Snake) Len() int {
	return len(s.Body)
}

// TargetLength is the length the snake is growing or shrinking towards.
func (s *Snake) TargetLength() int {
	return s.targetLength
}

// Pending returns the buffered direction, or NONE.
func (s *Snake) Pending() types.Direction {
	return s.pending
}

// GrowthCount is the number of growth items eaten since the last reset.
func (s *Snake) GrowthCount() int {
	return s.growthCount
}

// Cells implements Occupant.
func (s *Snake) Cells() []types.Point {
	return s.Body
}

// RequestDirection buffers dir for the next commit. A request for the
// reverse of the current heading is dropped.
func (s *Snake) RequestDirection(dir types.Direction) {
	if dir == types.NONE || dir == s.Direction.Opposite() {
		return
	}
	s.pending = dir
}

// CommitDirection applies the buffered direction, if any.
func (s *Snake) CommitDirection() {
	if s.pending != types.NONE {
		s.Direction = s.pending
		s.pending = types.NONE
	}
}

// Move pushes a new head one cell ahead and drops the tail once the body is
// longer than the target. Growth therefore shows up on the move after Grow.
func (s *Snake) Move(grid types.Grid) {
	newHead := grid.Step(s.Head(), s.Direction)
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	s.trim()
}

// Grow raises the target length by n.
func (s *Snake) Grow(n int) {
	s.targetLength += n
	s.growthCount++
}

// ShrinkImmediate lowers the target length by n and cuts the tail right away.
// The body may end up empty.
func (s *Snake) ShrinkImmediate(n int) {
	s.targetLength -= n
	if s.targetLength < 0 {
		s.targetLength = 0
	}
	s.trim()
}

// IsSelfCollision reports whether the head overlaps any other segment.
func (s *Snake) IsSelfCollision() bool {
	if len(s.Body) < 2 {
		return false
	}
	head := s.Body[0]
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// Reset puts the snake back to a single segment at startPos with a random
// heading chosen from allowed.
func (s *Snake) Reset(startPos types.Point, allowed []types.Direction, rng *rand.Rand, speed int) {
	if len(allowed) == 0 {
		allowed = types.Directions
	}
	s.Body = []types.Point{startPos}
	s.Direction = allowed[rng.Intn(len(allowed))]
	s.pending = types.NONE
	s.targetLength = 1
	s.growthCount = 0
	s.Speed = speed
}

func (s *Snake) trim() {
	if len(s.Body) > s.targetLength {
		s.Body = s.Body[:s.targetLength]
	}
}
