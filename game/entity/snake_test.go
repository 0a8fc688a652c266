package entity

import (
	"testing"

	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

func newTestSnake(body []types.Point, dir types.Direction) *Snake {
	s := NewSnake(body[0], dir, 10)
	s.Body = append([]types.Point(nil), body...)
	s.targetLength = len(body)
	return s
}

func TestMoveWrapsRight(t *testing.T) {
	grid := types.DefaultGrid()
	s := NewSnake(types.Point{X: 620, Y: 100}, types.RIGHT, 10)
	s.Move(grid)
	if s.Head() != (types.Point{X: 0, Y: 100}) {
		t.Fatalf("head = %v, want (0,100)", s.Head())
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
}

func TestRequestOppositeIsRejected(t *testing.T) {
	s := NewSnake(types.Point{X: 100, Y: 100}, types.RIGHT, 10)
	s.RequestDirection(types.LEFT)
	s.CommitDirection()
	if s.Direction != types.RIGHT {
		t.Fatalf("direction = %v, want right", s.Direction)
	}
}

func TestLastValidRequestWins(t *testing.T) {
	s := NewSnake(types.Point{X: 100, Y: 100}, types.RIGHT, 10)
	s.RequestDirection(types.UP)
	s.RequestDirection(types.LEFT) // reverse of current heading, dropped
	s.RequestDirection(types.DOWN)
	if s.Pending() != types.DOWN {
		t.Fatalf("pending = %v, want down", s.Pending())
	}
	s.CommitDirection()
	if s.Direction != types.DOWN || s.Pending() != types.NONE {
		t.Fatalf("after commit: direction %v pending %v", s.Direction, s.Pending())
	}
}

func TestCommitWithoutRequestKeepsHeading(t *testing.T) {
	s := NewSnake(types.Point{X: 100, Y: 100}, types.UP, 10)
	s.CommitDirection()
	if s.Direction != types.UP {
		t.Fatalf("direction = %v, want up", s.Direction)
	}
}

func TestGrowthIsLazy(t *testing.T) {
	grid := types.DefaultGrid()
	s := NewSnake(types.Point{X: 100, Y: 100}, types.RIGHT, 10)
	s.Grow(1)
	if s.Len() != 1 {
		t.Fatalf("grow must not extend the body until the next move")
	}
	for i, want := range []int{2, 2, 2} {
		before := s.Len()
		s.Move(grid)
		if s.Len() != want {
			t.Fatalf("move %d: len = %d, want %d", i, s.Len(), want)
		}
		if exp := min(before+1, s.TargetLength()); s.Len() != exp {
			t.Fatalf("move %d: len = %d, want min(before+1, target) = %d", i, s.Len(), exp)
		}
	}
	if s.GrowthCount() != 1 {
		t.Fatalf("growth count = %d, want 1", s.GrowthCount())
	}
}

func TestShrinkIsImmediate(t *testing.T) {
	s := newTestSnake([]types.Point{{X: 60, Y: 0}, {X: 40, Y: 0}, {X: 20, Y: 0}}, types.RIGHT)
	s.ShrinkImmediate(1)
	if s.Len() != 2 || s.TargetLength() != 2 {
		t.Fatalf("len %d target %d, want 2/2", s.Len(), s.TargetLength())
	}
	if s.Body[1] != (types.Point{X: 40, Y: 0}) {
		t.Fatalf("tail should be cut, body = %v", s.Body)
	}
}

func TestShrinkToZero(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 0}, types.RIGHT, 10)
	s.ShrinkImmediate(1)
	if s.Len() != 0 || s.TargetLength() != 0 {
		t.Fatalf("len %d target %d, want 0/0", s.Len(), s.TargetLength())
	}
	s.ShrinkImmediate(3)
	if s.TargetLength() != 0 {
		t.Fatalf("target length must not go negative")
	}
}

func TestSelfCollision(t *testing.T) {
	grid := types.DefaultGrid()
	// The body curls back under the head; turning down lands on (20,20).
	s := newTestSnake([]types.Point{
		{X: 20, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 20}, {X: 20, Y: 20}, {X: 0, Y: 20},
	}, types.LEFT)
	s.RequestDirection(types.DOWN)
	s.CommitDirection()
	s.Move(grid)
	if s.Head() != (types.Point{X: 20, Y: 20}) {
		t.Fatalf("head = %v", s.Head())
	}
	if !s.IsSelfCollision() {
		t.Fatalf("expected self collision, body = %v", s.Body)
	}
}

func TestMovingIntoVacatedTailIsSafe(t *testing.T) {
	grid := types.DefaultGrid()
	// A 2x2 loop: the head moves into the cell the tail leaves this tick.
	s := newTestSnake([]types.Point{
		{X: 0, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 0}, {X: 0, Y: 0},
	}, types.LEFT)
	s.RequestDirection(types.UP)
	s.CommitDirection()
	s.Move(grid)
	if s.IsSelfCollision() {
		t.Fatalf("moving into the vacated tail cell must not collide, body = %v", s.Body)
	}
}

func TestReset(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := newTestSnake([]types.Point{{X: 0, Y: 0}, {X: 20, Y: 0}}, types.LEFT)
	s.Grow(3)
	s.Speed = 14
	s.RequestDirection(types.UP)

	start := types.Point{X: 320, Y: 240}
	allowed := []types.Direction{types.UP, types.DOWN}
	s.Reset(start, allowed, rng, 10)

	if s.Len() != 1 || s.Head() != start || s.TargetLength() != 1 {
		t.Fatalf("reset body %v target %d", s.Body, s.TargetLength())
	}
	if s.Direction != types.UP && s.Direction != types.DOWN {
		t.Fatalf("direction %v not in allowed set", s.Direction)
	}
	if s.Pending() != types.NONE || s.Speed != 10 || s.GrowthCount() != 0 {
		t.Fatalf("reset left stale state: pending %v speed %d growth %d", s.Pending(), s.Speed, s.GrowthCount())
	}
}

func TestItemCells(t *testing.T) {
	it := NewItem(GrowthItem, types.Point{X: 20, Y: 40})
	if !it.At(types.Point{X: 20, Y: 40}) || len(it.Cells()) != 1 {
		t.Fatal("active item should occupy its cell")
	}
	it.Active = false
	if it.At(types.Point{X: 20, Y: 40}) || len(it.Cells()) != 0 {
		t.Fatal("inactive item should occupy nothing")
	}
}
