// Package pilot steers the snake without a human at the keys.
package pilot

import (
	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// Pilot picks a direction each tick: never reverse, stay off the body and
// the obstacle, keep enough room to fit the body, and close in on the
// growth item.
type Pilot struct {
	// MaxSearch caps the flood fill; 0 means the whole board.
	MaxSearch int
}

// New returns a pilot with an unbounded flood fill.
func New() *Pilot {
	return &Pilot{}
}

type move struct {
	dir       types.Direction
	safe      bool
	roomy     bool
	distance  int
	reachable int
	straight  bool
}

func (m move) better(o move) bool {
	if m.safe != o.safe {
		return m.safe
	}
	if m.roomy != o.roomy {
		return m.roomy
	}
	if !m.roomy && m.reachable != o.reachable {
		return m.reachable > o.reachable
	}
	if m.distance != o.distance {
		return m.distance < o.distance
	}
	return m.straight && !o.straight
}

// Next returns the direction to request for the coming tick.
func (p *Pilot) Next(s game.Snapshot) types.Direction {
	if len(s.Body) == 0 {
		return s.Direction
	}

	blocked := blockedCells(s)
	head := s.Head()
	target, hasTarget := s.Item(entity.GrowthItem)

	candidates := []types.Direction{s.Direction, s.Direction.TurnLeft(), s.Direction.TurnRight()}
	var best move
	for i, dir := range candidates {
		next := s.Grid.Step(head, dir)
		m := move{
			dir:      dir,
			safe:     !blocked.has(next),
			straight: dir == s.Direction,
		}
		if m.safe {
			m.reachable = p.reachable(s.Grid, next, blocked)
			m.roomy = m.reachable >= len(s.Body)
		}
		if hasTarget {
			m.distance = s.Grid.Distance(next, target.Position)
		}
		if i == 0 || m.better(best) {
			best = m
		}
	}
	return best.dir
}

type cellSet map[types.Point]struct{}

func (c cellSet) has(p types.Point) bool {
	_, ok := c[p]
	return ok
}

// blockedCells is every cell that ends the round when entered next tick.
// The tail is left out when it moves away on the same tick.
func blockedCells(s game.Snapshot) cellSet {
	body := s.Body
	if len(body) >= s.Target {
		body = body[:len(body)-1]
	}
	blocked := make(cellSet, len(s.Body)+2)
	for _, p := range body {
		blocked[p] = struct{}{}
	}
	if it, ok := s.Item(entity.Obstacle); ok {
		blocked[it.Position] = struct{}{}
	}
	// Shrinking a one-segment snake ends the round as well.
	if it, ok := s.Item(entity.ShrinkItem); ok && len(s.Body) == 1 {
		blocked[it.Position] = struct{}{}
	}
	return blocked
}

// reachable counts the free cells connected to start.
func (p *Pilot) reachable(grid types.Grid, start types.Point, blocked cellSet) int {
	limit := p.MaxSearch
	if limit <= 0 {
		limit = grid.CellCount()
	}

	visited := cellSet{start: {}}
	queue := []types.Point{start}
	count := 0
	for len(queue) > 0 && count < limit {
		curr := queue[0]
		queue = queue[1:]
		count++

		for _, d := range types.Directions {
			next := grid.Step(curr, d)
			if blocked.has(next) || visited.has(next) {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return count
}
