package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// SnakeManager owns the player's snake and brings it back after a game over.
type SnakeManager struct {
	startPos  types.Point
	allowed   []types.Direction
	baseSpeed int
	rng       *rand.Rand
	snake     *entity.Snake
}

// NewSnakeManager creates the snake at startPos with a random heading from
// allowed. An empty allowed list means any direction.
func NewSnakeManager(startPos types.Point, allowed []types.Direction, baseSpeed int, rng *rand.Rand) *SnakeManager {
	if len(allowed) == 0 {
		allowed = types.Directions
	}
	sm := &SnakeManager{
		startPos:  startPos,
		allowed:   allowed,
		baseSpeed: baseSpeed,
		rng:       rng,
		snake:     entity.NewSnake(startPos, types.RIGHT, baseSpeed),
	}
	sm.Respawn()
	return sm
}

// Snake returns the live snake.
func (sm *SnakeManager) Snake() *entity.Snake {
	return sm.snake
}

// Respawn resets the snake to a single segment at the start position.
func (sm *SnakeManager) Respawn() {
	sm.snake.Reset(sm.startPos, sm.allowed, sm.rng, sm.baseSpeed)
}
