package manager

import (
	"gridsnake/game/entity"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	GrowthCollision
	ShrinkCollision
	ObstacleCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case GrowthCollision:
		return "growth"
	case ShrinkCollision:
		return "shrink"
	case ObstacleCollision:
		return "obstacle"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// CollisionManager resolves what the snake's head ran into after a move.
type CollisionManager struct {
	items *ItemManager
}

func NewCollisionManager(items *ItemManager) *CollisionManager {
	return &CollisionManager{
		items: items,
	}
}

// Check evaluates the head against the items in priority order (growth,
// shrink, obstacle) and then against the snake's own body. Only the first
// match is reported, together with the item that caused it.
func (cm *CollisionManager) Check(snake *entity.Snake) (CollisionType, *entity.Item) {
	if snake.Len() == 0 {
		return NoCollision, nil
	}

	if it := cm.items.ItemAt(snake.Head()); it != nil {
		switch it.Kind {
		case entity.GrowthItem:
			return GrowthCollision, it
		case entity.ShrinkItem:
			return ShrinkCollision, it
		case entity.Obstacle:
			return ObstacleCollision, it
		}
	}

	if snake.IsSelfCollision() {
		return SelfCollision, nil
	}
	return NoCollision, nil
}
