package entity

import "gridsnake/game/types"

// Kind identifies what a consumable does when the head reaches it.
type Kind int

const (
	GrowthItem Kind = iota
	ShrinkItem
	Obstacle
)

// Kinds lists every consumable kind in collision priority order.
var Kinds = []Kind{GrowthItem, ShrinkItem, Obstacle}

func (k Kind) String() string {
	switch k {
	case GrowthItem:
		return "growth"
	case ShrinkItem:
		return "shrink"
	case Obstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Item is a single consumable on the board. An inactive item could not be
// placed and is ignored until the next reset.
type Item struct {
	Kind     Kind
	Position types.Point
	Active   bool
}

// NewItem creates an active item at pos.
func NewItem(kind Kind, pos types.Point) *Item {
	return &Item{Kind: kind, Position: pos, Active: true}
}

// Cells implements Occupant.
func (it *Item) Cells() []types.Point {
	if !it.Active {
		return nil
	}
	return []types.Point{it.Position}
}

// At reports whether the item is active and sits on pos.
func (it *Item) At(pos types.Point) bool {
	return it.Active && it.Position == pos
}
