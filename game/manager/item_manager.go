package manager

import (
	"errors"
	"fmt"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// ItemManager owns the consumables on the board and keeps every one of them
// on its own cell, off the snake.
type ItemManager struct {
	grid  types.Grid
	rng   *rand.Rand
	items []*entity.Item
}

// NewItemManager creates one inactive item per enabled kind. Items are kept
// in collision priority order regardless of the order of kinds.
func NewItemManager(grid types.Grid, rng *rand.Rand, kinds []entity.Kind) *ItemManager {
	enabled := make(map[entity.Kind]bool, len(kinds))
	for _, k := range kinds {
		enabled[k] = true
	}

	im := &ItemManager{
		grid:  grid,
		rng:   rng,
		items: make([]*entity.Item, 0, len(enabled)),
	}
	for _, k := range entity.Kinds {
		if enabled[k] {
			im.items = append(im.items, &entity.Item{Kind: k})
		}
	}
	return im
}

// Items returns the managed items in priority order.
func (im *ItemManager) Items() []*entity.Item {
	return im.items
}

// Get returns the item of the given kind, or nil if that kind is disabled.
func (im *ItemManager) Get(kind entity.Kind) *entity.Item {
	for _, it := range im.items {
		if it.Kind == kind {
			return it
		}
	}
	return nil
}

// ItemAt returns the highest priority active item on pos, or nil.
func (im *ItemManager) ItemAt(pos types.Point) *entity.Item {
	for _, it := range im.items {
		if it.At(pos) {
			return it
		}
	}
	return nil
}

// SpawnAll places every item from scratch, avoiding the given occupants.
// Items that cannot be placed stay inactive; the errors are joined.
func (im *ItemManager) SpawnAll(occupants ...entity.Occupant) error {
	for _, it := range im.items {
		it.Active = false
	}

	var errs []error
	for _, it := range im.items {
		if err := im.Relocate(it, occupants...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Relocate moves it to a free cell that is neither covered by the occupants
// nor by any other active item. On failure the item is deactivated.
func (im *ItemManager) Relocate(it *entity.Item, occupants ...entity.Occupant) error {
	occupied := Occupied(occupants...)
	for _, other := range im.items {
		if other != it && other.Active {
			occupied[other.Position] = struct{}{}
		}
	}

	pos, err := ChooseFreeCell(im.grid, occupied, im.rng)
	if err != nil {
		it.Active = false
		return fmt.Errorf("failed to place %s item: %w", it.Kind, err)
	}
	it.Position = pos
	it.Active = true
	return nil
}
