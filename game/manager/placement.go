package manager

import (
	"errors"

	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// ErrNoFreeCell is returned when every cell of the grid is occupied.
var ErrNoFreeCell = errors.New("no free cell")

// AttemptsPerCell bounds random sampling to this many tries per grid cell
// before falling back to a full scan.
const AttemptsPerCell = 4

// CellSet is a set of occupied cells.
type CellSet map[types.Point]struct{}

// Occupied collects every cell covered by the given occupants.
func Occupied(occupants ...entity.Occupant) CellSet {
	set := make(CellSet)
	for _, o := range occupants {
		if o == nil {
			continue
		}
		for _, p := range o.Cells() {
			set[p] = struct{}{}
		}
	}
	return set
}

// Has reports whether p is in the set.
func (s CellSet) Has(p types.Point) bool {
	_, ok := s[p]
	return ok
}

// ChooseFreeCell picks a uniformly random cell that is not in occupied.
// It samples at random first and scans the whole grid once sampling has
// failed AttemptsPerCell*CellCount times, so a crowded board still
// terminates. A full board yields ErrNoFreeCell.
func ChooseFreeCell(grid types.Grid, occupied CellSet, rng *rand.Rand) (types.Point, error) {
	maxAttempts := AttemptsPerCell * grid.CellCount()
	for attempts := 0; attempts < maxAttempts; attempts++ {
		p := grid.Cell(rng.Intn(grid.Width), rng.Intn(grid.Height))
		if !occupied.Has(p) {
			return p, nil
		}
	}

	free := make([]types.Point, 0, max(grid.CellCount()-len(occupied), 0))
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			p := grid.Cell(col, row)
			if !occupied.Has(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], nil
}
