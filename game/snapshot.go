package game

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// ItemView is a read-only copy of a consumable.
type ItemView struct {
	Kind     entity.Kind
	Position types.Point
	Active   bool
}

// Snapshot is a copy of everything a renderer or input source may look at.
type Snapshot struct {
	Session     string
	Grid        types.Grid
	Body        []types.Point
	Target      int // length the body is heading for
	Direction   types.Direction
	Items       []ItemView
	Score       int
	HighScore   int
	Speed       int
	SpeedLevel  int
	Ticks       int
	GamesPlayed int
}

// Snapshot copies the current state. Nothing in it aliases the game.
func (g *Game) Snapshot() Snapshot {
	snake := g.snakes.Snake()

	body := make([]types.Point, len(snake.Body))
	copy(body, snake.Body)

	items := make([]ItemView, 0, len(g.items.Items()))
	for _, it := range g.items.Items() {
		items = append(items, ItemView{Kind: it.Kind, Position: it.Position, Active: it.Active})
	}

	return Snapshot{
		Session:     g.UUID,
		Grid:        g.Grid,
		Body:        body,
		Target:      snake.TargetLength(),
		Direction:   snake.Direction,
		Items:       items,
		Score:       g.state.Score(),
		HighScore:   g.state.HighScore(),
		Speed:       snake.Speed,
		SpeedLevel:  g.state.SpeedLevel(),
		Ticks:       g.state.Ticks(),
		GamesPlayed: g.state.GamesPlayed(),
	}
}

// Head returns the head of the snake in the snapshot.
func (s Snapshot) Head() types.Point {
	if len(s.Body) == 0 {
		return types.Point{}
	}
	return s.Body[0]
}

// Item returns the view of the active item of the given kind.
func (s Snapshot) Item(kind entity.Kind) (ItemView, bool) {
	for _, it := range s.Items {
		if it.Kind == kind && it.Active {
			return it, true
		}
	}
	return ItemView{}, false
}
