package game

import (
	"errors"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
	"gridsnake/stats"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Game runs the round: one snake, its consumables and the score. All state
// changes go through Tick.
type Game struct {
	UUID string
	Grid types.Grid

	rules      Rules
	snakes     *manager.SnakeManager
	items      *manager.ItemManager
	collisions *manager.CollisionManager
	state      *manager.StateManager
}

// Event describes what happened during one tick.
type Event struct {
	Collision manager.CollisionType
	GameOver  bool
	Result    stats.Result // set when GameOver is true
}

// NewGame validates cfg and sets up the first round. rng is the only source
// of randomness; sink receives a result for every game over and may be nil.
func NewGame(cfg Config, rng *rand.Rand, sink stats.Sink) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Session == "" {
		cfg.Session = uuid.New().String()
	}

	items := manager.NewItemManager(cfg.Grid, rng, cfg.Rules.Kinds)
	g := &Game{
		UUID:       cfg.Session,
		Grid:       cfg.Grid,
		rules:      cfg.Rules,
		snakes:     manager.NewSnakeManager(cfg.Start, cfg.Rules.Directions, cfg.Rules.BaseSpeed, rng),
		items:      items,
		collisions: manager.NewCollisionManager(items),
		state:      manager.NewStateManager(cfg.Rules.scoring(), cfg.Session, sink),
	}

	if err := g.items.SpawnAll(g.snakes.Snake()); err != nil {
		return nil, err
	}
	return g, nil
}

// RequestDirection buffers a direction command for the next tick. Calling it
// several times between ticks keeps the last valid request.
func (g *Game) RequestDirection(dir types.Direction) {
	g.snakes.Snake().RequestDirection(dir)
}

// Speed is the current tick rate in ticks per second.
func (g *Game) Speed() int {
	return g.snakes.Snake().Speed
}

// Score is the score of the running round.
func (g *Game) Score() int {
	return g.state.Score()
}

// Rules returns the rules the game was built with.
func (g *Game) Rules() Rules {
	return g.rules
}

// GetSnake returns the live snake. Callers must not mutate it.
func (g *Game) GetSnake() *entity.Snake {
	return g.snakes.Snake()
}

// Items returns the consumables in collision priority order.
func (g *Game) Items() []*entity.Item {
	return g.items.Items()
}

// Tick advances the simulation by one step: commit the buffered direction,
// move, then resolve the first collision in priority order. A returned error
// never leaves the game in an inconsistent state; it reports a failed result
// write or an item that found no free cell.
func (g *Game) Tick() (Event, error) {
	snake := g.snakes.Snake()
	snake.CommitDirection()
	snake.Move(g.Grid)
	g.state.Tick()

	collision, item := g.collisions.Check(snake)
	ev := Event{Collision: collision}

	var err error
	switch collision {
	case manager.GrowthCollision:
		snake.Grow(1)
		err = g.items.Relocate(item, snake)
		g.state.OnGrowth(snake)

	case manager.ShrinkCollision:
		snake.ShrinkImmediate(1)
		if snake.Len() == 0 {
			return g.gameOver(collision)
		}
		err = g.items.Relocate(item, snake)
		g.state.OnShrink(snake)

	case manager.ObstacleCollision, manager.SelfCollision:
		return g.gameOver(collision)
	}

	return ev, err
}

func (g *Game) gameOver(cause manager.CollisionType) (Event, error) {
	snake := g.snakes.Snake()
	result, err := g.state.GameOver(snake, cause)

	g.snakes.Respawn()
	if spawnErr := g.items.SpawnAll(snake); spawnErr != nil {
		err = errors.Join(err, spawnErr)
	}

	return Event{Collision: cause, GameOver: true, Result: result}, err
}
