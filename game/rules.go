package game

import (
	"errors"
	"fmt"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Game tuning constants.
const (
	DefaultBaseSpeed    = 10 // ticks per second
	DefaultSpeedUpEvery = 70 // growth items per speed level
	DefaultGrowthPoints = 10
	DefaultShrinkPoints = -10
)

// Rules decides which consumables exist and how score and speed evolve.
type Rules struct {
	Kinds        []entity.Kind
	Directions   []types.Direction // headings a respawned snake may start with
	BaseSpeed    int
	SpeedUpEvery int
	GrowthPoints int
	ShrinkPoints int
}

// ClassicRules is the plain game: one apple, constant speed.
func ClassicRules() Rules {
	return Rules{
		Kinds:        []entity.Kind{entity.GrowthItem},
		Directions:   types.Directions,
		BaseSpeed:    DefaultBaseSpeed,
		SpeedUpEvery: 0,
		GrowthPoints: DefaultGrowthPoints,
		ShrinkPoints: 0,
	}
}

// ExtendedRules adds the shrink item, the obstacle and speed progression.
func ExtendedRules() Rules {
	return Rules{
		Kinds:        entity.Kinds,
		Directions:   types.Directions,
		BaseSpeed:    DefaultBaseSpeed,
		SpeedUpEvery: DefaultSpeedUpEvery,
		GrowthPoints: DefaultGrowthPoints,
		ShrinkPoints: DefaultShrinkPoints,
	}
}

// RulesByName returns the preset called name ("classic" or "extended").
func RulesByName(name string) (Rules, error) {
	switch name {
	case "classic":
		return ClassicRules(), nil
	case "extended", "":
		return ExtendedRules(), nil
	default:
		return Rules{}, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, name)
	}
}

// Has reports whether kind is enabled.
func (r Rules) Has(kind entity.Kind) bool {
	for _, k := range r.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (r Rules) scoring() manager.Scoring {
	return manager.Scoring{
		BaseSpeed:    r.BaseSpeed,
		SpeedUpEvery: r.SpeedUpEvery,
		GrowthPoints: r.GrowthPoints,
		ShrinkPoints: r.ShrinkPoints,
	}
}

// Config is everything needed to build a Game.
type Config struct {
	Grid    types.Grid
	Rules   Rules
	Start   types.Point // zero value means the centre of the grid
	Session string      // empty means a fresh uuid
}

// DefaultConfig is the extended game on the default 640x480 board.
func DefaultConfig() Config {
	grid := types.DefaultGrid()
	return Config{
		Grid:  grid,
		Rules: ExtendedRules(),
		Start: grid.Center(),
	}
}

// Validate checks the config and fills in the start position.
func (c *Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Rules.BaseSpeed <= 0 {
		return fmt.Errorf("%w: base speed must be positive, got %d", ErrInvalidConfig, c.Rules.BaseSpeed)
	}
	if c.Rules.SpeedUpEvery < 0 {
		return fmt.Errorf("%w: speed-up threshold must not be negative", ErrInvalidConfig)
	}
	if !c.Rules.Has(entity.GrowthItem) {
		return fmt.Errorf("%w: the growth item cannot be disabled", ErrInvalidConfig)
	}
	if c.Start == (types.Point{}) {
		c.Start = c.Grid.Center()
	}
	if !c.Grid.Contains(c.Start) {
		return fmt.Errorf("%w: start %v is not a cell of the grid", ErrInvalidConfig, c.Start)
	}
	return nil
}
