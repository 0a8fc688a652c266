package manager

import (
	"fmt"
	"time"

	"gridsnake/game/entity"
	"gridsnake/stats"
)

// Scoring holds the score and speed progression constants.
type Scoring struct {
	BaseSpeed    int // ticks per second after a reset
	SpeedUpEvery int // growth items per speed level; 0 disables speed-up
	GrowthPoints int // points per growth item at base speed
	ShrinkPoints int // points per shrink item at base speed, usually negative
}

// Points scales base points by how far speed is above the base speed.
func (s Scoring) Points(base, speed int) int {
	return base * (1 + (speed - s.BaseSpeed))
}

// StateManager keeps the round state (score, speed level, ticks alive) and
// reports finished rounds to a stats.Sink.
type StateManager struct {
	scoring Scoring
	session string
	sink    stats.Sink
	now     func() time.Time

	score       int
	speedLevel  int
	ticks       int
	gamesPlayed int
	highScore   int
}

func NewStateManager(scoring Scoring, session string, sink stats.Sink) *StateManager {
	if sink == nil {
		sink = stats.Discard
	}
	return &StateManager{
		scoring: scoring,
		session: session,
		sink:    sink,
		now:     time.Now,
	}
}

func (sm *StateManager) Score() int       { return sm.score }
func (sm *StateManager) SpeedLevel() int  { return sm.speedLevel }
func (sm *StateManager) Ticks() int       { return sm.ticks }
func (sm *StateManager) GamesPlayed() int { return sm.gamesPlayed }
func (sm *StateManager) HighScore() int   { return sm.highScore }
func (sm *StateManager) Session() string  { return sm.session }

// Tick counts one completed tick of the current round.
func (sm *StateManager) Tick() {
	sm.ticks++
}

// OnGrowth applies speed progression and scoring after the snake ate a
// growth item. Grow must already have been called.
func (sm *StateManager) OnGrowth(snake *entity.Snake) {
	every := sm.scoring.SpeedUpEvery
	if every > 0 && snake.GrowthCount()%every == 0 {
		sm.speedLevel++
		snake.Speed++
	}
	sm.addScore(sm.scoring.Points(sm.scoring.GrowthPoints, snake.Speed))
}

// OnShrink applies scoring after the snake ate a shrink item.
func (sm *StateManager) OnShrink(snake *entity.Snake) {
	sm.addScore(sm.scoring.Points(sm.scoring.ShrinkPoints, snake.Speed))
}

// GameOver records the finished round and zeroes the round state. The reset
// happens even when the sink fails; the sink error is returned.
func (sm *StateManager) GameOver(snake *entity.Snake, cause CollisionType) (stats.Result, error) {
	result := stats.Result{
		Session: sm.session,
		Score:   sm.score,
		Speed:   snake.Speed,
		Ticks:   sm.ticks,
		Cause:   cause.String(),
		EndedAt: sm.now(),
	}

	err := sm.sink.Record(result)

	sm.gamesPlayed++
	sm.score = 0
	sm.speedLevel = 0
	sm.ticks = 0

	if err != nil {
		return result, fmt.Errorf("failed to record result: %w", err)
	}
	return result, nil
}

func (sm *StateManager) addScore(points int) {
	sm.score += points
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}
