package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Tally keeps the results of the current process in memory and summarises
// them. It is a Sink, so it can sit next to the persistent ones in a Multi.
type Tally struct {
	results []Result
	mutex   sync.RWMutex
}

// Summary is the aggregate of a Tally at one point in time.
type Summary struct {
	GamesPlayed  int     `json:"gamesPlayed"`
	AverageScore float64 `json:"averageScore"`
	MedianScore  float64 `json:"medianScore"`
	MaxScore     int     `json:"maxScore"`
	MinScore     int     `json:"minScore"`
	AverageTicks float64 `json:"averageTicks"`
	MaxSpeed     int     `json:"maxSpeed"`
}

func (t *Tally) Record(r Result) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.results = append(t.results, r)
	return nil
}

// Summary computes the aggregate over every recorded result.
func (t *Tally) Summary() Summary {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	s := Summary{GamesPlayed: len(t.results)}
	if s.GamesPlayed == 0 {
		return s
	}

	scores := make([]int, 0, len(t.results))
	var totalScore, totalTicks int
	s.MaxScore = t.results[0].Score
	s.MinScore = t.results[0].Score
	for _, r := range t.results {
		scores = append(scores, r.Score)
		totalScore += r.Score
		totalTicks += r.Ticks
		s.MaxScore = max(s.MaxScore, r.Score)
		s.MinScore = min(s.MinScore, r.Score)
		s.MaxSpeed = max(s.MaxSpeed, r.Speed)
	}
	s.AverageScore = float64(totalScore) / float64(len(scores))
	s.AverageTicks = float64(totalTicks) / float64(len(scores))

	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		s.MedianScore = float64(scores[mid-1]+scores[mid]) / 2
	} else {
		s.MedianScore = float64(scores[mid])
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("games: %d, avg: %.2f, median: %.1f, max: %d, min: %d, avg ticks: %.1f, max speed: %d",
		s.GamesPlayed, s.AverageScore, s.MedianScore, s.MaxScore, s.MinScore, s.AverageTicks, s.MaxSpeed)
}

// SaveSummary writes the current summary to path as JSON.
func (t *Tally) SaveSummary(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(t.Summary(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}
	return nil
}
