// Package stats persists the outcome of every finished round.
package stats

import (
	"errors"
	"time"
)

// Result is what gets recorded when a round ends.
type Result struct {
	Session string
	Score   int
	Speed   int
	Ticks   int
	Cause   string
	EndedAt time.Time
}

// Sink receives one Result per game over.
type Sink interface {
	Record(r Result) error
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Record(Result) error { return nil }

// Multi fans a result out to several sinks. Every sink is tried even when an
// earlier one fails; the failures are joined.
type Multi []Sink

func (m Multi) Record(r Result) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Record(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
