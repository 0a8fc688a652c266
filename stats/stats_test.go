package stats

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResultsLogAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "results.txt")

	l, err := OpenResultsLog(path)
	if err != nil {
		t.Fatalf("OpenResultsLog: %v", err)
	}
	if err := l.Record(Result{Score: 30, Speed: 12}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := l.Record(Result{Score: -10, Speed: 10}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening must append, not truncate.
	l, err = OpenResultsLog(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := l.Record(Result{Score: 0, Speed: 10}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "Score: 30, Speed: 12\nScore: -10, Speed: 10\nScore: 0, Speed: 10\n"
	if string(data) != want {
		t.Fatalf("log contents = %q, want %q", data, want)
	}
}

func TestResultsLogClosed(t *testing.T) {
	l, err := OpenResultsLog(filepath.Join(t.TempDir(), "results.txt"))
	if err != nil {
		t.Fatalf("OpenResultsLog: %v", err)
	}
	l.Close()
	if err := l.Record(Result{}); err == nil {
		t.Fatal("expected an error writing to a closed log")
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
}

func TestHistory(t *testing.T) {
	h, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	defer h.Close()

	if best, err := h.Best(); err != nil || best != 0 {
		t.Fatalf("empty Best() = %d, %v", best, err)
	}

	now := time.Now()
	results := []Result{
		{Session: "a", Score: 10, Speed: 10, Ticks: 40, Cause: "self", EndedAt: now},
		{Session: "a", Score: 50, Speed: 11, Ticks: 90, Cause: "obstacle", EndedAt: now.Add(time.Second)},
		{Session: "b", Score: -10, Speed: 10, Ticks: 5, Cause: "shrink", EndedAt: now.Add(2 * time.Second)},
	}
	for _, r := range results {
		if err := h.Record(r); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	if best, _ := h.Best(); best != 50 {
		t.Errorf("Best() = %d, want 50", best)
	}
	if n, _ := h.Count(); n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}
	if avg, _ := h.Average(); avg < 16.66 || avg > 16.67 {
		t.Errorf("Average() = %f, want ~16.67", avg)
	}

	recent, err := h.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 || recent[0].Session != "b" || recent[1].Score != 50 {
		t.Fatalf("Recent(2) = %+v", recent)
	}
	if !recent[0].EndedAt.Equal(results[2].EndedAt) {
		t.Errorf("EndedAt round trip: got %v want %v", recent[0].EndedAt, results[2].EndedAt)
	}
}

type failingSink struct{ err error }

func (f failingSink) Record(Result) error { return f.err }

type countingSink struct{ n int }

func (c *countingSink) Record(Result) error {
	c.n++
	return nil
}

func TestMultiTriesEverySink(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	counter := &countingSink{}

	m := Multi{failingSink{errA}, counter, nil, failingSink{errB}, Discard}
	err := m.Record(Result{Score: 1})

	if counter.n != 1 {
		t.Errorf("healthy sink called %d times, want 1", counter.n)
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("expected both errors joined, got %v", err)
	}
	if err := (Multi{counter}).Record(Result{}); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestTallySummary(t *testing.T) {
	var tally Tally
	if s := tally.Summary(); s.GamesPlayed != 0 || s.AverageScore != 0 {
		t.Fatalf("empty summary = %+v", s)
	}

	for _, r := range []Result{
		{Score: 30, Speed: 10, Ticks: 100},
		{Score: -10, Speed: 10, Ticks: 20},
		{Score: 70, Speed: 11, Ticks: 300},
		{Score: 10, Speed: 10, Ticks: 60},
	} {
		tally.Record(r)
	}

	s := tally.Summary()
	if s.GamesPlayed != 4 {
		t.Errorf("GamesPlayed = %d, want 4", s.GamesPlayed)
	}
	if s.AverageScore != 25 {
		t.Errorf("AverageScore = %v, want 25", s.AverageScore)
	}
	if s.MedianScore != 20 {
		t.Errorf("MedianScore = %v, want 20", s.MedianScore)
	}
	if s.MaxScore != 70 || s.MinScore != -10 {
		t.Errorf("Max/Min = %d/%d, want 70/-10", s.MaxScore, s.MinScore)
	}
	if s.AverageTicks != 120 {
		t.Errorf("AverageTicks = %v, want 120", s.AverageTicks)
	}
	if s.MaxSpeed != 11 {
		t.Errorf("MaxSpeed = %d, want 11", s.MaxSpeed)
	}
}

func TestTallySaveSummary(t *testing.T) {
	var tally Tally
	tally.Record(Result{Score: 40, Speed: 10, Ticks: 50})

	path := filepath.Join(t.TempDir(), "out", "summary.json")
	if err := tally.SaveSummary(path); err != nil {
		t.Fatalf("SaveSummary: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var got Summary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != tally.Summary() {
		t.Errorf("saved summary = %+v, want %+v", got, tally.Summary())
	}
}
