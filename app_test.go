package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridsnake/game"
	"gridsnake/pilot"
	"gridsnake/stats"

	"golang.org/x/exp/rand"
)

func testOptions(t *testing.T) options {
	dir := t.TempDir()
	return options{
		frontend:    "headless",
		variant:     "extended",
		width:       200,
		height:      200,
		cell:        20,
		seed:        7,
		resultsFile: filepath.Join(dir, "results.txt"),
		historyFile: filepath.Join(dir, "history.db"),
		summaryFile: filepath.Join(dir, "summary.json"),
		ticks:       3000,
	}
}

func TestOptionsConfig(t *testing.T) {
	o := testOptions(t)
	cfg, err := o.config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Grid.Width != 10 || cfg.Grid.Height != 10 {
		t.Errorf("grid = %dx%d, want 10x10", cfg.Grid.Width, cfg.Grid.Height)
	}

	o.variant = "deluxe"
	if _, err := o.config(); !errors.Is(err, game.ErrInvalidConfig) {
		t.Errorf("unknown variant error = %v, want ErrInvalidConfig", err)
	}
}

func TestRunUnknownFrontend(t *testing.T) {
	o := testOptions(t)
	o.frontend = "vr"
	if err := run(o); err == nil {
		t.Fatal("expected an error for an unknown frontend")
	}
}

func TestRunHeadless(t *testing.T) {
	o := testOptions(t)
	if err := run(o); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(o.resultsFile)
	if err != nil {
		t.Fatalf("results log: %v", err)
	}
	lines := 0
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "Score: ") || !strings.Contains(line, ", Speed: ") {
			t.Errorf("malformed results line %q", line)
		}
		lines++
	}

	raw, err := os.ReadFile(o.summaryFile)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	var summary stats.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		t.Fatalf("summary json: %v", err)
	}
	if summary.GamesPlayed != lines {
		t.Errorf("summary has %d games, results log has %d lines", summary.GamesPlayed, lines)
	}

	history, err := stats.OpenHistory(o.historyFile)
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	defer history.Close()
	count, err := history.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != lines {
		t.Errorf("history has %d rows, results log has %d lines", count, lines)
	}
}

func TestRunHeadlessReport(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Session = "report"
	g, err := game.NewGame(cfg, rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	var out bytes.Buffer
	runHeadless(g, pilot.New(), 200, &out)

	if got := g.Snapshot().Ticks; got == 0 && g.Snapshot().GamesPlayed == 0 {
		t.Error("headless run did not advance the game")
	}
	if !strings.HasPrefix(out.String(), "Session report: 200 ticks") {
		t.Errorf("report = %q", out.String())
	}
}
