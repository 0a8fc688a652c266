package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/pilot"
	"gridsnake/stats"
	"gridsnake/ui"

	"golang.org/x/exp/rand"
)

// terminalFrame paces redraws for the terminal; the raylib window waits for
// its own target FPS.
const terminalFrame = 16 * time.Millisecond

type options struct {
	frontend    string
	variant     string
	width       int
	height      int
	cell        int
	seed        uint64
	resultsFile string
	historyFile string
	summaryFile string
	autopilot   bool
	ticks       int
}

func (o options) config() (game.Config, error) {
	rules, err := game.RulesByName(o.variant)
	if err != nil {
		return game.Config{}, err
	}
	return game.Config{
		Grid:  types.NewGrid(o.width, o.height, o.cell),
		Rules: rules,
	}, nil
}

// recorders owns every sink a run writes to.
type recorders struct {
	results *stats.ResultsLog
	history *stats.History
	tally   *stats.Tally
}

func openRecorders(o options) (*recorders, error) {
	r := &recorders{tally: &stats.Tally{}}

	results, err := stats.OpenResultsLog(o.resultsFile)
	if err != nil {
		return nil, err
	}
	r.results = results

	if o.historyFile != "" {
		history, err := stats.OpenHistory(o.historyFile)
		if err != nil {
			results.Close()
			return nil, err
		}
		r.history = history
	}
	return r, nil
}

func (r *recorders) sink() stats.Sink {
	m := stats.Multi{r.results, r.tally}
	if r.history != nil {
		m = append(m, r.history)
	}
	return m
}

// best is the best score on record, or 0 without a history.
func (r *recorders) best() int {
	if r.history == nil {
		return 0
	}
	best, err := r.history.Best()
	if err != nil {
		log.Printf("Failed to load best score: %v", err)
		return 0
	}
	return best
}

func (r *recorders) Close() error {
	err := r.results.Close()
	if r.history != nil {
		err = errors.Join(err, r.history.Close())
	}
	return err
}

func run(o options) error {
	cfg, err := o.config()
	if err != nil {
		return err
	}

	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	rec, err := openRecorders(o)
	if err != nil {
		return err
	}
	defer rec.Close()

	g, err := game.NewGame(cfg, rng, rec.sink())
	if err != nil {
		return err
	}
	log.Printf("Session %s: %s variant, %dx%d cells, seed %d", g.UUID, o.variant, g.Grid.Width, g.Grid.Height, seed)

	switch o.frontend {
	case "headless":
		runHeadless(g, pilot.New(), o.ticks, os.Stdout)
	case "raylib":
		w := ui.NewWindow(g.Grid, "Snake")
		defer w.Close()
		play(g, w, o.autoPilot(), rec.best(), 0)
	case "terminal":
		t, err := ui.NewTerminal(g.Grid)
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		defer t.Close()
		play(g, t, o.autoPilot(), rec.best(), terminalFrame)
	default:
		return fmt.Errorf("unknown frontend %q", o.frontend)
	}

	summary := rec.tally.Summary()
	log.Printf("Session %s finished: %s", g.UUID, summary)
	if o.summaryFile != "" {
		if err := rec.tally.SaveSummary(o.summaryFile); err != nil {
			return err
		}
	}
	return nil
}

func (o options) autoPilot() *pilot.Pilot {
	if !o.autopilot {
		return nil
	}
	return pilot.New()
}

// play runs the interactive loop until the frontend asks to quit. Input is
// read every frame; the game ticks at its own speed. frame > 0 sleeps between
// frames for frontends that do not limit themselves.
func play(g *game.Game, fe ui.Frontend, p *pilot.Pilot, best int, frame time.Duration) {
	pacer := ui.NewPacer(time.Now())
	for {
		dirs, quit := fe.Poll()
		if quit {
			return
		}
		for _, d := range dirs {
			g.RequestDirection(d)
		}

		if pacer.Due(time.Now(), g.Speed()) {
			if p != nil {
				g.RequestDirection(p.Next(g.Snapshot()))
			}
			step(g)
		}

		s := g.Snapshot()
		best = max(best, s.HighScore)
		fe.Draw(ui.NewFrame(s, best, p != nil))

		if frame > 0 {
			time.Sleep(frame)
		}
	}
}

// step ticks once and logs what is worth logging. Errors from a tick never
// stop the game.
func step(g *game.Game) game.Event {
	ev, err := g.Tick()
	if err != nil {
		log.Printf("Tick error: %v", err)
	}
	if ev.GameOver {
		log.Printf("Game over (%s): score %d, speed %d, %d ticks", ev.Collision, ev.Result.Score, ev.Result.Speed, ev.Result.Ticks)
	}
	return ev
}

// runHeadless lets the pilot play ticks ticks as fast as possible and prints
// a one line report to out.
func runHeadless(g *game.Game, p *pilot.Pilot, ticks int, out io.Writer) {
	games := 0
	for i := 0; i < ticks; i++ {
		g.RequestDirection(p.Next(g.Snapshot()))
		if ev := step(g); ev.GameOver {
			games++
		}
	}
	s := g.Snapshot()
	fmt.Fprintf(out, "Session %s: %d ticks, %d games over, high score %d, current score %d\n",
		g.UUID, ticks, games, s.HighScore, s.Score)
}
