package main

import (
	"flag"
	"fmt"
	"os"

	"gridsnake/game/types"
	"gridsnake/stats"
)

func main() {
	var opts options
	flag.StringVar(&opts.frontend, "ui", "raylib", "Frontend: raylib, terminal or headless")
	flag.StringVar(&opts.variant, "variant", "extended", "Rule preset: classic or extended")
	flag.IntVar(&opts.width, "width", types.DefaultScreenWidth, "Board width in pixels")
	flag.IntVar(&opts.height, "height", types.DefaultScreenHeight, "Board height in pixels")
	flag.IntVar(&opts.cell, "cell", types.DefaultCellSize, "Cell size in pixels")
	flag.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 = time based)")
	flag.StringVar(&opts.resultsFile, "results", stats.DefaultResultsFile, "Results log, one line per game over")
	flag.StringVar(&opts.historyFile, "db", stats.DefaultHistoryFile, "SQLite history database (empty to disable)")
	flag.StringVar(&opts.summaryFile, "summary", "", "Write a JSON summary of this run on exit")
	flag.BoolVar(&opts.autopilot, "autopilot", false, "Let the pilot steer")
	flag.IntVar(&opts.ticks, "ticks", 10000, "Ticks to simulate in headless mode")
	debug := flag.Bool("debug", false, "Write logs to logs/"+logFileName)
	flag.Parse()

	logFile := setupLogging(*debug)
	err := run(opts)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridsnake: %v\n", err)
		os.Exit(1)
	}
}
