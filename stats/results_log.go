package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultResultsFile is where the append-only results log lives by default.
const DefaultResultsFile = "data/results.txt"

// ResultsLog appends one "Score: <score>, Speed: <speed>" line per result.
type ResultsLog struct {
	path  string
	file  *os.File
	mutex sync.Mutex
}

// OpenResultsLog opens path for appending, creating it and its directory.
func OpenResultsLog(path string) (*ResultsLog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create results directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open results log: %w", err)
	}
	return &ResultsLog{path: path, file: f}, nil
}

// Path returns the file being written.
func (l *ResultsLog) Path() string {
	return l.path
}

// Record implements Sink.
func (l *ResultsLog) Record(r Result) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.file == nil {
		return fmt.Errorf("results log %s is closed", l.path)
	}
	if _, err := fmt.Fprintf(l.file, "Score: %d, Speed: %d\n", r.Score, r.Speed); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (l *ResultsLog) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
