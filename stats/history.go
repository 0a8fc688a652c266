package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultHistoryFile is the default SQLite database for round history.
const DefaultHistoryFile = "data/history.db"

// History stores every result in SQLite so best and average scores survive
// restarts.
type History struct {
	db *sql.DB
}

// OpenHistory opens (or creates) the history database at path.
func OpenHistory(path string) (*History, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	// One writer; the game loop is the only user.
	db.SetMaxOpenConns(1)

	h := &History{db: db}
	if err := h.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

func (h *History) createTables() error {
	const query = `CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session TEXT NOT NULL,
		score INTEGER NOT NULL,
		speed INTEGER NOT NULL,
		ticks INTEGER NOT NULL,
		cause TEXT NOT NULL,
		ended_at INTEGER NOT NULL
	)`
	if _, err := h.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create results table: %w", err)
	}
	return nil
}

// Record implements Sink.
func (h *History) Record(r Result) error {
	endedAt := r.EndedAt
	if endedAt.IsZero() {
		endedAt = time.Now()
	}
	_, err := h.db.Exec(
		`INSERT INTO results (session, score, speed, ticks, cause, ended_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.Session, r.Score, r.Speed, r.Ticks, r.Cause, endedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}
	return nil
}

// Best returns the highest score ever recorded, or 0.
func (h *History) Best() (int, error) {
	var best int
	if err := h.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM results`).Scan(&best); err != nil {
		return 0, fmt.Errorf("failed to query best score: %w", err)
	}
	return best, nil
}

// Count returns the number of recorded rounds.
func (h *History) Count() (int, error) {
	var n int
	if err := h.db.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return n, nil
}

// Average returns the mean score over all rounds, or 0.
func (h *History) Average() (float64, error) {
	var avg float64
	if err := h.db.QueryRow(`SELECT COALESCE(AVG(score), 0.0) FROM results`).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to query average score: %w", err)
	}
	return avg, nil
}

// Recent returns up to n results, newest first.
func (h *History) Recent(n int) ([]Result, error) {
	rows, err := h.db.Query(
		`SELECT session, score, speed, ticks, cause, ended_at FROM results ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent results: %w", err)
	}
	defer rows.Close()

	results := make([]Result, 0, n)
	for rows.Next() {
		var (
			r       Result
			endedAt int64
		)
		if err := rows.Scan(&r.Session, &r.Score, &r.Speed, &r.Ticks, &r.Cause, &endedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		r.EndedAt = time.Unix(0, endedAt)
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close closes the database.
func (h *History) Close() error {
	return h.db.Close()
}
