// Package storage records finished games in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// Outcome is the stored result of a finished game.
type Outcome string

const (
	OutcomePlayerOne Outcome = "player_one"
	OutcomePlayerTwo Outcome = "player_two"
	OutcomeDraw      Outcome = "draw"
)

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomePlayerOne, OutcomePlayerTwo, OutcomeDraw:
		return true
	}
	return false
}

// Result is one finished game.
type Result struct {
	ID        int64
	GameID    string // UUID, assigned by SaveResult when empty
	Variant   string
	PlayerOne string
	PlayerTwo string
	Outcome   Outcome
	Moves     int
	Sequence  string // comma-separated 0-based columns
	CreatedAt time.Time
}

// Winner returns the winning player's name, or "" for a draw.
func (r Result) Winner() string {
	switch r.Outcome {
	case OutcomePlayerOne:
		return r.PlayerOne
	case OutcomePlayerTwo:
		return r.PlayerTwo
	}
	return ""
}

// Stats contains aggregated results for one variant.
type Stats struct {
	Variant       string
	Games         int
	PlayerOneWins int
	PlayerTwoWins int
	Draws         int
	AvgMoves      float64
	LastPlayed    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			player_one TEXT NOT NULL,
			player_two TEXT NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('player_one', 'player_two', 'draw')),
			moves INTEGER NOT NULL,
			sequence TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns it with ID, GameID and
// CreatedAt set.
func (s *Store) SaveResult(r Result) (Result, error) {
	if !r.Outcome.Valid() {
		return Result{}, fmt.Errorf("storage: invalid outcome %q", r.Outcome)
	}
	if r.GameID == "" {
		r.GameID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (game_id, variant, player_one, player_two, outcome, moves, sequence)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Variant, r.PlayerOne, r.PlayerTwo, string(r.Outcome), r.Moves, r.Sequence,
	)
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot save result: %w", err)
	}

	r.ID, err = res.LastInsertId()
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	var created any
	if err := s.db.QueryRow("SELECT created_at FROM results WHERE id = ?", r.ID).Scan(&created); err != nil {
		return Result{}, fmt.Errorf("storage: cannot read saved result: %w", err)
	}
	r.CreatedAt = parseTime(created)

	return r, nil
}

const resultColumns = `id, game_id, variant, player_one, player_two, outcome, moves, sequence, created_at`

// ResultByGameID retrieves a result by its game UUID.
// Returns nil without error when no such game was recorded.
func (s *Store) ResultByGameID(gameID string) (*Result, error) {
	row := s.db.QueryRow(`SELECT `+resultColumns+` FROM results WHERE game_id = ?`, gameID)

	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &r, nil
}

// RecentResults retrieves the most recent results across all variants.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return collectResults(rows)
}

// ResultsByVariant retrieves the most recent results for one variant.
func (s *Store) ResultsByVariant(variantID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE variant = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		variantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return collectResults(rows)
}

// ClearResults deletes all results for the given variant, or every result
// when variantID is empty.
func (s *Store) ClearResults(variantID string) error {
	var err error
	if variantID == "" {
		_, err = s.db.Exec("DELETE FROM results")
	} else {
		_, err = s.db.Exec("DELETE FROM results WHERE variant = ?", variantID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

const statsColumns = `variant,
	COUNT(*),
	COALESCE(SUM(outcome = 'player_one'), 0),
	COALESCE(SUM(outcome = 'player_two'), 0),
	COALESCE(SUM(outcome = 'draw'), 0),
	COALESCE(AVG(moves), 0),
	MAX(created_at)`

// Stats retrieves aggregated results for one variant.
// A variant without recorded games yields zero counts.
func (s *Store) Stats(variantID string) (*Stats, error) {
	rows, err := s.db.Query(
		`SELECT `+statsColumns+` FROM results WHERE variant = ? GROUP BY variant`,
		variantID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	all, err := collectStats(rows)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return &Stats{Variant: variantID}, nil
	}
	return &all[0], nil
}

// AllStats retrieves aggregated results for every variant that has been played,
// ordered by variant ID.
func (s *Store) AllStats() ([]Stats, error) {
	rows, err := s.db.Query(
		`SELECT ` + statsColumns + ` FROM results GROUP BY variant ORDER BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	return collectStats(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (Result, error) {
	var r Result
	var outcome string
	var createdAt any
	if err := sc.Scan(
		&r.ID,
		&r.GameID,
		&r.Variant,
		&r.PlayerOne,
		&r.PlayerTwo,
		&outcome,
		&r.Moves,
		&r.Sequence,
		&createdAt,
	); err != nil {
		return Result{}, err
	}
	r.Outcome = Outcome(outcome)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func collectResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

func collectStats(rows *sql.Rows) ([]Stats, error) {
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(
			&st.Variant,
			&st.Games,
			&st.PlayerOneWins,
			&st.PlayerTwoWins,
			&st.Draws,
			&st.AvgMoves,
			&lastPlayed,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and the string form SQLite returns for
// aggregates over DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
