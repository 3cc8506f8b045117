// Package storage persists batch resolution results in SQLite so large
// runs can be resumed, listed, and summarized.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Resolution is one stored per-document result.
type Resolution struct {
	Path       string    `json:"path"`
	Journal    string    `json:"journal"`
	Title      string    `json:"title"`
	Candidate  string    `json:"candidate,omitempty"`
	MatchType  string    `json:"match_type"`
	Score      float64   `json:"score"`
	DOI        string    `json:"doi,omitempty"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// Summary aggregates a stored batch.
type Summary struct {
	Total       int            `json:"total"`
	Unknown     int            `json:"unknown"`
	ByMatchType map[string]int `json:"by_match_type"`
}

// DB wraps the SQLite results store.
type DB struct {
	db *sql.DB
}

// Open opens or creates the results database at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS resolutions (
			path TEXT PRIMARY KEY,
			journal TEXT NOT NULL,
			title TEXT,
			candidate TEXT,
			match_type TEXT NOT NULL,
			score REAL NOT NULL,
			doi TEXT,
			resolved_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_resolutions_journal ON resolutions(journal);
	`
	_, err := db.Exec(schema)
	return err
}

// Save upserts one resolution keyed by document path.
func (d *DB) Save(r Resolution) error {
	_, err := d.db.Exec(`
		INSERT INTO resolutions (path, journal, title, candidate, match_type, score, doi, resolved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			journal = excluded.journal,
			title = excluded.title,
			candidate = excluded.candidate,
			match_type = excluded.match_type,
			score = excluded.score,
			doi = excluded.doi,
			resolved_at = excluded.resolved_at`,
		r.Path, r.Journal, r.Title, r.Candidate, r.MatchType, r.Score, r.DOI,
		r.ResolvedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving resolution: %w", err)
	}
	return nil
}

// Get returns the stored resolution for a document path.
func (d *DB) Get(path string) (Resolution, bool, error) {
	row := d.db.QueryRow(`
		SELECT path, journal, title, candidate, match_type, score, doi, resolved_at
		FROM resolutions WHERE path = ?`, path)
	r, err := scanResolution(row)
	if err == sql.ErrNoRows {
		return Resolution{}, false, nil
	}
	if err != nil {
		return Resolution{}, false, fmt.Errorf("reading resolution: %w", err)
	}
	return r, true, nil
}

// List returns all stored resolutions ordered by path.
func (d *DB) List() ([]Resolution, error) {
	rows, err := d.db.Query(`
		SELECT path, journal, title, candidate, match_type, score, doi, resolved_at
		FROM resolutions ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("listing resolutions: %w", err)
	}
	defer rows.Close()

	var out []Resolution
	for rows.Next() {
		r, err := scanResolution(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning resolution: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summarize aggregates the stored results.
func (d *DB) Summarize(unknownJournal string) (Summary, error) {
	s := Summary{ByMatchType: make(map[string]int)}

	rows, err := d.db.Query(`SELECT match_type, COUNT(*) FROM resolutions GROUP BY match_type`)
	if err != nil {
		return s, fmt.Errorf("summarizing resolutions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var mt string
		var n int
		if err := rows.Scan(&mt, &n); err != nil {
			return s, err
		}
		s.ByMatchType[mt] = n
		s.Total += n
	}
	if err := rows.Err(); err != nil {
		return s, err
	}

	if err := d.db.QueryRow(`SELECT COUNT(*) FROM resolutions WHERE journal = ?`,
		unknownJournal).Scan(&s.Unknown); err != nil {
		return s, err
	}
	return s, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResolution(row scanner) (Resolution, error) {
	var r Resolution
	var resolvedAt string
	err := row.Scan(&r.Path, &r.Journal, &r.Title, &r.Candidate, &r.MatchType, &r.Score, &r.DOI, &resolvedAt)
	if err != nil {
		return Resolution{}, err
	}
	if t, perr := time.Parse(time.RFC3339, resolvedAt); perr == nil {
		r.ResolvedAt = t
	}
	return r, nil
}
