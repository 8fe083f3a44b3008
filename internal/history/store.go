// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists solved equations in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/computor/internal/parse"
	"github.com/pdiddy/computor/pkg/types"
)

const (
	dbFile            = "history.db"
	defaultMaxResults = 20
)

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int

	// now is overridden in tests.
	now func() time.Time
}

// NewStore opens or creates the history database at cfg.Dir/history.db
// and creates the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		dir:        cfg.Dir,
		maxResults: maxResults,
		now:        time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the database.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			equation TEXT NOT NULL UNIQUE,
			reduced TEXT NOT NULL,
			coefficients TEXT NOT NULL,
			degree INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			roots TEXT,
			discriminant REAL,
			solved_at TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 1
		)`,
		`CREATE INDEX IF NOT EXISTS idx_solves_outcome ON solves(outcome)`,
		`CREATE INDEX IF NOT EXISTS idx_solves_degree ON solves(degree)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores r. Equations are keyed by their space-free form, so solving
// the same equation again bumps its count and timestamp instead of adding a
// row.
func (s *Store) Record(ctx context.Context, r types.Result) error {
	coefsJSON, err := json.Marshal(r.Coefficients)
	if err != nil {
		return fmt.Errorf("marshaling coefficients: %w", err)
	}
	rootsJSON, err := json.Marshal(r.Solution.Roots)
	if err != nil {
		return fmt.Errorf("marshaling roots: %w", err)
	}

	var disc sql.NullFloat64
	if r.Solution.Discriminant != nil {
		disc = sql.NullFloat64{Float64: float64(*r.Solution.Discriminant), Valid: true}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO solves (equation, reduced, coefficients, degree, outcome, roots, discriminant, solved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(equation) DO UPDATE SET
			reduced=excluded.reduced, coefficients=excluded.coefficients,
			degree=excluded.degree, outcome=excluded.outcome, roots=excluded.roots,
			discriminant=excluded.discriminant, solved_at=excluded.solved_at,
			count=solves.count + 1`,
		parse.StripSpaces(r.Equation), r.Reduced, string(coefsJSON),
		r.Solution.Degree, string(r.Solution.Outcome), string(rootsJSON), disc,
		s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %q: %w", r.Equation, err)
	}
	return nil
}
