// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/computor/pkg/types"
)

// ListOptions filters history queries.
type ListOptions struct {
	// Outcome restricts results to one outcome class.
	Outcome types.Outcome

	// Degree restricts results to one true degree when non-nil.
	Degree *int

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Entry is one recorded equation.
type Entry struct {
	Equation     string             `json:"equation" yaml:"equation"`
	Reduced      string             `json:"reduced" yaml:"reduced"`
	Coefficients types.Coefficients `json:"coefficients" yaml:"coefficients"`
	Degree       int                `json:"degree" yaml:"degree"`
	Outcome      types.Outcome      `json:"outcome" yaml:"outcome"`
	Roots        []float32          `json:"roots,omitempty" yaml:"roots,omitempty"`
	Discriminant *float32           `json:"discriminant,omitempty" yaml:"discriminant,omitempty"`
	SolvedAt     time.Time          `json:"solved_at" yaml:"solved_at"`
	Count        int                `json:"count" yaml:"count"`
}

// List returns recorded equations, most recently solved first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT equation, reduced, coefficients, degree, outcome, roots,
			discriminant, solved_at, count
		FROM solves WHERE 1=1`)

	if opts.Outcome != "" {
		qb.WriteString(` AND outcome = ?`)
		args = append(args, string(opts.Outcome))
	}
	if opts.Degree != nil {
		qb.WriteString(` AND degree = ?`)
		args = append(args, *opts.Degree)
	}

	qb.WriteString(` ORDER BY solved_at DESC, id DESC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			coefsJSON string
			rootsJSON sql.NullString
			disc      sql.NullFloat64
			solvedAt  string
			outcome   string
		)
		if err := rows.Scan(&e.Equation, &e.Reduced, &coefsJSON, &e.Degree,
			&outcome, &rootsJSON, &disc, &solvedAt, &e.Count); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Outcome = types.Outcome(outcome)

		if err := json.Unmarshal([]byte(coefsJSON), &e.Coefficients); err != nil {
			return nil, fmt.Errorf("decoding coefficients of %q: %w", e.Equation, err)
		}
		if rootsJSON.Valid && rootsJSON.String != "" {
			if err := json.Unmarshal([]byte(rootsJSON.String), &e.Roots); err != nil {
				return nil, fmt.Errorf("decoding roots of %q: %w", e.Equation, err)
			}
		}
		if disc.Valid {
			d := float32(disc.Float64)
			e.Discriminant = &d
		}
		e.SolvedAt, err = time.Parse(time.RFC3339Nano, solvedAt)
		if err != nil {
			return nil, fmt.Errorf("decoding solved_at of %q: %w", e.Equation, err)
		}

		entries = append(entries, e)
	}
	return entries, rows.Err()
}
