// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch solves a list of equations read from a YAML file and writes
// the results back as YAML.
package batch

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/computor/internal/equation"
	"github.com/pdiddy/computor/pkg/types"
)

// Recorder stores successful solves. *history.Store implements it.
type Recorder interface {
	Record(ctx context.Context, r types.Result) error
}

// Item is the outcome of one equation in a batch.
type Item struct {
	Equation     string             `yaml:"equation"`
	Reduced      string             `yaml:"reduced,omitempty"`
	Coefficients types.Coefficients `yaml:"coefficients,omitempty"`
	Degree       int                `yaml:"degree"`
	Outcome      types.Outcome      `yaml:"outcome,omitempty"`
	Roots        []float32          `yaml:"roots,omitempty"`
	Error        string             `yaml:"error,omitempty"`
}

// Summary holds every item of a batch run and its counts.
type Summary struct {
	Items  []Item `yaml:"items"`
	Solved int    `yaml:"solved"`
	Failed int    `yaml:"failed"`
}

// Total returns the number of equations processed.
func (s Summary) Total() int {
	return s.Solved + s.Failed
}

// HasFailures reports whether any equation failed to parse.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Options controls a batch run.
type Options struct {
	// Recorder, when non-nil, receives every successful result. Record
	// errors are reported on w and do not fail the item.
	Recorder Recorder

	// FailFast stops at the first equation that fails to parse.
	FailFast bool
}

// Run solves each equation in order, printing per-equation status to w and
// a summary line at the end. Parse failures are recorded on their item and
// do not stop the batch unless opts.FailFast is set.
func Run(ctx context.Context, equations []string, opts Options, w io.Writer) Summary {
	var summary Summary

	for _, eq := range equations {
		select {
		case <-ctx.Done():
			fmt.Fprintf(w, "cancelled: %v\n", ctx.Err())
			return summary
		default:
		}

		r, err := equation.Solve(eq)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", eq, err)
			summary.Items = append(summary.Items, Item{Equation: eq, Degree: -1, Error: err.Error()})
			summary.Failed++
			if opts.FailFast {
				break
			}
			continue
		}

		if opts.Recorder != nil {
			if err := opts.Recorder.Record(ctx, r); err != nil {
				fmt.Fprintf(w, "warning: %v\n", err)
			}
		}

		fmt.Fprintf(w, "solved  %s\n", eq)
		summary.Items = append(summary.Items, itemFromResult(r))
		summary.Solved++
	}

	fmt.Fprintf(w, "\nBatch summary: %d solved, %d failed (total: %d)\n",
		summary.Solved, summary.Failed, summary.Total())
	return summary
}

func itemFromResult(r types.Result) Item {
	return Item{
		Equation:     r.Equation,
		Reduced:      r.Reduced,
		Coefficients: r.Coefficients,
		Degree:       r.Solution.Degree,
		Outcome:      r.Solution.Outcome,
		Roots:        r.Solution.Roots,
	}
}
