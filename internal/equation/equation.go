// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package equation is the entry point of the computor pipeline: it parses a
// raw equation, reduces it to "P(X) = 0", and solves it.
package equation

import (
	"github.com/pdiddy/computor/internal/parse"
	"github.com/pdiddy/computor/internal/poly"
	"github.com/pdiddy/computor/internal/solve"
	"github.com/pdiddy/computor/pkg/types"
)

// Reduce parses raw and returns its reduced, trimmed coefficient vector.
// Errors are *parse.Error values matching parse.ErrEqualSign or
// parse.ErrParseNum.
func Reduce(raw string) (types.Coefficients, error) {
	left, right, err := parse.Equation(raw)
	if err != nil {
		return nil, err
	}
	return poly.Build(poly.Reduce(left, right)), nil
}

// Solve parses, reduces and solves raw. No partial result is returned on
// error.
func Solve(raw string) (types.Result, error) {
	coefs, err := Reduce(raw)
	if err != nil {
		return types.Result{}, err
	}
	return types.Result{
		Equation:     raw,
		Coefficients: coefs,
		Reduced:      poly.Format(coefs),
		Solution:     solve.Solve(coefs),
	}, nil
}
