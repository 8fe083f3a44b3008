// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package solve computes the real roots of a reduced polynomial of degree
// at most 2 using closed-form formulas in single precision.
package solve

import (
	"math"

	"github.com/pdiddy/computor/pkg/types"
)

// Solve classifies c by degree and returns its real root set. c must be
// trimmed: empty, or ending in a nonzero coefficient.
func Solve(c types.Coefficients) types.Solution {
	degree := c.Degree()
	sol := types.Solution{Degree: degree}

	switch {
	case degree < 0:
		sol.Outcome = types.OutcomeInfinite
	case degree == 0:
		// c[0] is nonzero after trimming, so "c = 0" has no solution.
		sol.Outcome = types.OutcomeNoSolution
	case degree == 1:
		sol.Outcome = types.OutcomeRoots
		sol.Roots = []float32{-c[0] / c[1]}
	case degree == 2:
		quadratic(c[2], c[1], c[0], &sol)
	default:
		sol.Outcome = types.OutcomeUnsolvable
	}
	return sol
}

// quadratic fills sol for a*X^2 + b*X + c. The discriminant is compared to
// zero exactly. With two roots the (-b + sqrt(d)) root is listed first.
func quadratic(a, b, c float32, sol *types.Solution) {
	d := b*b - 4*a*c
	sol.Discriminant = &d

	switch {
	case d > 0:
		sqrtD := sqrt32(d)
		sol.Outcome = types.OutcomeRoots
		sol.Roots = []float32{
			(-b + sqrtD) / (2 * a),
			(-b - sqrtD) / (2 * a),
		}
	case d == 0:
		sol.Outcome = types.OutcomeRoots
		sol.Roots = []float32{-b / (2 * a)}
	default:
		sol.Outcome = types.OutcomeNoSolution
	}
}

// sqrt32 is correctly rounded: float64 sqrt of a float32 input narrows to
// the float32 square root.
func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
