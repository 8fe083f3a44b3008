// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package equation

import (
	"fmt"
	"io"

	"github.com/pdiddy/computor/internal/poly"
	"github.com/pdiddy/computor/pkg/types"
)

// WriteReport prints the reduced form, the degree and the solution of r in
// the computor text format.
func WriteReport(w io.Writer, r types.Result) error {
	if _, err := fmt.Fprintf(w, "Reduced form: %s\n", r.Reduced); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Polynomial degree: %d\n", r.Coefficients.DisplayDegree()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, Describe(r.Solution))
	return err
}

// Describe returns the human sentence for sol, roots included.
func Describe(sol types.Solution) string {
	switch sol.Outcome {
	case types.OutcomeInfinite:
		return "Each real number is a solution."
	case types.OutcomeUnsolvable:
		return "The polynomial degree is strictly greater than 2, I can't solve."
	}

	if sol.Degree == 2 {
		switch {
		case sol.Outcome == types.OutcomeNoSolution:
			return "Discriminant is strictly negative, there is no real solutions."
		case len(sol.Roots) == 1:
			return "Discriminant is strictly zero, there is only one solution:\n" + poly.FormatFloat(sol.Roots[0])
		default:
			return "Discriminant is strictly positive, the two solutions are:\n" +
				poly.FormatFloat(sol.Roots[0]) + "\n" + poly.FormatFloat(sol.Roots[1])
		}
	}

	if sol.Outcome == types.OutcomeRoots && len(sol.Roots) > 0 {
		return "The solution is:\n" + poly.FormatFloat(sol.Roots[0])
	}
	return "There is no solution."
}
