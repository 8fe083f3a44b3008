// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the computor pipeline.
package types

// Coefficients is a dense polynomial coefficient vector. Index i holds the
// coefficient of X^i. A built vector never ends in a zero entry, so an empty
// vector is the zero polynomial.
type Coefficients []float32

// Degree returns the true degree of the polynomial: len-1, or -1 for the
// zero polynomial.
func (c Coefficients) Degree() int {
	return len(c) - 1
}

// DisplayDegree returns the degree as presented to users. The zero
// polynomial is shown as degree 0.
func (c Coefficients) DisplayDegree() int {
	if d := c.Degree(); d > 0 {
		return d
	}
	return 0
}

// Outcome classifies the solution set of a reduced equation.
type Outcome string

const (
	// OutcomeRoots means Solution.Roots holds one or two real roots.
	OutcomeRoots Outcome = "roots"
	// OutcomeNoSolution means no real number satisfies the equation.
	OutcomeNoSolution Outcome = "no_solution"
	// OutcomeInfinite means every real number satisfies the equation.
	OutcomeInfinite Outcome = "infinite"
	// OutcomeUnsolvable means the degree is above 2.
	OutcomeUnsolvable Outcome = "unsolvable"
)

// Solution is the root set computed from a Coefficients vector.
type Solution struct {
	// Outcome classifies the result.
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Degree is the true degree of the solved polynomial (-1 for zero).
	Degree int `json:"degree" yaml:"degree"`

	// Roots lists the real roots when Outcome is OutcomeRoots. For two
	// roots the (-b + sqrt(d)) root comes first.
	Roots []float32 `json:"roots,omitempty" yaml:"roots,omitempty"`

	// Discriminant is set for degree-2 polynomials only.
	Discriminant *float32 `json:"discriminant,omitempty" yaml:"discriminant,omitempty"`
}

// Result bundles a raw equation with its reduced polynomial and solution.
type Result struct {
	// Equation is the input as given by the caller.
	Equation string `json:"equation" yaml:"equation"`

	// Coefficients is the reduced, trimmed polynomial.
	Coefficients Coefficients `json:"coefficients" yaml:"coefficients"`

	// Reduced is the human-readable reduced form ("... = 0").
	Reduced string `json:"reduced" yaml:"reduced"`

	Solution Solution `json:"solution" yaml:"solution"`
}
