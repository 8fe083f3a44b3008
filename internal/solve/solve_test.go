// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/computor/pkg/types"
)

const tolerance = 1e-5

func TestSolve_ByDegree(t *testing.T) {
	tests := []struct {
		name        string
		coefs       types.Coefficients
		wantOutcome types.Outcome
		wantDegree  int
		wantRoots   []float32
	}{
		{
			name:        "zero polynomial",
			coefs:       types.Coefficients{},
			wantOutcome: types.OutcomeInfinite,
			wantDegree:  -1,
		},
		{
			name:        "nonzero constant",
			coefs:       types.Coefficients{3},
			wantOutcome: types.OutcomeNoSolution,
			wantDegree:  0,
		},
		{
			name:        "linear",
			coefs:       types.Coefficients{5, 4},
			wantOutcome: types.OutcomeRoots,
			wantDegree:  1,
			wantRoots:   []float32{-1.25},
		},
		{
			name:        "linear without constant",
			coefs:       types.Coefficients{0, 2},
			wantOutcome: types.OutcomeRoots,
			wantDegree:  1,
			wantRoots:   []float32{0},
		},
		{
			name:        "quadratic with two roots",
			coefs:       types.Coefficients{4, 4, -9.3},
			wantOutcome: types.OutcomeRoots,
			wantDegree:  2,
			wantRoots:   []float32{-0.475131, 0.905239},
		},
		{
			name:        "quadratic with a repeated root",
			coefs:       types.Coefficients{1, 2, 1},
			wantOutcome: types.OutcomeRoots,
			wantDegree:  2,
			wantRoots:   []float32{-1},
		},
		{
			name:        "quadratic with negative discriminant",
			coefs:       types.Coefficients{1, 0, 1},
			wantOutcome: types.OutcomeNoSolution,
			wantDegree:  2,
		},
		{
			name:        "cubic",
			coefs:       types.Coefficients{5, -6, 0, -5.6},
			wantOutcome: types.OutcomeUnsolvable,
			wantDegree:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := Solve(tt.coefs)
			assert.Equal(t, tt.wantOutcome, sol.Outcome)
			assert.Equal(t, tt.wantDegree, sol.Degree)
			require.Len(t, sol.Roots, len(tt.wantRoots))
			for i, want := range tt.wantRoots {
				assert.InDelta(t, want, sol.Roots[i], tolerance, "root %d", i)
			}
		})
	}
}

func TestSolve_TwoRootOrder(t *testing.T) {
	// X^2 - 1: (-b + sqrt(d)) / 2a = 1 comes before -1 even though it is larger.
	sol := Solve(types.Coefficients{-1, 0, 1})
	require.Len(t, sol.Roots, 2)
	assert.Equal(t, float32(1), sol.Roots[0])
	assert.Equal(t, float32(-1), sol.Roots[1])

	// With a negative leading coefficient the first root is the smaller one.
	sol = Solve(types.Coefficients{1, 0, -1})
	require.Len(t, sol.Roots, 2)
	assert.Equal(t, float32(-1), sol.Roots[0])
	assert.Equal(t, float32(1), sol.Roots[1])
}

func TestSolve_Discriminant(t *testing.T) {
	sol := Solve(types.Coefficients{1, 2, 1})
	require.NotNil(t, sol.Discriminant)
	assert.Equal(t, float32(0), *sol.Discriminant)

	sol = Solve(types.Coefficients{1, 0, 1})
	require.NotNil(t, sol.Discriminant)
	assert.Equal(t, float32(-4), *sol.Discriminant)

	assert.Nil(t, Solve(types.Coefficients{5, 4}).Discriminant)
	assert.Nil(t, Solve(types.Coefficients{}).Discriminant)
}
