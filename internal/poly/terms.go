// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package poly reduces parsed equation sides to a dense coefficient vector.
package poly

import (
	"sort"

	"github.com/pdiddy/computor/pkg/types"
)

// Terms maps a degree to its coefficient. Each degree appears at most once;
// degrees may be sparse and coefficients may be zero.
type Terms map[int]float32

// Add sums coef into the entry for degree, creating it if absent.
func (t Terms) Add(degree int, coef float32) {
	t[degree] += coef
}

// Degrees returns the keys of t in ascending order.
func (t Terms) Degrees() []int {
	keys := make([]int, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Clone returns an independent copy of t.
func (t Terms) Clone() Terms {
	out := make(Terms, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Reduce returns left - right, the equation moved to "P(X) = 0" form.
// Neither argument is modified.
func Reduce(left, right Terms) Terms {
	out := left.Clone()
	for degree, coef := range right {
		out[degree] -= coef
	}
	return out
}

// Build converts t to a dense vector indexed by degree, filling missing
// degrees with zero, and trims trailing zero coefficients.
func Build(t Terms) types.Coefficients {
	var vec types.Coefficients
	for _, degree := range t.Degrees() {
		for len(vec) < degree {
			vec = append(vec, 0)
		}
		vec = append(vec, t[degree])
	}
	return Trim(vec)
}

// Trim drops trailing zero coefficients so that the result is empty or ends
// in a nonzero value. Trimming a trimmed vector returns it unchanged.
func Trim(c types.Coefficients) types.Coefficients {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	return c[:n]
}
