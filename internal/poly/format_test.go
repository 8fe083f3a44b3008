// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/computor/pkg/types"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		coefs types.Coefficients
		want  string
	}{
		{
			name:  "quadratic",
			coefs: types.Coefficients{4, 4, -9.3},
			want:  "4 * X^0 + 4 * X^1 - 9.3 * X^2 = 0",
		},
		{
			name:  "zero coefficient skipped",
			coefs: types.Coefficients{5, -6, 0, -5.6},
			want:  "5 * X^0 - 6 * X^1 - 5.6 * X^3 = 0",
		},
		{
			name:  "leading zeros skipped",
			coefs: types.Coefficients{0, 0, 3},
			want:  "3 * X^2 = 0",
		},
		{
			name:  "negative first term keeps its sign",
			coefs: types.Coefficients{-2, 1},
			want:  "-2 * X^0 + 1 * X^1 = 0",
		},
		{
			name:  "zero polynomial",
			coefs: types.Coefficients{},
			want:  "0 = 0",
		},
		{
			name:  "large values without exponent",
			coefs: types.Coefficients{1000000},
			want:  "1000000 * X^0 = 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.coefs))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "-1.25", FormatFloat(-1.25))
	assert.Equal(t, "9.3", FormatFloat(9.3))
	assert.Equal(t, "0", FormatFloat(0))
}
