// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package poly

import (
	"strconv"
	"strings"

	"github.com/pdiddy/computor/pkg/types"
)

// Format renders c as "a * X^0 + b * X^1 ... = 0", in ascending degree,
// skipping zero coefficients. The zero polynomial renders as "0 = 0".
func Format(c types.Coefficients) string {
	var b strings.Builder
	first := true
	for degree, coef := range c {
		if coef == 0 {
			continue
		}
		switch {
		case first:
			b.WriteString(FormatFloat(coef))
		case coef < 0:
			b.WriteString(" - ")
			b.WriteString(FormatFloat(-coef))
		default:
			b.WriteString(" + ")
			b.WriteString(FormatFloat(coef))
		}
		b.WriteString(" * X^")
		b.WriteString(strconv.Itoa(degree))
		first = false
	}
	if first {
		b.WriteString("0")
	}
	b.WriteString(" = 0")
	return b.String()
}

// FormatFloat prints v with the fewest digits that round-trip at float32
// precision, without exponent notation.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
