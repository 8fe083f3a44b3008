// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"strings"

	"github.com/pdiddy/computor/internal/poly"
)

// Expression parses one side of an equation into a sparse term map.
// Subtraction is rewritten as addition of a negative term before the side
// is split on '+'. Terms sharing a degree are summed. The first malformed
// term aborts the whole side.
func Expression(side string) (poly.Terms, error) {
	signed := strings.ReplaceAll(side, "-", "+-")

	terms := make(poly.Terms)
	for _, tok := range strings.Split(signed, "+") {
		coef, degree, err := Monomial(tok)
		if err != nil {
			return nil, err
		}
		terms.Add(degree, coef)
	}
	return terms, nil
}

// Equation strips all spaces from raw, splits it on '=' and parses both
// sides. It fails with a KindEqualSign error unless there is exactly one
// '='.
func Equation(raw string) (left, right poly.Terms, err error) {
	compact := StripSpaces(raw)

	sides := strings.Split(compact, "=")
	if len(sides) != 2 {
		return nil, nil, equalSignError(compact)
	}

	left, err = Expression(sides[0])
	if err != nil {
		return nil, nil, err
	}
	right, err = Expression(sides[1])
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// StripSpaces removes every space character from s.
func StripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
