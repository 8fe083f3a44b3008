// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns equation text into sparse polynomial terms.
//
// The accepted monomial grammar is deliberately small: "<num>*X^<n>",
// "<num>*X", "X^<n>", "X" and bare numeric constants. Spaces must be
// removed by the caller.
package parse

import (
	"errors"
	"strconv"
	"strings"
)

const indeterminate = "X"

var (
	errNegativeDegree = errors.New("negative exponent")
	errHexCoefficient = errors.New("hexadecimal coefficient")
)

// Monomial parses a single signed term and returns its coefficient and
// degree. An empty term yields (0, 0) so that split artifacts around a
// leading sign are harmless.
func Monomial(term string) (float32, int, error) {
	parts := strings.Split(term, "*")

	switch {
	case len(parts) == 2:
		coef, err := parseCoefficient(parts[0])
		if err != nil {
			return 0, 0, parseNumError(term, err)
		}
		degree, err := parseIndeterminate(parts[1])
		if err != nil {
			return 0, 0, parseNumError(term, err)
		}
		return coef, degree, nil

	case len(parts) == 1 && term == "":
		return 0, 0, nil

	case len(parts) == 1 && strings.Contains(term, indeterminate):
		degree, err := parseIndeterminate(term)
		if err != nil {
			return 0, 0, parseNumError(term, err)
		}
		return 1, degree, nil

	case len(parts) == 1:
		coef, err := parseCoefficient(term)
		if err != nil {
			return 0, 0, parseNumError(term, err)
		}
		return coef, 0, nil
	}

	return 0, 0, parseNumError(term, nil)
}

// parseIndeterminate accepts "X" (degree 1) or "X^<n>" with 0 <= n < 2^31.
func parseIndeterminate(s string) (int, error) {
	base, exp, hasExp := strings.Cut(s, "^")
	if base != indeterminate {
		return 0, errors.New("expected " + indeterminate)
	}
	if !hasExp {
		return 1, nil
	}
	degree, err := strconv.ParseInt(exp, 10, 32)
	if err != nil {
		return 0, err
	}
	if degree < 0 {
		return 0, errNegativeDegree
	}
	return int(degree), nil
}

// parseCoefficient parses a decimal float32. Hex literals are rejected and
// out-of-range values saturate to ±Inf.
func parseCoefficient(s string) (float32, error) {
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, errHexCoefficient
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return float32(f), nil
}
