// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"errors"
	"fmt"
)

// Kind identifies which class of malformation stopped a parse.
type Kind int

const (
	// KindEqualSign means the equation does not have exactly one '='.
	KindEqualSign Kind = iota + 1
	// KindParseNum means a monomial, coefficient or exponent is malformed.
	KindParseNum
)

func (k Kind) String() string {
	switch k {
	case KindEqualSign:
		return "equal sign error"
	case KindParseNum:
		return "parse number error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors for errors.Is matching against *Error values.
var (
	ErrEqualSign = errors.New("equation must contain exactly one '='")
	ErrParseNum  = errors.New("malformed monomial")
)

// Error is the failure value returned by every parse operation.
type Error struct {
	Kind Kind

	// Input is the equation or term that failed, after space removal.
	Input string

	// Err is the underlying strconv error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.sentinel().Error()
	if e.Input != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is the sentinel matching e.Kind.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) sentinel() error {
	if e.Kind == KindEqualSign {
		return ErrEqualSign
	}
	return ErrParseNum
}

func equalSignError(input string) error {
	return &Error{Kind: KindEqualSign, Input: input}
}

func parseNumError(input string, err error) error {
	return &Error{Kind: KindParseNum, Input: input, Err: err}
}
