// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package division

import (
	"errors"
	"math"
	"strconv"
)

// Fixed user-facing strings.
const (
	ResultPrefix          = "Result: "
	DivisionByZeroMessage = "Error: Division by zero!"
	OverflowMessage       = "Error: Integer overflow!"
)

var (
	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when the quotient is not representable as an int.
	// The only such case is math.MinInt divided by -1.
	ErrOverflow = errors.New("integer overflow")
)

// Divide returns a / b truncated toward zero.
//
// On failure the returned quotient is always 0 and must not be used.
func Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == math.MinInt && b == -1 {
		return 0, ErrOverflow
	}
	return a / b, nil
}

// FormatResult renders a quotient as the success line, without a trailing newline.
func FormatResult(q int) string {
	return ResultPrefix + strconv.Itoa(q)
}

// Message maps a Divide failure to its fixed user-facing line.
// It returns "" for nil and for errors that Divide does not produce.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return DivisionByZeroMessage
	case errors.Is(err, ErrOverflow):
		return OverflowMessage
	default:
		return ""
	}
}
