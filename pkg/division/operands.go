// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package division

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMissingOperand is returned when input ends before both operands are read.
var ErrMissingOperand = stderrors.New("missing operand")

// Operands holds one dividend/divisor pair as read from input.
type Operands struct {
	Dividend int
	Divisor  int
}

// Divide divides Dividend by Divisor. See Divide.
func (o Operands) Divide() (int, error) {
	return Divide(o.Dividend, o.Divisor)
}

// ParseError describes an input token that is not a representable int.
type ParseError struct {
	// Operand is "dividend" or "divisor".
	Operand string
	// Token is empty when the token was too long to buffer.
	Token   string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Operand, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadOperands reads the dividend and then the divisor from r.
//
// Operands may be separated by any whitespace, including newlines. Anything
// after the divisor is left unread or ignored.
func ReadOperands(r io.Reader) (Operands, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var ops Operands
	for _, slot := range []struct {
		name string
		dst  *int
	}{
		{"dividend", &ops.Dividend},
		{"divisor", &ops.Divisor},
	} {
		if !sc.Scan() {
			err := sc.Err()
			if stderrors.Is(err, bufio.ErrTooLong) {
				// No representable int is this long.
				return Operands{}, &ParseError{
					Operand: slot.name,
					Err:     fmt.Errorf("%w: %w", strconv.ErrRange, err),
				}
			}
			if err != nil {
				return Operands{}, fmt.Errorf("read %s: %w", slot.name, err)
			}
			return Operands{}, fmt.Errorf("%w: %s", ErrMissingOperand, slot.name)
		}
		tok := sc.Text()
		n, err := strconv.Atoi(tok)
		if err != nil {
			var numErr *strconv.NumError
			if stderrors.As(err, &numErr) {
				err = numErr.Err
			}
			return Operands{}, &ParseError{Operand: slot.name, Token: tok, Err: err}
		}
		*slot.dst = n
	}
	return ops, nil
}
