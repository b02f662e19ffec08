// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package division

import (
	"bufio"
	"errors"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOperands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Operands
	}{
		{name: "space separated", input: "10 2\n", want: Operands{Dividend: 10, Divisor: 2}},
		{name: "newline separated", input: "7\n2\n", want: Operands{Dividend: 7, Divisor: 2}},
		{name: "no trailing newline", input: "-7 2", want: Operands{Dividend: -7, Divisor: 2}},
		{name: "extra whitespace", input: "  \t5 \n\n 0  ", want: Operands{Dividend: 5, Divisor: 0}},
		{name: "explicit plus sign", input: "+8 +4", want: Operands{Dividend: 8, Divisor: 4}},
		{name: "trailing tokens ignored", input: "0 5 99 junk", want: Operands{Dividend: 0, Divisor: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadOperands(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadOperands_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     error
		wantOperand string
		wantToken   string
	}{
		{name: "empty input", input: "", wantErr: ErrMissingOperand},
		{name: "only whitespace", input: " \n\t", wantErr: ErrMissingOperand},
		{name: "missing divisor", input: "10\n", wantErr: ErrMissingOperand},
		{name: "non-integer dividend", input: "abc 2", wantErr: strconv.ErrSyntax, wantOperand: "dividend", wantToken: "abc"},
		{name: "decimal divisor", input: "10 2.5", wantErr: strconv.ErrSyntax, wantOperand: "divisor", wantToken: "2.5"},
		{name: "out of range dividend", input: "99999999999999999999999 1", wantErr: strconv.ErrRange, wantOperand: "dividend", wantToken: "99999999999999999999999"},
		{name: "dividend longer than scanner buffer", input: strings.Repeat("1", 70000) + " 2", wantErr: strconv.ErrRange, wantOperand: "dividend"},
		{name: "divisor longer than scanner buffer", input: "2 " + strings.Repeat("9", bufio.MaxScanTokenSize+1), wantErr: bufio.ErrTooLong, wantOperand: "divisor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadOperands(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Operands{}, got)

			if tt.wantOperand != "" {
				var pe *ParseError
				require.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
				assert.Equal(t, tt.wantOperand, pe.Operand)
				assert.Equal(t, tt.wantToken, pe.Token)
				if tt.wantToken == "" {
					assert.ErrorIs(t, pe, strconv.ErrRange, "an unbuffered token is too long to be an int")
				}
			}
		})
	}
}

func TestReadOperands_MissingOperandNamesSlot(t *testing.T) {
	_, err := ReadOperands(strings.NewReader("10"))
	require.ErrorIs(t, err, ErrMissingOperand)
	assert.Contains(t, err.Error(), "divisor")
}

func TestReadOperands_ReaderFailure(t *testing.T) {
	readErr := errors.New("disk on fire")
	_, err := ReadOperands(iotest.ErrReader(readErr))
	require.ErrorIs(t, err, readErr)
	assert.NotErrorIs(t, err, ErrMissingOperand)
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Operand: "divisor", Token: "x", Err: strconv.ErrSyntax}
	assert.Equal(t, `invalid divisor "x": invalid syntax`, err.Error())
}
