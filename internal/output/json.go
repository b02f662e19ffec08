// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package output provides machine-readable output for the div CLI.
//
// It complements the ui package (human-readable lines) and the errors
// package (UserError rendering). With --json, every run writes exactly one
// compact JSON object on stdout:
//
//	{"dividend":10,"divisor":2,"quotient":5}
//	{"dividend":5,"divisor":0,"error":"division_by_zero","message":"Error: Division by zero!"}
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kraklabs/div/pkg/division"
)

// Error codes reported in Outcome.Error.
const (
	CodeDivisionByZero = "division_by_zero"
	CodeOverflow       = "overflow"
)

// Outcome is the JSON form of one division.
//
// Exactly one of Quotient or Error is set.
type Outcome struct {
	Dividend int    `json:"dividend"`
	Divisor  int    `json:"divisor"`
	Quotient *int   `json:"quotient,omitempty"`
	Error    string `json:"error,omitempty"`
	Message  string `json:"message,omitempty"`
}

// NewOutcome builds the Outcome for ops given the result of ops.Divide().
func NewOutcome(ops division.Operands, q int, err error) Outcome {
	out := Outcome{Dividend: ops.Dividend, Divisor: ops.Divisor}
	if err == nil {
		out.Quotient = &q
		return out
	}

	switch {
	case errors.Is(err, division.ErrDivisionByZero):
		out.Error = CodeDivisionByZero
	case errors.Is(err, division.ErrOverflow):
		out.Error = CodeOverflow
	default:
		out.Error = err.Error()
	}
	out.Message = division.Message(err)
	return out
}

// JSONCompactTo writes data as compact, newline-terminated JSON to w.
func JSONCompactTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}
