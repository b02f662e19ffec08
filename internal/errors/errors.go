// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package errors provides structured error handling for the div CLI.
//
// This package defines UserError, a type that carries structured error information
// including what went wrong, why it happened, and how to fix it. It also defines
// consistent exit codes for different error categories.
//
// Division failures (a zero divisor, overflow) are not UserErrors: they are
// handled outcomes printed on stdout with exit code 0. UserError covers
// everything that prevents a division from being attempted at all.
//
// # Usage Example
//
//	err := errors.NewInputError(
//	    "Cannot read divisor",
//	    `"2.5" is not an integer`,
//	    "Provide two integers, for example: echo '10 2' | div",
//	    parseErr,
//	)
//	os.Exit(errors.Report(os.Stderr, err, false))
//
// # Formatted Output
//
// The Format() method provides colored terminal output:
//
//	Error: Cannot read divisor
//	Cause: "2.5" is not an integer
//	Fix:   Provide two integers, for example: echo '10 2' | div
//
// For JSON output:
//
//	{
//	  "error": "Cannot read divisor",
//	  "cause": "\"2.5\" is not an integer",
//	  "fix": "Provide two integers, for example: echo '10 2' | div",
//	  "exit_code": 4
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Successful execution, including handled division failures
//   - ExitConfig (1): Configuration errors (missing/invalid config)
//   - ExitInput (4): Invalid user input (bad operands, unknown flags)
//   - ExitInternal (10): Internal errors (bugs, unexpected I/O failures)
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Exit codes for different error categories.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConfig indicates configuration errors (missing/invalid config files).
	ExitConfig = 1

	// ExitInput indicates invalid user input (bad operands, validation errors).
	ExitInput = 4

	// ExitInternal indicates internal errors (bugs, unexpected panics).
	// Exit code 10 signals "this is a bug that should be reported".
	ExitInternal = 10
)

// UserError represents an error with structured context for end users.
//
// It provides three levels of information:
//   - Message: What went wrong (user-facing error description)
//   - Cause: Why it happened (diagnostic information)
//   - Fix: How to fix it (actionable suggestion)
type UserError struct {
	// Message describes what went wrong in user-friendly language.
	Message string

	// Cause explains why the error occurred.
	Cause string

	// Fix provides an actionable suggestion on how to resolve the error.
	Fix string

	// ExitCode is the process exit code for this error.
	ExitCode int

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error with exit code ExitConfig.
func NewConfigError(msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitConfig,
		Err:      err,
	}
}

// NewInputError creates an input validation error with exit code ExitInput.
//
// Use this for operands that cannot be read or parsed and for bad
// command-line arguments. err may be nil.
func NewInputError(msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInput,
		Err:      err,
	}
}

// NewInternalError creates an internal error with exit code ExitInternal.
func NewInternalError(msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInternal,
		Err:      err,
	}
}

// Color definitions for error formatting.
var (
	colorError = color.New(color.FgRed, color.Bold)
	colorCause = color.New(color.FgYellow)
	colorFix   = color.New(color.FgGreen)
)

// Format returns a formatted error message for terminal display.
//
// Empty Cause or Fix fields are omitted. Color output respects NO_COLOR and
// can be disabled with noColor.
//
// Note: This method temporarily modifies the global color.NoColor state
// and restores it after formatting.
func (e *UserError) Format(noColor bool) string {
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()

	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	var out strings.Builder
	out.WriteString(colorError.Sprint("Error: "))
	out.WriteString(e.Message)
	out.WriteString("\n")

	if e.Cause != "" {
		out.WriteString(colorCause.Sprint("Cause: "))
		out.WriteString(e.Cause)
		out.WriteString("\n")
	}

	if e.Fix != "" {
		out.WriteString(colorFix.Sprint("Fix:   "))
		out.WriteString(e.Fix)
		out.WriteString("\n")
	}

	return out.String()
}

// ErrorJSON represents error information in JSON format.
type ErrorJSON struct {
	Error    string `json:"error"`
	Cause    string `json:"cause,omitempty"`
	Fix      string `json:"fix,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// ToJSON converts the UserError to a JSON-serializable structure.
func (e *UserError) ToJSON() ErrorJSON {
	return ErrorJSON{
		Error:    e.Message,
		Cause:    e.Cause,
		Fix:      e.Fix,
		ExitCode: e.ExitCode,
	}
}

// Report writes err to w and returns the exit code the process should use.
//
// A *UserError anywhere in the chain is rendered with Format (or as JSON when
// jsonOutput is set). Any other error is printed as a plain line and mapped
// to ExitInternal. A nil error writes nothing and returns ExitSuccess.
func Report(w io.Writer, err error, jsonOutput bool) int {
	if err == nil {
		return ExitSuccess
	}

	var ue *UserError
	if stderrors.As(err, &ue) {
		if jsonOutput {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			// The exit code is what matters; a failed encode has nowhere to go.
			_ = enc.Encode(ue.ToJSON())
		} else {
			fmt.Fprint(w, ue.Format(false))
		}
		return ue.ExitCode
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	return ExitInternal
}
