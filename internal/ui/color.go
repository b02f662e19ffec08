// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides user interface utilities for the div CLI.
//
// This package offers color output helpers that respect the --no-color flag
// and NO_COLOR environment variable. Colors are automatically disabled when
// the output is not a TTY (e.g., when piped), so scripted callers always see
// the plain result line.
//
// Color usage guidelines:
//   - Red: Division failures
//   - Green: Results
//   - Dim: Prompts and hints
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/kraklabs/div/pkg/division"
)

var (
	// Red is used for division failures.
	Red = color.New(color.FgRed)

	// Green is used for results.
	Green = color.New(color.FgGreen)

	// Dim is used for prompts.
	Dim = color.New(color.Faint)
)

// InitColors configures global color output based on the noColor flag.
//
// Call it once after flags and config are resolved. fatih/color already
// honors NO_COLOR and non-TTY stdout; this only adds the explicit opt-out.
func InitColors(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}

// ResultLine returns the success line for quotient q.
//
// Example output: "Result: 5"
func ResultLine(q int) string {
	return Green.Sprint(division.FormatResult(q))
}

// FailureLine returns msg styled as a handled division failure.
//
// Example output: "Error: Division by zero!"
func FailureLine(msg string) string {
	return Red.Sprint(msg)
}

// Prompt writes an input prompt to w without a trailing newline.
func Prompt(w io.Writer, text string) {
	_, _ = fmt.Fprint(w, Dim.Sprint(text))
}
