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

package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
)

// DisableColor turns off fatih/color output until the test finishes.
//
// The previous global setting is restored in t.Cleanup, so tests that use
// this helper must not call t.Parallel.
func DisableColor(t *testing.T) {
	t.Helper()

	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = original
	})
}

// Stdin returns a file positioned at the start of input.
//
// It behaves like a shell redirect (div < file): a real *os.File that is not
// a terminal. The file is closed when the test finishes.
//
// Example:
//
//	stdin := divtest.Stdin(t, "7 2\n")
func Stdin(t *testing.T, input string) *os.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(path, []byte(input), 0o600); err != nil {
		t.Fatalf("failed to write stdin fixture: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open stdin fixture: %v", err)
	}
	t.Cleanup(func() {
		_ = f.Close()
	})
	return f
}

// WriteConfig writes content as a YAML config file and returns its path.
//
// Example:
//
//	path := divtest.WriteConfig(t, "output: json\nno_color: true\n")
func WriteConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "div.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// ReadFile returns the contents of path, failing the test if it is unreadable.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
