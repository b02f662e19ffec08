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

// Package testing provides shared test helpers for the div CLI.
//
// Import it under an alias, since it shadows the standard library name:
//
//	import divtest "github.com/kraklabs/div/internal/testing"
//
// # Quick Start
//
//	func TestRun(t *testing.T) {
//	    divtest.DisableColor(t)
//
//	    stdin := divtest.Stdin(t, "10 2\n")
//	    cfgPath := divtest.WriteConfig(t, "output: json\n")
//	    // ...
//	}
//
// # Helpers
//
//   - DisableColor: turn off ANSI color for the duration of a test
//   - Stdin: an *os.File holding the given input, like a redirected stdin
//   - WriteConfig: write a YAML config file into a temp dir
//   - ReadFile: read a file the code under test produced
package testing
