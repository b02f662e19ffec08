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

// Package division implements integer division with explicit failure kinds.
//
// Division never panics. A zero divisor is reported as ErrDivisionByZero and
// the single overflowing case (math.MinInt / -1) as ErrOverflow, so callers
// branch on the returned error instead of recovering from a runtime fault.
//
// # Quick Start
//
//	ops, err := division.ReadOperands(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	q, err := ops.Divide()
//	if err != nil {
//	    fmt.Println(division.Message(err)) // Error: Division by zero!
//	    return
//	}
//	fmt.Println(division.FormatResult(q)) // Result: 5
//
// # Semantics
//
// Quotients are truncated toward zero, the same as Go's native / operator:
//
//	Divide(7, 2)   // 3
//	Divide(-7, 2)  // -3 (not -4)
//	Divide(5, 0)   // ErrDivisionByZero
//
// Operands are Go ints, so their width follows the platform word size.
package division
