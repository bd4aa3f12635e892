// This file is part of GopherZ64.
//
// GopherZ64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherZ64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherZ64.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like the Errorf() function in
// the fmt package, and returns an error.
//
// The Is() function checks whether an error was created by Errorf() with a
// specific pattern. Packages in this project export the pattern strings that
// callers may want to test against. For example:
//
//	_, err := r.ReadRecord(1000)
//	if curated.Is(err, rom.RecordOutOfRange) {
//		// handle out of range index
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, rather than at the outermost level only.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We can think of the difference between curated and uncurated errors as
// being the difference between 'expected' and 'unexpected' errors.
package curated
