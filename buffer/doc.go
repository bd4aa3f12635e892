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

// Package buffer is the byte-level access layer used by every other package
// that touches ROM or patch data. A Buffer wraps a fixed-size byte slice and
// offers both cursor-relative and absolute-offset access in big-endian (the
// N64 native ordering) or little-endian forms.
//
// Keeping both access forms on the same type keeps call sites unambiguous: a
// function with an At suffix never moves the cursor; everything else
// advances it by the size of the access.
package buffer
