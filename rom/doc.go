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

// Package rom is the DMA-table model of a Zelda64 ROM image.
//
// A ROM arrives in one of three byte orderings, identified by its first
// byte. Creating a Rom normalizes the image to big-endian in place and then
// locates the DMA table: a contiguous array of 16-byte records mapping each
// file's virtual (decompressed) address range to its physical location on
// the ROM. The table's own location is not stored anywhere; it is found by
// scanning for the signature of its first record.
//
// Record 2 of the table describes the table itself and is where the record
// count comes from. Records 0 to 2 belong to the ROM header machinery and
// are never rewritten by transformations.
package rom
