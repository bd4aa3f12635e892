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

// Package zpf applies ZPFv1 differential patches to a decompressed ROM.
//
// A .zpf file is a zlib stream. The decompressed payload is a "ZPFv1" magic,
// a configuration block, a DMA update table and then a stream of data
// blocks. Data block payloads are XOR-coded against a keystream of nonzero
// bytes drawn from a bounded window of the target ROM itself, which is why a
// patch is only meaningful against the exact ROM it was made for.
package zpf
