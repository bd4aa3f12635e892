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

// Package transform contains the two whole-ROM transformations that walk
// the DMA table: Inflate (32MiB compressed image to 64MiB decompressed
// image) and Deflate (the reverse). Patching is in the zpf package.
//
// Transformations never mutate their input buffer. Each returns a newly
// allocated output image with freshly recomputed header CRCs.
//
// The exclusion list returned by Inflate records which files were stored
// raw in the source image; handing the same list back to Deflate reproduces
// the original storage decisions. Round-tripping a ROM through Inflate and
// Deflate therefore preserves the content of every file addressed by the
// DMA table.
package transform
