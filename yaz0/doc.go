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

// Package yaz0 implements Nintendo's Yaz0 compression scheme, the LZ77
// variant used for the files of a Zelda64 ROM.
//
// A Yaz0 frame is a 16-byte header followed by a stream of groups. Each
// group is one code byte and up to eight tokens; the bits of the code byte,
// most significant first, say whether the corresponding token is a literal
// byte or a (distance, length) back-reference into the already-decoded
// output.
//
// The encoder uses the reference lazy heuristic: before committing to a
// match it peeks at the match available one byte later and, if that one is
// better by two or more, emits a single literal instead and takes the later
// match on the next step. This reproduces the token stream of the reference
// encoder bit for bit.
package yaz0
