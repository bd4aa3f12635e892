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

package yaz0

// encoding limits. the distance of a back-reference is held in 12 bits, the
// length in either 4 bits (short form, biased by 2) or a full byte (long
// form, biased by 0x12).
const (
	maxDistance  = 0x1000
	maxShortSpan = 0x11
	maxLongSpan  = 0x111
	minSpan      = 3
)

// encoder holds the deferred-match state of the lazy search. One encoder per
// Encode call; the type is not safe for concurrent use.
type encoder struct {
	src []byte

	// position of the match found by the most recent search
	matchPos int

	// a match deferred by the look-ahead. when pending is true the next call
	// to findBest() consumes pendingSpan instead of searching
	pending     bool
	pendingSpan int
}

// matchLen returns the length of the common prefix of src[a:] and src[b:],
// capped at limit. a < b; the regions may overlap.
func (e *encoder) matchLen(a, b, limit int) int {
	var n int
	for n < limit && e.src[a+n] == e.src[b+n] {
		n++
	}
	return n
}

// search returns the longest match for the data at pos within the preceding
// 4KiB window. Matches shorter than minSpan are reported as no match. The
// first (lowest position) of equal-length candidates wins.
func (e *encoder) search(pos int) (int, int) {
	limit := len(e.src) - pos
	if limit > maxLongSpan {
		limit = maxLongSpan
	}
	if limit < minSpan {
		return 0, 0
	}

	start := pos - maxDistance
	if start < 0 {
		start = 0
	}

	var bestSpan, bestPos int
	for i := start; i < pos; i++ {
		// cheap prefix filter before the full comparison
		if e.src[i] != e.src[pos] {
			continue
		}
		n := e.matchLen(i, pos, limit)
		if n > bestSpan {
			bestSpan = n
			bestPos = i
			if n == limit {
				break
			}
		}
	}

	return bestSpan, bestPos
}

// findBest returns the span to emit at pos and the match position backing
// it. A span below minSpan means a literal.
//
// The look-ahead heuristic: if the match starting one byte later is better
// by two or more, emit a single literal now and use the later match on the
// next call.
func (e *encoder) findBest(pos int) (int, int) {
	if e.pending {
		e.pending = false
		return e.pendingSpan, e.matchPos
	}

	span, match := e.search(pos)
	e.matchPos = match

	if span >= minSpan {
		nextSpan, nextMatch := e.search(pos + 1)
		if nextSpan >= span+2 {
			e.pending = true
			e.pendingSpan = nextSpan
			e.matchPos = nextMatch
			return 1, 0
		}
	}

	return span, match
}

// Encode encodes src into a framed Yaz0 byte slice. The output is the
// encoded frame followed by at least 16 bytes of zero padding, with the
// total length rounded up to a multiple of 16.
func Encode(src []byte) []byte {
	e := encoder{src: src}

	// the transient buffer is sized for headroom over the worst case of an
	// incompressible input (one code byte per eight literals)
	dst := make([]byte, len(src)+len(src)/8+0x250)

	copy(dst, magic)
	dst[4] = byte(len(src) >> 24)
	dst[5] = byte(len(src) >> 16)
	dst[6] = byte(len(src) >> 8)
	dst[7] = byte(len(src))

	dstPos := HeaderSize
	var srcPos int

	// the code byte of the current group is reserved at codePos and patched
	// in once eight tokens have been emitted (or at end of input)
	var code byte
	var codePos, codeBits int

	for srcPos < len(src) {
		if codeBits == 0 {
			codePos = dstPos
			dstPos++
			code = 0
		}

		span, match := e.findBest(srcPos)

		if span < minSpan {
			// literal
			dst[dstPos] = src[srcPos]
			dstPos++
			srcPos++
			code |= 0x80 >> codeBits
		} else {
			dist := srcPos - match - 1

			if span > maxLongSpan {
				span = maxLongSpan
			}

			if span > maxShortSpan {
				// three byte form
				dst[dstPos] = byte(dist >> 8)
				dst[dstPos+1] = byte(dist)
				dst[dstPos+2] = byte(span - 0x12)
				dstPos += 3
			} else {
				// two byte form
				dst[dstPos] = byte((span-2)<<4) | byte(dist>>8)
				dst[dstPos+1] = byte(dist)
				dstPos += 2
			}

			srcPos += span
		}

		codeBits++
		if codeBits == 8 {
			dst[codePos] = code
			codeBits = 0
		}
	}

	// a partial group still gets its code byte
	if codeBits > 0 {
		dst[codePos] = code
	}

	return dst[:(dstPos+31)&^15]
}
