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

import (
	"github.com/jetsetilly/gopherz64/curated"
)

// Malformed is the error pattern for a Yaz0 stream that runs past its source
// or its destination.
const Malformed = "yaz0: malformed stream (%s)"

// HeaderSize is the size of the Yaz0 frame header: the magic, the big-endian
// uncompressed size and eight reserved bytes.
const HeaderSize = 16

// magic bytes at the start of every Yaz0 frame.
const magic = "Yaz0"

// Size returns the uncompressed size recorded in the header of a Yaz0 frame.
func Size(frame []byte) (uint32, error) {
	if len(frame) < HeaderSize || string(frame[:4]) != magic {
		return 0, curated.Errorf(Malformed, "bad frame header")
	}
	return uint32(frame[4])<<24 | uint32(frame[5])<<16 |
		uint32(frame[6])<<8 | uint32(frame[7]), nil
}

// Decode decodes an encoded stream into dst. The src slice is positioned
// after the 16-byte frame header; dst must be exactly the uncompressed size.
//
// Back-references are self-referential: a distance smaller than the length
// means the copy overlaps its own tail, so the copy must proceed forwards a
// byte at a time.
func Decode(src []byte, dst []byte) error {
	var srcPos, dstPos int
	var cb byte
	var bit int

	for dstPos < len(dst) {
		if bit == 0 {
			if srcPos >= len(src) {
				return curated.Errorf(Malformed, "source exhausted reading code block")
			}
			cb = src[srcPos]
			srcPos++
			bit = 8
		}

		if cb&0x80 != 0 {
			// literal
			if srcPos >= len(src) {
				return curated.Errorf(Malformed, "source exhausted reading literal")
			}
			dst[dstPos] = src[srcPos]
			dstPos++
			srcPos++
		} else {
			// back-reference
			if srcPos+1 >= len(src) {
				return curated.Errorf(Malformed, "source exhausted reading back-reference")
			}
			b1 := src[srcPos]
			b2 := src[srcPos+1]
			srcPos += 2

			dist := int(b1&0x0f)<<8 | int(b2)
			cpy := dstPos - dist - 1

			length := int(b1 >> 4)
			if length == 0 {
				if srcPos >= len(src) {
					return curated.Errorf(Malformed, "source exhausted reading long length")
				}
				length = int(src[srcPos]) + 0x12
				srcPos++
			} else {
				length += 2
			}

			if cpy < 0 {
				return curated.Errorf(Malformed, "back-reference before start of output")
			}
			if dstPos+length > len(dst) {
				return curated.Errorf(Malformed, "destination overflow")
			}

			for i := 0; i < length; i++ {
				dst[dstPos] = dst[cpy]
				dstPos++
				cpy++
			}
		}

		cb <<= 1
		bit--
	}

	return nil
}
