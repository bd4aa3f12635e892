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

package rom

import (
	"github.com/jetsetilly/gopherz64/curated"
)

// UnknownByteOrder is returned when the first byte of a ROM image is not one
// of the three recognised ordering signatures.
const UnknownByteOrder = "rom: unrecognised byte order (first byte %#02x)"

// ByteOrder describes the on-disk ordering of a ROM image.
type ByteOrder int

// List of valid ByteOrder values. The first byte of the image identifies the
// ordering: 0x80 for big-endian, 0x37 for 16-bit swapped, 0x40 for 32-bit
// swapped.
const (
	BigEndian ByteOrder = iota // z64
	ByteSwapped                // v64
	WordSwapped                // n64
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "z64"
	case ByteSwapped:
		return "v64"
	case WordSwapped:
		return "n64"
	}
	return "unknown"
}

// DetectByteOrder inspects the first byte of the image.
func DetectByteOrder(data []byte) (ByteOrder, error) {
	if len(data) == 0 {
		return BigEndian, curated.Errorf(UnknownByteOrder, 0)
	}

	switch data[0] {
	case 0x80:
		return BigEndian, nil
	case 0x37:
		return ByteSwapped, nil
	case 0x40:
		return WordSwapped, nil
	}

	return BigEndian, curated.Errorf(UnknownByteOrder, data[0])
}

// NormalizeByteOrder converts the image to big-endian in place. It returns
// the ordering the image arrived in.
func NormalizeByteOrder(data []byte) (ByteOrder, error) {
	order, err := DetectByteOrder(data)
	if err != nil {
		return order, err
	}

	switch order {
	case ByteSwapped:
		// every 16-bit word is byte-swapped
		for i := 0; i+1 < len(data); i += 2 {
			data[i], data[i+1] = data[i+1], data[i]
		}
	case WordSwapped:
		// every 32-bit word is reversed
		for i := 0; i+3 < len(data); i += 4 {
			data[i], data[i+1], data[i+2], data[i+3] = data[i+3], data[i+2], data[i+1], data[i]
		}
	}

	return order, nil
}
