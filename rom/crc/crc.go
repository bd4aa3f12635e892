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

// Package crc maintains the two 32-bit checksums in the header of a ROM
// image. The checksum algorithm is seeded and finalized according to the
// CIC boot coprocessor variant, which is itself identified by a CRC-32 of
// the boot block.
package crc

import (
	"hash/crc32"
	"math/bits"

	"github.com/jetsetilly/gopherz64/buffer"
	"github.com/jetsetilly/gopherz64/curated"
)

// UnknownCIC is returned when the boot block CRC does not correspond to any
// known CIC variant.
const UnknownCIC = "crc: unknown CIC (boot block crc %#08x)"

// CIC identifies the boot coprocessor variant of a ROM. The variant selects
// the seed and the finalization rule of the header checksum.
type CIC struct {
	Version int
	Seed    uint32
}

// layout constants for the checksum.
const (
	bootBlockOffset = 0x40
	bootBlockSize   = 0xfc0

	checksumOffset = 0x1000
	checksumSize   = 0x100000

	crc1Offset = 0x10
	crc2Offset = 0x14

	// the 6105 variant folds a 256-byte window of the boot block into the
	// checksum instead of the t5 accumulator
	cic6105Offset = bootBlockOffset + 0x0710
)

// boot block CRC-32 to CIC variant. the CRC is the reflected 0xEDB88320
// polynomial with inverted init and final xor, which is CRC-32/IEEE.
var cicTable = map[uint32]CIC{
	0x6170a4a1: {Version: 6101, Seed: 0xf8ca4ddc},
	0x90bb6cb5: {Version: 6102, Seed: 0xf8ca4ddc},
	0x0b050ee0: {Version: 6103, Seed: 0xa3886759},
	0x98bc2c86: {Version: 6105, Seed: 0xdf26f436},
	0xacc8580a: {Version: 6106, Seed: 0x1fea617a},
}

// lookupCIC maps a boot block CRC to a CIC variant.
func lookupCIC(sum uint32) (CIC, error) {
	cic, ok := cicTable[sum]
	if !ok {
		return CIC{}, curated.Errorf(UnknownCIC, sum)
	}
	return cic, nil
}

// Identify returns the CIC variant of the ROM in the buffer. Fails with
// UnknownCIC if the boot block is not recognised.
func Identify(b *buffer.Buffer) (CIC, error) {
	block, err := b.Window(bootBlockOffset, bootBlockSize)
	if err != nil {
		return CIC{}, err
	}
	return lookupCIC(crc32.ChecksumIEEE(block))
}

// checksum computes the two header CRCs over the 1MiB region at 0x1000.
//
// All arithmetic is unsigned 32-bit with wraparound. The t4 accumulator
// counts carries out of t6.
func checksum(b *buffer.Buffer, cic CIC) (uint32, uint32, error) {
	data, err := b.Window(checksumOffset, checksumSize)
	if err != nil {
		return 0, 0, err
	}

	t1 := cic.Seed
	t2 := cic.Seed
	t3 := cic.Seed
	t4 := cic.Seed
	t5 := cic.Seed
	t6 := cic.Seed

	for i := 0; i < checksumSize; i += 4 {
		d := uint32(data[i])<<24 | uint32(data[i+1])<<16 |
			uint32(data[i+2])<<8 | uint32(data[i+3])

		if t6+d < t6 {
			t4++
		}
		t6 += d

		t3 ^= d

		r := bits.RotateLeft32(d, int(d&0x1f))
		t5 += r

		if t2 > d {
			t2 ^= r
		} else {
			t2 ^= t6 ^ d
		}

		if cic.Version == 6105 {
			e, err := b.Read32At(cic6105Offset + (i & 0xff))
			if err != nil {
				return 0, 0, err
			}
			t1 += e ^ d
		} else {
			t1 += t5 ^ d
		}
	}

	var crc1, crc2 uint32

	switch cic.Version {
	case 6103:
		crc1 = (t6 ^ t4) + t3
		crc2 = (t5 ^ t2) + t1
	case 6106:
		crc1 = t6*t4 + t3
		crc2 = t5*t2 + t1
	default:
		crc1 = t6 ^ t4 ^ t3
		crc2 = t5 ^ t2 ^ t1
	}

	return crc1, crc2, nil
}

// Recalculate recomputes the two header CRCs of the ROM in the buffer and
// writes them in place at 0x10 and 0x14.
func Recalculate(b *buffer.Buffer) error {
	cic, err := Identify(b)
	if err != nil {
		return err
	}

	crc1, crc2, err := checksum(b, cic)
	if err != nil {
		return err
	}

	if err := b.Write32At(crc1Offset, crc1); err != nil {
		return err
	}
	return b.Write32At(crc2Offset, crc2)
}
