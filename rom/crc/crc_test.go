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

package crc

import (
	"math/bits"
	"testing"

	"github.com/jetsetilly/gopherz64/buffer"
	"github.com/jetsetilly/gopherz64/curated"
	"github.com/jetsetilly/gopherz64/test"
)

func TestLookupCIC(t *testing.T) {
	known := []struct {
		sum     uint32
		version int
		seed    uint32
	}{
		{0x6170a4a1, 6101, 0xf8ca4ddc},
		{0x90bb6cb5, 6102, 0xf8ca4ddc},
		{0x0b050ee0, 6103, 0xa3886759},
		{0x98bc2c86, 6105, 0xdf26f436},
		{0xacc8580a, 6106, 0x1fea617a},
	}

	for _, k := range known {
		cic, err := lookupCIC(k.sum)
		test.ExpectedSuccess(t, err)
		test.Equate(t, cic.Version, k.version)
		test.Equate(t, cic.Seed, k.seed)
	}

	_, err := lookupCIC(0xdeadbeef)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, UnknownCIC), true)
}

func TestIdentifyUnknownBootBlock(t *testing.T) {
	// an all-zero boot block does not correspond to any CIC variant
	b := buffer.New(0x101000)

	_, err := Identify(b)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, UnknownCIC), true)
}

// checksum of a region holding exactly two nonzero words, derived
// independently of the loop in the implementation: the zero words leave
// every accumulator untouched except t1, which gathers t5 once per word.
func TestChecksum6102(t *testing.T) {
	b := buffer.New(0x101000)
	test.ExpectedSuccess(t, b.Write32At(0x1000, 0x00000001))
	test.ExpectedSuccess(t, b.Write32At(0x1004, 0x00000002))

	cic := CIC{Version: 6102, Seed: 0xf8ca4ddc}

	seed := cic.Seed
	t1 := seed
	t2 := seed
	t3 := seed
	t4 := seed
	t5 := seed
	t6 := seed

	// word 0x1000: d = 1. the seed is far larger than d so t2 takes the
	// rotate branch, and t6 cannot carry
	t6 += 1
	t3 ^= 1
	r := bits.RotateLeft32(1, 1)
	t5 += r
	t2 ^= r
	t1 += t5 ^ 1

	// word 0x1004: d = 2
	t6 += 2
	t3 ^= 2
	r = bits.RotateLeft32(2, 2)
	t5 += r
	t2 ^= r
	t1 += t5 ^ 2

	// the remaining words are zero: only t1 moves, gathering t5 each time
	t1 += t5 * uint32(0x100000/4-2)

	test.Equate(t, t6, seed+3)
	test.Equate(t, t3, seed^3)

	crc1, crc2, err := checksum(b, cic)
	test.ExpectedSuccess(t, err)
	test.Equate(t, crc1, t6^t4^t3)
	test.Equate(t, crc2, t5^t2^t1)
}

// the 6103 and 6106 variants differ only in finalization, which can be
// checked against the same accumulator values.
func TestChecksumFinalization(t *testing.T) {
	b := buffer.New(0x101000)
	test.ExpectedSuccess(t, b.Write32At(0x1000, 0x00000001))

	// 6103 finalization: additive
	cic := CIC{Version: 6103, Seed: 0xa3886759}
	seed := cic.Seed

	r := bits.RotateLeft32(1, 1)
	t6 := seed + 1
	t3 := seed ^ 1
	t5 := seed + r
	t2 := seed ^ r
	t1 := seed + (t5 ^ 1) + t5*uint32(0x100000/4-1)
	t4 := seed

	crc1, crc2, err := checksum(b, cic)
	test.ExpectedSuccess(t, err)
	test.Equate(t, crc1, (t6^t4)+t3)
	test.Equate(t, crc2, (t5^t2)+t1)

	// 6106 finalization: multiplicative
	cic = CIC{Version: 6106, Seed: 0x1fea617a}
	seed = cic.Seed

	t6 = seed + 1
	t3 = seed ^ 1
	t5 = seed + r
	t2 = seed ^ r
	t1 = seed + (t5 ^ 1) + t5*uint32(0x100000/4-1)
	t4 = seed

	crc1, crc2, err = checksum(b, cic)
	test.ExpectedSuccess(t, err)
	test.Equate(t, crc1, t6*t4+t3)
	test.Equate(t, crc2, t5*t2+t1)
}

// two runs over clones of the same image must produce identical results.
func TestChecksumDeterminism(t *testing.T) {
	b := buffer.New(0x101000)
	for i := 0; i < 64; i++ {
		test.ExpectedSuccess(t, b.Write32At(0x1000+i*4, uint32(i)*0x01010101))
	}

	cic := CIC{Version: 6102, Seed: 0xf8ca4ddc}

	crc1a, crc2a, err := checksum(b, cic)
	test.ExpectedSuccess(t, err)

	crc1b, crc2b, err := checksum(b.Clone(), cic)
	test.ExpectedSuccess(t, err)

	test.Equate(t, crc1a, crc1b)
	test.Equate(t, crc2a, crc2b)
}

// the 6105 variant draws its t1 term from the boot block rather than the
// t5 accumulator.
func TestChecksum6105(t *testing.T) {
	b := buffer.New(0x101000)
	test.ExpectedSuccess(t, b.Write32At(0x1000, 0x00000001))

	// the 256-byte window at 0x40+0x710 cycles for every word. fill it
	// with a constant so the expected value is simple to derive
	for i := 0; i < 0x100; i += 4 {
		test.ExpectedSuccess(t, b.Write32At(0x40+0x710+i, 0x11223344))
	}

	cic := CIC{Version: 6105, Seed: 0xdf26f436}
	seed := cic.Seed

	r := bits.RotateLeft32(1, 1)
	t6 := seed + 1
	t3 := seed ^ 1
	t5 := seed + r
	t2 := seed ^ r
	t4 := seed

	// t1 gathers e^d for every word: e is the constant window value
	e := uint32(0x11223344)
	n := uint32(0x100000/4 - 1)
	t1 := seed + (e ^ uint32(1)) + e*n

	crc1, crc2, err := checksum(b, cic)
	test.ExpectedSuccess(t, err)
	test.Equate(t, crc1, t6^t4^t3)
	test.Equate(t, crc2, t5^t2^t1)
}
