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

package rom_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopherz64/curated"
	"github.com/jetsetilly/gopherz64/rom"
	"github.com/jetsetilly/gopherz64/test"
)

const dmaOffset = 0x1060

// put32 writes a big-endian 32-bit value directly into an image under
// construction.
func put32(data []byte, addr int, v uint32) {
	data[addr] = byte(v >> 24)
	data[addr+1] = byte(v >> 16)
	data[addr+2] = byte(v >> 8)
	data[addr+3] = byte(v)
}

// putRecord writes a DMA record directly into an image under construction.
func putRecord(data []byte, i int, vs, ve, ps, pe uint32) {
	addr := dmaOffset + i*rom.RecordSize
	put32(data, addr, vs)
	put32(data, addr+4, ve)
	put32(data, addr+8, ps)
	put32(data, addr+12, pe)
}

// synthRom builds a minimal big-endian image with an eight record DMA
// table: the three header records, a compressed file, a raw file, a null
// file and a terminator.
func synthRom() []byte {
	data := make([]byte, 0x40000)

	// the PI BSD dom1 configuration word found at the start of every
	// big-endian image
	put32(data, 0, 0x80371240)

	putRecord(data, 0, 0, 0x1060, 0, 0)
	putRecord(data, 1, 0x2000, 0x3000, 0x2000, 0)
	putRecord(data, 2, dmaOffset, dmaOffset+8*rom.RecordSize, dmaOffset, 0)
	putRecord(data, 3, 0x10000, 0x10400, 0x20000, 0x20100)
	putRecord(data, 4, 0x10400, 0x10800, 0x20800, 0)
	putRecord(data, 5, 0x10800, 0x10900, rom.NullFile, rom.NullFile)

	return data
}

func TestNew(t *testing.T) {
	r, err := rom.New(synthRom())
	test.ExpectedSuccess(t, err)

	test.Equate(t, r.DMAOffset(), dmaOffset)
	test.Equate(t, r.DMASize(), 8*rom.RecordSize)
	test.Equate(t, r.DMACount(), 8)
	test.Equate(t, r.Order == rom.BigEndian, true)
}

func TestReadRecord(t *testing.T) {
	r, err := rom.New(synthRom())
	test.ExpectedSuccess(t, err)

	rec, err := r.ReadRecord(3)
	test.ExpectedSuccess(t, err)
	test.Equate(t, rec.VStart, 0x10000)
	test.Equate(t, rec.VEnd, 0x10400)
	test.Equate(t, rec.PStart, 0x20000)
	test.Equate(t, rec.PEnd, 0x20100)
	test.Equate(t, rec.State(), "compressed")

	rec, err = r.ReadRecord(5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, rec.IsNull(), true)

	_, err = r.ReadRecord(8)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, rom.RecordOutOfRange), true)

	_, err = r.ReadRecord(-1)
	test.ExpectedFailure(t, err)
}

func TestFindRecordByKey(t *testing.T) {
	r, err := rom.New(synthRom())
	test.ExpectedSuccess(t, err)

	rec, err := r.FindRecordByKey(0x10400)
	test.ExpectedSuccess(t, err)
	test.Equate(t, rec != nil, true)
	test.Equate(t, rec.PStart, 0x20800)

	// a zero key matches record 0, not the terminator
	rec, err = r.FindRecordByKey(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, rec != nil, true)
	test.Equate(t, rec.VEnd, 0x1060)

	// an unknown key runs into the terminator
	rec, err = r.FindRecordByKey(0x12345)
	test.ExpectedSuccess(t, err)
	test.Equate(t, rec == nil, true)
}

func TestWriteRecord(t *testing.T) {
	r, err := rom.New(synthRom())
	test.ExpectedSuccess(t, err)

	rec := rom.Record{VStart: 0x10000, VEnd: 0x10400, PStart: 0x10000, PEnd: 0}
	test.ExpectedSuccess(t, r.WriteRecord(r.Buffer, 3, rec))

	readback, err := r.ReadRecord(3)
	test.ExpectedSuccess(t, err)
	test.Equate(t, readback.PStart, 0x10000)
	test.Equate(t, readback.PEnd, 0)
	test.Equate(t, readback.State(), "raw")

	test.ExpectedFailure(t, r.WriteRecord(r.Buffer, 100, rec))
}

func TestVerifyNonOverlapping(t *testing.T) {
	r, err := rom.New(synthRom())
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, r.VerifyNonOverlapping())

	// make records 3 and 4 share virtual bytes
	data := synthRom()
	putRecord(data, 3, 0x10000, 0x10500, 0x20000, 0x20100)
	putRecord(data, 4, 0x10480, 0x10800, 0x20800, 0)

	r, err = rom.New(data)
	test.ExpectedSuccess(t, err)

	err = r.VerifyNonOverlapping()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, rom.DMAOverlap), true)
}

// byte-order normalization must produce identical images from all three
// on-disk orderings of the same content.
func TestByteOrderNormalization(t *testing.T) {
	base := synthRom()

	v64 := make([]byte, len(base))
	for i := 0; i < len(base); i += 2 {
		v64[i] = base[i+1]
		v64[i+1] = base[i]
	}

	n64 := make([]byte, len(base))
	for i := 0; i < len(base); i += 4 {
		n64[i] = base[i+3]
		n64[i+1] = base[i+2]
		n64[i+2] = base[i+1]
		n64[i+3] = base[i]
	}

	rz, err := rom.New(synthRom())
	test.ExpectedSuccess(t, err)
	test.Equate(t, rz.Order == rom.BigEndian, true)

	rv, err := rom.New(v64)
	test.ExpectedSuccess(t, err)
	test.Equate(t, rv.Order == rom.ByteSwapped, true)

	rn, err := rom.New(n64)
	test.ExpectedSuccess(t, err)
	test.Equate(t, rn.Order == rom.WordSwapped, true)

	test.Equate(t, bytes.Equal(rz.Buffer.Data(), rv.Buffer.Data()), true)
	test.Equate(t, bytes.Equal(rz.Buffer.Data(), rn.Buffer.Data()), true)
}

func TestUnknownByteOrder(t *testing.T) {
	data := synthRom()
	data[0] = 0x12

	_, err := rom.New(data)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, rom.UnknownByteOrder), true)
}
