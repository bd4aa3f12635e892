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
	"fmt"

	"github.com/jetsetilly/gopherz64/buffer"
	"github.com/jetsetilly/gopherz64/curated"
)

// NullFile is the pEnd value marking a record whose file is logically absent.
const NullFile = 0xffffffff

// RecordSize is the number of bytes a DMA record occupies on the ROM.
const RecordSize = 16

// Record is one entry of the DMA table. All fields are big-endian 32-bit
// values on the ROM.
//
// PEnd overloads two sentinel meanings: zero means the file is stored
// uncompressed at PStart (occupying VEnd-VStart bytes); NullFile means the
// file is absent.
type Record struct {
	VStart uint32
	VEnd   uint32
	PStart uint32
	PEnd   uint32
}

func (rec Record) String() string {
	return fmt.Sprintf("v: %08x -> %08x  p: %08x -> %08x (%s)",
		rec.VStart, rec.VEnd, rec.PStart, rec.PEnd, rec.State())
}

// State describes the storage of the record as a short label.
func (rec Record) State() string {
	switch {
	case rec.IsNull():
		return "null"
	case rec.IsEmpty():
		return "empty"
	case rec.IsRaw():
		return "raw"
	}
	return "compressed"
}

// IsNull returns true if the file is logically absent.
func (rec Record) IsNull() bool {
	return rec.PEnd == NullFile
}

// IsRaw returns true if the file is stored on the ROM uncompressed.
func (rec Record) IsRaw() bool {
	return rec.PEnd == 0
}

// IsEmpty returns true for an unused table slot.
func (rec Record) IsEmpty() bool {
	return rec.VStart == rec.VEnd
}

// IsTerminator returns true for the record that ends iteration-style
// consumption of the table.
func (rec Record) IsTerminator() bool {
	return rec.VStart == 0 && rec.VEnd == 0
}

// VSize is the size of the file once decompressed.
func (rec Record) VSize() uint32 {
	return rec.VEnd - rec.VStart
}

// PSize is the size of the file as stored on the ROM.
func (rec Record) PSize() uint32 {
	if rec.IsRaw() {
		return rec.VSize()
	}
	if rec.IsNull() {
		return 0
	}
	return rec.PEnd - rec.PStart
}

// the DMA table is found by scanning 32-bit words for the signature pair
// below. the signature is how the first record of the table reads to the
// reference scanner. the scan starts at word index 1048 and gives up at the
// 16MiB boundary.
const (
	dmaScanStart  = 1048 * 4
	dmaScanLimit  = 0x01000000
	dmaInfoRecord = 2

	// the signature is the vEnd field of record 0. the reference scanner
	// reads its words with the opposite byte order to the rest of the table
	// so the constant also appears in byte-reversed form. both forms are
	// accepted
	dmaSignature        = 0x60100000
	dmaSignatureOnTable = 0x00001060
)

// findTableOffset scans for the DMA table signature. Fails with DMAMissing
// if the signature cannot be found.
func findTableOffset(b *buffer.Buffer) (int, error) {
	limit := b.Size()
	if limit > dmaScanLimit {
		limit = dmaScanLimit
	}

	for off := dmaScanStart; off+8 <= limit; off += 4 {
		w0, err := b.Read32At(off)
		if err != nil {
			return 0, err
		}
		if w0 != 0 {
			continue
		}
		w1, err := b.Read32At(off + 4)
		if err != nil {
			return 0, err
		}
		if w1 == dmaSignature || w1 == dmaSignatureOnTable {
			return off, nil
		}
	}

	return 0, curated.Errorf(DMAMissing)
}
