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
	"sort"

	"github.com/jetsetilly/gopherz64/buffer"
	"github.com/jetsetilly/gopherz64/curated"
)

// Error patterns returned by the rom package.
const (
	DMAMissing       = "dma: table not found"
	DMAOverlap       = "dma: overlapping records (%#08x and %#08x)"
	RecordOutOfRange = "dma: record index out of range (%d)"
)

// Fixed sizes for the two forms of a Zelda64 ROM image.
const (
	CompressedSize   = 0x2000000 // 32MiB
	DecompressedSize = 0x4000000 // 64MiB
)

// Rom is the DMA-table view of a ROM image. Creating a Rom normalizes the
// image to big-endian in place; this is the only mutation a Rom ever
// performs on the buffer it was created with.
type Rom struct {
	// the underlying image. transformations read from this buffer and write
	// to a new buffer of their own
	Buffer *buffer.Buffer

	// ordering the image arrived in, before normalization
	Order ByteOrder

	dmaOffset int
	dmaSize   int
	dmaCount  int
}

// New creates the DMA-table view of the image. The image is normalized to
// big-endian in place before the table is located.
func New(data []byte) (*Rom, error) {
	order, err := NormalizeByteOrder(data)
	if err != nil {
		return nil, err
	}

	r := &Rom{
		Buffer: buffer.NewFromData(data),
		Order:  order,
	}

	r.dmaOffset, err = findTableOffset(r.Buffer)
	if err != nil {
		return nil, err
	}

	// the record at index 2 spans the DMA table itself. the size of the
	// table is derived from it
	info, err := r.ReadRecord(dmaInfoRecord)
	if err != nil {
		return nil, err
	}
	r.dmaSize = int(info.VEnd - info.VStart)
	r.dmaCount = r.dmaSize / RecordSize

	return r, nil
}

// DMAOffset returns the byte offset of the DMA table. The offset is
// immutable across transformations.
func (r *Rom) DMAOffset() int {
	return r.dmaOffset
}

// DMASize returns the size of the DMA table in bytes.
func (r *Rom) DMASize() int {
	return r.dmaSize
}

// DMACount returns the number of records in the DMA table.
func (r *Rom) DMACount() int {
	return r.dmaCount
}

// InfoRecord returns the record describing the DMA table itself.
func (r *Rom) InfoRecord() (Record, error) {
	return r.ReadRecord(dmaInfoRecord)
}

// recordAddr is the absolute address of record i. the index is not bounds
// checked here.
func (r *Rom) recordAddr(i int) int {
	return r.dmaOffset + i*RecordSize
}

// ReadRecord returns the record at index i. Indices at or beyond the table
// count fail with RecordOutOfRange.
func (r *Rom) ReadRecord(i int) (Record, error) {
	if i < 0 || (r.dmaCount > 0 && i >= r.dmaCount) {
		return Record{}, curated.Errorf(RecordOutOfRange, i)
	}

	addr := r.recordAddr(i)

	var rec Record
	var err error

	if rec.VStart, err = r.Buffer.Read32At(addr); err != nil {
		return Record{}, err
	}
	if rec.VEnd, err = r.Buffer.Read32At(addr + 4); err != nil {
		return Record{}, err
	}
	if rec.PStart, err = r.Buffer.Read32At(addr + 8); err != nil {
		return Record{}, err
	}
	if rec.PEnd, err = r.Buffer.Read32At(addr + 12); err != nil {
		return Record{}, err
	}

	return rec, nil
}

// WriteRecord writes a record in place at index i of the DMA table in the
// out buffer. The out buffer may be the Rom's own buffer or the output
// buffer of a transformation; the table is assumed to live at the same
// offset in both.
func (r *Rom) WriteRecord(out *buffer.Buffer, i int, rec Record) error {
	if i < 0 || (r.dmaCount > 0 && i >= r.dmaCount) {
		return curated.Errorf(RecordOutOfRange, i)
	}

	addr := r.recordAddr(i)

	if err := out.Write32At(addr, rec.VStart); err != nil {
		return err
	}
	if err := out.Write32At(addr+4, rec.VEnd); err != nil {
		return err
	}
	if err := out.Write32At(addr+8, rec.PStart); err != nil {
		return err
	}
	return out.Write32At(addr+12, rec.PEnd)
}

// FindRecordByKey scans the table in order for the first record whose VStart
// equals key. Returns nil (and no error) if the terminator record is reached
// before a match.
func (r *Rom) FindRecordByKey(key uint32) (*Record, error) {
	for i := 0; i < r.dmaCount; i++ {
		rec, err := r.ReadRecord(i)
		if err != nil {
			return nil, err
		}

		// the terminator record also has VStart of zero but a zero key
		// legitimately matches record 0, which is never a terminator
		if i > 0 && rec.IsTerminator() {
			return nil, nil
		}

		if rec.VStart == key {
			return &rec, nil
		}
	}

	return nil, nil
}

// VerifyNonOverlapping checks that the virtual intervals of all non-empty
// records up to the terminator are pairwise disjoint. Fails with DMAOverlap
// naming the VStart of the two clashing records.
func (r *Rom) VerifyNonOverlapping() error {
	recs := make([]Record, 0, r.dmaCount)

	for i := 0; i < r.dmaCount; i++ {
		rec, err := r.ReadRecord(i)
		if err != nil {
			return err
		}
		if i > 0 && rec.IsTerminator() {
			break
		}
		if rec.IsEmpty() {
			continue
		}
		recs = append(recs, rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].VStart < recs[j].VStart
	})

	for i := 1; i < len(recs); i++ {
		if recs[i-1].VEnd > recs[i].VStart {
			return curated.Errorf(DMAOverlap, recs[i-1].VStart, recs[i].VStart)
		}
	}

	return nil
}
