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

package transform

import (
	"github.com/jetsetilly/gopherz64/buffer"
	"github.com/jetsetilly/gopherz64/curated"
	"github.com/jetsetilly/gopherz64/logger"
	"github.com/jetsetilly/gopherz64/rom"
	"github.com/jetsetilly/gopherz64/rom/crc"
	"github.com/jetsetilly/gopherz64/yaz0"
)

// Aborted is returned when the OnRecord callback of a Deflater asks for the
// transformation to stop. The partial output is dropped.
const Aborted = "deflate: aborted"

// recordOp is the per-record operation of the deflate pass.
type recordOp int

const (
	opCompress recordOp = iota
	opCopy
	opNull
)

// Deflater recompresses a decompressed ROM into a 32MiB image.
//
// Compressing a full ROM takes the better part of a minute so the zero value
// is usable but hosts will usually want to set OnRecord.
type Deflater struct {
	// OnRecord is called after each record has been laid out. Returning
	// false aborts the transformation with the Aborted error.
	OnRecord func(index int, count int) bool
}

// Deflate compresses every eligible file of the ROM into a 32MiB image and
// refreshes the header CRCs of the result.
//
// The exclusion list modifies the per-record operation: a non-negative index
// is stored raw (copied) rather than compressed; a negative index e marks
// record ^e+1 (that is, record -e) as erased (a null file). Out-of-range
// entries are logged and skipped.
func (d Deflater) Deflate(r *rom.Rom, exclusions []int) (*buffer.Buffer, error) {
	out, err := d.deflate(r, exclusions)
	if err != nil {
		return nil, err
	}

	if err := crc.Recalculate(out); err != nil {
		return nil, err
	}

	return out, nil
}

// Deflate with the zero value Deflater.
func Deflate(r *rom.Rom, exclusions []int) (*buffer.Buffer, error) {
	return Deflater{}.Deflate(r, exclusions)
}

// recordOps expands the exclusion list into a per-record operation table.
func (d Deflater) recordOps(r *rom.Rom, exclusions []int) []recordOp {
	ops := make([]recordOp, r.DMACount())

	for _, e := range exclusions {
		idx := e
		op := opCopy
		if e < 0 {
			// the bitwise-complement encoding marks a record for erasure
			idx = ^e + 1
			op = opNull
		}

		// records 0 to 2 are the ROM header machinery and are never touched
		if idx < 3 || idx >= len(ops) {
			logger.Logf("deflate", "exclusion index out of range (%d)", e)
			continue
		}

		ops[idx] = op
	}

	return ops
}

// deflate is the layout pass without the final CRC refresh.
func (d Deflater) deflate(r *rom.Rom, exclusions []int) (*buffer.Buffer, error) {
	ops := d.recordOps(r, exclusions)

	out := buffer.New(rom.CompressedSize)

	// the header, boot block and the DMA table itself carry over verbatim.
	// record fields are then rewritten one by one as files are laid out
	prefix, err := r.Buffer.ReadBytesAt(0, r.DMAOffset()+r.DMASize())
	if err != nil {
		return nil, err
	}
	if err := out.WriteBytesAt(0, prefix); err != nil {
		return nil, err
	}

	// physical layout cursor
	prev := r.DMAOffset() + r.DMASize()

	for i := 3; i < r.DMACount(); i++ {
		rec, err := r.ReadRecord(i)
		if err != nil {
			return nil, err
		}

		if rec.IsEmpty() {
			continue
		}

		var payload []byte

		switch ops[i] {
		case opCopy:
			payload, err = r.Buffer.ReadBytesAt(int(rec.VStart), int(rec.VSize()))
			if err != nil {
				return nil, err
			}
			rec.PStart = uint32(prev)
			rec.PEnd = 0

		case opCompress:
			raw, err := r.Buffer.Window(int(rec.VStart), int(rec.VSize()))
			if err != nil {
				return nil, err
			}
			payload = yaz0.Encode(raw)
			rec.PStart = uint32(prev)
			rec.PEnd = uint32(prev + len(payload))

		case opNull:
			rec.PStart = rom.NullFile
			rec.PEnd = rom.NullFile
		}

		if len(payload) > 0 {
			// a write that runs past the end of the image is truncated. the
			// DMA table keeps being updated so the overflow is visible in
			// the record addresses
			n := len(payload)
			if prev+n > out.Size() {
				n = out.Size() - prev
				if n < 0 {
					n = 0
				}
				logger.Logf("deflate", "record %d overflows the compressed image (%d bytes dropped)", i, len(payload)-n)
			}
			if n > 0 {
				if err := out.WriteBytesAt(prev, payload[:n]); err != nil {
					return nil, err
				}
			}
		}

		if err := r.WriteRecord(out, i, rec); err != nil {
			return nil, err
		}

		prev += len(payload)

		if d.OnRecord != nil && !d.OnRecord(i, r.DMACount()) {
			return nil, curated.Errorf(Aborted)
		}
	}

	return out, nil
}
