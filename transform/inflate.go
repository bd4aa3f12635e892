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
	"github.com/jetsetilly/gopherz64/rom"
	"github.com/jetsetilly/gopherz64/rom/crc"
	"github.com/jetsetilly/gopherz64/yaz0"
)

// Inflated is the result of the Inflate transformation: the decompressed
// 64MiB image, and the indices of the records that were already stored raw
// in the source. The exclusion list is what the Deflate transformation needs
// to reproduce the original per-file storage.
type Inflated struct {
	Data       *buffer.Buffer
	Exclusions []int
}

// Inflate expands every compressed file of the ROM into a 64MiB image and
// refreshes the header CRCs of the result.
func Inflate(r *rom.Rom) (*Inflated, error) {
	res, err := inflate(r)
	if err != nil {
		return nil, err
	}

	if err := crc.Recalculate(res.Data); err != nil {
		return nil, err
	}

	return res, nil
}

// inflate is the table walk without the final CRC refresh.
func inflate(r *rom.Rom) (*Inflated, error) {
	out := buffer.New(rom.DecompressedSize)

	// the whole of the input sits in the prefix of the output. files beyond
	// the DMA table are then re-laid at their virtual addresses
	if err := out.WriteBytesAt(0, r.Buffer.Data()); err != nil {
		return nil, err
	}

	info, err := r.InfoRecord()
	if err != nil {
		return nil, err
	}

	// everything after the DMA table is rebuilt from the records. clearing
	// it first means skipped regions read as zero rather than as stale
	// compressed data
	if err := out.Fill(0, rom.DecompressedSize-int(info.VEnd), int(info.VEnd)); err != nil {
		return nil, err
	}

	exclusions := make([]int, 0, 16)

	for i := 3; i < r.DMACount(); i++ {
		rec, err := r.ReadRecord(i)
		if err != nil {
			return nil, err
		}

		if rec.PStart >= rom.DecompressedSize || rec.IsNull() {
			continue
		}

		if rec.IsRaw() {
			// already uncompressed in the source. remembered so a later
			// deflate leaves it uncompressed too
			exclusions = append(exclusions, i)

			p, err := r.Buffer.Window(int(rec.PStart), int(rec.VSize()))
			if err != nil {
				return nil, err
			}
			if err := out.WriteBytesAt(int(rec.VStart), p); err != nil {
				return nil, err
			}
		} else {
			src, err := r.Buffer.Window(int(rec.PStart)+yaz0.HeaderSize,
				int(rec.PEnd)-int(rec.PStart)-yaz0.HeaderSize)
			if err != nil {
				return nil, err
			}
			dst, err := out.Window(int(rec.VStart), int(rec.VSize()))
			if err != nil {
				return nil, err
			}
			if err := yaz0.Decode(src, dst); err != nil {
				return nil, err
			}
		}

		rec.PStart = rec.VStart
		rec.PEnd = 0
		if err := r.WriteRecord(out, i, rec); err != nil {
			return nil, err
		}
	}

	return &Inflated{Data: out, Exclusions: exclusions}, nil
}
