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

package zpf

import (
	"io"

	"github.com/jetsetilly/gopherz64/buffer"
	"github.com/jetsetilly/gopherz64/curated"
	"github.com/jetsetilly/gopherz64/rom"
	"github.com/jetsetilly/gopherz64/rom/crc"
)

// Apply the patch to a decompressed ROM, producing a new image of the same
// size with freshly recomputed header CRCs. The input ROM is not mutated;
// the XOR keystream reads its keys from the input, never from the partially
// patched output.
func (p *Patch) Apply(r *rom.Rom) (*buffer.Buffer, error) {
	out := r.Buffer.Clone()

	if err := p.applyDMAUpdates(r, out); err != nil {
		return nil, err
	}

	if err := p.applyDataBlocks(r, out); err != nil {
		return nil, err
	}

	if err := crc.Recalculate(out); err != nil {
		return nil, err
	}

	return out, nil
}

// applyDMAUpdates is phase A: rewrite DMA records and import or zero the
// virtual span of each updated file.
func (p *Patch) applyDMAUpdates(r *rom.Rom, out *buffer.Buffer) error {
	if _, err := p.payload.Seek(dmaUpdateOffset, io.SeekStart); err != nil {
		return err
	}

	for {
		idx, err := p.payload.Read16()
		if err != nil {
			return curated.Errorf(Truncated, "dma update table")
		}
		if idx == endOfUpdates {
			return nil
		}

		fromFile, err := p.payload.Read32()
		if err != nil {
			return curated.Errorf(Truncated, "dma update record")
		}
		start, err := p.payload.Read32()
		if err != nil {
			return curated.Errorf(Truncated, "dma update record")
		}
		size, err := p.payload.Read24()
		if err != nil {
			return curated.Errorf(Truncated, "dma update record")
		}

		// the record is written at the table offset recorded in the patch,
		// which for a well-formed patch agrees with the offset discovered
		// in the ROM
		addr := int(p.DMAOffset) + int(idx)*rom.RecordSize
		if err := out.Write32At(addr, start); err != nil {
			return err
		}
		if err := out.Write32At(addr+4, start+size); err != nil {
			return err
		}
		if err := out.Write32At(addr+8, start); err != nil {
			return err
		}
		if err := out.Write32At(addr+12, 0); err != nil {
			return err
		}

		if fromFile != rom.NullFile {
			src, err := r.FindRecordByKey(fromFile)
			if err != nil {
				return err
			}
			if src == nil {
				return curated.Errorf(MissingFile, fromFile)
			}

			// the copy is capped at the source record's pStart, matching
			// the reference patcher byte for byte. pStart is a ROM offset
			// rather than a length, so the cap is almost always a no-op
			n := size
			if src.PStart < n {
				n = src.PStart
			}

			data, err := r.Buffer.ReadBytesAt(int(fromFile), int(n))
			if err != nil {
				return err
			}
			if err := out.WriteBytesAt(int(start), data); err != nil {
				return err
			}
			if n < size {
				if err := out.Fill(0, int(size-n), int(start+n)); err != nil {
					return err
				}
			}
		} else {
			if err := out.Fill(0, int(size), int(start)); err != nil {
				return err
			}
		}
	}
}

// applyDataBlocks is phase B: XOR-decode the block stream into the output.
func (p *Patch) applyDataBlocks(r *rom.Rom, out *buffer.Buffer) error {
	keys := newKeystream(r.Buffer, p.XORRangeLo, p.XORRangeHi, p.XORAddress)

	var blockStart int

	for !p.payload.EOF() {
		lead, err := p.payload.Read8()
		if err != nil {
			return curated.Errorf(Truncated, "data block header")
		}

		var blockSize int

		if lead != 0xff {
			// a new block. the lead byte is the top byte of a u32 ROM
			// offset, which is 0x00..0x03 for a 64MiB image, so it can
			// never collide with the 0xff continuation marker
			if _, err := p.payload.Seek(-1, io.SeekCurrent); err != nil {
				return err
			}

			bs, err := p.payload.Read32()
			if err != nil {
				return curated.Errorf(Truncated, "data block header")
			}
			sz, err := p.payload.Read16()
			if err != nil {
				return curated.Errorf(Truncated, "data block header")
			}

			blockStart = int(bs)
			blockSize = int(sz)
		} else {
			// a continuation of the previous block, possibly skipping keys
			keySkip, err := p.payload.Read8()
			if err != nil {
				return curated.Errorf(Truncated, "continuation header")
			}
			sz, err := p.payload.Read16()
			if err != nil {
				return curated.Errorf(Truncated, "continuation header")
			}

			if err := keys.skip(int(keySkip)); err != nil {
				return err
			}
			blockSize = int(sz)
		}

		data, err := p.payload.ReadBytes(blockSize)
		if err != nil {
			return curated.Errorf(Truncated, "data block payload")
		}

		for i, s := range data {
			if s == 0 {
				continue
			}
			k, err := keys.next()
			if err != nil {
				return err
			}
			data[i] = s ^ k
		}

		if err := out.WriteBytesAt(blockStart, data); err != nil {
			return err
		}
		blockStart += blockSize
	}

	return nil
}
