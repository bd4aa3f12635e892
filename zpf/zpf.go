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
	"bytes"
	"compress/flate"
	"compress/zlib"
	"io"
	"io/ioutil"

	"github.com/jetsetilly/gopherz64/buffer"
	"github.com/jetsetilly/gopherz64/curated"
)

// Error patterns returned by the zpf package.
const (
	BadMagic    = "zpf: bad magic (%q)"
	Truncated   = "zpf: truncated patch (%s)"
	MissingFile = "zpf: no dma record for source file (%#08x)"
)

// magic at the start of the decompressed patch payload.
const magic = "ZPFv1"

// payload layout.
const (
	configOffset    = 5
	dmaUpdateOffset = 21

	// u16 value terminating the DMA update table
	endOfUpdates = 0xffff
)

// Patch is a parsed ZPFv1 patch: the decompressed payload plus the
// configuration block that drives the XOR keystream.
type Patch struct {
	payload *buffer.Buffer

	// offset of the DMA table in the target ROM, as recorded by the patch
	// creator
	DMAOffset uint32

	// the keystream cycles through the ROM bytes in [XORRangeLo, XORRangeHi]
	// starting just after XORAddress
	XORRangeLo uint32
	XORRangeHi uint32
	XORAddress uint32
}

// NewPatch decompresses and parses raw ZPF bytes. The outer container is a
// zlib stream; raw deflate is accepted as a fallback.
func NewPatch(raw []byte) (*Patch, error) {
	payload, err := decompress(raw)
	if err != nil {
		return nil, curated.Errorf("zpf: %v", err)
	}

	if len(payload) < dmaUpdateOffset {
		return nil, curated.Errorf(Truncated, "payload shorter than header")
	}

	if string(payload[:len(magic)]) != magic {
		return nil, curated.Errorf(BadMagic, string(payload[:len(magic)]))
	}

	p := &Patch{payload: buffer.NewFromData(payload)}

	if p.DMAOffset, err = p.payload.Read32At(configOffset); err != nil {
		return nil, err
	}
	if p.XORRangeLo, err = p.payload.Read32At(configOffset + 4); err != nil {
		return nil, err
	}
	if p.XORRangeHi, err = p.payload.Read32At(configOffset + 8); err != nil {
		return nil, err
	}
	if p.XORAddress, err = p.payload.Read32At(configOffset + 12); err != nil {
		return nil, err
	}

	return p, nil
}

// decompress the outer container.
func decompress(raw []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		// not a zlib wrapper. some patch creators emit raw deflate
		fr := flate.NewReader(bytes.NewReader(raw))
		defer fr.Close()
		return readAll(fr)
	}
	defer r.Close()
	return readAll(r)
}

func readAll(r io.Reader) ([]byte, error) {
	p, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p, nil
}
