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
	"testing"

	"github.com/jetsetilly/gopherz64/buffer"
	"github.com/jetsetilly/gopherz64/curated"
	"github.com/jetsetilly/gopherz64/test"
)

func TestTableDiscovery(t *testing.T) {
	data := make([]byte, 0x2000)
	b := buffer.NewFromData(data)

	test.ExpectedSuccess(t, b.Write32At(0x1060, 0x00000000))
	test.ExpectedSuccess(t, b.Write32At(0x1064, 0x60100000))

	off, err := findTableOffset(b)
	test.ExpectedSuccess(t, err)
	test.Equate(t, off, 0x1060)
}

func TestTableDiscoveryReversedSignature(t *testing.T) {
	// the signature as it reads on a big-endian image
	data := make([]byte, 0x2000)
	b := buffer.NewFromData(data)

	test.ExpectedSuccess(t, b.Write32At(0x1064, 0x00001060))

	off, err := findTableOffset(b)
	test.ExpectedSuccess(t, err)
	test.Equate(t, off, 0x1060)
}

func TestTableDiscoveryLaterOffset(t *testing.T) {
	data := make([]byte, 0x10000)
	b := buffer.NewFromData(data)

	test.ExpectedSuccess(t, b.Write32At(0x7434, 0x60100000))

	off, err := findTableOffset(b)
	test.ExpectedSuccess(t, err)
	test.Equate(t, off, 0x7430)
}

func TestTableMissing(t *testing.T) {
	b := buffer.New(0x2000)

	_, err := findTableOffset(b)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, DMAMissing), true)

	// a buffer smaller than the scan start offset has no table either
	b = buffer.New(0x1000)
	_, err = findTableOffset(b)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, DMAMissing), true)
}

func TestRecordState(t *testing.T) {
	rec := Record{VStart: 0x1000, VEnd: 0x2000, PStart: 0x1000, PEnd: 0}
	test.Equate(t, rec.State(), "raw")
	test.Equate(t, rec.VSize(), 0x1000)
	test.Equate(t, rec.PSize(), 0x1000)

	rec = Record{VStart: 0x1000, VEnd: 0x2000, PStart: 0x4000, PEnd: 0x4800}
	test.Equate(t, rec.State(), "compressed")
	test.Equate(t, rec.PSize(), 0x800)

	rec = Record{VStart: 0x1000, VEnd: 0x2000, PStart: NullFile, PEnd: NullFile}
	test.Equate(t, rec.State(), "null")
	test.Equate(t, rec.PSize(), 0)

	rec = Record{}
	test.Equate(t, rec.IsTerminator(), true)
	test.Equate(t, rec.IsEmpty(), true)
}
