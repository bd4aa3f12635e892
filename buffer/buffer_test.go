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

package buffer_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/gopherz64/buffer"
	"github.com/jetsetilly/gopherz64/curated"
	"github.com/jetsetilly/gopherz64/test"
)

func TestAbsoluteAccess(t *testing.T) {
	b := buffer.New(16)

	test.ExpectedSuccess(t, b.Write32At(0, 0x80371240))

	v32, err := b.Read32At(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v32, 0x80371240)

	v16, err := b.Read16At(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v16, 0x8037)

	v8, err := b.Read8At(3)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v8, 0x40)

	v24, err := b.Read24At(1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v24, 0x371240)

	// absolute access never moves the cursor
	test.Equate(t, b.Pos(), 0)

	// little-endian forms
	vle, err := b.Read32LEAt(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, vle, 0x40123780)

	v16le, err := b.Read16LEAt(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v16le, 0x3780)
}

func TestCursorAccess(t *testing.T) {
	b := buffer.New(8)

	test.ExpectedSuccess(t, b.Write16(0xbeef))
	test.ExpectedSuccess(t, b.Write32(0x01020304))
	test.Equate(t, b.Pos(), 6)

	_, err := b.Seek(0, io.SeekStart)
	test.ExpectedSuccess(t, err)

	v16, err := b.Read16()
	test.ExpectedSuccess(t, err)
	test.Equate(t, v16, 0xbeef)
	test.Equate(t, b.Pos(), 2)

	v32, err := b.Read32()
	test.ExpectedSuccess(t, err)
	test.Equate(t, v32, 0x01020304)

	// seek from end and eof
	pos, err := b.Seek(-2, io.SeekEnd)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(pos), 6)
	test.Equate(t, b.EOF(), false)

	_, err = b.Seek(2, io.SeekCurrent)
	test.ExpectedSuccess(t, err)
	test.Equate(t, b.EOF(), true)
}

func TestBounds(t *testing.T) {
	b := buffer.New(4)

	_, err := b.Read32At(1)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, buffer.OutOfRange), true)

	err = b.Write8At(4, 0)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, buffer.OutOfRange), true)

	_, err = b.Read8At(-1)
	test.ExpectedFailure(t, err)

	// reading past the end with the cursor
	_, err = b.Seek(0, io.SeekEnd)
	test.ExpectedSuccess(t, err)
	_, err = b.Read8()
	test.ExpectedFailure(t, err)

	// seeking before the start of the buffer is an error
	_, err = b.Seek(-1, io.SeekStart)
	test.ExpectedFailure(t, err)
}

func TestFillAndWindow(t *testing.T) {
	b := buffer.New(8)

	test.ExpectedSuccess(t, b.Fill(0xaa, 4, 2))

	v8, err := b.Read8At(1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v8, 0)

	v8, err = b.Read8At(2)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v8, 0xaa)

	v8, err = b.Read8At(5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v8, 0xaa)

	// a window is a view, not a copy
	w, err := b.Window(2, 2)
	test.ExpectedSuccess(t, err)
	w[0] = 0x55

	v8, err = b.Read8At(2)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v8, 0x55)

	_, err = b.Window(6, 4)
	test.ExpectedFailure(t, err)
}

func TestClone(t *testing.T) {
	b := buffer.New(4)
	test.ExpectedSuccess(t, b.Write32At(0, 0x11223344))

	c := b.Clone()
	test.ExpectedSuccess(t, c.Write8At(0, 0xff))

	// the original is unaffected by writes to the clone
	v, err := b.Read8At(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x11)
}
