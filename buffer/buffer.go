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

package buffer

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherz64/curated"
)

// OutOfRange is the error pattern returned on any access outside the bounds
// of the buffer.
const OutOfRange = "buffer: access out of range (%s)"

// Buffer provides sequential and absolute access to a fixed-size byte slice.
// Multibyte values are big-endian unless the function name says otherwise.
//
// Cursor functions advance the cursor by the size of the access. Functions
// with the At suffix take an absolute offset and leave the cursor unchanged.
type Buffer struct {
	data []byte
	crs  int
}

// New allocates a zeroed Buffer of the given size.
func New(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// NewFromData wraps an existing byte slice. The Buffer takes ownership of
// the slice.
func NewFromData(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Size returns the fixed size of the buffer.
func (b *Buffer) Size() int {
	return len(b.data)
}

// Data returns the underlying byte slice.
func (b *Buffer) Data() []byte {
	return b.data
}

// Clone returns a deep copy of the buffer. The cursor of the clone is reset.
func (b *Buffer) Clone() *Buffer {
	d := make([]byte, len(b.data))
	copy(d, b.data)
	return &Buffer{data: d}
}

// Pos returns the current cursor position.
func (b *Buffer) Pos() int {
	return b.crs
}

// EOF returns true if the cursor is at or past the end of the buffer.
func (b *Buffer) EOF() bool {
	return b.crs >= len(b.data)
}

// Seek moves the cursor. The whence value is one of io.SeekStart,
// io.SeekCurrent or io.SeekEnd. Seeking before the start of the buffer is an
// error. Seeking past the end is allowed (EOF() will return true).
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var npos int

	switch whence {
	case io.SeekStart:
		npos = int(offset)
	case io.SeekCurrent:
		npos = b.crs + int(offset)
	case io.SeekEnd:
		npos = len(b.data) + int(offset)
	default:
		return int64(b.crs), curated.Errorf(OutOfRange, fmt.Sprintf("unknown seek whence %d", whence))
	}

	if npos < 0 {
		return int64(b.crs), curated.Errorf(OutOfRange, fmt.Sprintf("seek to %d", npos))
	}

	b.crs = npos
	return int64(npos), nil
}

// check that an access of length n at address addr is inside the buffer.
func (b *Buffer) check(addr int, n int) error {
	if addr < 0 || n < 0 || addr+n > len(b.data) {
		return curated.Errorf(OutOfRange, fmt.Sprintf("%d bytes at %#08x", n, addr))
	}
	return nil
}

// Read8At returns the byte at the absolute address.
func (b *Buffer) Read8At(addr int) (uint8, error) {
	if err := b.check(addr, 1); err != nil {
		return 0, err
	}
	return b.data[addr], nil
}

// Read16At returns the big-endian 16-bit value at the absolute address.
func (b *Buffer) Read16At(addr int) (uint16, error) {
	if err := b.check(addr, 2); err != nil {
		return 0, err
	}
	return uint16(b.data[addr])<<8 | uint16(b.data[addr+1]), nil
}

// Read24At returns the big-endian 24-bit value at the absolute address.
func (b *Buffer) Read24At(addr int) (uint32, error) {
	if err := b.check(addr, 3); err != nil {
		return 0, err
	}
	return uint32(b.data[addr])<<16 | uint32(b.data[addr+1])<<8 | uint32(b.data[addr+2]), nil
}

// Read32At returns the big-endian 32-bit value at the absolute address.
func (b *Buffer) Read32At(addr int) (uint32, error) {
	if err := b.check(addr, 4); err != nil {
		return 0, err
	}
	return uint32(b.data[addr])<<24 | uint32(b.data[addr+1])<<16 |
		uint32(b.data[addr+2])<<8 | uint32(b.data[addr+3]), nil
}

// Read16LEAt returns the little-endian 16-bit value at the absolute address.
func (b *Buffer) Read16LEAt(addr int) (uint16, error) {
	if err := b.check(addr, 2); err != nil {
		return 0, err
	}
	return uint16(b.data[addr]) | uint16(b.data[addr+1])<<8, nil
}

// Read32LEAt returns the little-endian 32-bit value at the absolute address.
func (b *Buffer) Read32LEAt(addr int) (uint32, error) {
	if err := b.check(addr, 4); err != nil {
		return 0, err
	}
	return uint32(b.data[addr]) | uint32(b.data[addr+1])<<8 |
		uint32(b.data[addr+2])<<16 | uint32(b.data[addr+3])<<24, nil
}

// Write8At writes a byte at the absolute address.
func (b *Buffer) Write8At(addr int, v uint8) error {
	if err := b.check(addr, 1); err != nil {
		return err
	}
	b.data[addr] = v
	return nil
}

// Write16At writes a big-endian 16-bit value at the absolute address.
func (b *Buffer) Write16At(addr int, v uint16) error {
	if err := b.check(addr, 2); err != nil {
		return err
	}
	b.data[addr] = uint8(v >> 8)
	b.data[addr+1] = uint8(v)
	return nil
}

// Write24At writes a big-endian 24-bit value at the absolute address.
func (b *Buffer) Write24At(addr int, v uint32) error {
	if err := b.check(addr, 3); err != nil {
		return err
	}
	b.data[addr] = uint8(v >> 16)
	b.data[addr+1] = uint8(v >> 8)
	b.data[addr+2] = uint8(v)
	return nil
}

// Write32At writes a big-endian 32-bit value at the absolute address.
func (b *Buffer) Write32At(addr int, v uint32) error {
	if err := b.check(addr, 4); err != nil {
		return err
	}
	b.data[addr] = uint8(v >> 24)
	b.data[addr+1] = uint8(v >> 16)
	b.data[addr+2] = uint8(v >> 8)
	b.data[addr+3] = uint8(v)
	return nil
}

// Read8 reads the byte at the cursor and advances the cursor.
func (b *Buffer) Read8() (uint8, error) {
	v, err := b.Read8At(b.crs)
	if err != nil {
		return 0, err
	}
	b.crs++
	return v, nil
}

// Read16 reads the big-endian 16-bit value at the cursor and advances the
// cursor.
func (b *Buffer) Read16() (uint16, error) {
	v, err := b.Read16At(b.crs)
	if err != nil {
		return 0, err
	}
	b.crs += 2
	return v, nil
}

// Read24 reads the big-endian 24-bit value at the cursor and advances the
// cursor.
func (b *Buffer) Read24() (uint32, error) {
	v, err := b.Read24At(b.crs)
	if err != nil {
		return 0, err
	}
	b.crs += 3
	return v, nil
}

// Read32 reads the big-endian 32-bit value at the cursor and advances the
// cursor.
func (b *Buffer) Read32() (uint32, error) {
	v, err := b.Read32At(b.crs)
	if err != nil {
		return 0, err
	}
	b.crs += 4
	return v, nil
}

// Write8 writes a byte at the cursor and advances the cursor.
func (b *Buffer) Write8(v uint8) error {
	if err := b.Write8At(b.crs, v); err != nil {
		return err
	}
	b.crs++
	return nil
}

// Write16 writes a big-endian 16-bit value at the cursor and advances the
// cursor.
func (b *Buffer) Write16(v uint16) error {
	if err := b.Write16At(b.crs, v); err != nil {
		return err
	}
	b.crs += 2
	return nil
}

// Write32 writes a big-endian 32-bit value at the cursor and advances the
// cursor.
func (b *Buffer) Write32(v uint32) error {
	if err := b.Write32At(b.crs, v); err != nil {
		return err
	}
	b.crs += 4
	return nil
}

// ReadBytes reads n bytes at the cursor and advances the cursor. The returned
// slice is a copy.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	p, err := b.ReadBytesAt(b.crs, n)
	if err != nil {
		return nil, err
	}
	b.crs += n
	return p, nil
}

// ReadBytesAt reads n bytes at the absolute address. The returned slice is a
// copy.
func (b *Buffer) ReadBytesAt(addr int, n int) ([]byte, error) {
	if err := b.check(addr, n); err != nil {
		return nil, err
	}
	p := make([]byte, n)
	copy(p, b.data[addr:addr+n])
	return p, nil
}

// WriteBytes writes the slice at the cursor and advances the cursor.
func (b *Buffer) WriteBytes(p []byte) error {
	if err := b.WriteBytesAt(b.crs, p); err != nil {
		return err
	}
	b.crs += len(p)
	return nil
}

// WriteBytesAt writes the slice at the absolute address.
func (b *Buffer) WriteBytesAt(addr int, p []byte) error {
	if err := b.check(addr, len(p)); err != nil {
		return err
	}
	copy(b.data[addr:], p)
	return nil
}

// Fill writes length copies of value starting at the absolute address.
func (b *Buffer) Fill(value byte, length int, addr int) error {
	if err := b.check(addr, length); err != nil {
		return err
	}
	for i := addr; i < addr+length; i++ {
		b.data[i] = value
	}
	return nil
}

// Window returns a view (not a copy) of the buffer at the absolute address.
// Mutating the view mutates the buffer.
func (b *Buffer) Window(addr int, length int) ([]byte, error) {
	if err := b.check(addr, length); err != nil {
		return nil, err
	}
	return b.data[addr : addr+length], nil
}
