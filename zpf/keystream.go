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
	"github.com/jetsetilly/gopherz64/buffer"
	"github.com/jetsetilly/gopherz64/curated"
)

// keystream draws nonzero bytes from a bounded window of the input ROM. The
// patch encoding relies on keys never being zero: a zero byte in the coded
// payload means a literal zero and does not consume a key.
type keystream struct {
	rom  *buffer.Buffer
	lo   uint32
	hi   uint32
	addr uint32
}

func newKeystream(rom *buffer.Buffer, lo, hi, addr uint32) *keystream {
	return &keystream{rom: rom, lo: lo, hi: hi, addr: addr}
}

// next returns the next nonzero key. The address advances by at least one
// and wraps from the high end of the range to the low end, both inclusive.
func (k *keystream) next() (uint8, error) {
	// the span of the window bounds the scan. a window with no nonzero
	// byte would otherwise never terminate
	span := int(k.hi) - int(k.lo) + 2

	for i := 0; i < span; i++ {
		k.addr++
		if k.addr > k.hi {
			k.addr = k.lo
		}

		v, err := k.rom.Read8At(int(k.addr))
		if err != nil {
			return 0, err
		}
		if v != 0 {
			return v, nil
		}
	}

	return 0, curated.Errorf(Truncated, "xor key window contains no nonzero byte")
}

// skip consumes n nonzero keys.
func (k *keystream) skip(n int) error {
	for i := 0; i < n; i++ {
		if _, err := k.next(); err != nil {
			return err
		}
	}
	return nil
}
