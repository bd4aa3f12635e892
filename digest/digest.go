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

// Package digest fingerprints byte buffers. The romloader package uses it
// to record the hash of every file it loads.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopherz64/buffer"
)

// Bytes returns the SHA1 fingerprint of the data as a hex string.
func Bytes(data []byte) string {
	return fmt.Sprintf("%x", sha1.Sum(data))
}

// Buffer returns the SHA1 fingerprint of the whole buffer.
func Buffer(b *buffer.Buffer) string {
	return Bytes(b.Data())
}
