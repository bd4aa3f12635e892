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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherz64/logger"
	"github.com/jetsetilly/gopherz64/test"
)

func TestCentralLogger(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}
	logger.Write(w)
	test.Equate(t, w.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(w)
	test.Equate(t, w.String(), "test: this is a test\n")

	// clear the builder before continuing, makes comparisons easier to
	// manage
	w.Reset()

	logger.Logf("test2", "this is %s test", "another")
	logger.Write(w)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() is okay
	w.Reset()
	logger.Tail(w, 100)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries only returns the most recent
	w.Reset()
	logger.Tail(w, 1)
	test.Equate(t, w.String(), "test2: this is another test\n")

	logger.Clear()
	w.Reset()
	logger.Write(w)
	test.Equate(t, w.String(), "")
}

func TestRepeatCoalescing(t *testing.T) {
	logger.Clear()

	logger.Log("tag", "repeated detail")
	logger.Log("tag", "repeated detail")
	logger.Log("tag", "repeated detail")

	w := &strings.Builder{}
	logger.Write(w)
	test.Equate(t, w.String(), "tag: repeated detail (repeat x3)\n")

	logger.Clear()
}
