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

// Package test contains helper functions to help with testing. Nothing in
// this package is to be used in the main codebase, only in _test.go files.
package test
