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

// Package version records the version and vcs revision of the build.
package version

import (
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GopherZ64"

// version number of a numbered release. empty when the project was not
// built from a release tag
var number string

// revision contains the vcs revision. If the source had been modified but
// not committed at build time the string is suffixed with "+dirty".
var revision string

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var vcsRevision string
	var vcsModified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			vcsRevision = v.Value
		case "vcs.modified":
			vcsModified = v.Value == "true"
		}
	}

	if vcsRevision != "" {
		revision = vcsRevision
		if vcsModified {
			revision += "+dirty"
		}
	}
}

// Version returns the version string and the vcs revision. The version
// string is "unreleased" if the project was not built from a release tag.
func Version() (string, string) {
	v := number
	if v == "" {
		v = "unreleased"
	}
	r := revision
	if r == "" {
		r = "no vcs information"
	}
	return v, r
}
