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

// Package performance wraps a transformation run with the profiling tools
// in the Go runtime. Deflating a full ROM is the longest operation in the
// application by a wide margin, which makes it the usual profiling target.
package performance

import (
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jetsetilly/gopherz64/curated"
	"github.com/jetsetilly/gopherz64/statsview"
)

// Profile is the list of profiling methods to apply to a run.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0x00
	ProfileCPU  Profile = 0x01
	ProfileMem  Profile = 0x02
	ProfileAll  Profile = ProfileCPU | ProfileMem
)

// ParseProfileString decodes a comma separated list of profile names.
func ParseProfileString(spec string) (Profile, error) {
	p := ProfileNone

	for _, s := range strings.Split(spec, ",") {
		switch strings.ToUpper(strings.TrimSpace(s)) {
		case "NONE", "":
			// accepted for completeness
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf("performance: unknown profile (%s)", s)
		}
	}

	return p, nil
}

// RunProfiler runs the supplied function with the requested profiling
// methods. Profile files are named after the tag argument. If a statsview
// build has been made, the stats server is launched for the duration of the
// run.
func RunProfiler(output io.Writer, profile Profile, tag string, run func() error) error {
	if statsview.Available() {
		statsview.Launch(output)
	}

	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(tag + "_cpu.profile")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(tag + "_mem.profile")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
