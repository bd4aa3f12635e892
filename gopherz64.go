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

package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherz64/curated"
	"github.com/jetsetilly/gopherz64/logger"
	"github.com/jetsetilly/gopherz64/modalflag"
	"github.com/jetsetilly/gopherz64/performance"
	"github.com/jetsetilly/gopherz64/rom"
	"github.com/jetsetilly/gopherz64/romloader"
	"github.com/jetsetilly/gopherz64/transform"
	"github.com/jetsetilly/gopherz64/version"
	"github.com/jetsetilly/gopherz64/zpf"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("INFLATE", "DEFLATE", "PATCH", "DMA", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "INFLATE":
		err = inflateMode(md)
	case "DEFLATE":
		err = deflateMode(md)
	case "PATCH":
		err = patchMode(md)
	case "DMA":
		err = dmaMode(md)
	case "VERSION":
		v, r := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(10)
	}
}

// loadRom loads and opens a ROM image, reporting the hash of what was
// loaded.
func loadRom(filename string) (*rom.Rom, error) {
	ld := romloader.NewLoader(filename, "AUTO")
	if err := ld.Load(); err != nil {
		return nil, err
	}

	r, err := rom.New(ld.Data)
	if err != nil {
		return nil, err
	}

	logger.Logf("loader", "%s: %s (%s)", ld.ShortName(), ld.Hash, r.Order)

	return r, nil
}

func inflateMode(md *modalflag.Modes) error {
	md.NewMode()

	outFile := md.AddString("o", "out.z64", "output ROM filename")
	exclFile := md.AddString("exclusions", "", "write exclusion list to file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("no ROM file specified")
	case 1:
		r, err := loadRom(md.GetArg(0))
		if err != nil {
			return err
		}

		res, err := transform.Inflate(r)
		if err != nil {
			return err
		}

		if err := ioutil.WriteFile(*outFile, res.Data.Data(), 0644); err != nil {
			return curated.Errorf("inflate: %v", err)
		}

		if *exclFile != "" {
			if err := writeExclusions(*exclFile, res.Exclusions); err != nil {
				return err
			}
		}

		fmt.Printf("%s written (%d raw records)\n", *outFile, len(res.Exclusions))
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func deflateMode(md *modalflag.Modes) error {
	md.NewMode()

	outFile := md.AddString("o", "out-compressed.z64", "output ROM filename")
	exclFile := md.AddString("exclusions", "", "read exclusion list from file")
	profile := md.AddString("profile", "none", "run through profiler (cpu, mem, all)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("no ROM file specified")
	case 1:
		r, err := loadRom(md.GetArg(0))
		if err != nil {
			return err
		}

		var exclusions []int
		if *exclFile != "" {
			exclusions, err = readExclusions(*exclFile)
			if err != nil {
				return err
			}
		}

		// compressing takes a while. allow a ctrl-c to abandon the run
		// cleanly at the next record boundary
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		defer signal.Stop(intChan)

		df := transform.Deflater{
			OnRecord: func(i int, count int) bool {
				select {
				case <-intChan:
					return false
				default:
				}
				fmt.Printf("\rcompressing: %d/%d", i, count-1)
				return true
			},
		}

		err = performance.RunProfiler(md.Output, prf, "deflate", func() error {
			out, err := df.Deflate(r, exclusions)
			if err != nil {
				return err
			}
			return ioutil.WriteFile(*outFile, out.Data(), 0644)
		})
		if err != nil {
			return err
		}

		fmt.Printf("\r%s written\n", *outFile)
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func patchMode(md *modalflag.Modes) error {
	md.NewMode()

	outFile := md.AddString("o", "out-patched.z64", "output ROM filename")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if len(md.RemainingArgs()) != 2 {
		return curated.Errorf("patch mode requires a patch file and a ROM file")
	}

	ld := romloader.NewLoader(md.GetArg(0), "ZPF")
	if err := ld.Load(); err != nil {
		return err
	}

	patch, err := zpf.NewPatch(ld.Data)
	if err != nil {
		return err
	}

	r, err := loadRom(md.GetArg(1))
	if err != nil {
		return err
	}

	out, err := patch.Apply(r)
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(*outFile, out.Data(), 0644); err != nil {
		return curated.Errorf("patch: %v", err)
	}

	fmt.Printf("%s written\n", *outFile)

	return nil
}

func dmaMode(md *modalflag.Modes) error {
	md.NewMode()

	viz := md.AddString("viz", "", "write a graphviz visualisation of the DMA table to file")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("no ROM file specified")
	case 1:
		r, err := loadRom(md.GetArg(0))
		if err != nil {
			return err
		}

		records := make([]rom.Record, 0, r.DMACount())
		for i := 0; i < r.DMACount(); i++ {
			rec, err := r.ReadRecord(i)
			if err != nil {
				return err
			}
			fmt.Printf("%4d  %s\n", i, rec)
			if rec.IsTerminator() && i > 0 {
				break
			}
			records = append(records, rec)
		}

		if err := r.VerifyNonOverlapping(); err != nil {
			return err
		}
		fmt.Println("dma table is consistent")

		if *viz != "" {
			f, err := os.Create(*viz)
			if err != nil {
				return curated.Errorf("dma: %v", err)
			}
			defer f.Close()
			memviz.Map(f, &records)
		}
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

// writeExclusions stores an exclusion list as one signed decimal index per
// line.
func writeExclusions(filename string, exclusions []int) error {
	s := strings.Builder{}
	for _, e := range exclusions {
		s.WriteString(strconv.Itoa(e))
		s.WriteString("\n")
	}
	if err := ioutil.WriteFile(filename, []byte(s.String()), 0644); err != nil {
		return curated.Errorf("exclusions: %v", err)
	}
	return nil
}

// readExclusions loads an exclusion list written by writeExclusions.
func readExclusions(filename string) ([]int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("exclusions: %v", err)
	}
	defer f.Close()

	var exclusions []int

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		e, err := strconv.Atoi(line)
		if err != nil {
			return nil, curated.Errorf("exclusions: %v", err)
		}
		exclusions = append(exclusions, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("exclusions: %v", err)
	}

	return exclusions, nil
}
