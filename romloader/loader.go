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

package romloader

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopherz64/curated"
	"github.com/jetsetilly/gopherz64/digest"
)

// Loader is used to specify the ROM image or patch file to load. The Format
// field is a hint only; the byte ordering that actually matters is detected
// from the image content by the rom package.
type Loader struct {
	// filename of image to load
	Filename string

	// one of the FileFormats values, or "AUTO" to derive from the file
	// extension
	Format string

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() return this data
	Data []byte
}

// FileFormats is the list of format labels recognised by the romloader
// package.
var FileFormats = [...]string{"Z64", "V64", "N64", "ZPF"}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument will be used to set the Format field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
func NewLoader(filename string, format string) Loader {
	l := Loader{
		Filename: filename,
		Format:   "AUTO",
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != "AUTO" && format != "" {
		l.Format = format
		return l
	}

	switch strings.ToUpper(path.Ext(filename)) {
	case ".Z64":
		l.Format = "Z64"
	case ".V64":
		l.Format = "V64"
	case ".N64":
		l.Format = "N64"
	case ".ZPF":
		l.Format = "ZPF"
	}

	return l
}

// ShortName returns a shortened version of the Loader filename.
func (l Loader) ShortName() string {
	sn := path.Base(l.Filename)
	return strings.TrimSuffix(sn, path.Ext(l.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (l Loader) HasLoaded() bool {
	return len(l.Data) > 0
}

// IsPatch returns true if the loader refers to a ZPF patch rather than a
// ROM image.
func (l Loader) IsPatch() bool {
	return l.Format == "ZPF"
}

// Load the image data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (l *Loader) Load() error {
	if len(l.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(l.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(l.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		l.Data, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		f, err := os.Open(l.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer f.Close()

		l.Data, err = ioutil.ReadAll(f)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash and check for consistency
	hash := digest.Bytes(l.Data)
	if l.Hash != "" && l.Hash != hash {
		return curated.Errorf("romloader: %v", "unexpected hash value")
	}
	l.Hash = hash

	return nil
}
