// seehuhn.de/go/genart - generative art from the command line
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package preset reads command line settings from a file.
//
// A preset file is a flat table mapping flag names to values, for example
//
//	size = "1920x1080"
//	depth = 12
//	backend = "gg"
//
// The format is chosen by the file name extension: ".toml", ".yaml",
// ".yml" or ".json".  Flags given explicitly on the command line take
// precedence over the values in a preset.
package preset

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Extensions lists the supported file name extensions.
var Extensions = []string{".toml", ".yaml", ".yml", ".json"}

// Preset maps flag names to their values.
type Preset map[string]string

// Load reads a preset from the named file.
func Load(fname string) (Preset, error) {
	body, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	p, err := Parse(filepath.Ext(fname), body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return p, nil
}

// Parse decodes a preset.  The argument ext selects the format and must
// be one of [Extensions].
func Parse(ext string, body []byte) (Preset, error) {
	var raw map[string]any
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(body, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(body, &raw)
	case ".json":
		err = json.Unmarshal(body, &raw)
	default:
		return nil, errors.New("preset file must have one of the extensions " +
			strings.Join(Extensions, ", "))
	}
	if err != nil {
		return nil, err
	}

	p := make(Preset, len(raw))
	for key, val := range raw {
		switch val := val.(type) {
		case string:
			p[key] = val
		case float64:
			// JSON numbers are always float64; avoid exponent notation
			p[key] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool, int, int64, uint64:
			p[key] = fmt.Sprint(val)
		default:
			return nil, fmt.Errorf("setting %q: unsupported value %v", key, val)
		}
	}
	return p, nil
}

// Apply sets the flags in fs from the preset.  Flags which have already
// been set on the command line are left unchanged.
func (p Preset) Apply(fs *flag.FlagSet) error {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if fs.Lookup(key) == nil {
			return fmt.Errorf("unknown setting %q", key)
		}
		if explicit[key] {
			continue
		}
		err := fs.Set(key, p[key])
		if err != nil {
			return fmt.Errorf("setting %q: %w", key, err)
		}
	}
	return nil
}
