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

// Licensify adds the GPL license header to all Go source files below the
// current directory.  With -check, files are only reported and the exit
// status is 1 if any header is missing.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/genart - generative art from the command line
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

`

var check = flag.Bool("check", false, "only report files without license header")

func main() {
	flag.Parse()

	missing, err := licensify(".", *check, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "licensify:", err)
		os.Exit(1)
	}
	if *check && len(missing) > 0 {
		os.Exit(1)
	}
}

// licensify walks the tree below root and returns the Go files which did
// not start with the license header.  Unless checkOnly is set, the header
// is added to these files.  Directories starting with "_" or "." are
// skipped, following the conventions of the go tool.
func licensify(root string, checkOnly bool, w io.Writer) ([]string, error) {
	var missing []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if bytes.HasPrefix(body, []byte(header)) {
			return nil
		}
		missing = append(missing, path)

		switch {
		case checkOnly:
			fmt.Fprintln(w, "missing header: "+path)
			return nil
		case !bytes.HasPrefix(body, []byte("package ")) && !bytes.HasPrefix(body, []byte("//")):
			fmt.Fprintln(w, "ATTENTION "+path)
			return nil
		case bytes.HasPrefix(body, []byte("// seehuhn.de/go/")):
			// an older header which needs manual attention
			fmt.Fprintln(w, "ATTENTION "+path)
			return nil
		}

		fmt.Fprintln(w, "updating "+path)
		return os.WriteFile(path, append([]byte(header), body...), 0o644)
	})
	return missing, err
}
