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

// Package buildinfo describes the version of the running program.
package buildinfo

import (
	"runtime/debug"
)

// Info describes how a command was built.
type Info struct {
	Tool     string
	Module   string
	Version  string
	Revision string
	Dirty    bool
}

// Read returns the build information for the named tool.
// Fields which cannot be determined are left empty.
func Read(tool string) Info {
	info := Info{Tool: tool}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.Module = bi.Main.Path
	if v := bi.Main.Version; v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String returns a short version string, e.g.
// "decor (seehuhn.de/go/genart v0.1.0)".  If no module version is known,
// the VCS revision is used instead.
func (info Info) String() string {
	if info.Module == "" {
		return info.Tool
	}

	version := info.Version
	if version == "" {
		version = info.Revision
		if len(version) > 8 {
			version = version[:8]
		}
		if version != "" && info.Dirty {
			version += "+dirty"
		}
	}
	if version == "" {
		return info.Tool
	}
	return info.Tool + " (" + info.Module + " " + version + ")"
}
