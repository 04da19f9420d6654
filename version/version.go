// This file is part of pcsx2rec.
//
// pcsx2rec is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pcsx2rec is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pcsx2rec.  If not, see <https://www.gnu.org/licenses/>.

// Package version identifies the build of pcsx2rec. The identification is
// written to the header of every new movie so that a replay can report which
// build the movie was made with.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "pcsx2rec"

// number is set by the linker for numbered releases:
//
//	-ldflags "-X github.com/sonicfind/pcsx2/version.number=v0.1.0"
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version string is "unreleased" if the build has VCS information but no
// version number, and "local" if it has neither.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Emulator returns the string written to the emulator field of a movie
// header. eg. "pcsx2rec v0.1.0" or "pcsx2rec unreleased (1a2b3c4d)".
func Emulator() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	if len(revision) >= 8 && revision != noRevision {
		return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision[:8])
	}
	return fmt.Sprintf("%s %s", ApplicationName, version)
}

const noRevision = "no revision information"

func init() {
	version, revision = fromBuildInfo(number)
}

// fromBuildInfo returns the version and revision strings for the running
// binary.
func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := noRevision
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
