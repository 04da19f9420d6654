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

package version

import (
	"strings"
	"testing"

	"github.com/sonicfind/pcsx2/test"
)

func TestEmulator(t *testing.T) {
	e := Emulator()
	test.ExpectSuccess(t, strings.HasPrefix(e, ApplicationName+" "))

	// must fit in the emulator field of a movie header
	test.ExpectSuccess(t, len(e) < 50)
}

func TestNumberedRelease(t *testing.T) {
	v, _ := fromBuildInfo("v1.2.3")
	test.ExpectEquality(t, v, "v1.2.3")

	v, _ = fromBuildInfo("")
	test.ExpectSuccess(t, v == "local" || v == "unreleased")
}
