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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sonicfind/pcsx2/paths"
	"github.com/sonicfind/pcsx2/test"
)

func TestResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".pcsx2rec", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".pcsx2rec", "foo", "bar", "baz"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".pcsx2rec", "baz"))

	_, err = os.Stat(filepath.Join(".pcsx2rec", "foo", "bar"))
	test.ExpectSuccess(t, err)
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("recording", "Ratchet and Clank")
	test.ExpectEquality(t, strings.HasPrefix(fn, "recording_Ratchet_and_Clank_"), true)
	test.ExpectEquality(t, strings.HasSuffix(fn, paths.MovieExtension), true)

	fn = paths.UniqueFilename("recording", "  ")
	test.ExpectEquality(t, strings.Count(fn, "_"), 2)
}
