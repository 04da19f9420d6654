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

package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sonicfind/pcsx2/prefs"
	"github.com/sonicfind/pcsx2/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectFailure(t, v.Set(1.5))
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("hello world"))
	test.ExpectEquality(t, v.String(), "hello world")
	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "hello")
	test.ExpectSuccess(t, v.Set("abcdefgh"))
	test.ExpectEquality(t, v.String(), "abcde")
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, v.Set("0x11"))
	test.ExpectEquality(t, v.Get().(int), 0x11)
	test.ExpectFailure(t, v.Set("eleven"))
	test.ExpectEquality(t, v.Get().(int), 0x11)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) > 0xff {
			return errors.New("too big")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(0x10))
	test.ExpectEquality(t, post, 0x10)
	test.ExpectFailure(t, v.Set(0x100))
	test.ExpectEquality(t, v.Get().(int), 0x10)
	test.ExpectEquality(t, post, 0x10)
}

func TestDiskRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences.yaml")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var s prefs.String
	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("recording.logpads", &b))
	test.ExpectSuccess(t, dsk.Add("recording.author", &s))
	test.ExpectSuccess(t, dsk.Add("recording.pads", &i))
	test.ExpectFailure(t, dsk.Add("recording.pads", &i))
	test.ExpectFailure(t, dsk.Add("bad key", &i))

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, s.Set("sonicfind"))
	test.ExpectSuccess(t, i.Set(0x11))
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate), true)

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, s.String(), "")

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, s.String(), "sonicfind")
	test.ExpectEquality(t, i.Get().(int), 0x11)
}

func TestDiskUnusedKeysPreserved(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences.yaml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("other.value: 42\nrecording.author: foo\n"), 0o600))

	dsk, _ := prefs.NewDisk(fn)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("recording.author", &s))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, s.String(), "foo")
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(data), "other.value: 42"), true)
}

func TestLoadMissingFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences.yaml")
	dsk, _ := prefs.NewDisk(fn)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("recording.author", &s))

	test.ExpectSuccess(t, dsk.Load(false))
	_, err := os.Stat(fn)
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, dsk.Load(true))
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	test.DemandSuccess(t, os.WriteFile(envFile, []byte("PCSX2REC_TEST_AUTHOR=from dotenv\n"), 0o600))
	t.Setenv("PCSX2REC_TEST_PADS", "0x03")

	dsk, _ := prefs.NewDisk(filepath.Join(dir, "preferences.yaml"))
	var s prefs.String
	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("recording.author", &s))
	test.ExpectSuccess(t, dsk.Add("recording.pads", &i))
	test.ExpectSuccess(t, dsk.BindEnv("recording.author", "PCSX2REC_TEST_AUTHOR"))
	test.ExpectSuccess(t, dsk.BindEnv("recording.pads", "PCSX2REC_TEST_PADS"))
	test.ExpectFailure(t, dsk.BindEnv("recording.missing", "PCSX2REC_TEST_MISSING"))

	// the missing file is skipped
	test.ExpectSuccess(t, dsk.LoadEnv(filepath.Join(dir, "missing.env"), envFile))
	defer os.Unsetenv("PCSX2REC_TEST_AUTHOR")

	test.ExpectEquality(t, s.String(), "from dotenv")
	test.ExpectEquality(t, i.Get().(int), 3)
}
