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

package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences.yaml"

// WarningBoilerPlate is written at the top of every preferences file.
const WarningBoilerPlate = "# preferences file for pcsx2rec. do not edit while pcsx2rec is running"

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
	env     map[string]string

	// values found in the file that have not been added to the Disk. they
	// are preserved when saving so that different parts of the program can
	// share a single file
	unused map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		env:     make(map[string]string),
		unused:  make(map[string]Value),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the preference in the YAML file and must be
// unique.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.ContainsAny(key, " \t\n") {
		return fmt.Errorf("prefs: illegal key: %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already in use: %s", key)
	}
	dsk.entries[key] = p
	return nil
}

// BindEnv associates a preference key with an environment variable. The
// variable is read by LoadEnv().
func (dsk *Disk) BindEnv(key string, env string) error {
	if _, ok := dsk.entries[key]; !ok {
		return fmt.Errorf("prefs: cannot bind environment to unknown key: %s", key)
	}
	dsk.env[key] = env
	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	// merge unused values with current values. current values take priority
	data := make(map[string]Value, len(dsk.unused)+len(dsk.entries))
	for k, v := range dsk.unused {
		data[k] = v
	}
	for k, p := range dsk.entries {
		data[k] = p.Get()
	}

	b, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	s := fmt.Sprintf("%s\n%s", WarningBoilerPlate, b)
	if err := os.WriteFile(dsk.path, []byte(s), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If the file does not exist and
// saveOnNotExist is true then the current values are saved to a new file.
func (dsk *Disk) Load(saveOnNotExist bool) error {
	b, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if saveOnNotExist {
				return dsk.Save()
			}
			return nil
		}
		return fmt.Errorf("prefs: %w", err)
	}

	data := make(map[string]Value)
	if err := yaml.Unmarshal(b, &data); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	for k, v := range data {
		p, ok := dsk.entries[k]
		if !ok {
			dsk.unused[k] = v
			continue
		}
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}

	return nil
}

// LoadEnv loads the dotenv files (".env" if none are given) into the
// environment and then applies any environment variables bound with
// BindEnv(). Missing dotenv files are not an error.
func (dsk *Disk) LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("prefs: %w", err)
		}
	}

	for key, env := range dsk.env {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			if err := dsk.entries[key].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", env, err)
			}
		}
	}

	return nil
}

// LoadCommandLine applies any values for the Disk's keys found in the top
// group of the command line stack. Values are consumed so that unused values
// can be reported by PopCommandLineStack().
//
// Values set this way are not saved unless Save() is called.
func (dsk *Disk) LoadCommandLine() error {
	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

// Reset all preference values on the Disk to their zero values.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}
