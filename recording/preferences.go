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

package recording

import (
	"fmt"

	"github.com/sonicfind/pcsx2/paths"
	"github.com/sonicfind/pcsx2/prefs"
	"github.com/sonicfind/pcsx2/recording/movie"
)

// Preferences for recording sessions.
type Preferences struct {
	dsk *prefs.Disk

	// author written to the header of new movies
	Author prefs.String

	// pad bitmask for new movies
	Pads prefs.Int

	// log the state of every active controller at the end of every frame
	LogPads prefs.Bool

	// virtual pads replace the real controller completely
	IgnoreRealController prefs.Bool

	// address of the monitor HTTP server. empty to disable
	MonitorAddress prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// default pad bitmask is the first slot of the first port.
const defaultPads = 0x01

// environment variables that override the preferences file
const (
	envAuthor  = "PCSX2REC_AUTHOR"
	envPads    = "PCSX2REC_PADS"
	envLogPads = "PCSX2REC_LOGPADS"
	envMonitor = "PCSX2REC_MONITOR"
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the preferences file in the
// resource directory, then from the environment and finally from the top of
// the command line stack (see prefs.PushCommandLineStack()).
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Author.SetMaxLen(movie.AuthorLen - 1)
	p.Pads.SetHookPre(func(v prefs.Value) error {
		if n, ok := v.(int); ok && (n < 1 || n > 0xff) {
			return fmt.Errorf("pad bitmask must be between 0x01 and 0xff")
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("recording.author", &p.Author)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("recording.pads", &p.Pads)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("recording.logPads", &p.LogPads)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("recording.ignoreRealController", &p.IgnoreRealController)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("recording.monitorAddress", &p.MonitorAddress)
	if err != nil {
		return nil, err
	}

	for key, env := range map[string]string{
		"recording.author":         envAuthor,
		"recording.pads":           envPads,
		"recording.logPads":        envLogPads,
		"recording.monitorAddress": envMonitor,
	} {
		err = p.dsk.BindEnv(key, env)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	err = p.dsk.LoadEnv()
	if err != nil {
		return nil, err
	}

	err = p.dsk.LoadCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Author.Set("")
	_ = p.Pads.Set(defaultPads)
	_ = p.LogPads.Set(false)
	_ = p.IgnoreRealController.Set(false)
	_ = p.MonitorAddress.Set("")
}

// Load recording preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current recording preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
