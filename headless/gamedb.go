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

package headless

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sonicfind/pcsx2/curated"
	"github.com/sonicfind/pcsx2/emulation"
)

// GameEntry is a single entry in the game database.
type GameEntry struct {
	Name   string `yaml:"name"`
	Region string `yaml:"region"`
}

// GameDB is a simple game database keyed by disc ID. It implements the
// emulation.NameResolver interface.
//
// The database is stored as a YAML mapping of disc ID to entry:
//
//	SLUS-21447:
//	  name: Guitar Hero II
//	  region: NTSC-U
type GameDB struct {
	entries map[string]GameEntry
}

// NewGameDB is the preferred method of initialisation for the GameDB type.
func NewGameDB() *GameDB {
	return &GameDB{
		entries: make(map[string]GameEntry),
	}
}

// LoadGameDB reads a game database from a YAML file.
func LoadGameDB(path string) (*GameDB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf("gamedb: %v", err)
	}

	db := NewGameDB()
	err = yaml.Unmarshal(data, &db.entries)
	if err != nil {
		return nil, curated.Errorf("gamedb: %v", err)
	}
	if db.entries == nil {
		db.entries = make(map[string]GameEntry)
	}

	return db, nil
}

// Add an entry to the database.
func (db *GameDB) Add(discID string, entry GameEntry) {
	db.entries[discID] = entry
}

// ResolveGameName implements the emulation.NameResolver interface. The name
// is the game's name followed by the region in brackets.
func (db *GameDB) ResolveGameName(discID string) (string, error) {
	if discID == "" {
		return "", curated.Errorf(emulation.UnknownDisc, "no disc ID")
	}
	e, ok := db.entries[discID]
	if !ok || e.Name == "" {
		return "", curated.Errorf(emulation.UnknownDisc, discID)
	}
	if e.Region == "" {
		return e.Name, nil
	}
	return fmt.Sprintf("%s (%s)", e.Name, e.Region), nil
}
