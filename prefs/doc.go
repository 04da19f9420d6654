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

// Package prefs facilitates the storage of preferential values. The Bool,
// String and Int types hold a single preference value each and can be
// used directly. Setting a value can be hooked with SetHookPre() and
// SetHookPost().
//
// Preference values are associated with a key on a Disk instance and saved
// to a YAML file with Save(). Load() restores them.
//
//	var author prefs.String
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("recording.author", &author)
//	dsk.Load(true)
//
// Preferences can also be taken from the environment. BindEnv() associates a
// key with an environment variable and LoadEnv() reads a dotenv file before
// applying any bound variables that are set. Environment values override
// values loaded from the YAML file but are never saved to it unless the value
// is subsequently saved with Save().
package prefs
