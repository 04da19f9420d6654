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

// Package paths contains functions to prepare paths to pcsx2rec resources.
//
// The ResourcePath() function returns the resource name prepended with the
// base resource directory. If the directory ".pcsx2rec" is present in the
// current working directory then that is the base. If it is not then the
// user's config directory is used, as found by os.UserConfigDir(). On a Linux
// system this might be:
//
//	/home/user/.config/pcsx2rec/preferences.yaml
package paths
