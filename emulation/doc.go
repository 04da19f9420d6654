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

// Package emulation defines the narrow interfaces through which the recording
// package talks to the host emulator. Exists mainly to keep the recording
// package free of any dependency on a particular emulator implementation.
//
// The package also implements the frame count tag that the host writes into
// every savestate. The tag allows the recording package to recover the
// host's frame count when a savestate is loaded.
package emulation
