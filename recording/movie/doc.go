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

// Package movie implements the binary movie file. A movie file is a fixed
// size header followed by one block of controller bytes per frame.
//
// Each frame block is divided into one sub-block of padata.PadBytes for every
// controller selected in the header's pad bitmask. The position of a
// controller's sub-block in the frame block is its seek offset. Seek offsets
// are assigned by the caller, normally in order of the pad bitmask.
//
// Two versions of the file format are supported. Version 1 always records two
// controllers (the first slot of both ports) and has no pad bitmask. The
// start type of a version 1 file is a boolean indicating whether the movie
// starts from a savestate. Version 2 adds the pad bitmask and the full start
// type. New files are always written as version 2. Version 1 files can be
// upgraded with the Convert() function.
//
// The header is written once with WriteHeader(). After that only the total
// frames and redo count fields are updated in place.
package movie
