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

// Package logger is the central log for the recording subsystem. Entries are
// made up of a tag and a detail, the tag being a short indication of the
// area that produced the entry (eg. "movie" or "recording").
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count. The number of entries kept is bounded and the
// oldest entries are forgotten first.
//
// Every Log() call takes a Permission. Permission can be used to silence
// logging from areas that are known to be noisy, for example per-frame pad
// logging. The logger.Allow value is always permitted.
//
// The log can be echoed as it is written with SetEcho(). When the echo writer
// is a terminal the output is coloured.
package logger
