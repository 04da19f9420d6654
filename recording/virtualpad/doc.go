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

// Package virtualpad implements an operator controlled controller that can
// override the bytes sent by a real controller. A VirtualPad implements the
// recording.Override interface.
//
// A VirtualPad is made up of elements, one for each button and analog axis.
// An element that has been set by the operator replaces the value from the
// real controller. Elements that have not been set follow the real controller.
// If the VirtualPad is ignoring the real controller then every element
// replaces the real controller's value.
//
// While read-only (the session is replaying) the elements follow the
// replayed values and the operator cannot change them.
package virtualpad
