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

// Package padata translates between the bytes of the controller polling
// protocol and the state of a controller's buttons and analog sticks.
//
// A controller answers a "read data" query with PadBytes bytes. The first two
// bytes are button groups, one bit per button. The wire convention is active
// low: a clear bit means the button is pressed. The remaining bytes are the
// analog stick axes and the pressure of the pressure sensitive buttons. These
// bytes are passed through unchanged.
//
// The position of each byte in the reply is given by the BufferIndex type.
// UpdateControllerData() decodes a byte into the PadData and
// PollControllerData() encodes the PadData into a byte. For every value of a
// button group byte the two are the inverse of one another.
package padata
