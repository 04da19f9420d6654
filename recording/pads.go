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
	"github.com/sonicfind/pcsx2/recording/movie"
	"github.com/sonicfind/pcsx2/recording/padata"
)

// Override is given every byte polled from a controller and may change the
// controller's PadData.
type Override interface {
	// UpdateControllerData is called after the byte at idx has been decoded
	// into the PadData. Returns true if the override changed the PadData, in
	// which case the byte is encoded again from the PadData.
	UpdateControllerData(idx padata.BufferIndex, pd *padata.PadData) bool

	// SetReadOnly is called when the controller switches between recording
	// and replaying. A read-only override must not change the PadData.
	SetReadOnly(readOnly bool)
}

// pad is the state of a single controller.
type pad struct {
	data     *padata.PadData
	override Override
	mode     Mode

	// position of the controller's bytes in a frame of the movie
	seekOffset int
}

// padIndex returns the index into the pads array for the port and slot. The
// second return value is false if the port or slot is out of range.
func padIndex(port int, slot int) (int, bool) {
	if port < 0 || port >= movie.NumPorts || slot < 0 || slot >= movie.NumSlots {
		return 0, false
	}
	return movie.PadIndex(port, slot), true
}

// padName returns the user facing name of the controller. eg. 1A is the first
// slot of the first port.
func padName(port int, slot int) string {
	return string([]byte{byte('1' + port), byte('A' + slot)})
}
