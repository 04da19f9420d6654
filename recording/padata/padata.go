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

package padata

import (
	"fmt"
	"strings"

	"github.com/sonicfind/pcsx2/logger"
)

// AnalogNeutral is the value of an analog axis when the stick is centred.
const AnalogNeutral = 0x7f

// PadData is the state of a single controller. The zero value is a
// controller with no buttons pressed and both analog sticks pushed fully up
// and to the left. Use NewPadData() for a controller at rest.
type PadData struct {
	pressed [NumButtons]bool

	// pressure and analog bytes are kept by their position in the
	// controller reply. the first two entries are unused; the state of the
	// button groups is derived from the pressed array
	values [NumBufferIndices]uint8
}

// NewPadData is the preferred method of initialisation for the PadData type.
// Both analog sticks are centred.
func NewPadData() *PadData {
	pd := &PadData{}
	pd.Reset()
	return pd
}

// Reset releases all buttons, clears all pressure values and centres both
// analog sticks.
func (pd *PadData) Reset() {
	pd.pressed = [NumButtons]bool{}
	pd.values = [NumBufferIndices]uint8{}
	for a := range NumAxes {
		pd.values[a.Index()] = AnalogNeutral
	}
}

// UpdateControllerData decodes a byte of the controller reply into the
// PadData. An invalid index is ignored.
func (pd *PadData) UpdateControllerData(idx BufferIndex, v uint8) {
	switch idx {
	case PressedFlagsGroupOne, PressedFlagsGroupTwo:
		for _, b := range ButtonsInGroup(idx) {
			pd.pressed[b] = ^v&resolvers[b].bitmask != 0
		}
	default:
		if idx.Valid() {
			pd.values[idx] = v
		}
	}
}

// PollControllerData encodes the PadData into the byte of the controller
// reply at the specified index. An invalid index returns zero.
func (pd *PadData) PollControllerData(idx BufferIndex) uint8 {
	switch idx {
	case PressedFlagsGroupOne, PressedFlagsGroupTwo:
		var v uint8
		for _, b := range ButtonsInGroup(idx) {
			if pd.pressed[b] {
				v |= resolvers[b].bitmask
			}
		}
		return ^v
	default:
		if idx.Valid() {
			return pd.values[idx]
		}
	}
	return 0
}

// Pressed returns true if the button is pressed.
func (pd *PadData) Pressed(b Button) bool {
	if b < 0 || b >= NumButtons {
		return false
	}
	return pd.pressed[b]
}

// SetPressed presses or releases the button. For pressure sensitive buttons
// the pressure value is left unchanged.
func (pd *PadData) SetPressed(b Button, pressed bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	pd.pressed[b] = pressed
}

// Pressure returns the pressure value of the button. Normal buttons always
// return zero.
func (pd *PadData) Pressure(b Button) uint8 {
	if b < 0 || b >= NumButtons {
		return 0
	}
	if idx, ok := b.PressureIndex(); ok {
		return pd.values[idx]
	}
	return 0
}

// SetPressure sets the pressure value of a pressure sensitive button. It
// returns false if the button is not pressure sensitive.
func (pd *PadData) SetPressure(b Button, v uint8) bool {
	if b < 0 || b >= NumButtons {
		return false
	}
	idx, ok := b.PressureIndex()
	if !ok {
		return false
	}
	pd.values[idx] = v
	return true
}

// Analog returns the value of the analog axis.
func (pd *PadData) Analog(a Axis) uint8 {
	if a < 0 || a >= NumAxes {
		return 0
	}
	return pd.values[a.Index()]
}

// SetAnalog sets the value of the analog axis.
func (pd *PadData) SetAnalog(a Axis, v uint8) {
	if a < 0 || a >= NumAxes {
		return
	}
	pd.values[a.Index()] = v
}

// Bytes returns the controller reply for the current state of the PadData.
// This is the same as calling PollControllerData() for every BufferIndex.
func (pd *PadData) Bytes() [PadBytes]uint8 {
	var b [PadBytes]uint8
	for i := range NumBufferIndices {
		b[i] = pd.PollControllerData(i)
	}
	return b
}

// SetBytes decodes a complete controller reply into the PadData.
func (pd *PadData) SetBytes(b [PadBytes]uint8) {
	for i := range NumBufferIndices {
		pd.UpdateControllerData(i, b[i])
	}
}

// String returns a short summary of pressed buttons and analog positions.
func (pd *PadData) String() string {
	s := strings.Builder{}
	for b := range NumButtons {
		if !pd.pressed[b] {
			continue
		}
		if s.Len() > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(b.String())
		if idx, ok := b.PressureIndex(); ok {
			s.WriteString(fmt.Sprintf("(%d)", pd.values[idx]))
		}
	}
	if s.Len() == 0 {
		s.WriteString("-")
	}
	s.WriteString(fmt.Sprintf(" L[%d,%d] R[%d,%d]",
		pd.values[LeftAnalogXVector], pd.values[LeftAnalogYVector],
		pd.values[RightAnalogXVector], pd.values[RightAnalogYVector]))
	return s.String()
}

// RawPadBytesToString returns the bytes of the controller reply in the range
// start to end (exclusive) as a space separated list of decimal values. The
// range is clipped to the size of the reply.
func (pd *PadData) RawPadBytesToString(start int, end int) string {
	start = max(start, 0)
	end = min(end, PadBytes)
	s := strings.Builder{}
	for i := start; i < end; i++ {
		if i > start {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%d", pd.PollControllerData(BufferIndex(i))))
	}
	return s.String()
}

// LogPadData adds the state of the controller at the port and slot to the
// central log.
func (pd *PadData) LogPadData(perm logger.Permission, port int, slot int) {
	logger.Logf(perm, "pad", "port %d slot %d: [%s] %s", port, slot,
		pd.RawPadBytesToString(0, PadBytes), pd.String())
}
