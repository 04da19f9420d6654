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

package virtualpad

import "github.com/sonicfind/pcsx2/recording/padata"

// Element is a single control on the VirtualPad.
type Element interface {
	// UpdateData reconciles the element with the PadData for the byte at
	// idx. Returns true if the element changed the PadData.
	UpdateData(idx padata.BufferIndex, pd *padata.PadData, ignoreRealController bool, readOnly bool) bool

	// Reset returns the element to its neutral value and returns control to
	// the real controller.
	Reset()
}

// field is a single value controlled by an element.
type field[T comparable] struct {
	value T

	// the value has been set by the operator
	set bool
}

// update reconciles the field with the value from the controller. padValue is
// changed if the field overrides the controller.
func (f *field[T]) update(padValue *T, ignoreRealController bool, readOnly bool) bool {
	if readOnly {
		f.value = *padValue
		return false
	}
	if f.set || ignoreRealController {
		changed := *padValue != f.value
		*padValue = f.value
		return changed
	}
	f.value = *padValue
	return false
}

func (f *field[T]) setValue(v T) {
	f.value = v
	f.set = true
}

// NormalButton is a button that is not pressure sensitive.
type NormalButton struct {
	Button  padata.Button
	pressed field[bool]
}

// UpdateData implements the Element interface.
func (e *NormalButton) UpdateData(idx padata.BufferIndex, pd *padata.PadData, ignoreRealController bool, readOnly bool) bool {
	if idx != e.Button.Group() {
		return false
	}
	v := pd.Pressed(e.Button)
	changed := e.pressed.update(&v, ignoreRealController, readOnly)
	pd.SetPressed(e.Button, v)
	return changed
}

// Reset implements the Element interface.
func (e *NormalButton) Reset() {
	e.pressed = field[bool]{}
}

// Pressed returns the state of the button as last seen or set.
func (e *NormalButton) Pressed() bool {
	return e.pressed.value
}

// PressureButton is a pressure sensitive button. The pressed state and the
// pressure are separate values in the controller reply.
type PressureButton struct {
	Button   padata.Button
	pressed  field[bool]
	pressure field[uint8]
}

// UpdateData implements the Element interface.
func (e *PressureButton) UpdateData(idx padata.BufferIndex, pd *padata.PadData, ignoreRealController bool, readOnly bool) bool {
	if idx == e.Button.Group() {
		v := pd.Pressed(e.Button)
		changed := e.pressed.update(&v, ignoreRealController, readOnly)
		pd.SetPressed(e.Button, v)
		return changed
	}
	if p, ok := e.Button.PressureIndex(); ok && idx == p {
		v := pd.Pressure(e.Button)
		changed := e.pressure.update(&v, ignoreRealController, readOnly)
		pd.SetPressure(e.Button, v)
		return changed
	}
	return false
}

// Reset implements the Element interface.
func (e *PressureButton) Reset() {
	e.pressed = field[bool]{}
	e.pressure = field[uint8]{}
}

// Pressed returns the state of the button as last seen or set.
func (e *PressureButton) Pressed() bool {
	return e.pressed.value
}

// Pressure returns the pressure of the button as last seen or set.
func (e *PressureButton) Pressure() uint8 {
	return e.pressure.value
}

// AnalogVector is a single axis of an analog stick.
type AnalogVector struct {
	Axis  padata.Axis
	value field[uint8]
}

// UpdateData implements the Element interface.
func (e *AnalogVector) UpdateData(idx padata.BufferIndex, pd *padata.PadData, ignoreRealController bool, readOnly bool) bool {
	if idx != e.Axis.Index() {
		return false
	}
	v := pd.Analog(e.Axis)
	changed := e.value.update(&v, ignoreRealController, readOnly)
	pd.SetAnalog(e.Axis, v)
	return changed
}

// Reset implements the Element interface.
func (e *AnalogVector) Reset() {
	e.value = field[uint8]{value: padata.AnalogNeutral}
}

// Value returns the value of the axis as last seen or set.
func (e *AnalogVector) Value() uint8 {
	return e.value.value
}
