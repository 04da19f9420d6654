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

import (
	"fmt"
	"sync"

	"github.com/sonicfind/pcsx2/curated"
	"github.com/sonicfind/pcsx2/recording/padata"
)

// Sentinal error patterns.
const (
	ReadOnly             = "virtualpad: %s is read only"
	NotPressureSensitive = "virtualpad: %v is not pressure sensitive"
	UnknownControl       = "virtualpad: unknown control: %v"
)

// VirtualPad is an operator controlled controller for a single port and slot.
// It implements the recording.Override interface.
//
// The operator functions (Press(), Release(), etc.) can be called from any
// goroutine.
type VirtualPad struct {
	crit sync.Mutex

	port int
	slot int

	buttons [padata.NumButtons]Element
	axes    [padata.NumAxes]*AnalogVector

	// elements for each byte of the controller reply
	byIndex [padata.NumBufferIndices][]Element

	readOnly             bool
	ignoreRealController bool
}

// NewVirtualPad is the preferred method of initialisation for the VirtualPad
// type.
func NewVirtualPad(port int, slot int) *VirtualPad {
	vp := &VirtualPad{
		port: port,
		slot: slot,
	}

	for b := range padata.NumButtons {
		var e Element
		if p, ok := b.PressureIndex(); ok {
			e = &PressureButton{Button: b}
			vp.byIndex[p] = append(vp.byIndex[p], e)
		} else {
			e = &NormalButton{Button: b}
		}
		vp.buttons[b] = e
		vp.byIndex[b.Group()] = append(vp.byIndex[b.Group()], e)
	}

	for a := range padata.NumAxes {
		e := &AnalogVector{Axis: a}
		e.Reset()
		vp.axes[a] = e
		vp.byIndex[a.Index()] = append(vp.byIndex[a.Index()], e)
	}

	return vp
}

func (vp *VirtualPad) String() string {
	return fmt.Sprintf("virtual pad %d%c", vp.port+1, 'A'+vp.slot)
}

// UpdateControllerData implements the recording.Override interface.
func (vp *VirtualPad) UpdateControllerData(idx padata.BufferIndex, pd *padata.PadData) bool {
	if !idx.Valid() {
		return false
	}

	vp.crit.Lock()
	defer vp.crit.Unlock()

	var changed bool
	for _, e := range vp.byIndex[idx] {
		changed = e.UpdateData(idx, pd, vp.ignoreRealController, vp.readOnly) || changed
	}
	return changed
}

// SetReadOnly implements the recording.Override interface.
func (vp *VirtualPad) SetReadOnly(readOnly bool) {
	vp.crit.Lock()
	defer vp.crit.Unlock()
	vp.readOnly = readOnly
}

// IsReadOnly returns true if the operator cannot change the VirtualPad.
func (vp *VirtualPad) IsReadOnly() bool {
	vp.crit.Lock()
	defer vp.crit.Unlock()
	return vp.readOnly
}

// IgnoreRealController sets whether the VirtualPad replaces the real
// controller completely.
func (vp *VirtualPad) IgnoreRealController(ignore bool) {
	vp.crit.Lock()
	defer vp.crit.Unlock()
	vp.ignoreRealController = ignore
}

func (vp *VirtualPad) button(b padata.Button) (Element, error) {
	if b < 0 || b >= padata.NumButtons {
		return nil, curated.Errorf(UnknownControl, b)
	}
	if vp.readOnly {
		return nil, curated.Errorf(ReadOnly, vp)
	}
	return vp.buttons[b], nil
}

// Press the button. The button stays pressed until Release() or Reset().
func (vp *VirtualPad) Press(b padata.Button) error {
	return vp.setPressed(b, true)
}

// Release the button. Pressing the button on the real controller is seen
// again unless the real controller is being ignored.
func (vp *VirtualPad) Release(b padata.Button) error {
	return vp.setPressed(b, false)
}

func (vp *VirtualPad) setPressed(b padata.Button, pressed bool) error {
	vp.crit.Lock()
	defer vp.crit.Unlock()

	e, err := vp.button(b)
	if err != nil {
		return err
	}

	switch e := e.(type) {
	case *NormalButton:
		if pressed {
			e.pressed.setValue(true)
		} else {
			e.pressed = field[bool]{}
		}
	case *PressureButton:
		if pressed {
			e.pressed.setValue(true)
		} else {
			e.pressed = field[bool]{}
		}
	}

	return nil
}

// SetPressure sets the pressure of a pressure sensitive button.
func (vp *VirtualPad) SetPressure(b padata.Button, v uint8) error {
	vp.crit.Lock()
	defer vp.crit.Unlock()

	e, err := vp.button(b)
	if err != nil {
		return err
	}

	pb, ok := e.(*PressureButton)
	if !ok {
		return curated.Errorf(NotPressureSensitive, b)
	}
	pb.pressure.setValue(v)

	return nil
}

// SetAnalog sets the value of an analog axis.
func (vp *VirtualPad) SetAnalog(a padata.Axis, v uint8) error {
	vp.crit.Lock()
	defer vp.crit.Unlock()

	if a < 0 || a >= padata.NumAxes {
		return curated.Errorf(UnknownControl, a)
	}
	if vp.readOnly {
		return curated.Errorf(ReadOnly, vp)
	}
	vp.axes[a].value.setValue(v)

	return nil
}

// Reset every element of the VirtualPad.
func (vp *VirtualPad) Reset() error {
	vp.crit.Lock()
	defer vp.crit.Unlock()

	if vp.readOnly {
		return curated.Errorf(ReadOnly, vp)
	}
	for _, e := range vp.buttons {
		e.Reset()
	}
	for _, e := range vp.axes {
		e.Reset()
	}

	return nil
}

// Pressed returns the state of the button as last seen or set.
func (vp *VirtualPad) Pressed(b padata.Button) bool {
	if b < 0 || b >= padata.NumButtons {
		return false
	}

	vp.crit.Lock()
	defer vp.crit.Unlock()

	switch e := vp.buttons[b].(type) {
	case *NormalButton:
		return e.Pressed()
	case *PressureButton:
		return e.Pressed()
	}
	return false
}

// Analog returns the value of the axis as last seen or set.
func (vp *VirtualPad) Analog(a padata.Axis) uint8 {
	if a < 0 || a >= padata.NumAxes {
		return 0
	}

	vp.crit.Lock()
	defer vp.crit.Unlock()
	return vp.axes[a].Value()
}
