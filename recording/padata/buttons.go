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

import "strings"

// Button identifies one of the digital buttons on the controller.
type Button int

// List of valid Button values.
const (
	Left Button = iota
	Down
	Right
	Up
	Start
	R3
	L3
	Select
	Square
	Cross
	Circle
	Triangle
	R1
	L1
	R2
	L2

	NumButtons
)

// buttonResolver describes where a button is found in the controller reply.
type buttonResolver struct {
	name string

	// the button group and the bit in that group
	group   BufferIndex
	bitmask uint8

	// the pressure byte for the button. normal buttons (those that are not
	// pressure sensitive) have a pressure index of -1
	pressure BufferIndex
}

var resolvers = [NumButtons]buttonResolver{
	Left:     {name: "left", group: PressedFlagsGroupOne, bitmask: 0b10000000, pressure: LeftPressure},
	Down:     {name: "down", group: PressedFlagsGroupOne, bitmask: 0b01000000, pressure: DownPressure},
	Right:    {name: "right", group: PressedFlagsGroupOne, bitmask: 0b00100000, pressure: RightPressure},
	Up:       {name: "up", group: PressedFlagsGroupOne, bitmask: 0b00010000, pressure: UpPressure},
	Start:    {name: "start", group: PressedFlagsGroupOne, bitmask: 0b00001000, pressure: -1},
	R3:       {name: "r3", group: PressedFlagsGroupOne, bitmask: 0b00000100, pressure: -1},
	L3:       {name: "l3", group: PressedFlagsGroupOne, bitmask: 0b00000010, pressure: -1},
	Select:   {name: "select", group: PressedFlagsGroupOne, bitmask: 0b00000001, pressure: -1},
	Square:   {name: "square", group: PressedFlagsGroupTwo, bitmask: 0b10000000, pressure: SquarePressure},
	Cross:    {name: "cross", group: PressedFlagsGroupTwo, bitmask: 0b01000000, pressure: CrossPressure},
	Circle:   {name: "circle", group: PressedFlagsGroupTwo, bitmask: 0b00100000, pressure: CirclePressure},
	Triangle: {name: "triangle", group: PressedFlagsGroupTwo, bitmask: 0b00010000, pressure: TrianglePressure},
	R1:       {name: "r1", group: PressedFlagsGroupTwo, bitmask: 0b00001000, pressure: R1Pressure},
	L1:       {name: "l1", group: PressedFlagsGroupTwo, bitmask: 0b00000100, pressure: L1Pressure},
	R2:       {name: "r2", group: PressedFlagsGroupTwo, bitmask: 0b00000010, pressure: R2Pressure},
	L2:       {name: "l2", group: PressedFlagsGroupTwo, bitmask: 0b00000001, pressure: L2Pressure},
}

func (b Button) String() string {
	if b < 0 || b >= NumButtons {
		return "unknown"
	}
	return resolvers[b].name
}

// Group returns the BufferIndex of the button group the button belongs to.
func (b Button) Group() BufferIndex {
	return resolvers[b].group
}

// PressureIndex returns the BufferIndex of the pressure byte for the button.
// The second return value is false if the button is not pressure sensitive.
func (b Button) PressureIndex() (BufferIndex, bool) {
	p := resolvers[b].pressure
	return p, p >= 0
}

// ButtonFromName returns the Button with the name. Names are the lowercase
// names of the buttons, eg. "cross" or "l2". The comparison is case
// insensitive.
func ButtonFromName(name string) (Button, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b := range resolvers {
		if resolvers[b].name == name {
			return Button(b), true
		}
	}
	return 0, false
}

// ButtonsInGroup returns the buttons found in the specified button group. An
// empty list is returned if the index is not a button group.
func ButtonsInGroup(group BufferIndex) []Button {
	var l []Button
	for b := range resolvers {
		if resolvers[b].group == group {
			l = append(l, Button(b))
		}
	}
	return l
}

// ButtonForPressure returns the button that the pressure index belongs to.
func ButtonForPressure(idx BufferIndex) (Button, bool) {
	for b := range resolvers {
		if resolvers[b].pressure == idx && idx >= 0 {
			return Button(b), true
		}
	}
	return 0, false
}

// Axis identifies one of the two axes on one of the two analog sticks.
type Axis int

// List of valid Axis values.
const (
	RightX Axis = iota
	RightY
	LeftX
	LeftY

	NumAxes
)

var axisNames = [NumAxes]string{"rx", "ry", "lx", "ly"}

func (a Axis) String() string {
	if a < 0 || a >= NumAxes {
		return "unknown"
	}
	return axisNames[a]
}

// Index returns the BufferIndex for the axis.
func (a Axis) Index() BufferIndex {
	return RightAnalogXVector + BufferIndex(a)
}

// AxisFromName returns the Axis with the name: "lx", "ly", "rx" or "ry".
func AxisFromName(name string) (Axis, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range axisNames {
		if n == name {
			return Axis(a), true
		}
	}
	return 0, false
}

// AxisForIndex returns the Axis for an analog BufferIndex.
func AxisForIndex(idx BufferIndex) (Axis, bool) {
	if idx < RightAnalogXVector || idx > LeftAnalogYVector {
		return 0, false
	}
	return Axis(idx - RightAnalogXVector), true
}
