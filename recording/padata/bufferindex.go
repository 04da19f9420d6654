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

import "fmt"

// BufferIndex is the position of a byte in a controller's reply to a "read
// data" query, not counting the two protocol header bytes.
type BufferIndex int

// List of valid BufferIndex values.
const (
	PressedFlagsGroupOne BufferIndex = iota
	PressedFlagsGroupTwo
	RightAnalogXVector
	RightAnalogYVector
	LeftAnalogXVector
	LeftAnalogYVector
	RightPressure
	LeftPressure
	UpPressure
	DownPressure
	TrianglePressure
	CirclePressure
	CrossPressure
	SquarePressure
	L1Pressure
	R1Pressure
	L2Pressure
	R2Pressure

	NumBufferIndices
)

// PadBytes is the number of bytes recorded for a single controller in a
// single frame.
const PadBytes = int(NumBufferIndices)

// Valid returns false if the BufferIndex is outside the range of the
// controller reply.
func (idx BufferIndex) Valid() bool {
	return idx >= 0 && idx < NumBufferIndices
}

var bufferIndexNames = [NumBufferIndices]string{
	"PressedFlagsGroupOne", "PressedFlagsGroupTwo",
	"RightAnalogX", "RightAnalogY", "LeftAnalogX", "LeftAnalogY",
	"RightPressure", "LeftPressure", "UpPressure", "DownPressure",
	"TrianglePressure", "CirclePressure", "CrossPressure", "SquarePressure",
	"L1Pressure", "R1Pressure", "L2Pressure", "R2Pressure",
}

func (idx BufferIndex) String() string {
	if !idx.Valid() {
		return fmt.Sprintf("BufferIndex(%d)", int(idx))
	}
	return bufferIndexNames[idx]
}
