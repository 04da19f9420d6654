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

package padata_test

import (
	"strings"
	"testing"

	"github.com/sonicfind/pcsx2/logger"
	"github.com/sonicfind/pcsx2/recording/padata"
	"github.com/sonicfind/pcsx2/test"
)

func TestButtonGroupRoundTrip(t *testing.T) {
	pd := padata.NewPadData()
	for _, grp := range []padata.BufferIndex{padata.PressedFlagsGroupOne, padata.PressedFlagsGroupTwo} {
		for v := 0; v <= 0xff; v++ {
			pd.UpdateControllerData(grp, uint8(v))
			if !test.ExpectEquality(t, pd.PollControllerData(grp), uint8(v), grp) {
				return
			}
		}
	}
}

func TestActiveLow(t *testing.T) {
	pd := padata.NewPadData()

	// nothing pressed
	test.ExpectEquality(t, pd.PollControllerData(padata.PressedFlagsGroupOne), uint8(0xff))
	test.ExpectEquality(t, pd.PollControllerData(padata.PressedFlagsGroupTwo), uint8(0xff))

	// cross is bit 6 of group two
	pd.UpdateControllerData(padata.PressedFlagsGroupTwo, 0b10111111)
	test.ExpectSuccess(t, pd.Pressed(padata.Cross))
	test.ExpectFailure(t, pd.Pressed(padata.Square))
	test.ExpectFailure(t, pd.Pressed(padata.Start))

	// select is bit 0 of group one
	pd.SetPressed(padata.Select, true)
	test.ExpectEquality(t, pd.PollControllerData(padata.PressedFlagsGroupOne), uint8(0b11111110))

	// all buttons pressed
	pd.UpdateControllerData(padata.PressedFlagsGroupOne, 0x00)
	for _, b := range padata.ButtonsInGroup(padata.PressedFlagsGroupOne) {
		test.ExpectSuccess(t, pd.Pressed(b), b)
	}
}

func TestPassThrough(t *testing.T) {
	pd := padata.NewPadData()
	for idx := padata.RightAnalogXVector; idx < padata.NumBufferIndices; idx++ {
		for _, v := range []uint8{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff} {
			pd.UpdateControllerData(idx, v)
			test.ExpectEquality(t, pd.PollControllerData(idx), v, idx)
		}
	}
}

func TestInvalidIndex(t *testing.T) {
	pd := padata.NewPadData()
	pd.UpdateControllerData(padata.NumBufferIndices, 0x55)
	pd.UpdateControllerData(-1, 0x55)
	test.ExpectEquality(t, pd.PollControllerData(padata.NumBufferIndices), uint8(0))
	test.ExpectEquality(t, pd.PollControllerData(-1), uint8(0))
	test.ExpectEquality(t, pd.PollControllerData(100), uint8(0))
}

func TestNeutral(t *testing.T) {
	pd := padata.NewPadData()
	for a := range padata.NumAxes {
		test.ExpectEquality(t, pd.Analog(a), uint8(padata.AnalogNeutral), a)
	}
	test.ExpectEquality(t, pd.Pressure(padata.Cross), uint8(0))

	pd.SetAnalog(padata.LeftX, 0)
	pd.SetPressed(padata.Cross, true)
	pd.SetPressure(padata.Cross, 200)
	pd.Reset()
	test.ExpectEquality(t, pd.Analog(padata.LeftX), uint8(padata.AnalogNeutral))
	test.ExpectFailure(t, pd.Pressed(padata.Cross))
	test.ExpectEquality(t, pd.Pressure(padata.Cross), uint8(0))
}

func TestPressure(t *testing.T) {
	pd := padata.NewPadData()
	test.ExpectSuccess(t, pd.SetPressure(padata.Cross, 0xc0))
	test.ExpectEquality(t, pd.PollControllerData(padata.CrossPressure), uint8(0xc0))

	// start is not pressure sensitive
	test.ExpectFailure(t, pd.SetPressure(padata.Start, 0xc0))
	test.ExpectEquality(t, pd.Pressure(padata.Start), uint8(0))

	b, ok := padata.ButtonForPressure(padata.L2Pressure)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, padata.L2)

	_, ok = padata.ButtonForPressure(padata.LeftAnalogXVector)
	test.ExpectFailure(t, ok)
}

func TestBytes(t *testing.T) {
	pd := padata.NewPadData()
	pd.SetPressed(padata.Triangle, true)
	pd.SetPressure(padata.Triangle, 99)
	pd.SetAnalog(padata.RightY, 3)

	b := pd.Bytes()
	test.ExpectEquality(t, len(b), padata.PadBytes)
	test.ExpectEquality(t, b[padata.PressedFlagsGroupTwo], uint8(0b11101111))
	test.ExpectEquality(t, b[padata.TrianglePressure], uint8(99))
	test.ExpectEquality(t, b[padata.RightAnalogYVector], uint8(3))

	other := padata.NewPadData()
	other.SetBytes(b)
	test.ExpectEquality(t, other.Bytes(), b)
}

func TestNames(t *testing.T) {
	b, ok := padata.ButtonFromName("Cross")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, padata.Cross)
	_, ok = padata.ButtonFromName("turbo")
	test.ExpectFailure(t, ok)

	a, ok := padata.AxisFromName("ly")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, padata.LeftY)
	test.ExpectEquality(t, a.Index(), padata.LeftAnalogYVector)

	test.ExpectEquality(t, padata.CrossPressure.String(), "CrossPressure")
	test.ExpectEquality(t, padata.BufferIndex(99).String(), "BufferIndex(99)")
}

func TestRawPadBytesToString(t *testing.T) {
	pd := padata.NewPadData()
	test.ExpectEquality(t, pd.RawPadBytesToString(0, 2), "255 255")
	test.ExpectEquality(t, pd.RawPadBytesToString(2, 4), "127 127")
	test.ExpectEquality(t, pd.RawPadBytesToString(16, 100), "0 0")
	test.ExpectEquality(t, pd.RawPadBytesToString(5, 5), "")
}

func TestLogPadData(t *testing.T) {
	logger.Clear()
	pd := padata.NewPadData()
	pd.SetPressed(padata.Cross, true)
	pd.LogPadData(logger.Allow, 1, 2)

	e := logger.Entries()
	test.DemandEquality(t, len(e), 1)
	test.ExpectEquality(t, e[0].Tag, "pad")
	test.ExpectSuccess(t, strings.HasPrefix(e[0].Detail, "port 1 slot 2: [255 191"))
	test.ExpectSuccess(t, strings.Contains(e[0].Detail, "cross(0)"))
}
