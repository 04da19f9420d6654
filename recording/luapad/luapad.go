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

package luapad

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/sonicfind/pcsx2/curated"
	"github.com/sonicfind/pcsx2/logger"
	"github.com/sonicfind/pcsx2/recording/padata"
	"github.com/sonicfind/pcsx2/recording/virtualpad"
)

// ScriptError is returned when a script cannot be loaded.
const ScriptError = "luapad: %v"

// name of the function called by the script every frame
const onFrameFunction = "onframe"

// Script is a Lua script driving a VirtualPad.
type Script struct {
	L  *lua.LState
	vp *virtualpad.VirtualPad

	port int
	slot int

	// returns the session frame counter
	frame func() int32

	onframe  *lua.LFunction
	readOnly bool
	disabled bool
}

// NewScript is the preferred method of initialisation for the Script type.
// The frame function should return the current session frame counter.
func NewScript(vp *virtualpad.VirtualPad, port int, slot int, frame func() int32) *Script {
	s := &Script{
		L:     lua.NewState(),
		vp:    vp,
		port:  port,
		slot:  slot,
		frame: frame,
	}

	s.L.SetGlobal("press", s.L.NewFunction(s.press))
	s.L.SetGlobal("release", s.L.NewFunction(s.release))
	s.L.SetGlobal("pressure", s.L.NewFunction(s.pressure))
	s.L.SetGlobal("analog", s.L.NewFunction(s.analog))
	s.L.SetGlobal("reset", s.L.NewFunction(s.reset))
	s.L.SetGlobal("log", s.L.NewFunction(s.log))

	return s
}

// LoadFile loads and runs the script in the file.
func (s *Script) LoadFile(path string) error {
	err := s.L.DoFile(path)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return s.findOnFrame()
}

// LoadString loads and runs the script in the string.
func (s *Script) LoadString(source string) error {
	err := s.L.DoString(source)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return s.findOnFrame()
}

func (s *Script) findOnFrame() error {
	fn, ok := s.L.GetGlobal(onFrameFunction).(*lua.LFunction)
	if !ok {
		return curated.Errorf(ScriptError, fmt.Sprintf("script does not define %s()", onFrameFunction))
	}
	s.onframe = fn
	s.disabled = false
	return nil
}

// Close the Lua state. The script cannot be used after Close().
func (s *Script) Close() {
	s.L.Close()
	s.onframe = nil
}

// IsDisabled returns true if the script has been disabled because of an
// error.
func (s *Script) IsDisabled() bool {
	return s.disabled
}

// UpdateControllerData implements the recording.Override interface.
func (s *Script) UpdateControllerData(idx padata.BufferIndex, pd *padata.PadData) bool {
	if idx == padata.PressedFlagsGroupOne {
		s.run()
	}
	return s.vp.UpdateControllerData(idx, pd)
}

// SetReadOnly implements the recording.Override interface.
func (s *Script) SetReadOnly(readOnly bool) {
	s.readOnly = readOnly
	s.vp.SetReadOnly(readOnly)
}

// run the onframe function of the script.
func (s *Script) run() {
	if s.readOnly || s.disabled || s.onframe == nil {
		return
	}

	err := s.L.CallByParam(lua.P{
		Fn:      s.onframe,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(s.frame()), lua.LNumber(s.port), lua.LNumber(s.slot))

	if err != nil {
		logger.Logf(logger.Allow, "luapad", "script disabled: %v", err)
		s.disabled = true
	}
}

// raise a Lua error if err is not nil.
func (s *Script) check(L *lua.LState, err error) {
	if err != nil {
		L.RaiseError("%v", err)
	}
}

func (s *Script) buttonArg(L *lua.LState) padata.Button {
	name := L.CheckString(1)
	b, ok := padata.ButtonFromName(name)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown button %q", name))
	}
	return b
}

func (s *Script) valueArg(L *lua.LState) uint8 {
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, fmt.Sprintf("value out of range (%d)", v))
	}
	return uint8(v)
}

func (s *Script) press(L *lua.LState) int {
	s.check(L, s.vp.Press(s.buttonArg(L)))
	return 0
}

func (s *Script) release(L *lua.LState) int {
	s.check(L, s.vp.Release(s.buttonArg(L)))
	return 0
}

func (s *Script) pressure(L *lua.LState) int {
	b := s.buttonArg(L)
	s.check(L, s.vp.SetPressure(b, s.valueArg(L)))
	return 0
}

func (s *Script) analog(L *lua.LState) int {
	name := L.CheckString(1)
	a, ok := padata.AxisFromName(name)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown axis %q", name))
	}
	s.check(L, s.vp.SetAnalog(a, s.valueArg(L)))
	return 0
}

func (s *Script) reset(L *lua.LState) int {
	s.check(L, s.vp.Reset())
	return 0
}

func (s *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "luapad", L.CheckString(1))
	return 0
}
