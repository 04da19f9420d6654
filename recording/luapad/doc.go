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

// Package luapad drives a VirtualPad from a Lua script. The Script type
// implements the recording.Override interface and can be attached to a
// controller in place of the VirtualPad it drives.
//
// The script should define a function called onframe. The function is called
// once per frame, when the first byte of the controller's button state is
// polled. The arguments to onframe are the session frame counter, the port
// and the slot.
//
// The following functions are available to the script:
//
//	press(button)             press the named button
//	release(button)           release the named button
//	pressure(button, value)   set the pressure of the named button
//	analog(axis, value)       set the named analog axis (lx, ly, rx, ry)
//	reset()                   reset the virtual pad
//	log(message)              add the message to the log
//
// Button names are the lowercase names of the buttons, eg. "cross" or "l2".
//
// The script does not run while the controller is replaying. An error in the
// script is logged and the script is disabled.
package luapad
