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

// Package headless is a minimal in-process host emulator. It implements the
// emulation.Emulation interface and drives the controller polling protocol
// once per frame for every connected controller.
//
// The host has no CPU or video. A frame consists only of the controller polls
// and the advance of the frame clock. The bytes supplied by the controllers
// come from a live PadData for each port and slot, which can be changed
// between frames. The bytes received by the console are kept and can be
// inspected with Received().
//
// Savestates are small files holding the frame count tag and the state of the
// live controllers. LoadState() of a savestate written by a different version
// of the host results in a call to the recorder's FailedSavestate() function.
package headless
