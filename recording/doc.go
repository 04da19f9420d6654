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

// Package recording intercepts the controller polling protocol between the
// emulated console and its controllers. While recording, every byte sent by a
// controller is written to a movie file. While replaying, the bytes from the
// movie file replace the bytes sent by the controller.
//
// The InputRecording type is driven entirely by the host emulator. The host
// calls ControllerInterrupt() for every byte of every controller poll and
// IncrementFrameCounter() at the end of every frame. It also calls OnBoot()
// and OnSavestate() when the emulation is booted and when a savestate is
// saved or loaded. The headless package implements a host that does this.
//
// The session frame counter is distinct from the host's frame clock. The
// clock value at the start of the session is the starting frame and the
// session frame counter is the clock value less the starting frame. When a
// savestate is loaded the counter is reconciled with the restored clock. This
// may switch the session between recording and replaying:
//
//	loaded to or past the end of the movie: switch to recording
//	loaded to a point before the start of the movie: switch to replaying
//	loaded to the start of the movie while recording: switch to replaying
//
// When a savestate is loaded to a point inside the movie, the next frame
// recorded may overwrite frames that were recorded previously. The first such
// write increments the movie's redo count.
//
// Each controller can also have an Override. An override is given every byte
// polled from the controller and may change it. While recording, the changed
// byte is sent to the console and written to the movie. While replaying, the
// override is read-only and is only told about the replayed bytes. The
// virtualpad and luapad packages provide implementations of Override.
package recording
