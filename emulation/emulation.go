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

package emulation

// Settings are the host settings that a recording session may override for
// its duration. The session restores the original settings when it stops.
type Settings struct {
	// multitap adaptor enabled for each port
	Multitap [2]bool

	// skip the console's boot sequence and start the disc immediately
	FastBoot bool
}

// Emulation defines the functions required of the host emulator by the
// recording package.
//
// The functions are called synchronously from the emulation loop. The host is
// expected to call back into the recording package (OnBoot and OnSavestate
// for example) as a result of Boot(), SaveState() and LoadState().
type Emulation interface {
	// the host's global frame clock. this value is saved and restored with
	// savestates
	FrameCount() uint32

	// a game is loaded and running
	IsOpen() bool

	// boot the currently inserted disc
	Boot(fastBoot bool) error

	// save or load the emulation state to or from a file
	SaveState(path string) error
	LoadState(path string) error

	// current host settings and a request to change them
	Settings() Settings
	ApplySettings(Settings) error

	// identity of the currently inserted disc. DiscID() may return the empty
	// string if the disc cannot be identified
	DiscID() string
	DiscFilename() string
}

// NameResolver maps a disc identity to a display name for the game.
type NameResolver interface {
	ResolveGameName(discID string) (string, error)
}

// Sentinal errors that may be returned by an implementation of the Emulation
// interface.
const (
	NotOpen     = "emulation: no game is open"
	StateError  = "emulation: savestate: %v"
	UnknownDisc = "emulation: unknown disc: %v"
)
