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

package headless

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sonicfind/pcsx2/curated"
	"github.com/sonicfind/pcsx2/emulation"
	"github.com/sonicfind/pcsx2/logger"
	"github.com/sonicfind/pcsx2/recording/padata"
)

// Recorder is the interface to the recording subsystem. Implemented by
// recording.InputRecording.
type Recorder interface {
	OnBoot()
	OnSavestate(loading bool, frameCount uint32)
	FailedSavestate()
	ControllerInterrupt(port int, slot int, bufCount int, data uint8, bufVal uint8) uint8
	IncrementFrameCounter()
}

// Controller ports and slots.
const (
	NumPorts = 2
	NumSlots = 4
)

// bytes sent by the console during a "read data" poll. the first byte
// addresses the controller and the second is the query. the remaining bytes
// are the vibration motor values, which are not emulated
const (
	consoleAddress  = 0x01
	consoleReadData = 0x42
)

// bytes sent by the controller in reply to the first two bytes of the query.
// the first is the controller type (a dualshock in analog mode) and the
// second is the acknowledgement byte that always follows
const (
	padIdle  = 0xff
	padMode  = 0x79
	padReady = 0x5a
)

// StateVersion is the version of the savestate format written by the host.
const StateVersion = 1

// the magic bytes at the start of every savestate
const stateMagic = "P2RSTATE"

// Host is a minimal emulator that implements the emulation.Emulation
// interface.
type Host struct {
	rec Recorder

	open       bool
	frameCount uint32
	settings   emulation.Settings
	bootedFast bool

	discID       string
	discFilename string

	// live controller state indexed by port*NumSlots+slot
	live [NumPorts * NumSlots]*padata.PadData

	// bytes received by the console during the most recent poll of each
	// controller
	received [NumPorts * NumSlots][padata.PadBytes]uint8

	// version of savestate written by SaveState()
	stateVersion uint8
}

// NewHost is the preferred method of initialisation for the Host type. The
// recorder can be nil.
func NewHost(rec Recorder) *Host {
	h := &Host{
		rec:          rec,
		stateVersion: StateVersion,
	}
	for i := range h.live {
		h.live[i] = padata.NewPadData()
	}
	return h
}

// SetRecorder changes the recording subsystem attached to the host.
func (h *Host) SetRecorder(rec Recorder) {
	h.rec = rec
}

// InsertDisc sets the disc identity. The game is not opened until Boot() is
// called.
func (h *Host) InsertDisc(discID string, filename string) {
	h.discID = discID
	h.discFilename = filename
}

// FrameCount implements the emulation.Emulation interface.
func (h *Host) FrameCount() uint32 {
	return h.frameCount
}

// IsOpen implements the emulation.Emulation interface.
func (h *Host) IsOpen() bool {
	return h.open
}

// Boot implements the emulation.Emulation interface.
func (h *Host) Boot(fastBoot bool) error {
	h.open = true
	h.bootedFast = fastBoot
	h.frameCount = 0
	for i := range h.received {
		h.received[i] = [padata.PadBytes]uint8{}
	}
	if h.rec != nil {
		h.rec.OnBoot()
	}
	return nil
}

// BootedFast returns true if the most recent boot skipped the boot sequence.
func (h *Host) BootedFast() bool {
	return h.bootedFast
}

// Settings implements the emulation.Emulation interface.
func (h *Host) Settings() emulation.Settings {
	return h.settings
}

// ApplySettings implements the emulation.Emulation interface.
func (h *Host) ApplySettings(s emulation.Settings) error {
	h.settings = s
	return nil
}

// DiscID implements the emulation.Emulation interface.
func (h *Host) DiscID() string {
	return h.discID
}

// DiscFilename implements the emulation.Emulation interface.
func (h *Host) DiscFilename() string {
	if h.discFilename == "" {
		return ""
	}
	return filepath.Base(h.discFilename)
}

// Live returns the live controller state for the port and slot. Changes to
// the returned PadData are seen by the console on the next frame.
func (h *Host) Live(port int, slot int) *padata.PadData {
	return h.live[port*NumSlots+slot]
}

// Received returns the bytes received by the console during the most recent
// poll of the controller at the port and slot.
func (h *Host) Received(port int, slot int) [padata.PadBytes]uint8 {
	return h.received[port*NumSlots+slot]
}

// connected returns true if the controller at port and slot is polled. the
// first slot is always polled, the others only when multitap is enabled for
// the port.
func (h *Host) connected(port int, slot int) bool {
	return slot == 0 || h.settings.Multitap[port]
}

// Frame runs a single frame. Every connected controller is polled and then the
// frame clock is advanced.
func (h *Host) Frame() {
	if !h.open {
		return
	}

	for port := range NumPorts {
		for slot := range NumSlots {
			if h.connected(port, slot) {
				h.poll(port, slot)
			}
		}
	}

	h.frameCount++
	if h.rec != nil {
		h.rec.IncrementFrameCounter()
	}
}

// poll a single controller using the "read data" query.
func (h *Host) poll(port int, slot int) {
	live := h.live[port*NumSlots+slot].Bytes()

	interrupt := func(bufCount int, data uint8, bufVal uint8) uint8 {
		if h.rec == nil {
			return bufVal
		}
		return h.rec.ControllerInterrupt(port, slot, bufCount, data, bufVal)
	}

	_ = interrupt(0, consoleAddress, padIdle)
	_ = interrupt(1, consoleReadData, padMode)
	_ = interrupt(2, 0x00, padReady)

	for i := range padata.PadBytes {
		h.received[port*NumSlots+slot][i] = interrupt(i+3, 0x00, live[i])
	}
}

// SaveState implements the emulation.Emulation interface.
func (h *Host) SaveState(path string) error {
	if !h.open {
		return curated.Errorf(emulation.NotOpen)
	}

	b := &bytes.Buffer{}
	b.WriteString(stateMagic)
	b.WriteByte(h.stateVersion)
	err := emulation.WriteFrameCountTag(b, h.frameCount)
	if err != nil {
		return curated.Errorf(emulation.StateError, err)
	}
	for _, p := range h.live {
		d := p.Bytes()
		b.Write(d[:])
	}

	if h.rec != nil {
		h.rec.OnSavestate(false, h.frameCount)
	}

	err = os.WriteFile(path, b.Bytes(), 0644)
	if err != nil {
		return curated.Errorf(emulation.StateError, err)
	}

	return nil
}

// LoadState implements the emulation.Emulation interface.
func (h *Host) LoadState(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf(emulation.StateError, err)
	}
	defer f.Close()

	magic := make([]byte, len(stateMagic)+1)
	_, err = io.ReadFull(f, magic)
	if err != nil {
		return curated.Errorf(emulation.StateError, err)
	}
	if !strings.HasPrefix(string(magic), stateMagic) {
		return curated.Errorf(emulation.StateError, "not a savestate")
	}
	if magic[len(stateMagic)] != StateVersion {
		logger.Logf(logger.Allow, "headless", "savestate version %d is not supported", magic[len(stateMagic)])
		if h.rec != nil {
			h.rec.FailedSavestate()
		}
		return curated.Errorf(emulation.StateError, fmt.Sprintf("unsupported version (%d)", magic[len(stateMagic)]))
	}

	fc, err := emulation.ReadFrameCountTag(f)
	if err != nil {
		return curated.Errorf(emulation.StateError, err)
	}

	var live [NumPorts * NumSlots][padata.PadBytes]uint8
	for i := range live {
		_, err = io.ReadFull(f, live[i][:])
		if err != nil {
			return curated.Errorf(emulation.StateError, err)
		}
	}

	h.open = true
	h.frameCount = fc
	for i := range live {
		h.live[i].SetBytes(live[i])
	}

	if h.rec != nil {
		h.rec.OnSavestate(true, h.frameCount)
	}

	return nil
}

// SetStateVersion changes the version number written by SaveState(). Used to
// create savestates that are incompatible with the host.
func (h *Host) SetStateVersion(v uint8) {
	h.stateVersion = v
}
