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

package recording

import (
	"sync/atomic"

	"github.com/sonicfind/pcsx2/emulation"
	"github.com/sonicfind/pcsx2/logger"
	"github.com/sonicfind/pcsx2/recording/metrics"
	"github.com/sonicfind/pcsx2/recording/movie"
	"github.com/sonicfind/pcsx2/recording/padata"
)

// bytes identifying the "read data and vibrate" query. the first is sent by
// the console and the second is always the second byte of the controller's
// reply.
const (
	readDataFirstByte  = 0x42
	readDataSecondByte = 0x5a
)

// settings buffered at the start of a session and restored when the session
// stops
type buffers struct {
	multitap         [movie.NumPorts]bool
	multitapBuffered bool
	fastBoot         bool
	fastBootBuffered bool
}

// InputRecording is a recording session. The zero value is not usable; use
// NewInputRecording().
//
// Apart from Status(), the functions of InputRecording must all be called from
// the emulation loop.
type InputRecording struct {
	emu      emulation.Emulation
	resolver emulation.NameResolver
	metrics  *metrics.Metrics

	mov  *movie.Movie
	mode Mode
	pads [movie.MaxPads]pad

	frameCounter  int32
	startingFrame uint32

	// the session is waiting for the host to boot or load the starting
	// savestate
	initialLoad bool

	// the next byte written to the movie should increment the redo count
	incrementRedo bool

	// the current poll is a "read data" query
	interruptFrame bool

	buffers buffers

	// log the state of every active controller at the end of every frame
	logPads bool

	status atomic.Pointer[Status]
}

// NewInputRecording is the preferred method of initialisation for the
// InputRecording type. The resolver can be nil in which case the disc
// filename is used as the game name.
func NewInputRecording(emu emulation.Emulation, resolver emulation.NameResolver) *InputRecording {
	r := &InputRecording{
		emu:      emu,
		resolver: resolver,
	}
	for i := range r.pads {
		r.pads[i].data = padata.NewPadData()
	}
	r.publish()
	return r
}

// SetMetrics attaches metrics to the session. A nil value detaches metrics.
func (r *InputRecording) SetMetrics(m *metrics.Metrics) {
	r.metrics = m
	r.publish()
}

// SetLogPads sets whether the state of every active controller is logged at
// the end of every frame.
func (r *InputRecording) SetLogPads(log bool) {
	r.logPads = log
}

// SetOverride attaches an override to the controller at the port and slot.
// A nil value removes any existing override.
func (r *InputRecording) SetOverride(port int, slot int, o Override) {
	idx, ok := padIndex(port, slot)
	if !ok {
		return
	}
	r.pads[idx].override = o
	if o != nil {
		o.SetReadOnly(r.pads[idx].mode == Replaying)
	}
}

// FrameCounter returns the session frame counter.
func (r *InputRecording) FrameCounter() int32 {
	return r.frameCounter
}

// StartingFrame returns the host frame clock at the start of the session.
func (r *InputRecording) StartingFrame() uint32 {
	return r.startingFrame
}

// IsActive returns true if a movie is being recorded or replayed.
func (r *InputRecording) IsActive() bool {
	return r.mode != NotActive
}

// IsRecording returns true if the session is recording.
func (r *InputRecording) IsRecording() bool {
	return r.mode == Recording
}

// IsReplaying returns true if the session is replaying.
func (r *InputRecording) IsReplaying() bool {
	return r.mode == Replaying
}

// IsInitialLoad returns true if the session is waiting for the host to boot or
// to load the movie's savestate.
func (r *InputRecording) IsInitialLoad() bool {
	return r.initialLoad
}

// IsInterruptFrame returns true if the current controller poll is a "read
// data" query.
func (r *InputRecording) IsInterruptFrame() bool {
	return r.interruptFrame
}

// Mode returns the session mode.
func (r *InputRecording) Mode() Mode {
	return r.mode
}

// ModeTitle returns a short description of the session mode suitable for a
// window title.
func (r *InputRecording) ModeTitle() string {
	return r.mode.String()
}

// Movie returns the movie file of the session. Returns nil if there is no
// session.
func (r *InputRecording) Movie() *movie.Movie {
	return r.mov
}

// PadMode returns the mode of the controller at the port and slot.
func (r *InputRecording) PadMode(port int, slot int) Mode {
	idx, ok := padIndex(port, slot)
	if !ok {
		return NotActive
	}
	return r.pads[idx].mode
}

// SeekOffset returns the position of the controller's bytes in a frame of the
// movie.
func (r *InputRecording) SeekOffset(port int, slot int) int {
	idx, ok := padIndex(port, slot)
	if !ok {
		return 0
	}
	return r.pads[idx].seekOffset
}

// PadData returns the decoded state of the controller at the port and slot.
// The state is the most recent state sent to the console. Returns nil if the
// port or slot is out of range.
func (r *InputRecording) PadData(port int, slot int) *padata.PadData {
	idx, ok := padIndex(port, slot)
	if !ok {
		return nil
	}
	return r.pads[idx].data
}

// RawPadBytes returns the encoded state of the controller at the port and
// slot.
func (r *InputRecording) RawPadBytes(port int, slot int) [padata.PadBytes]uint8 {
	idx, ok := padIndex(port, slot)
	if !ok {
		return [padata.PadBytes]uint8{}
	}
	return r.pads[idx].data.Bytes()
}

// LogPadData adds the state of every active controller to the log.
func (r *InputRecording) LogPadData() {
	for port := range movie.NumPorts {
		for slot := range movie.NumSlots {
			p := &r.pads[movie.PadIndex(port, slot)]
			if p.mode != NotActive {
				p.data.LogPadData(logger.Allow, port, slot)
			}
		}
	}
}
