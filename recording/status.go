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
	"github.com/sonicfind/pcsx2/recording/movie"
	"github.com/sonicfind/pcsx2/recording/padata"
)

// PadStatus is the status of a single active controller.
type PadStatus struct {
	Port       int                    `json:"port"`
	Slot       int                    `json:"slot"`
	Name       string                 `json:"name"`
	Mode       string                 `json:"mode"`
	SeekOffset int                    `json:"seekOffset"`
	Raw        [padata.PadBytes]uint8 `json:"raw"`
	Summary    string                 `json:"summary"`
}

// Status is a snapshot of the recording session.
type Status struct {
	Mode          string      `json:"mode"`
	FrameCounter  int32       `json:"frameCounter"`
	StartingFrame uint32      `json:"startingFrame"`
	InitialLoad   bool        `json:"initialLoad"`
	Movie         string      `json:"movie,omitempty"`
	GameName      string      `json:"gameName,omitempty"`
	Author        string      `json:"author,omitempty"`
	TotalFrames   int32       `json:"totalFrames"`
	RedoCount     uint32      `json:"redoCount"`
	Pads          []PadStatus `json:"pads"`
}

// Status returns the most recent snapshot of the session. The snapshot is
// updated at the end of every frame and whenever the session changes mode.
//
// Status is safe to call from any goroutine.
func (r *InputRecording) Status() Status {
	return *r.status.Load()
}

// publish a new status snapshot.
func (r *InputRecording) publish() {
	s := &Status{
		Mode:          r.mode.String(),
		FrameCounter:  r.frameCounter,
		StartingFrame: r.startingFrame,
		InitialLoad:   r.initialLoad,
		Pads:          make([]PadStatus, 0, movie.MaxPads),
	}

	if r.mov != nil {
		hdr := r.mov.Header()
		s.Movie = r.mov.Path()
		s.GameName = hdr.GameName
		s.Author = hdr.Author
		s.TotalFrames = hdr.TotalFrames
		s.RedoCount = hdr.RedoCount
	}

	for port := range movie.NumPorts {
		for slot := range movie.NumSlots {
			p := &r.pads[movie.PadIndex(port, slot)]
			if p.mode == NotActive {
				continue
			}
			s.Pads = append(s.Pads, PadStatus{
				Port:       port,
				Slot:       slot,
				Name:       padName(port, slot),
				Mode:       p.mode.String(),
				SeekOffset: p.seekOffset,
				Raw:        p.data.Bytes(),
				Summary:    p.data.String(),
			})
		}
	}

	r.status.Store(s)
	r.metrics.SetSession(int(r.mode), s.FrameCounter, s.TotalFrames)
}

// Pad returns the status of the controller at the port and slot from
// the most recent snapshot. The second return value is false if the
// controller is not active.
func (s Status) Pad(port int, slot int) (PadStatus, bool) {
	for _, p := range s.Pads {
		if p.Port == port && p.Slot == slot {
			return p, true
		}
	}
	return PadStatus{}, false
}
