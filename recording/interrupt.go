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
	"math"

	"github.com/sonicfind/pcsx2/logger"
	"github.com/sonicfind/pcsx2/recording/padata"
)

// ControllerInterrupt should be called by the host for every byte of a
// controller poll. The data argument is the byte sent by the console and
// bufVal is the byte sent by the controller. The bufCount argument is the
// position of the byte in the poll, starting from zero.
//
// Returns the byte that should be passed to the console. Failures to read or
// write the movie are logged and do not interrupt the poll. A failed read
// leaves the controller's byte unchanged.
func (r *InputRecording) ControllerInterrupt(port int, slot int, bufCount int, data uint8, bufVal uint8) uint8 {
	idx, ok := padIndex(port, slot)
	if !ok {
		return bufVal
	}

	switch {
	case bufCount == 1:
		r.interruptFrame = data == readDataFirstByte
		return bufVal
	case bufCount == 2:
		if bufVal != readDataSecondByte {
			r.interruptFrame = false
		}
		return bufVal
	case bufCount < 3 || !r.interruptFrame:
		return bufVal
	}

	bufIndex := padata.BufferIndex(bufCount - 3)
	if !bufIndex.Valid() {
		return bufVal
	}

	p := &r.pads[idx]

	if p.mode == Replaying {
		if r.mov != nil && r.frameCounter >= 0 && r.frameCounter < math.MaxInt32 {
			v, err := r.mov.ReadKeyBuffer(r.frameCounter, p.seekOffset+int(bufIndex))
			if err != nil {
				logger.Logf(logger.Allow, "recording", "failed to read input data at frame %d: %v", r.frameCounter, err)
				r.metrics.IncReadFailures()
			} else {
				bufVal = v
				r.metrics.IncBytesReplayed()
			}

			p.data.UpdateControllerData(bufIndex, bufVal)
			if p.override != nil {
				p.override.UpdateControllerData(bufIndex, p.data)
			}
		}
		return bufVal
	}

	p.data.UpdateControllerData(bufIndex, bufVal)
	if p.override != nil && p.override.UpdateControllerData(bufIndex, p.data) {
		bufVal = p.data.PollControllerData(bufIndex)
	}

	if p.mode == Recording && r.mov != nil && r.frameCounter >= 0 {
		if r.incrementRedo {
			err := r.mov.IncrementRedoCount()
			if err != nil {
				logger.Log(logger.Allow, "recording", err)
			}
			r.metrics.IncRedo()
			r.incrementRedo = false
		}

		err := r.mov.WriteKeyBuffer(r.frameCounter, p.seekOffset+int(bufIndex), bufVal)
		if err != nil {
			logger.Logf(logger.Allow, "recording", "failed to write input data at frame %d: %v", r.frameCounter, err)
			r.metrics.IncWriteFailures()
		} else {
			r.metrics.IncBytesRecorded()
		}
	}

	return bufVal
}

// IncrementFrameCounter should be called by the host at the end of every
// frame. While recording, the movie's total frames is raised to the new frame
// counter.
func (r *InputRecording) IncrementFrameCounter() {
	if !r.IsActive() || r.initialLoad {
		return
	}

	if r.frameCounter < math.MaxInt32 {
		r.frameCounter++
		if r.mode == Recording && r.mov != nil {
			// reaching the end of the previously recorded frames means there
			// is nothing left to overwrite
			if !r.mov.SetTotalFrames(r.frameCounter) || r.frameCounter == r.mov.TotalFrames() {
				r.incrementRedo = false
			}
		}
	}

	if r.logPads {
		r.LogPadData()
	}

	r.publish()
}

// SetFrameCounter reconciles the session frame counter with the host's frame
// clock after a savestate has been loaded.
func (r *InputRecording) SetFrameCounter(frameCount uint32) {
	if r.mov == nil {
		return
	}

	total := r.mov.TotalFrames()
	counter := int64(frameCount) - int64(r.startingFrame)

	if counter >= int64(total) {
		if counter > int64(total) {
			logger.Log(logger.Allow, "recording", "warning: emulation loaded to a point after the end of the original recording")
			logger.Log(logger.Allow, "recording", "savestate frame count has been ignored")
			r.metrics.IncReconciliation("after_end")
		} else {
			r.metrics.IncReconciliation("at_end")
		}
		if r.mode == Replaying {
			r.SetToRecordMode()
		}
		r.frameCounter = total
		r.incrementRedo = false
	} else {
		if counter < 0 {
			logger.Log(logger.Allow, "recording", "warning: emulation loaded to a point before the start of the original recording")
			r.metrics.IncReconciliation("before_start")
			if r.mode == Recording {
				r.SetToReplayMode()
			}
		} else {
			if counter == 0 && r.mode == Recording {
				r.SetToReplayMode()
			}
			r.metrics.IncReconciliation("inside")
		}
		r.frameCounter = int32(max(counter, math.MinInt32))
		r.incrementRedo = true
	}

	r.publish()
}

// SetToRecordMode switches the session and all replaying controllers to
// recording.
func (r *InputRecording) SetToRecordMode() {
	r.setMode(Recording, true)
}

// SetToReplayMode switches the session and all recording controllers to
// replaying.
func (r *InputRecording) SetToReplayMode() {
	r.setMode(Replaying, true)
}

// setMode switches the session mode. controllers in the opposite mode are
// switched too. controllers that are not active are unaffected.
func (r *InputRecording) setMode(mode Mode, log bool) {
	if r.mov == nil || mode == NotActive {
		return
	}

	from := Replaying
	if mode == Replaying {
		from = Recording
	}

	r.mode = mode
	for i := range r.pads {
		p := &r.pads[i]
		if p.mode == from {
			p.mode = mode
			if p.override != nil {
				p.override.SetReadOnly(mode == Replaying)
			}
		}
	}

	r.metrics.IncModeSwitch(mode.String())

	if log {
		if r.mov.PadCount() == 1 {
			logger.Logf(logger.Allow, "recording", "%s mode on", mode)
		} else {
			logger.Logf(logger.Allow, "recording", "all pads set to %s mode", mode)
		}
	}

	r.publish()
}
