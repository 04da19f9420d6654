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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sonicfind/pcsx2/curated"
	"github.com/sonicfind/pcsx2/logger"
	"github.com/sonicfind/pcsx2/recording/movie"
	"github.com/sonicfind/pcsx2/recording/padata"
	"github.com/sonicfind/pcsx2/version"
)

// Create a new movie and start recording. The recording starts once the host
// has booted or, for movies that start from a savestate, once the host has
// saved the starting savestate.
//
// An existing movie at the path is overwritten. Any existing session is
// stopped. If the recording cannot be started the new movie file is removed.
func (r *InputRecording) Create(path string, startType movie.StartType, author string, pads uint8) error {
	if r.IsActive() || r.mov != nil {
		r.Stop()
	}

	if startType == movie.Savestate && !r.emu.IsOpen() {
		return curated.Errorf(StateViolation, "cannot start a recording from a savestate when no game is open")
	}

	mov, err := movie.Create(path, startType, pads)
	if err != nil {
		return err
	}

	r.mov = mov
	r.initialLoad = true
	r.mode = Recording

	// the header must be complete before the host is started because a host
	// may call back into the session immediately
	mov.SetEmulatorVersion(version.Emulator())
	if author != "" {
		mov.SetAuthor(author)
	}
	mov.SetGameName(r.resolveGameName())
	err = mov.WriteHeader()
	if err != nil {
		r.discard()
		return err
	}

	if mov.IsFromSavestate() {
		err = backupFile(mov.SavestatePath())
		if err != nil {
			r.discard()
			return err
		}
		err = r.emu.SaveState(mov.SavestatePath())
		if err != nil {
			r.discard()
			return curated.Errorf(IoError, err)
		}
	} else {
		err = r.boot(startType, true)
		if err != nil {
			r.discard()
			return err
		}
	}

	r.publish()

	return nil
}

// Play an existing movie. The replay starts once the host has booted or, for
// movies that start from a savestate, once the host has loaded the movie's
// savestate.
//
// Any existing session is stopped.
func (r *InputRecording) Play(path string) error {
	if r.IsActive() || r.mov != nil {
		r.Stop()
	}

	mov, err := movie.Open(path)
	if err != nil {
		return err
	}

	r.mov = mov
	r.mode = Replaying

	if mov.IsFromSavestate() {
		if !r.emu.IsOpen() {
			r.abandon()
			logger.Log(logger.Allow, "recording", "game is not open, aborting replay of movie which starts from a savestate")
			return curated.Errorf(StateViolation, "cannot replay a movie that starts from a savestate when no game is open")
		}

		_, err = os.Stat(mov.SavestatePath())
		if err != nil {
			r.abandon()
			logger.Logf(logger.Allow, "recording", "could not locate savestate file at location: %s", mov.SavestatePath())
			return curated.Errorf(IoError, err)
		}

		r.initialLoad = true
		err = r.emu.LoadState(mov.SavestatePath())
		if err != nil {
			r.abandon()
			return curated.Errorf(IoError, err)
		}
	} else {
		r.initialLoad = true
		err = r.boot(mov.StartType(), true)
		if err != nil {
			r.abandon()
			return err
		}
	}

	r.publish()

	return nil
}

// boot the host with the fast boot setting required by the start type. the
// current fast boot setting is buffered if buffer is true.
func (r *InputRecording) boot(startType movie.StartType, buffer bool) error {
	s := r.emu.Settings()

	if buffer {
		r.buffers.fastBoot = s.FastBoot
		r.buffers.fastBootBuffered = true
	}

	if startType == movie.FullBoot || startType == movie.FastBoot {
		fastBoot := startType == movie.FastBoot
		if s.FastBoot != fastBoot {
			s.FastBoot = fastBoot
			err := r.emu.ApplySettings(s)
			if err != nil {
				return curated.Errorf(StateViolation, err)
			}
		}
	}

	err := r.emu.Boot(s.FastBoot)
	if err != nil {
		return curated.Errorf(StateViolation, err)
	}

	return nil
}

// abandon a session that failed to start. settings are restored and the
// movie file is closed.
func (r *InputRecording) abandon() {
	r.restoreSettings()
	r.deactivatePads()
	r.mode = NotActive
	r.initialLoad = false
	r.incrementRedo = false
	r.closeMovie()
	r.publish()
}

// discard a new movie that failed to start recording. the session is
// abandoned and the movie file is removed.
func (r *InputRecording) discard() {
	if r.mov == nil {
		r.abandon()
		return
	}
	pth := r.mov.Path()
	r.abandon()
	err := os.Remove(pth)
	if err != nil {
		logger.Logf(logger.Allow, "recording", "could not remove movie: %v", err)
	}
}

// OnBoot should be called by the host when the emulation has booted.
func (r *InputRecording) OnBoot() {
	if r.initialLoad {
		r.SetupInitialState(0)
	} else if r.IsActive() {
		r.SetFrameCounter(0)
	}
}

// OnSavestate should be called by the host when a savestate has been saved or
// loaded. The frameCount argument is the host's frame clock stored in the
// savestate.
func (r *InputRecording) OnSavestate(loading bool, frameCount uint32) {
	if r.initialLoad {
		r.SetupInitialState(frameCount)
	} else if r.IsActive() && loading {
		r.SetFrameCounter(frameCount)
	}
}

// SetupInitialState begins the session once the host has booted or loaded the
// movie's savestate. The starting frame is the host's frame clock at that
// point.
func (r *InputRecording) SetupInitialState(startingFrame uint32) {
	if r.mov == nil {
		return
	}

	r.startingFrame = startingFrame

	if r.mode != Replaying {
		logger.Log(logger.Allow, "recording", "started new input recording")
		logger.Logf(logger.Allow, "recording", "filename: %s", r.mov.Path())
		r.setPads(true)
		r.setMode(Recording, false)
	} else {
		if r.emu.IsOpen() {
			if n := r.resolveGameName(); n != r.mov.GameName() {
				logger.Logf(logger.Allow, "recording", "warning: movie was possibly made for a different game (%s)", r.mov.GameName())
			}
		}

		r.incrementRedo = true

		hdr := r.mov.Header()
		logger.Log(logger.Allow, "recording", "replaying input recording")
		logger.Logf(logger.Allow, "recording", "filename: %s", r.mov.Path())
		logger.Logf(logger.Allow, "recording", "emulator version used: %s", hdr.EmulatorVersion)
		logger.Logf(logger.Allow, "recording", "movie file version: %d", hdr.Version)
		logger.Logf(logger.Allow, "recording", "game name: %s", hdr.GameName)
		logger.Logf(logger.Allow, "recording", "author: %s", hdr.Author)
		logger.Logf(logger.Allow, "recording", "total frames: %d", hdr.TotalFrames)
		logger.Logf(logger.Allow, "recording", "redo count: %d", hdr.RedoCount)

		r.setPads(false)
		r.setMode(Replaying, false)
	}

	if r.mov.IsFromSavestate() {
		logger.Logf(logger.Allow, "recording", "internal starting frame: %d", r.startingFrame)
	}

	r.frameCounter = 0
	r.initialLoad = false
	r.publish()
}

// setPads activates the controllers selected by the movie. the multitap
// setting of a port is enabled if the movie uses a slot other than the first.
// seek offsets are assigned in order of port and slot.
func (r *InputRecording) setPads(newRecording bool) {
	s := r.emu.Settings()
	r.buffers.multitap = s.Multitap
	r.buffers.multitapBuffered = true

	changed := false
	for port := range movie.NumPorts {
		if r.mov.IsMultitapUsed(port) && !s.Multitap[port] {
			s.Multitap[port] = true
			changed = true
		}
	}
	if changed {
		err := r.emu.ApplySettings(s)
		if err != nil {
			logger.Log(logger.Allow, "recording", err)
		}
	}

	used := make([]string, 0, movie.MaxPads)
	for port := range movie.NumPorts {
		for slot := range movie.NumSlots {
			p := &r.pads[movie.PadIndex(port, slot)]
			if r.mov.IsSlotUsed(port, slot) {
				p.mode = r.mode
				p.seekOffset = padata.PadBytes * len(used)
				if p.override != nil {
					p.override.SetReadOnly(!newRecording)
				}
				used = append(used, padName(port, slot))
			} else {
				p.mode = NotActive
				p.seekOffset = 0
			}
		}
	}

	logger.Logf(logger.Allow, "recording", "pads used: %s", strings.Join(used, ", "))
}

// deactivatePads returns every controller to the NotActive mode.
func (r *InputRecording) deactivatePads() {
	for i := range r.pads {
		p := &r.pads[i]
		if p.mode != NotActive {
			p.mode = NotActive
			p.seekOffset = 0
			if p.override != nil {
				p.override.SetReadOnly(false)
			}
		}
	}
}

// restoreSettings restores the host settings that were buffered at the start
// of the session.
func (r *InputRecording) restoreSettings() {
	if !r.buffers.multitapBuffered && !r.buffers.fastBootBuffered {
		return
	}

	s := r.emu.Settings()
	if r.buffers.multitapBuffered {
		s.Multitap = r.buffers.multitap
	}
	if r.buffers.fastBootBuffered {
		s.FastBoot = r.buffers.fastBoot
	}
	r.buffers = buffers{}

	err := r.emu.ApplySettings(s)
	if err != nil {
		logger.Log(logger.Allow, "recording", err)
	}
}

func (r *InputRecording) closeMovie() {
	if r.mov == nil {
		return
	}
	err := r.mov.Close()
	if err != nil {
		logger.Log(logger.Allow, "recording", err)
	}
	r.mov = nil
}

// GoToFirstFrame restarts the movie from the beginning by loading the movie's
// savestate or by booting the host. A recording session switches to
// replaying.
func (r *InputRecording) GoToFirstFrame() error {
	if !r.IsActive() || r.mov == nil {
		return curated.Errorf(StateViolation, "no movie is active")
	}

	if r.mov.IsFromSavestate() {
		_, err := os.Stat(r.mov.SavestatePath())
		if err != nil {
			logger.Logf(logger.Allow, "recording", "could not locate savestate file at location: %s", r.mov.SavestatePath())
			return curated.Errorf(IoError, err)
		}
		err = r.emu.LoadState(r.mov.SavestatePath())
		if err != nil {
			return curated.Errorf(IoError, err)
		}
	} else {
		err := r.boot(r.mov.StartType(), false)
		if err != nil {
			return err
		}
	}

	if r.IsRecording() {
		r.SetToReplayMode()
	}

	return nil
}

// FailedSavestate should be called by the host when a savestate being loaded
// was made by an incompatible version of the host. The session is ended.
func (r *InputRecording) FailedSavestate() {
	if r.mov != nil {
		logger.Logf(logger.Allow, "recording", "%s is not compatible with this version of the emulator", r.mov.SavestatePath())
		logger.Logf(logger.Allow, "recording", "original emulator version used: %s", r.mov.EmulatorVersion())
	}
	r.abandon()
}

// Stop the session. Host settings changed for the session are restored and
// the movie is closed.
func (r *InputRecording) Stop() {
	if r.mov != nil && r.mov.IsFromSavestate() {
		r.buffers.fastBootBuffered = false
	}
	r.restoreSettings()

	wasActive := r.IsActive()

	r.mode = NotActive
	r.incrementRedo = false
	r.initialLoad = false
	r.deactivatePads()
	r.closeMovie()
	r.publish()

	if wasActive {
		logger.Log(logger.Allow, "recording", "input recording stopped")
		r.metrics.IncModeSwitch(NotActive.String())
	}
}

// SetPadMode changes the mode of a single controller. Only controllers
// selected by the movie can be changed.
func (r *InputRecording) SetPadMode(port int, slot int, mode Mode) error {
	if !r.IsActive() || r.mov == nil {
		return curated.Errorf(StateViolation, "no movie is active")
	}
	idx, ok := padIndex(port, slot)
	if !ok || !r.mov.IsSlotUsed(port, slot) {
		return curated.Errorf(StateViolation, fmt.Sprintf("pad %d:%d is not part of the movie", port, slot))
	}

	p := &r.pads[idx]
	p.mode = mode
	if p.override != nil {
		p.override.SetReadOnly(mode == Replaying)
	}

	logger.Logf(logger.Allow, "recording", "pad %s set to %s mode", padName(port, slot), mode)
	r.publish()

	return nil
}

// resolveGameName returns the name of the game on the inserted disc. The disc
// filename is used if the name cannot be resolved.
func (r *InputRecording) resolveGameName() string {
	if r.resolver != nil {
		if id := r.emu.DiscID(); id != "" {
			n, err := r.resolver.ResolveGameName(id)
			if err == nil && n != "" {
				return n
			}
		}
	}
	return r.emu.DiscFilename()
}

// backupFile copies an existing file to a file of the same name with the .bak
// extension. it is not an error for the file not to exist.
func backupFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return curated.Errorf(IoError, err)
	}
	err = os.WriteFile(path+".bak", data, 0644)
	if err != nil {
		return curated.Errorf(IoError, err)
	}
	return nil
}
