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

package recording_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonicfind/pcsx2/curated"
	"github.com/sonicfind/pcsx2/emulation"
	"github.com/sonicfind/pcsx2/headless"
	"github.com/sonicfind/pcsx2/recording"
	"github.com/sonicfind/pcsx2/recording/metrics"
	"github.com/sonicfind/pcsx2/recording/movie"
	"github.com/sonicfind/pcsx2/recording/padata"
)

// newSession returns a host with a disc inserted and an attached recording
// session.
func newSession(t *testing.T) (*headless.Host, *recording.InputRecording) {
	t.Helper()
	host := headless.NewHost(nil)
	host.InsertDisc("SLUS-21447", "/games/gh2.iso")
	db := headless.NewGameDB()
	db.Add("SLUS-21447", headless.GameEntry{Name: "Guitar Hero II", Region: "NTSC-U"})
	rec := recording.NewInputRecording(host, db)
	host.SetRecorder(rec)
	return host, rec
}

func moviePath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "test.p2m2")
}

// pressCrossOnEvenFrames runs the number of frames, pressing cross on the
// first controller on even numbered frames.
func pressCrossOnEvenFrames(host *headless.Host, frames int) {
	for i := range frames {
		host.Live(0, 0).SetPressed(padata.Cross, i%2 == 0)
		host.Frame()
	}
	host.Live(0, 0).SetPressed(padata.Cross, false)
}

func TestRecordAndReplay(t *testing.T) {
	pth := moviePath(t)

	host, rec := newSession(t)
	require.NoError(t, rec.Create(pth, movie.FullBoot, "tester", 0x01))
	assert.True(t, rec.IsRecording())
	assert.False(t, rec.IsInitialLoad())
	assert.Equal(t, "Recording", rec.ModeTitle())
	assert.Equal(t, "Guitar Hero II (NTSC-U)", rec.Movie().GameName())

	pressCrossOnEvenFrames(host, 10)
	assert.Equal(t, int32(10), rec.FrameCounter())
	assert.Equal(t, int32(10), rec.Movie().TotalFrames())
	rec.Stop()
	assert.False(t, rec.IsActive())
	assert.Nil(t, rec.Movie())
	assert.Equal(t, "No Movie", rec.ModeTitle())

	// replay on a fresh host. nothing is pressed on the live controller
	host, rec = newSession(t)
	require.NoError(t, rec.Play(pth))
	assert.True(t, rec.IsReplaying())
	assert.Equal(t, "tester", rec.Movie().Header().Author)

	for i := range 10 {
		host.Frame()
		r := host.Received(0, 0)
		if i%2 == 0 {
			assert.Equal(t, uint8(0b10111111), r[padata.PressedFlagsGroupTwo], "frame %d", i)
		} else {
			assert.Equal(t, uint8(0xff), r[padata.PressedFlagsGroupTwo], "frame %d", i)
		}
		assert.Equal(t, i%2 == 0, rec.PadData(0, 0).Pressed(padata.Cross))
	}

	// reading past the end of the movie leaves the live byte unchanged
	host.Live(0, 0).SetPressed(padata.Square, true)
	host.Frame()
	r := host.Received(0, 0)
	assert.Equal(t, uint8(0b01111111), r[padata.PressedFlagsGroupTwo])
	rec.Stop()
}

func TestStopRestoresSettings(t *testing.T) {
	host, rec := newSession(t)
	require.NoError(t, host.ApplySettings(emulation.Settings{}))

	// port 0 slot 0 and port 1 slot 1
	require.NoError(t, rec.Create(moviePath(t), movie.FastBoot, "", 0b00100001))
	assert.True(t, host.BootedFast())
	assert.Equal(t, emulation.Settings{Multitap: [2]bool{false, true}, FastBoot: true}, host.Settings())

	assert.Equal(t, 0, rec.SeekOffset(0, 0))
	assert.Equal(t, padata.PadBytes, rec.SeekOffset(1, 1))
	assert.Equal(t, recording.Recording, rec.PadMode(1, 1))
	assert.Equal(t, recording.NotActive, rec.PadMode(1, 0))

	host.Frame()
	rec.Stop()
	assert.Equal(t, emulation.Settings{}, host.Settings())
	assert.Equal(t, 0, rec.SeekOffset(1, 1))
	assert.Equal(t, recording.NotActive, rec.PadMode(0, 0))
	assert.Equal(t, recording.NotActive, rec.PadMode(1, 1))
}

func TestMultiplePadsRecorded(t *testing.T) {
	pth := moviePath(t)

	host, rec := newSession(t)
	require.NoError(t, rec.Create(pth, movie.FullBoot, "", 0b00010001))
	host.Live(1, 0).SetAnalog(padata.LeftY, 0x20)
	host.Frame()
	rec.Stop()

	mov, err := movie.Open(pth)
	require.NoError(t, err)
	defer mov.Close()

	v, err := mov.ReadKeyBuffer(0, padata.PadBytes+int(padata.LeftAnalogYVector))
	require.NoError(t, err)
	assert.Equal(t, uint8(0x20), v)
	v, err = mov.ReadKeyBuffer(0, int(padata.LeftAnalogYVector))
	require.NoError(t, err)
	assert.Equal(t, uint8(padata.AnalogNeutral), v)
}

func TestReconciliation(t *testing.T) {
	host, rec := newSession(t)
	require.NoError(t, host.Boot(false))
	for range 100 {
		host.Frame()
	}

	require.NoError(t, rec.Create(moviePath(t), movie.Savestate, "", 0x01))
	assert.Equal(t, uint32(100), rec.StartingFrame())
	assert.Equal(t, int32(0), rec.FrameCounter())
	for range 50 {
		host.Frame()
	}
	assert.Equal(t, int32(50), rec.Movie().TotalFrames())

	// loaded past the end of the movie while replaying
	rec.SetToReplayMode()
	rec.OnSavestate(true, 200)
	assert.Equal(t, int32(50), rec.FrameCounter())
	assert.True(t, rec.IsRecording())

	// loaded to before the start of the movie while recording
	rec.OnSavestate(true, 90)
	assert.Equal(t, int32(-10), rec.FrameCounter())
	assert.True(t, rec.IsReplaying())

	// loaded to the start of the movie while recording
	rec.SetToRecordMode()
	rec.OnSavestate(true, 100)
	assert.Equal(t, int32(0), rec.FrameCounter())
	assert.True(t, rec.IsReplaying())

	// loaded inside the movie while recording
	rec.SetToRecordMode()
	rec.OnSavestate(true, 120)
	assert.Equal(t, int32(20), rec.FrameCounter())
	assert.True(t, rec.IsRecording())

	// saving a state does not change the frame counter
	rec.OnSavestate(false, 140)
	assert.Equal(t, int32(20), rec.FrameCounter())
}

func TestRedoCountedOnce(t *testing.T) {
	state := filepath.Join(t.TempDir(), "rewind.p2s")

	host, rec := newSession(t)
	require.NoError(t, rec.Create(moviePath(t), movie.FullBoot, "", 0x01))
	pressCrossOnEvenFrames(host, 5)
	require.NoError(t, host.SaveState(state))
	pressCrossOnEvenFrames(host, 5)
	assert.Equal(t, int32(10), rec.Movie().TotalFrames())
	assert.Equal(t, uint32(0), rec.Movie().RedoCount())

	require.NoError(t, host.LoadState(state))
	assert.Equal(t, int32(5), rec.FrameCounter())
	assert.True(t, rec.IsRecording())

	host.Live(0, 0).SetPressed(padata.Triangle, true)
	host.Frame()
	assert.Equal(t, uint32(1), rec.Movie().RedoCount())
	host.Frame()
	host.Frame()
	assert.Equal(t, uint32(1), rec.Movie().RedoCount())
	assert.Equal(t, int32(10), rec.Movie().TotalFrames())

	// recording beyond the previous end of the movie
	for range 5 {
		host.Frame()
	}
	assert.Equal(t, int32(13), rec.Movie().TotalFrames())
	assert.Equal(t, uint32(1), rec.Movie().RedoCount())
}

func TestPlaySavestateNoGame(t *testing.T) {
	pth := moviePath(t)
	mov, err := movie.Create(pth, movie.Savestate, 0x01)
	require.NoError(t, err)
	require.NoError(t, mov.WriteHeader())
	require.NoError(t, mov.Close())

	_, rec := newSession(t)
	err = rec.Play(pth)
	assert.True(t, curated.Is(err, recording.StateViolation))
	assert.False(t, rec.IsActive())
	assert.Nil(t, rec.Movie())
}

func TestPlaySavestateMissing(t *testing.T) {
	pth := moviePath(t)
	mov, err := movie.Create(pth, movie.Savestate, 0x01)
	require.NoError(t, err)
	require.NoError(t, mov.WriteHeader())
	require.NoError(t, mov.Close())

	host, rec := newSession(t)
	require.NoError(t, host.Boot(false))
	err = rec.Play(pth)
	assert.True(t, curated.Is(err, recording.IoError))
	assert.False(t, rec.IsActive())
}

func TestPlaySavestate(t *testing.T) {
	pth := moviePath(t)

	host, rec := newSession(t)
	require.NoError(t, host.Boot(false))
	for range 30 {
		host.Frame()
	}
	require.NoError(t, rec.Create(pth, movie.Savestate, "", 0x01))
	_, err := os.Stat(pth + movie.SavestateSuffix)
	require.NoError(t, err)
	pressCrossOnEvenFrames(host, 6)
	rec.Stop()

	// creating again backs up the existing savestate
	require.NoError(t, rec.Create(pth+"2", movie.Savestate, "", 0x01))
	rec.Stop()
	require.NoError(t, rec.Create(pth+"2", movie.Savestate, "", 0x01))
	rec.Stop()
	_, err = os.Stat(pth + "2" + movie.SavestateSuffix + ".bak")
	assert.NoError(t, err)

	// replay on a new host with a game open
	host, rec = newSession(t)
	require.NoError(t, host.Boot(false))
	require.NoError(t, rec.Play(pth))
	assert.True(t, rec.IsReplaying())
	assert.Equal(t, uint32(30), rec.StartingFrame())
	assert.Equal(t, uint32(30), host.FrameCount())

	host.Frame()
	r := host.Received(0, 0)
	assert.Equal(t, uint8(0b10111111), r[padata.PressedFlagsGroupTwo])
}

func TestFailedSavestate(t *testing.T) {
	pth := moviePath(t)

	host, rec := newSession(t)
	require.NoError(t, host.Boot(false))
	host.SetStateVersion(headless.StateVersion + 1)
	require.NoError(t, rec.Create(pth, movie.Savestate, "", 0x01))
	rec.Stop()

	err := rec.Play(pth)
	assert.True(t, curated.Is(err, recording.IoError))
	assert.False(t, rec.IsActive())
	assert.False(t, rec.IsInitialLoad())
	assert.Nil(t, rec.Movie())
}

func TestUnsupportedMovie(t *testing.T) {
	pth := moviePath(t)
	data := make([]byte, 600)
	data[0] = 9
	require.NoError(t, os.WriteFile(pth, data, 0644))

	_, rec := newSession(t)
	err := rec.Play(pth)
	assert.True(t, curated.Is(err, movie.FormatError))
	assert.False(t, rec.IsActive())

	err = rec.Play(filepath.Join(t.TempDir(), "missing.p2m2"))
	assert.True(t, curated.Is(err, movie.IoError))
	assert.False(t, rec.IsActive())
}

func TestInterruptFrame(t *testing.T) {
	_, rec := newSession(t)

	rec.ControllerInterrupt(0, 0, 1, 0x42, 0x79)
	assert.True(t, rec.IsInterruptFrame())
	rec.ControllerInterrupt(0, 0, 2, 0x00, 0x5a)
	assert.True(t, rec.IsInterruptFrame())

	// the second byte of a configuration query
	rec.ControllerInterrupt(0, 0, 1, 0x42, 0x79)
	rec.ControllerInterrupt(0, 0, 2, 0x00, 0x00)
	assert.False(t, rec.IsInterruptFrame())

	rec.ControllerInterrupt(0, 0, 1, 0x43, 0xf3)
	assert.False(t, rec.IsInterruptFrame())

	// bytes pass through when there is no session
	assert.Equal(t, uint8(0x12), rec.ControllerInterrupt(0, 0, 5, 0x00, 0x12))
	assert.Equal(t, uint8(0x12), rec.ControllerInterrupt(5, 9, 5, 0x00, 0x12))
}

// pressCross is an override that presses cross whenever it is allowed
type pressCross struct {
	readOnly bool
	seen     []padata.BufferIndex
}

func (o *pressCross) UpdateControllerData(idx padata.BufferIndex, pd *padata.PadData) bool {
	o.seen = append(o.seen, idx)
	if o.readOnly || idx != padata.PressedFlagsGroupTwo {
		return false
	}
	pd.SetPressed(padata.Cross, true)
	return true
}

func (o *pressCross) SetReadOnly(readOnly bool) {
	o.readOnly = readOnly
}

func TestOverride(t *testing.T) {
	pth := moviePath(t)

	host, rec := newSession(t)
	o := &pressCross{}
	rec.SetOverride(0, 0, o)

	require.NoError(t, rec.Create(pth, movie.FullBoot, "", 0x01))
	assert.False(t, o.readOnly)
	host.Frame()
	assert.Len(t, o.seen, padata.PadBytes)

	// sent to the console
	r := host.Received(0, 0)
	assert.Equal(t, uint8(0b10111111), r[padata.PressedFlagsGroupTwo])

	// and persisted
	v, err := rec.Movie().ReadKeyBuffer(0, int(padata.PressedFlagsGroupTwo))
	require.NoError(t, err)
	assert.Equal(t, uint8(0b10111111), v)

	// overrides are read-only while replaying
	rec.SetToReplayMode()
	assert.True(t, o.readOnly)
	rec.Stop()
	assert.False(t, o.readOnly)
}

func TestGoToFirstFrame(t *testing.T) {
	host, rec := newSession(t)
	assert.True(t, curated.Is(rec.GoToFirstFrame(), recording.StateViolation))

	require.NoError(t, rec.Create(moviePath(t), movie.FullBoot, "", 0x01))
	pressCrossOnEvenFrames(host, 4)
	require.NoError(t, rec.GoToFirstFrame())
	assert.True(t, rec.IsReplaying())
	assert.Equal(t, int32(0), rec.FrameCounter())
	assert.Equal(t, uint32(0), host.FrameCount())

	host.Frame()
	r := host.Received(0, 0)
	assert.Equal(t, uint8(0b10111111), r[padata.PressedFlagsGroupTwo])
}

func TestSetPadMode(t *testing.T) {
	host, rec := newSession(t)
	assert.True(t, curated.Is(rec.SetPadMode(0, 0, recording.Replaying), recording.StateViolation))

	require.NoError(t, rec.Create(moviePath(t), movie.FullBoot, "", 0x01))
	assert.True(t, curated.Is(rec.SetPadMode(1, 0, recording.Replaying), recording.StateViolation))
	assert.True(t, curated.Is(rec.SetPadMode(7, 0, recording.Replaying), recording.StateViolation))

	// an inactive pad passes through but is not recorded
	require.NoError(t, rec.SetPadMode(0, 0, recording.NotActive))
	host.Frame()
	_, err := rec.Movie().ReadKeyBuffer(0, 0)
	assert.True(t, curated.Is(err, movie.IoError))
}

func TestStatus(t *testing.T) {
	host, rec := newSession(t)
	m := metrics.New()
	rec.SetMetrics(m)

	s := rec.Status()
	assert.Equal(t, "No Movie", s.Mode)
	assert.Empty(t, s.Pads)

	require.NoError(t, rec.Create(moviePath(t), movie.FullBoot, "author", 0x11))
	host.Live(1, 0).SetPressed(padata.Start, true)
	host.Frame()
	host.Frame()

	s = rec.Status()
	assert.Equal(t, "Recording", s.Mode)
	assert.Equal(t, int32(2), s.FrameCounter)
	assert.Equal(t, int32(2), s.TotalFrames)
	assert.Equal(t, "author", s.Author)
	require.Len(t, s.Pads, 2)

	p, ok := s.Pad(1, 0)
	require.True(t, ok)
	assert.Equal(t, "2A", p.Name)
	assert.Equal(t, padata.PadBytes, p.SeekOffset)
	assert.Equal(t, uint8(0b11110111), p.Raw[padata.PressedFlagsGroupOne])
	assert.Equal(t, rec.RawPadBytes(1, 0), p.Raw)

	_, ok = s.Pad(0, 1)
	assert.False(t, ok)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestFrameCounterSaturates(t *testing.T) {
	pth := moviePath(t)

	host, rec := newSession(t)
	require.NoError(t, rec.Create(pth, movie.FullBoot, "", 0x01))
	pressCrossOnEvenFrames(host, 2)
	rec.Stop()

	mov, err := movie.Open(pth)
	require.NoError(t, err)
	mov.SetTotalFrames(math.MaxInt32)
	require.NoError(t, mov.Close())

	require.NoError(t, rec.Play(pth))
	rec.OnSavestate(true, math.MaxUint32)
	assert.Equal(t, int32(math.MaxInt32), rec.FrameCounter())
	assert.True(t, rec.IsRecording())

	rec.IncrementFrameCounter()
	assert.Equal(t, int32(math.MaxInt32), rec.FrameCounter())
	assert.Equal(t, int32(math.MaxInt32), rec.Movie().TotalFrames())
	rec.Stop()
}

func TestCreateFailureRemovesMovie(t *testing.T) {
	pth := moviePath(t)

	host, rec := newSession(t)
	require.NoError(t, host.Boot(false))

	// the savestate cannot be written over a directory
	require.NoError(t, os.Mkdir(pth+movie.SavestateSuffix, 0755))

	err := rec.Create(pth, movie.Savestate, "", 0x01)
	assert.True(t, curated.Is(err, recording.IoError))
	assert.False(t, rec.IsActive())
	assert.Nil(t, rec.Movie())

	_, err = os.Stat(pth)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeactivatedPadKeepsSeekOffsets(t *testing.T) {
	host, rec := newSession(t)
	require.NoError(t, rec.Create(moviePath(t), movie.FullBoot, "", 0x11))
	assert.Equal(t, 0, rec.SeekOffset(0, 0))
	assert.Equal(t, 18, rec.SeekOffset(1, 0))

	// the frame layout is fixed by the movie header so the remaining pad
	// keeps its place in the frame
	require.NoError(t, rec.SetPadMode(0, 0, recording.NotActive))
	assert.Equal(t, 18, rec.SeekOffset(1, 0))

	host.Live(1, 0).SetPressed(padata.Cross, true)
	host.Frame()
	v, err := rec.Movie().ReadKeyBuffer(0, 18+int(padata.PressedFlagsGroupTwo))
	require.NoError(t, err)
	assert.Equal(t, uint8(0b10111111), v)
	rec.Stop()
}
