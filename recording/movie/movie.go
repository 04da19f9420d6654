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

package movie

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sonicfind/pcsx2/curated"
	"github.com/sonicfind/pcsx2/logger"
	"github.com/sonicfind/pcsx2/recording/padata"
)

// SavestateSuffix is appended to the path of a movie to form the path of the
// savestate the movie starts from.
const SavestateSuffix = "_SaveState.p2s"

// Movie is an open movie file. The file handle is owned by the Movie for its
// lifetime and must not be accessed by anything else.
type Movie struct {
	path   string
	file   *os.File
	header Header

	padCount        int
	blockSize       int
	inputDataOffset int64
}

// Create a new movie file, truncating any existing file at the path. The
// header is initialised with the current version, the start type and the pad
// bitmask. The header is not written until WriteHeader() is called.
func Create(path string, startType StartType, pads uint8) (*Movie, error) {
	if pads == 0 {
		return nil, curated.Errorf(FormatError, "no pads selected")
	}
	if startType >= numStartTypes {
		return nil, curated.Errorf(FormatError, "unknown start type")
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, curated.Errorf(IoError, err)
	}

	mov := &Movie{
		path: path,
		file: f,
		header: Header{
			Version:   CurrentVersion,
			StartType: startType,
			Pads:      pads,
		},
	}
	mov.derive()

	return mov, nil
}

// Open an existing movie file for reading and writing. The header is read
// and validated. Unsupported versions and malformed headers result in a
// FormatError.
func Open(path string) (*Movie, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return nil, curated.Errorf(IoError, err)
	}

	mov := &Movie{
		path: path,
		file: f,
	}

	err = mov.readHeader()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	mov.derive()

	return mov, nil
}

// set fields derived from the header.
func (mov *Movie) derive() {
	mov.padCount = PadCount(mov.header.Pads)
	mov.blockSize = mov.padCount * padata.PadBytes
	mov.inputDataOffset = mov.header.inputDataOffset()
}

func (mov *Movie) readHeader() error {
	data := make([]byte, inputDataOffsetV2)
	n, err := mov.file.ReadAt(data, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return curated.Errorf(IoError, err)
	}
	data = data[:n]

	if len(data) == 0 {
		return curated.Errorf(FormatError, "file is empty")
	}

	mov.header.Version = data[seekpointVersion]
	if mov.header.Version != Version1 && mov.header.Version != Version2 {
		return curated.Errorf(FormatError, fmt.Sprintf("unsupported version (%d)", mov.header.Version))
	}

	err = mov.header.decode(data)
	if err != nil {
		return curated.Errorf(FormatError, err)
	}

	return nil
}

// WriteHeader writes the header to the file. It should be called once after
// Create() and before any frame data is written.
func (mov *Movie) WriteHeader() error {
	_, err := mov.file.WriteAt(mov.header.encode(), 0)
	if err != nil {
		return curated.Errorf(IoError, err)
	}
	return nil
}

// Close the movie file. Calling Close() more than once is safe.
func (mov *Movie) Close() error {
	if mov.file == nil {
		return nil
	}
	err := mov.file.Close()
	mov.file = nil
	if err != nil {
		return curated.Errorf(IoError, err)
	}
	return nil
}

// IsOpen returns false if the movie has been closed.
func (mov *Movie) IsOpen() bool {
	return mov.file != nil
}

// offset of the byte for the frame and seek offset.
func (mov *Movie) offset(frame int32, seekOffset int) (int64, error) {
	if mov.file == nil {
		return 0, curated.Errorf(IoError, "movie is closed")
	}
	if frame < 0 {
		return 0, curated.Errorf(IoError, fmt.Sprintf("negative frame (%d)", frame))
	}
	if seekOffset < 0 || seekOffset >= mov.blockSize {
		return 0, curated.Errorf(IoError, fmt.Sprintf("seek offset out of range (%d)", seekOffset))
	}
	return mov.inputDataOffset + int64(frame)*int64(mov.blockSize) + int64(seekOffset), nil
}

// ReadKeyBuffer reads the byte for the frame at the seek offset. The seek
// offset is the pad's seek offset plus the padata.BufferIndex of the byte.
// Reading beyond the end of the file is an IoError.
func (mov *Movie) ReadKeyBuffer(frame int32, seekOffset int) (uint8, error) {
	off, err := mov.offset(frame, seekOffset)
	if err != nil {
		return 0, err
	}

	var b [1]byte
	_, err = mov.file.ReadAt(b[:], off)
	if err != nil {
		return 0, curated.Errorf(IoError, err)
	}

	return b[0], nil
}

// WriteKeyBuffer writes the byte for the frame at the seek offset. Writing
// beyond the end of the file extends the file.
func (mov *Movie) WriteKeyBuffer(frame int32, seekOffset int, v uint8) error {
	off, err := mov.offset(frame, seekOffset)
	if err != nil {
		return err
	}

	_, err = mov.file.WriteAt([]byte{v}, off)
	if err != nil {
		return curated.Errorf(IoError, err)
	}

	return nil
}

// ReadFrame returns the complete block of bytes for the frame.
func (mov *Movie) ReadFrame(frame int32) ([]byte, error) {
	off, err := mov.offset(frame, 0)
	if err != nil {
		return nil, err
	}

	b := make([]byte, mov.blockSize)
	_, err = mov.file.ReadAt(b, off)
	if err != nil {
		return nil, curated.Errorf(IoError, err)
	}

	return b, nil
}

// SetTotalFrames raises the total frames field to n. The field is never
// lowered and represents the length of the longest recording made into the
// file. Returns true if the stored value was already greater than or equal to
// n.
//
// A failure to write the field is logged and the in-memory value is still
// raised.
func (mov *Movie) SetTotalFrames(n int32) bool {
	if mov.header.TotalFrames >= n {
		return true
	}
	mov.header.TotalFrames = n

	if mov.file != nil {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(n))
		_, err := mov.file.WriteAt(b[:], seekpointTotalFrames)
		if err != nil {
			logger.Log(logger.Allow, "movie", curated.Errorf(IoError, err))
		}
	}

	return false
}

// IncrementRedoCount adds one to the redo count and writes the field to the
// file.
func (mov *Movie) IncrementRedoCount() error {
	mov.header.RedoCount++

	if mov.file == nil {
		return curated.Errorf(IoError, "movie is closed")
	}

	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], mov.header.RedoCount)
	_, err := mov.file.WriteAt(b[:], seekpointRedoCount)
	if err != nil {
		return curated.Errorf(IoError, err)
	}

	return nil
}

// SetEmulatorVersion sets the emulator version field of the header. The
// string is truncated if it is too long.
func (mov *Movie) SetEmulatorVersion(s string) {
	mov.header.EmulatorVersion = truncate(s, EmulatorVersionLen)
}

// SetAuthor sets the author field of the header. The string is truncated if
// it is too long.
func (mov *Movie) SetAuthor(s string) {
	mov.header.Author = truncate(s, AuthorLen)
}

// SetGameName sets the game name field of the header. The string is
// truncated if it is too long.
func (mov *Movie) SetGameName(s string) {
	mov.header.GameName = truncate(s, GameNameLen)
}

// Header returns a copy of the movie's header.
func (mov *Movie) Header() Header {
	return mov.header
}

func (mov *Movie) Path() string {
	return mov.path
}

// SavestatePath returns the path of the savestate for a movie that starts
// from a savestate.
func (mov *Movie) SavestatePath() string {
	return mov.path + SavestateSuffix
}

func (mov *Movie) Version() uint8 {
	return mov.header.Version
}

func (mov *Movie) TotalFrames() int32 {
	return mov.header.TotalFrames
}

func (mov *Movie) RedoCount() uint32 {
	return mov.header.RedoCount
}

func (mov *Movie) StartType() StartType {
	return mov.header.StartType
}

func (mov *Movie) GameName() string {
	return mov.header.GameName
}

func (mov *Movie) EmulatorVersion() string {
	return mov.header.EmulatorVersion
}

func (mov *Movie) Pads() uint8 {
	return mov.header.Pads
}

// PadCount returns the number of pads recorded in each frame.
func (mov *Movie) PadCount() int {
	return mov.padCount
}

// BlockSize returns the number of bytes in each frame.
func (mov *Movie) BlockSize() int {
	return mov.blockSize
}

// InputDataOffset returns the position of the first byte of frame data.
func (mov *Movie) InputDataOffset() int64 {
	return mov.inputDataOffset
}

// IsFromSavestate returns true if the movie starts from a savestate.
func (mov *Movie) IsFromSavestate() bool {
	return mov.header.StartType == Savestate
}

// IsSlotUsed returns true if the port and slot is selected in the pad
// bitmask.
func (mov *Movie) IsSlotUsed(port int, slot int) bool {
	if port < 0 || port >= NumPorts || slot < 0 || slot >= NumSlots {
		return false
	}
	return mov.header.Pads&(1<<PadIndex(port, slot)) != 0
}

// IsMultitapUsed returns true if any slot other than the first is selected
// for the port.
func (mov *Movie) IsMultitapUsed(port int) bool {
	for slot := 1; slot < NumSlots; slot++ {
		if mov.IsSlotUsed(port, slot) {
			return true
		}
	}
	return false
}
