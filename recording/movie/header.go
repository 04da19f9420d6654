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
	"bytes"
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
)

// List of supported file format versions.
const (
	Version1 = 1
	Version2 = 2
)

// CurrentVersion is the version of all newly created movie files.
const CurrentVersion = Version2

// StartType indicates how the emulation should be started before the first
// frame of the movie.
type StartType uint8

// List of valid StartType values.
const (
	UnspecifiedBoot StartType = iota
	FullBoot
	FastBoot
	Savestate

	numStartTypes
)

func (st StartType) String() string {
	switch st {
	case UnspecifiedBoot:
		return "unspecified boot"
	case FullBoot:
		return "full boot"
	case FastBoot:
		return "fast boot"
	case Savestate:
		return "savestate"
	}
	return fmt.Sprintf("start type (%d)", uint8(st))
}

// IsBoot returns true if the start type requires the emulation to be booted.
func (st StartType) IsBoot() bool {
	return st != Savestate
}

// widths of the fixed string fields. the last byte of each field is always
// the null terminator
const (
	EmulatorVersionLen = 50
	AuthorLen          = 255
	GameNameLen        = 255
)

// byte positions of the header fields
const (
	seekpointVersion         = 0
	seekpointEmulatorVersion = seekpointVersion + 1
	seekpointAuthor          = seekpointEmulatorVersion + EmulatorVersionLen
	seekpointGameName        = seekpointAuthor + AuthorLen
	seekpointTotalFrames     = seekpointGameName + GameNameLen
	seekpointRedoCount       = seekpointTotalFrames + 4
	seekpointStartType       = seekpointRedoCount + 4
	seekpointPads            = seekpointStartType + 1
)

// position of the first byte of frame data for each version of the format
const (
	inputDataOffsetV1 = seekpointPads
	inputDataOffsetV2 = seekpointPads + 1
)

// Ports and slots available to the pad bitmask.
const (
	NumPorts = 2
	NumSlots = 4
	MaxPads  = NumPorts * NumSlots
)

// LegacyPads is the pad bitmask implied by a version 1 file: the first slot
// of both ports.
const LegacyPads = 0x11

// PadIndex returns the bit in the pad bitmask for the port and slot. Ports and
// slots are numbered from zero.
func PadIndex(port int, slot int) int {
	return port*NumSlots + slot
}

// PadCount returns the number of pads selected by the bitmask.
func PadCount(pads uint8) int {
	return bits.OnesCount8(pads)
}

// Header is the decoded header of a movie file.
type Header struct {
	Version         uint8
	EmulatorVersion string
	Author          string
	GameName        string
	TotalFrames     int32
	RedoCount       uint32
	StartType       StartType
	Pads            uint8
}

func (hdr Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("version:    %d\n", hdr.Version))
	s.WriteString(fmt.Sprintf("emulator:   %s\n", hdr.EmulatorVersion))
	s.WriteString(fmt.Sprintf("author:     %s\n", hdr.Author))
	s.WriteString(fmt.Sprintf("game:       %s\n", hdr.GameName))
	s.WriteString(fmt.Sprintf("frames:     %d\n", hdr.TotalFrames))
	s.WriteString(fmt.Sprintf("redo count: %d\n", hdr.RedoCount))
	s.WriteString(fmt.Sprintf("start:      %s\n", hdr.StartType))
	s.WriteString(fmt.Sprintf("pads:       %08b (%d)\n", hdr.Pads, PadCount(hdr.Pads)))
	return s.String()
}

// inputDataOffset returns the position of the first frame block for the
// header's version.
func (hdr Header) inputDataOffset() int64 {
	if hdr.Version == Version1 {
		return inputDataOffsetV1
	}
	return inputDataOffsetV2
}

// size of the encoded header.
func (hdr Header) size() int {
	return int(hdr.inputDataOffset())
}

// putString copies the string into a null padded field. the string is
// truncated if necessary so that the last byte of the field is always zero.
func putString(b *bytes.Buffer, s string, width int) {
	f := make([]byte, width)
	copy(f[:width-1], s)
	b.Write(f)
}

// getString returns the string in a null padded field. the string ends at the
// first null byte.
func getString(f []byte) string {
	if i := bytes.IndexByte(f, 0); i >= 0 {
		f = f[:i]
	}
	return string(f)
}

// truncate a string to fit in a field of the specified width.
func truncate(s string, width int) string {
	if len(s) > width-1 {
		return s[:width-1]
	}
	return s
}

// encode the header in the layout for its version.
func (hdr Header) encode() []byte {
	b := &bytes.Buffer{}
	b.WriteByte(hdr.Version)
	putString(b, hdr.EmulatorVersion, EmulatorVersionLen)
	putString(b, hdr.Author, AuthorLen)
	putString(b, hdr.GameName, GameNameLen)

	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(hdr.TotalFrames))
	b.Write(n[:])
	binary.LittleEndian.PutUint32(n[:], hdr.RedoCount)
	b.Write(n[:])

	if hdr.Version == Version1 {
		if hdr.StartType == Savestate {
			b.WriteByte(1)
		} else {
			b.WriteByte(0)
		}
	} else {
		b.WriteByte(uint8(hdr.StartType))
		b.WriteByte(hdr.Pads)
	}

	return b.Bytes()
}

// decode the fields of the header, excepting the version byte, from the
// data. the data should be long enough for the version already in the header.
func (hdr *Header) decode(data []byte) error {
	if len(data) < hdr.size() {
		return fmt.Errorf("header is truncated (%d bytes)", len(data))
	}

	hdr.EmulatorVersion = getString(data[seekpointEmulatorVersion:seekpointAuthor])
	hdr.Author = getString(data[seekpointAuthor:seekpointGameName])
	hdr.GameName = getString(data[seekpointGameName:seekpointTotalFrames])
	hdr.TotalFrames = int32(binary.LittleEndian.Uint32(data[seekpointTotalFrames:]))
	hdr.RedoCount = binary.LittleEndian.Uint32(data[seekpointRedoCount:])

	switch hdr.Version {
	case Version1:
		if data[seekpointStartType] != 0 {
			hdr.StartType = Savestate
		} else {
			hdr.StartType = UnspecifiedBoot
		}
		hdr.Pads = LegacyPads
	case Version2:
		hdr.StartType = StartType(data[seekpointStartType])
		if hdr.StartType >= numStartTypes {
			return fmt.Errorf("unknown start type (%d)", data[seekpointStartType])
		}
		hdr.Pads = data[seekpointPads]
		if hdr.Pads == 0 {
			return fmt.Errorf("no pads selected")
		}
	}

	if hdr.TotalFrames < 0 {
		return fmt.Errorf("negative frame count (%d)", hdr.TotalFrames)
	}

	return nil
}
