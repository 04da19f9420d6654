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

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/sonicfind/pcsx2/curated"
)

// FrameCountTag is the name of the savestate section that holds the host's
// frame count. Changing the tag or the layout of the section breaks
// compatibility with existing savestates.
const FrameCountTag = "InputRecording"

// the tag is stored in a fixed width, null padded field
const tagWidth = 32

// TagError is returned when the frame count section of a savestate cannot be
// read.
const TagError = "emulation: frame count tag: %v"

// WriteFrameCountTag writes the frame count section of a savestate.
func WriteFrameCountTag(w io.Writer, frameCount uint32) error {
	var b [tagWidth + 4]byte
	copy(b[:tagWidth-1], FrameCountTag)
	binary.LittleEndian.PutUint32(b[tagWidth:], frameCount)
	_, err := w.Write(b[:])
	if err != nil {
		return curated.Errorf(TagError, err)
	}
	return nil
}

// ReadFrameCountTag reads the frame count section of a savestate. It is an
// error if the tag does not match FrameCountTag.
func ReadFrameCountTag(r io.Reader) (uint32, error) {
	var b [tagWidth + 4]byte
	_, err := io.ReadFull(r, b[:])
	if err != nil {
		return 0, curated.Errorf(TagError, err)
	}

	tag := b[:tagWidth]
	if i := bytes.IndexByte(tag, 0); i >= 0 {
		tag = tag[:i]
	}
	if string(tag) != FrameCountTag {
		return 0, curated.Errorf(TagError, fmt.Sprintf("unexpected tag (%q)", tag))
	}

	return binary.LittleEndian.Uint32(b[tagWidth:]), nil
}
