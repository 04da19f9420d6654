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

package logger

import (
	"bytes"
	"io"
)

const (
	penTag    = "\033[36m"
	penWarn   = "\033[33m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag is
// coloured and lines that carry a warning are highlighted.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	tag, detail, found := bytes.Cut(p, []byte(": "))
	if !found {
		return c.out.Write(p)
	}

	b := &bytes.Buffer{}
	b.WriteString(penTag)
	b.Write(tag)
	b.WriteString(penNormal)
	b.WriteString(": ")
	if bytes.HasPrefix(bytes.ToLower(detail), []byte("warning")) {
		b.WriteString(penWarn)
		b.Write(bytes.TrimRight(detail, "\n"))
		b.WriteString(penNormal)
		b.WriteString("\n")
	} else {
		b.Write(detail)
	}

	if _, err := c.out.Write(b.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
