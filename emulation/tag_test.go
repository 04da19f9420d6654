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

package emulation_test

import (
	"bytes"
	"testing"

	"github.com/sonicfind/pcsx2/curated"
	"github.com/sonicfind/pcsx2/emulation"
	"github.com/sonicfind/pcsx2/test"
)

func TestFrameCountTag(t *testing.T) {
	b := &bytes.Buffer{}
	test.DemandSuccess(t, emulation.WriteFrameCountTag(b, 123456))
	test.ExpectEquality(t, b.Len(), 36)

	n, err := emulation.ReadFrameCountTag(b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, uint32(123456))
}

func TestFrameCountTagMismatch(t *testing.T) {
	b := bytes.NewBuffer(make([]byte, 36))
	copy(b.Bytes(), "SomethingElse")
	_, err := emulation.ReadFrameCountTag(b)
	test.ExpectSuccess(t, curated.Is(err, emulation.TagError))

	// short read
	_, err = emulation.ReadFrameCountTag(bytes.NewBufferString("Input"))
	test.ExpectSuccess(t, curated.Is(err, emulation.TagError))
}
