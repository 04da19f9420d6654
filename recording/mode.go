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

// Mode is the mode of the recording session or of a single controller.
type Mode int

// List of valid Mode values.
const (
	NotActive Mode = iota
	Recording
	Replaying
)

func (m Mode) String() string {
	switch m {
	case Recording:
		return "Recording"
	case Replaying:
		return "Replaying"
	}
	return "No Movie"
}
