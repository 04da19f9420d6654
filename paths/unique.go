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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// MovieExtension is the filename extension used for input recordings.
const MovieExtension = ".p2m2"

// UniqueFilename creates a movie filename that (assuming a functioning clock)
// should not collide with any existing file. The function does not test for
// this. The format of the returned string is:
//
//	prepend_gamename_YYYYMMDD_HHMMSS.p2m2
//
// Spaces in the game name are replaced with underscores. If there is no game
// name the returned string omits it.
func UniqueFilename(prepend string, gameName string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	g := strings.ReplaceAll(strings.TrimSpace(gameName), " ", "_")
	if len(g) > 0 {
		return fmt.Sprintf("%s_%s_%s%s", prepend, g, timestamp, MovieExtension)
	}
	return fmt.Sprintf("%s_%s%s", prepend, timestamp, MovieExtension)
}
