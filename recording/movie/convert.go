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
	"errors"
	"io"
	"os"

	"github.com/sonicfind/pcsx2/curated"
	"github.com/sonicfind/pcsx2/logger"
)

// Convert a version 1 movie file to a version 2 movie file. The frame data is
// copied unchanged and the new file records the pad bitmask implied by the
// version 1 format. The savestate for the movie is also copied if the movie
// starts from a savestate.
//
// The source and destination must be different files. If the conversion fails
// the destination file is removed.
func Convert(src string, dst string) (rerr error) {
	in, err := Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if in.Version() != Version1 {
		return curated.Errorf(FormatError, "not a version 1 movie")
	}

	err = checkSameFile(in.file, dst)
	if err != nil {
		return err
	}

	out, err := Create(dst, in.StartType(), LegacyPads)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
		if rerr != nil {
			_ = os.Remove(dst)
		}
	}()

	out.header.EmulatorVersion = in.header.EmulatorVersion
	out.header.Author = in.header.Author
	out.header.GameName = in.header.GameName
	out.header.TotalFrames = in.header.TotalFrames
	out.header.RedoCount = in.header.RedoCount

	err = out.WriteHeader()
	if err != nil {
		return err
	}

	r := io.NewSectionReader(in.file, in.inputDataOffset, 1<<62)
	w := io.NewOffsetWriter(out.file, out.inputDataOffset)
	_, err = io.Copy(w, r)
	if err != nil {
		return curated.Errorf(IoError, err)
	}

	if in.IsFromSavestate() {
		err = copyFile(in.SavestatePath(), out.SavestatePath())
		if err != nil {
			return err
		}
	}

	err = out.Close()
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "movie", "converted %s to version %d", src, CurrentVersion)

	return nil
}

// checkSameFile returns an error if the file at dst is the same file as f.
// a dst that does not exist is not an error.
func checkSameFile(f *os.File, dst string) error {
	dstInfo, err := os.Stat(dst)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return curated.Errorf(IoError, err)
	}

	srcInfo, err := f.Stat()
	if err != nil {
		return curated.Errorf(IoError, err)
	}

	if os.SameFile(srcInfo, dstInfo) {
		return curated.Errorf(IoError, "source and destination are the same file")
	}

	return nil
}

func copyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Logf(logger.Allow, "movie", "no savestate found for movie: %s", src)
			return nil
		}
		return curated.Errorf(IoError, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return curated.Errorf(IoError, err)
	}

	_, err = io.Copy(out, in)
	if err == nil {
		err = out.Close()
	} else {
		_ = out.Close()
	}
	if err != nil {
		_ = os.Remove(dst)
		return curated.Errorf(IoError, err)
	}
	return nil
}
