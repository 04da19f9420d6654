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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function. It works like the Errorf() function in the fmt package,
// but the formatting pattern is remembered and can later be used to identify
// the error.
//
// Patterns are normally stored as exported constants by the package that
// returns them. For example, the movie package declares:
//
//	const FormatError = "movie: format: %v"
//
// and callers test for it with:
//
//	if curated.Is(err, movie.FormatError) {
//		...
//	}
//
// Is() only checks the outermost error. Has() checks the pattern anywhere in
// the chain of curated errors passed as values to Errorf():
//
//	e := curated.Errorf(movie.IoError, io.ErrUnexpectedEOF)
//	f := curated.Errorf("recording: %v", e)
//	curated.Has(f, movie.IoError) // true
//	curated.Is(f, movie.IoError)  // false
//
// IsAny() answers whether the error was created by Errorf() at all. Errors
// that are not curated are 'unexpected' errors and are usually the result of
// a bug.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts of the chain. Parts are separated by the sub-string ": ". So
// wrapping an error with the same prefix as the error it wraps:
//
//	e := curated.Errorf("movie: %v", curated.Errorf("movie: truncated header"))
//
// produces the message "movie: truncated header" rather than "movie: movie:
// truncated header".
package curated
