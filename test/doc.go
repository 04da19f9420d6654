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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect* functions report a test error and allow the test to continue.
// The Demand* functions are fatal and should be used when the value being
// tested is used in further tests and so must be correct. For example,
// demanding that a movie file was opened before reading from it.
//
// ExpectSuccess() and ExpectFailure() interpret a value according to its
// type. A bool is successful if it is true and an error is successful if it
// is nil. It is worth noting how nil is handled: nil is considered a success
// because of how errors usually work (nil to indicate no error).
package test
