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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given with NewArgs() and then processed with Parse(). The
// difference from flag.FlagSet is what allows sub-modes to be parsed in turn:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("INFO", "DUMP", "REPLAY")
//	p, err := md.Parse()
//
// After a successful Parse() the Mode() function returns the selected mode (or
// the first sub-mode if none was given). The mode is then free to call
// NewMode() and add its own flags before calling Parse() again:
//
//	switch md.Mode() {
//	case "DUMP":
//		md.NewMode()
//		from := md.AddInt("from", 0, "first frame to dump")
//		p, err := md.Parse()
//		...
//		dump(md.GetArg(0), *from)
//	}
//
// Sub-mode comparisons are case insensitive. Modes can be chained as deep as
// required and Path() returns the chain of modes that have been selected,
// separated by a forward slash.
//
// Help messages are printed automatically when the -help flag is given. The
// help includes the flags added for the mode and the list of sub-modes.
// Parse() returns ParseHelp in that instance.
package modalflag
