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

// Package monitor serves the state of a recording session over HTTP. The
// following endpoints are available:
//
//	/metrics              prometheus metrics
//	/status               the session status as JSON
//	/pads/{port}/{slot}   the status of a single controller as JSON
//
// Requests are logged with the tag "monitor". The session is never modified
// through the monitor.
package monitor
