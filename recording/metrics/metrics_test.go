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

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonicfind/pcsx2/recording/metrics"
)

// value returns the value of the first metric in the named family.
func value(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		require.NotEmpty(t, f.GetMetric())
		mt := f.GetMetric()[0]
		if mt.GetCounter() != nil {
			return mt.GetCounter().GetValue()
		}
		return mt.GetGauge().GetValue()
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.IncBytesRecorded()
		m.IncBytesReplayed()
		m.IncReadFailures()
		m.IncWriteFailures()
		m.IncRedo()
		m.IncModeSwitch("Recording")
		m.IncReconciliation("clamped")
		m.SetSession(1, 10, 20)
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCounters(t *testing.T) {
	m := metrics.New()
	m.IncBytesRecorded()
	m.IncBytesRecorded()
	m.IncRedo()
	m.IncModeSwitch("Replaying")
	m.SetSession(2, 15, 40)

	assert.Equal(t, 2.0, value(t, m, "pcsx2rec_bytes_recorded_total"))
	assert.Equal(t, 1.0, value(t, m, "pcsx2rec_redo_increments_total"))
	assert.Equal(t, 1.0, value(t, m, "pcsx2rec_mode_switches_total"))
	assert.Equal(t, 2.0, value(t, m, "pcsx2rec_mode"))
	assert.Equal(t, 15.0, value(t, m, "pcsx2rec_frame_counter"))
	assert.Equal(t, 40.0, value(t, m, "pcsx2rec_total_frames"))
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	updated := false
	h := m.Handler(func() {
		updated = true
		m.SetSession(1, 3, 3)
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, updated)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "pcsx2rec_frame_counter 3"))
}
