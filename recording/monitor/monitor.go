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

package monitor

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sonicfind/pcsx2/curated"
	"github.com/sonicfind/pcsx2/logger"
	"github.com/sonicfind/pcsx2/recording"
	"github.com/sonicfind/pcsx2/recording/metrics"
)

// ServerError is returned when the monitor cannot be started or stopped.
const ServerError = "monitor: %v"

// ShutdownTimeout is the amount of time given to open connections when the
// monitor is stopped.
const ShutdownTimeout = 5 * time.Second

// Source of session status. Status() must be safe to call from any goroutine.
// Satisfied by *recording.InputRecording.
type Source interface {
	Status() recording.Status
}

// Monitor is an http.Handler for the recording session.
type Monitor struct {
	src     Source
	metrics *metrics.Metrics
	router  *chi.Mux

	srv *http.Server
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The metrics argument can be nil, in which case /metrics responds with 404.
func NewMonitor(src Source, m *metrics.Metrics) *Monitor {
	mon := &Monitor{
		src:     src,
		metrics: m,
		router:  chi.NewRouter(),
	}

	mon.router.Use(middleware.Recoverer)
	mon.router.Use(requestLogger)
	mon.router.Get("/metrics", mon.metrics.Handler(nil).ServeHTTP)
	mon.router.Get("/status", mon.status)
	mon.router.Get("/pads/{port}/{slot}", mon.pad)

	return mon
}

// ServeHTTP implements the http.Handler interface.
func (mon *Monitor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mon.router.ServeHTTP(w, r)
}

// Start serving on the address. The monitor runs until Shutdown() is called.
// Returns the address being listened on, which will differ from the
// requested address if the requested port is zero.
func (mon *Monitor) Start(addr string) (string, error) {
	if mon.srv != nil {
		return "", curated.Errorf(ServerError, "already started")
	}

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return "", curated.Errorf(ServerError, err)
	}

	mon.srv = &http.Server{
		Handler:           mon,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func(srv *http.Server) {
		err := srv.Serve(l)
		if err != nil && err != http.ErrServerClosed {
			logger.Logf(logger.Allow, "monitor", "server error: %v", err)
		}
	}(mon.srv)

	logger.Logf(logger.Allow, "monitor", "listening on %s", l.Addr())

	return l.Addr().String(), nil
}

// Shutdown stops the monitor, waiting at most ShutdownTimeout for open
// connections to finish.
func (mon *Monitor) Shutdown(ctx context.Context) error {
	if mon.srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()

	err := mon.srv.Shutdown(ctx)
	mon.srv = nil
	if err != nil {
		return curated.Errorf(ServerError, err)
	}

	logger.Log(logger.Allow, "monitor", "stopped")
	return nil
}

func (mon *Monitor) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, mon.src.Status())
}

func (mon *Monitor) pad(w http.ResponseWriter, r *http.Request) {
	port, err := strconv.Atoi(chi.URLParam(r, "port"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	p, ok := mon.src.Status().Pad(port, slot)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, p)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		logger.Logf(logger.Allow, "monitor", "encoding response: %v", err)
	}
}

// requestLogger logs every request with the status of the response.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Logf(logger.Allow, "monitor", "%s %s %d", r.Method, r.URL.Path, ww.Status())
	})
}
