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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bradleyjkemp/memviz"

	"github.com/sonicfind/pcsx2/emulation"
	"github.com/sonicfind/pcsx2/headless"
	"github.com/sonicfind/pcsx2/logger"
	"github.com/sonicfind/pcsx2/modalflag"
	"github.com/sonicfind/pcsx2/paths"
	"github.com/sonicfind/pcsx2/prefs"
	"github.com/sonicfind/pcsx2/recording"
	"github.com/sonicfind/pcsx2/recording/luapad"
	"github.com/sonicfind/pcsx2/recording/metrics"
	"github.com/sonicfind/pcsx2/recording/monitor"
	"github.com/sonicfind/pcsx2/recording/movie"
	"github.com/sonicfind/pcsx2/recording/padata"
	"github.com/sonicfind/pcsx2/recording/virtualpad"
	"github.com/sonicfind/pcsx2/statsview"
	"github.com/sonicfind/pcsx2/version"
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch the mode specified by the arguments. returns the exit value.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("INFO", "DUMP", "CONVERT", "RECORD", "REPLAY", "VERSION")

	cmdPrefs := md.AddString("prefs", "", "preferences for this run only (eg. \"recording.author::me; recording.pads::0x11\")")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, "run stats server")
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	prefs.PushCommandLineStack(*cmdPrefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "* unused preferences: %s\n", unused)
		}
	}()

	switch md.Mode() {
	case "INFO":
		err = info(md)
	case "DUMP":
		err = dump(md)
	case "CONVERT":
		err = convert(md)
	case "RECORD":
		err = record(md)
	case "REPLAY":
		err = replay(md)
	case "VERSION":
		v, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	viz := md.AddString("memviz", "", "write graphviz representation of the header to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("movie file required for %s mode", md)
	}

	mov, err := movie.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer mov.Close()

	hdr := mov.Header()
	fmt.Fprint(md.Output, hdr.String())
	fmt.Fprintf(md.Output, "used:       %s\n", strings.Join(usedPads(mov), " "))
	if mov.IsFromSavestate() {
		fmt.Fprintf(md.Output, "savestate:  %s\n", mov.SavestatePath())
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, &hdr)
	}

	return nil
}

// usedPads returns the names of the controllers used by the movie in the
// order they appear in a frame.
func usedPads(mov *movie.Movie) []string {
	var names []string
	for port := range movie.NumPorts {
		for slot := range movie.NumSlots {
			if mov.IsSlotUsed(port, slot) {
				names = append(names, fmt.Sprintf("%d%c", port+1, 'A'+slot))
			}
		}
	}
	return names
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	from := md.AddInt("from", 0, "first frame to dump")
	to := md.AddInt("to", -1, "last frame to dump (-1 for the final frame)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("movie file required for %s mode", md)
	}

	mov, err := movie.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer mov.Close()

	last := int32(*to)
	if last < 0 || last >= mov.TotalFrames() {
		last = mov.TotalFrames() - 1
	}

	names := usedPads(mov)
	pd := padata.NewPadData()

	for frame := int32(*from); frame <= last; frame++ {
		b, err := mov.ReadFrame(frame)
		if err != nil {
			return err
		}

		for i, n := range names {
			var raw [padata.PadBytes]uint8
			copy(raw[:], b[i*padata.PadBytes:])
			pd.SetBytes(raw)
			fmt.Fprintf(md.Output, "%6d %s %s\n", frame, n, pd.String())
		}
	}

	return nil
}

func convert(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("source and destination files required for %s mode", md)
	}

	err = movie.Convert(md.GetArg(0), md.GetArg(1))
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "converted %s to %s\n", md.GetArg(0), md.GetArg(1))
	return nil
}

// session is a headless host with an attached recording.
type session struct {
	host *headless.Host
	rec  *recording.InputRecording
	mtr  *metrics.Metrics
}

func newSession(disc string, iso string, gamedb string) (*session, error) {
	var resolver emulation.NameResolver
	if gamedb != "" {
		db, err := headless.LoadGameDB(gamedb)
		if err != nil {
			return nil, err
		}
		resolver = db
	}

	s := &session{
		host: headless.NewHost(nil),
		mtr:  metrics.New(),
	}
	s.rec = recording.NewInputRecording(s.host, resolver)
	s.rec.SetMetrics(s.mtr)
	s.host.SetRecorder(s.rec)

	if disc != "" {
		s.host.InsertDisc(disc, iso)
	}

	return s, nil
}

// apply the recording preferences to the session.
func (s *session) apply(prf *recording.Preferences) {
	s.rec.SetLogPads(prf.LogPads.Get().(bool))
}

func startType(s string) (movie.StartType, error) {
	switch strings.ToUpper(s) {
	case "FULL":
		return movie.FullBoot, nil
	case "FAST":
		return movie.FastBoot, nil
	case "SAVESTATE":
		return movie.Savestate, nil
	}
	return movie.UnspecifiedBoot, fmt.Errorf("unknown start type: %s", s)
}

func record(md *modalflag.Modes) error {
	md.NewMode()

	prf, err := recording.NewPreferences()
	if err != nil {
		return err
	}

	frames := md.AddInt("frames", 60, "number of frames to record")
	script := md.AddString("script", "", "lua script driving the controllers")
	author := md.AddString("author", prf.Author.String(), "author of the movie")
	pads := md.AddInt("pads", prf.Pads.Get().(int), "bitmask of controllers to record")
	start := md.AddString("start", "FULL", "start type: FULL, FAST, SAVESTATE")
	disc := md.AddString("disc", "", "disc serial of the game")
	iso := md.AddString("iso", "", "filename of the game")
	gamedb := md.AddString("gamedb", "", "game database used to name the game")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	var pth string
	switch len(md.RemainingArgs()) {
	case 0:
		pth = paths.UniqueFilename("recording", *disc)
	case 1:
		pth = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *pads < 1 || *pads > 0xff {
		return fmt.Errorf("pad bitmask must be between 0x01 and 0xff")
	}

	st, err := startType(*start)
	if err != nil {
		return err
	}

	s, err := newSession(*disc, *iso, *gamedb)
	if err != nil {
		return err
	}
	s.apply(prf)

	if *script != "" {
		for port := range movie.NumPorts {
			for slot := range movie.NumSlots {
				if *pads&(1<<movie.PadIndex(port, slot)) == 0 {
					continue
				}

				vp := virtualpad.NewVirtualPad(port, slot)
				vp.IgnoreRealController(prf.IgnoreRealController.Get().(bool))

				l := luapad.NewScript(vp, port, slot, s.rec.FrameCounter)
				defer l.Close()

				err = l.LoadFile(*script)
				if err != nil {
					return err
				}
				s.rec.SetOverride(port, slot, l)
			}
		}
	}

	// a savestate movie is made from a running game
	if st == movie.Savestate {
		err = s.host.Boot(false)
		if err != nil {
			return err
		}
	}

	err = s.rec.Create(pth, st, *author, uint8(*pads))
	if err != nil {
		return err
	}

	for range *frames {
		s.host.Frame()
	}

	status := s.rec.Status()
	s.rec.Stop()

	fmt.Fprintf(md.Output, "recorded %d frames to %s\n", status.TotalFrames, pth)
	return nil
}

func replay(md *modalflag.Modes) error {
	md.NewMode()

	prf, err := recording.NewPreferences()
	if err != nil {
		return err
	}

	addr := md.AddString("monitor", prf.MonitorAddress.String(), "address of the monitor HTTP server")
	wait := md.AddBool("wait", false, "keep the monitor running after the replay until interrupted")
	disc := md.AddString("disc", "", "disc serial of the game")
	iso := md.AddString("iso", "", "filename of the game")
	gamedb := md.AddString("gamedb", "", "game database used to name the game")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("movie file required for %s mode", md)
	}

	s, err := newSession(*disc, *iso, *gamedb)
	if err != nil {
		return err
	}
	s.apply(prf)

	var mon *monitor.Monitor
	if *addr != "" {
		mon = monitor.NewMonitor(s.rec, s.mtr)
		a, err := mon.Start(*addr)
		if err != nil {
			return err
		}
		defer mon.Shutdown(context.Background())
		fmt.Fprintf(md.Output, "monitor available at http://%s/status\n", a)
	}

	// a movie that starts from a savestate needs a running game
	err = s.host.Boot(false)
	if err != nil {
		return err
	}

	err = s.rec.Play(md.GetArg(0))
	if err != nil {
		return err
	}

	total := s.rec.Movie().TotalFrames()
	for s.rec.IsReplaying() && s.rec.FrameCounter() < total {
		s.host.Frame()
	}

	fmt.Fprintf(md.Output, "replayed %d frames of %s\n", s.rec.FrameCounter(), md.GetArg(0))

	if mon != nil && *wait {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	}

	s.rec.Stop()

	return nil
}
