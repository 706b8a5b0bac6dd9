// This file is part of Gopher6800.
//
// Gopher6800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6800.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6800/govern"
	"github.com/jetsetilly/gopher6800/hardware"
	"github.com/jetsetilly/gopher6800/hardware/audio"
	"github.com/jetsetilly/gopher6800/hardware/instance"
	"github.com/jetsetilly/gopher6800/hardware/preferences"
	"github.com/jetsetilly/gopher6800/hardware/state"
	"github.com/jetsetilly/gopher6800/logger"
	"github.com/jetsetilly/gopher6800/modalflag"
	"github.com/jetsetilly/gopher6800/paths"
	"github.com/jetsetilly/gopher6800/prefs"
	"github.com/jetsetilly/gopher6800/scheduler"
	"github.com/jetsetilly/gopher6800/statsview"
	"github.com/jetsetilly/gopher6800/terminal"
	"github.com/jetsetilly/gopher6800/version"
	"github.com/jetsetilly/gopher6800/wavwriter"
	"golang.org/x/sync/errgroup"
)

// the visible part of video RAM
const (
	screenColumns = 40
	screenRows    = 25
)

// audio parameters used when recording to a WAV file
const (
	sampleRate  = 22050
	audioBuffer = 512
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, ver)
	if *revision {
		fmt.Println(rev)
	}
	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	prefsFile := md.AddString("prefsfile", "", "preferences file to use (default is the resource directory)")
	prefsOverride := md.AddString("prefs", "", "preference values, eg. \"hardware.clockhz::2000000; hardware.extendedram::true\"")
	extended := md.AddBool("extendedram", false, "map the additional 16K of RAM")
	wav := md.AddString("wav", "", "record audio to wav file")
	mem := md.AddString("memviz", "", "write a graph of the machine structure to file on exit")
	loadState := md.AddString("loadstate", "", "restore machine state from snapshot file")
	saveState := md.AddBool("savestate", false, "save machine state to the resource directory on exit")
	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsviewAddress()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		if !statsview.Available() {
			return errors.New("statsview not available in this build")
		}
		stop := statsview.Launch(os.Stderr)
		defer stop()
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	var hwPrefs *preferences.Preferences
	if *prefsFile == "" {
		hwPrefs, err = preferences.NewPreferences()
	} else {
		hwPrefs, err = preferences.NewPreferencesFromFile(*prefsFile)
	}
	if err != nil {
		return err
	}

	comp, err := hardware.NewComputer(instance.Main, hwPrefs)
	if err != nil {
		return err
	}

	if *extended {
		if err := comp.SetExtendedRAM(true); err != nil {
			return err
		}
	}

	// the ROM image is the first remaining argument. the built-in boot ROM
	// is used if no file is specified
	rom := hardware.BootROM()
	romLabel := "bootrom"
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		romLabel = filepath.Base(md.GetArg(0))
		rom, err = os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if err := comp.Flash(rom); err != nil {
		return err
	}

	tm, err := terminal.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	var snapshot *state.Snapshot
	if *loadState != "" {
		snapshot, err = readSnapshot(*loadState)
		if err != nil {
			return err
		}
	}

	screen := make([]uint8, screenColumns*screenRows)
	var sched *scheduler.Scheduler
	sched = scheduler.NewScheduler(comp, hwPrefs, func() {
		// the snapshot is applied after the power-on reset, while the
		// scheduler is paused
		if snapshot != nil && sched.RunningStatus() == govern.Paused {
			if err := sched.LoadState(snapshot); err != nil {
				logger.Log(logger.Allow, "gopher6800", err)
			}
			snapshot = nil
			sched.Resume()
		}

		copy(screen, comp.VRAM.Bytes())
		if err := tm.Render(screen, screenColumns); err != nil {
			logger.Log(logger.Allow, "gopher6800", err)
		}
	})

	// tone changes happen at the wall clock time corresponding to the machine
	// clock at which they were made
	comp.SetToneHook(func(clock uint64, hz float64) {
		sched.At(sched.WallTime(clock), func() {
			comp.Tone.SetFrequency(hz)
		})
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)

	sched.PowerOn()
	if snapshot != nil {
		sched.Pause()
	}

	g.Go(func() error {
		defer cancel()
		return sched.Run(ctx)
	})

	g.Go(func() error {
		return sched.PollRealTime(ctx)
	})

	if *wav != "" {
		ww, err := wavwriter.New(*wav, sampleRate)
		if err != nil {
			cancel()
			_ = g.Wait()
			return err
		}
		gen := audio.NewGenerator(&comp.Tone, sampleRate)
		g.Go(func() error {
			if err := ww.Record(ctx, gen, audioBuffer); err != nil {
				return err
			}
			return ww.EndMixing()
		})
	}

	if tm.IsTerminal() {
		if err := tm.CBreakMode(); err != nil {
			cancel()
			_ = g.Wait()
			return err
		}
		defer tm.CanonicalMode()
	}

	g.Go(func() error {
		return tm.ReadKeys(ctx, sched)
	})

	err = g.Wait()

	if *saveState {
		fn, err := paths.ResourcePath("snapshots", paths.UniqueFilename("state", romLabel, "snapshot"))
		if err == nil {
			err = writeSnapshot(fn, sched)
		}
		if err != nil {
			logger.Log(logger.Allow, "gopher6800", err)
		}
	}

	if *mem != "" {
		if err := writeMemviz(*mem, comp); err != nil {
			logger.Log(logger.Allow, "gopher6800", err)
		}
	}

	fmt.Printf("\r\n%s\r\n", comp.Summary())
	fmt.Printf("%d quanta of %d clocks (%v)\r\n",
		sched.Quanta(), sched.ClocksPerQuantum(), sched.Period().Round(time.Microsecond))

	return err
}

func writeMemviz(filename string, comp *hardware.Computer) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, comp)
	logger.Logf(logger.Allow, "gopher6800", "memviz written to %s", filename)
	return nil
}

func readSnapshot(filename string) (*state.Snapshot, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	snapshot := state.NewSnapshot()
	if err := snapshot.Read(f); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return snapshot, nil
}

// the scheduler must not be running
func writeSnapshot(filename string, sched *scheduler.Scheduler) (rerr error) {
	snapshot := state.NewSnapshot()
	if err := sched.SaveState(snapshot); err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	if err := snapshot.Write(f); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "gopher6800", "state saved to %s", filename)
	return nil
}

func statsviewAddress() string {
	if statsview.Available() {
		return statsview.Address
	}
	return "not available"
}
