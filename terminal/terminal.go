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

package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/jetsetilly/gopher6800/hardware/keyboard"
	"github.com/jetsetilly/gopher6800/logger"
)

// DefaultHold is the length of time a key is held down after a key press is
// read from the terminal.
const DefaultHold = 50 * time.Millisecond

// KeySink receives the key events produced by the terminal. The Scheduler type
// in the scheduler package implements this interface.
type KeySink interface {
	KeyPressed(code keyboard.Code)
	KeyReleased(code keyboard.Code)
}

// Terminal reads key presses from the input and draws the screen to the
// output.
type Terminal struct {
	input  io.Reader
	output io.Writer

	// the file descriptor of the input if it is a terminal. -1 otherwise
	fd int

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// the length of time a key is held down
	Hold time.Duration

	// the last screen drawn by Render()
	crit       sync.Mutex
	lastScreen []uint8
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. If the input is a terminal then CBreakMode() and CanonicalMode() will
// change the terminal's mode, otherwise they do nothing.
func NewTerminal(input io.Reader, output io.Writer) (*Terminal, error) {
	if input == nil {
		return nil, errors.New("terminal: input is required")
	}
	if output == nil {
		return nil, errors.New("terminal: output is required")
	}

	tm := &Terminal{
		input:  input,
		output: output,
		fd:     -1,
		Hold:   DefaultHold,
	}

	if f, ok := input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		tm.fd = int(f.Fd())
		if err := termios.Tcgetattr(uintptr(tm.fd), &tm.canAttr); err != nil {
			return nil, fmt.Errorf("terminal: %w", err)
		}
		tm.cbreakAttr = tm.canAttr
		termios.Cfmakecbreak(&tm.cbreakAttr)

		// key presses are drawn by the emulation
		tm.cbreakAttr.Lflag &^= unix.ECHO
	}

	return tm, nil
}

// IsTerminal returns true if the input is a terminal.
func (tm *Terminal) IsTerminal() bool {
	return tm.fd >= 0
}

// CBreakMode puts the terminal into cbreak mode. Key presses are available
// immediately without waiting for the return key and are not echoed.
func (tm *Terminal) CBreakMode() error {
	if tm.fd < 0 {
		return nil
	}
	if err := termios.Tcsetattr(uintptr(tm.fd), termios.TCIFLUSH, &tm.cbreakAttr); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

// CanonicalMode puts the terminal back into the mode it was in when the
// Terminal was created.
func (tm *Terminal) CanonicalMode() error {
	if tm.fd < 0 {
		return nil
	}
	if err := termios.Tcsetattr(uintptr(tm.fd), termios.TCIFLUSH, &tm.canAttr); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

// ReadKeys reads from the input until the context is cancelled or the input
// is exhausted. Each byte that translates to a key is sent to the sink as a
// key press followed, after the Hold duration, by a key release.
//
// Reading from the input cannot be interrupted. If the context is cancelled
// the function returns but the goroutine reading the input remains blocked
// until the next byte arrives.
func (tm *Terminal) ReadKeys(ctx context.Context, sink KeySink) error {
	type read struct {
		b   byte
		err error
	}

	ch := make(chan read)

	go func() {
		buf := make([]byte, 1)
		for {
			_, err := io.ReadFull(tm.input, buf)
			select {
			case ch <- read{b: buf[0], err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	var releases sync.WaitGroup
	defer releases.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-ch:
			if r.err != nil {
				if errors.Is(r.err, io.EOF) {
					return nil
				}
				return fmt.Errorf("terminal: %w", r.err)
			}

			code, ok := Translate(r.b)
			if !ok {
				logger.Logf(logger.Allow, "terminal", "no key for %#02x", r.b)
				continue
			}

			sink.KeyPressed(code)
			releases.Add(1)
			time.AfterFunc(tm.Hold, func() {
				defer releases.Done()
				sink.KeyReleased(code)
			})
		}
	}
}
