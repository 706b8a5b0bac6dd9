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

// Package preferences holds the configuration of the emulated machine. A
// single Preferences instance is created at machine setup and passed to the
// component constructors through the instance package.
package preferences

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher6800/paths"
	"github.com/jetsetilly/gopher6800/prefs"
)

// default values for the hardware preferences
const (
	DefaultClockHz     = 1000000.0
	DefaultRefreshRate = 50.0
)

// Preferences defines and collates all the preference values used by the
// hardware and the scheduler.
type Preferences struct {
	dsk *prefs.Disk

	// the CPU clock frequency in Hz
	ClockHz prefs.Float

	// the number of scheduling quanta per second. also the display refresh
	// rate
	RefreshRate prefs.Float

	// map the additional 16K of RAM at 0x4000
	ExtendedRAM prefs.Bool

	// initialise RAM and registers to unknown state after reset
	RandomState prefs.Bool

	// log every memory access
	MemoryTrace prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	return newPreferences(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() but with an
// explicit preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// clock frequency and refresh rate must be positive. the scheduler
	// divides by both values
	positive := func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("preferences: value must be positive (%v)", v)
		}
		return nil
	}
	p.ClockHz.SetHookPre(positive)
	p.RefreshRate.SetHookPre(positive)

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	for _, e := range []struct {
		key string
		v   interface {
			fmt.Stringer
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"hardware.clockhz", &p.ClockHz},
		{"hardware.refreshrate", &p.RefreshRate},
		{"hardware.extendedram", &p.ExtendedRAM},
		{"hardware.randomstate", &p.RandomState},
		{"memory.trace", &p.MemoryTrace},
	} {
		if err := p.dsk.Add(e.key, e.v); err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !errors.Is(err, prefs.NoPrefsFile) {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.ClockHz.Set(DefaultClockHz)
	p.RefreshRate.Set(DefaultRefreshRate)
	p.ExtendedRAM.Set(false)
	p.RandomState.Set(false)
	p.MemoryTrace.Set(false)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// ClocksPerQuantum returns the number of CPU clocks in one scheduling
// quantum.
func (p *Preferences) ClocksPerQuantum() int {
	return int(p.ClockHz.Get().(float64) / p.RefreshRate.Get().(float64))
}
