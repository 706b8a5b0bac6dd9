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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher6800/hardware/audio"
	"github.com/jetsetilly/gopher6800/hardware/cpu"
	"github.com/jetsetilly/gopher6800/hardware/instance"
	"github.com/jetsetilly/gopher6800/hardware/keyboard"
	"github.com/jetsetilly/gopher6800/hardware/memory"
	"github.com/jetsetilly/gopher6800/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher6800/hardware/preferences"
	"github.com/jetsetilly/gopher6800/hardware/via"
	"github.com/jetsetilly/gopher6800/logger"
	"github.com/jetsetilly/gopher6800/prefs"
)

// the PB5 output of the VIA selects the plane of the character generator
const fontPlaneMask = 0x20

// Computer is the root of the emulation. Apart from the Tone cell and the
// FontPlane() function, none of the fields or functions are safe to use from
// any goroutine other than the one driving the emulation.
type Computer struct {
	Env *instance.Instance

	CPU      *cpu.CPU
	Mem      *memory.AddressSpace
	VIA      *via.VIA
	Keyboard *keyboard.Keyboard

	RAM    *memory.RAM
	ExtRAM *memory.RAM
	VRAM   *memory.RAM
	ROM    *memory.ROM

	// the frequency of the tone produced by the VIA. updated by the tone
	// function, which by default writes to the cell immediately
	Tone audio.Cell
	tone func(clock uint64, hz float64)

	// whether the extended RAM is currently mapped
	extended bool

	// number of CPU cycles since the computer was created. unlike the CPU
	// clock this value is not zeroed by a reset
	clock uint64
}

// NewComputer creates a new Computer and everything associated with the
// hardware. The prf argument can be nil in which case the preferences are
// loaded from disk.
func NewComputer(label instance.Label, prf *preferences.Preferences) (*Computer, error) {
	comp := &Computer{}

	var err error

	// the computer is the source of emulation time for the random number
	// generator
	comp.Env, err = instance.NewInstance(comp, prf)
	if err != nil {
		return nil, err
	}
	comp.Env.Label = label

	comp.tone = func(_ uint64, hz float64) {
		comp.Tone.SetFrequency(hz)
	}

	comp.Keyboard = keyboard.NewKeyboard()
	comp.Mem = memory.NewAddressSpace(comp.Env)

	comp.RAM, err = memory.NewRAM(comp.Env, "RAM", memorymap.OriginRAM, memorymap.MemtopRAM)
	if err != nil {
		return nil, err
	}
	comp.ExtRAM, err = memory.NewRAM(comp.Env, "ExtRAM", memorymap.OriginExtRAM, memorymap.MemtopExtRAM)
	if err != nil {
		return nil, err
	}
	comp.VRAM, err = memory.NewRAM(comp.Env, "VRAM", memorymap.OriginVRAM, memorymap.MemtopVRAM)
	if err != nil {
		return nil, err
	}
	comp.ROM, err = memory.NewROM("ROM", memorymap.OriginROM, memorymap.MemtopROM)
	if err != nil {
		return nil, err
	}

	// the CPU must exist before the VIA because the VIA hooks refer to it
	comp.CPU = cpu.NewCPU(comp.Env, comp.Mem, comp.tick)

	comp.VIA, err = via.NewVIA(comp.Env, "VIA", memorymap.OriginVIA, memorymap.MemtopVIA, via.Hooks{
		PortInput: func(port via.Port) uint8 {
			if port == via.PortB {
				// the keyboard columns are selected by the port A output
				return comp.Keyboard.Scan(comp.VIA.PortValue(via.PortA))
			}
			return 0xff
		},
		IRQ: func(asserted bool) {
			comp.CPU.SetIRQ(asserted)
		},
		Timer1Period: func(period int) {
			comp.setTone(period)
		},
	})
	if err != nil {
		return nil, err
	}

	err = comp.mapMemory(comp.Env.Prefs.ExtendedRAM.Get().(bool))
	if err != nil {
		return nil, err
	}

	// memory tracing can be switched on and off at any time. only the main
	// instance installs the hook because the preferences can be shared with
	// other instances
	if label == instance.Main {
		comp.Mem.SetTrace(comp.Env.Prefs.MemoryTrace.Get().(bool), nil)
		comp.Env.Prefs.MemoryTrace.SetHookPost(func(v prefs.Value) error {
			comp.Mem.SetTrace(v.(bool), nil)
			return nil
		})
	}

	return comp, nil
}

func (comp *Computer) String() string {
	return fmt.Sprintf("%s clock=%d", comp.CPU, comp.clock)
}

// ClockCount implements the random.Source interface.
func (comp *Computer) ClockCount() uint64 {
	return comp.clock
}

// called by the CPU after every instruction, interrupt entry or idle period
func (comp *Computer) tick(cycles int) {
	comp.clock += uint64(cycles)
	comp.Mem.Execute(cycles)
}

func (comp *Computer) mapMemory(extended bool) error {
	if err := comp.Mem.Allocate(memorymap.Capacity); err != nil {
		return err
	}

	devices := []memory.Device{comp.RAM}
	if extended {
		devices = append(devices, comp.ExtRAM)
	}
	devices = append(devices, comp.VRAM, comp.VIA, comp.ROM)

	for _, d := range devices {
		if err := comp.Mem.Register(d); err != nil {
			return err
		}
	}

	comp.extended = extended

	return nil
}

// SetExtendedRAM maps or unmaps the extended RAM. The contents of the extended
// RAM are retained while it is unmapped. The preference value is updated to
// match.
func (comp *Computer) SetExtendedRAM(extended bool) error {
	if extended == comp.extended {
		return nil
	}
	if err := comp.mapMemory(extended); err != nil {
		return err
	}
	if err := comp.Env.Prefs.ExtendedRAM.Set(extended); err != nil {
		return err
	}
	logger.Logf(comp.Env, "hardware", "extended RAM: %v", extended)
	return nil
}

// ExtendedRAM returns true if the extended RAM is mapped.
func (comp *Computer) ExtendedRAM() bool {
	return comp.extended
}

// Flash the ROM with new data. The data is placed at the top of the ROM area
// so that it includes the interrupt vectors. The computer should be reset
// after flashing.
func (comp *Computer) Flash(data []uint8) error {
	return comp.ROM.Flash(data)
}

// Reset emulates the reset button. All devices are reset and the CPU will
// load the reset vector on the next call to Execute() or Step().
func (comp *Computer) Reset() {
	comp.Mem.Reset()
	comp.Keyboard.Reset()
	comp.CPU.Reset()
}

// SetToneHook changes how changes to the tone frequency are applied. The
// function is called with the value of ClockCount() at the moment of the
// change. A nil function restores the default of writing the frequency to
// the Tone cell immediately.
func (comp *Computer) SetToneHook(f func(clock uint64, hz float64)) {
	if f == nil {
		f = func(_ uint64, hz float64) {
			comp.Tone.SetFrequency(hz)
		}
	}
	comp.tone = f
}

func (comp *Computer) setTone(period int) {
	hz := audio.FrequencyFromPeriod(comp.Env.Prefs.ClockHz.Get().(float64), period)
	comp.tone(comp.clock, hz)
}

// FontPlane returns the plane of the character generator selected by the
// VIA. Plane 1 is selected by driving PB5 low.
func (comp *Computer) FontPlane() int {
	if comp.VIA.PortValue(via.PortB)&fontPlaneMask == 0 {
		return 1
	}
	return 0
}

// KeyPressed changes the state of the keyboard matrix.
func (comp *Computer) KeyPressed(code keyboard.Code) error {
	return comp.Keyboard.Press(code)
}

// KeyReleased changes the state of the keyboard matrix.
func (comp *Computer) KeyReleased(code keyboard.Code) error {
	return comp.Keyboard.Release(code)
}

// Summary returns the memory map of the computer.
func (comp *Computer) Summary() string {
	return comp.Mem.Summary()
}
