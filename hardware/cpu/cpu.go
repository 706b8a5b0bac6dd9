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
package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher6800/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6800/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6800/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6800/hardware/instance"
	"github.com/jetsetilly/gopher6800/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6800/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6800/logger"
)

// the number of cycles taken to stack the registers and load the vector for
// an NMI or IRQ
const interruptCycles = 12

// CPU implements the 6800. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC     registers.Data16
	A      registers.Register
	B      registers.Register
	X      registers.Data16
	SP     registers.Data16
	Status registers.Status

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// called after every instruction, interrupt entry and idle period with
	// the number of cycles that elapsed
	tick func(cycles int)

	// number of cycles since the last reset
	Clock uint64

	// latched requests. the irq line is level triggered and is driven by
	// SetIRQ(). the nmi is edge triggered and is latched until serviced
	resetPending bool
	nmiPending   bool
	irqLine      bool
	halted       bool
	waiting      bool

	// last result. describes the last instruction, interrupt entry or idle
	// period
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// instance argument can be nil. The tick function can be nil if nothing needs
// to be kept in step with the CPU.
//
// The CPU must be Reset() before it executes any instructions.
func NewCPU(instance *instance.Instance, mem cpubus.Memory, tick func(cycles int)) *CPU {
	if tick == nil {
		tick = func(_ int) {}
	}
	return &CPU{
		instance:     instance,
		mem:          mem,
		tick:         tick,
		PC:           registers.NewData16(0, "PC"),
		A:            registers.NewRegister(0, "A"),
		B:            registers.NewRegister(0, "B"),
		X:            registers.NewData16(0, "X"),
		SP:           registers.NewData16(0, "SP"),
		instructions: instructions.GetDefinitions(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A, mc.B.Label(), mc.B,
		mc.X.Label(), mc.X, mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset latches a reset request. The request is acted upon at the start of the
// next call to Execute() or ExecuteInstruction().
func (mc *CPU) Reset() {
	mc.resetPending = true
}

// NMI latches a non-maskable interrupt request. The request is serviced at the
// next instruction boundary.
func (mc *CPU) NMI() {
	mc.nmiPending = true
}

// SetIRQ drives the IRQ line. An IRQ is serviced at every instruction boundary
// for as long as the line is asserted and the interrupt mask is clear.
func (mc *CPU) SetIRQ(level bool) {
	mc.irqLine = level
}

// Halt stops the CPU from executing instructions. Time continues to elapse
// while the CPU is halted.
func (mc *CPU) Halt(halt bool) {
	mc.halted = halt
}

// IsHalted returns true if the halt line is asserted.
func (mc *CPU) IsHalted() bool {
	return mc.halted
}

// IsWaiting returns true if the CPU is waiting for an interrupt after a WAI
// instruction.
func (mc *CPU) IsWaiting() bool {
	return mc.waiting
}

// reset is the action of a latched reset request.
func (mc *CPU) reset() {
	mc.resetPending = false
	mc.nmiPending = false
	mc.waiting = false
	mc.Clock = 0

	// the status register isn't affected by random state because the
	// interrupt mask must be set
	if mc.instance != nil && mc.instance.Prefs.RandomState.Get().(bool) {
		mc.A.Load(uint8(mc.instance.Random.Intn(0x100)))
		mc.B.Load(uint8(mc.instance.Random.Intn(0x100)))
		mc.X.Load(uint16(mc.instance.Random.Intn(0x10000)))
		mc.SP.Load(uint16(mc.instance.Random.Intn(0x10000)))
	} else {
		mc.A.Load(0)
		mc.B.Load(0)
		mc.X.Load(0)
		mc.SP.Load(0)
	}
	mc.Status.Reset()

	mc.PC.Load(mc.mem.Load16(addresses.Reset))

	logger.Logf(mc.instance, "cpu", "reset: PC=%s", mc.PC)
}

// Execute runs whole instructions until at least the number of clocks
// specified have elapsed. Returns the number of cycles that elapsed beyond the
// number requested.
//
// If a reset is pending the reset is performed and the function returns
// immediately with an overrun of zero. If the CPU is halted the remaining
// clocks elapse without any instructions being executed.
func (mc *CPU) Execute(clocks int) (overrun int) {
	var elapsed int

	for elapsed < clocks {
		if mc.resetPending {
			mc.reset()
			return 0
		}

		if mc.halted {
			mc.LastResult.Reset()
			mc.LastResult.Address = mc.PC.Address()
			mc.idle(clocks - elapsed)
			mc.finalise()
			return 0
		}

		// errors from ExecuteInstruction() indicate an inconsistent result
		// which is only of interest to tests
		n, _ := mc.ExecuteInstruction()
		elapsed += n
	}

	return max(elapsed-clocks, 0)
}

// ExecuteInstruction steps the CPU forward by one instruction boundary. This
// might be the execution of an instruction, the entry into an interrupt
// handler, or a single idle cycle while the CPU is halted or waiting.
//
// Returns the number of cycles that elapsed. The error return is non-nil if
// the LastResult field does not describe a valid instruction.
func (mc *CPU) ExecuteInstruction() (int, error) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	switch {
	case mc.resetPending:
		mc.reset()
		mc.LastResult.Event = execution.Reset
		mc.LastResult.Final = true
		return 0, nil

	case mc.halted:
		mc.idle(1)

	case mc.waiting:
		if mc.nmiPending {
			mc.interrupt(addresses.NMI, execution.NMI)
		} else if mc.irqLine && !mc.Status.Interrupt {
			mc.interrupt(addresses.IRQ, execution.IRQ)
		} else {
			mc.idle(1)
		}

	case mc.nmiPending:
		mc.interrupt(addresses.NMI, execution.NMI)

	case mc.irqLine && !mc.Status.Interrupt:
		mc.interrupt(addresses.IRQ, execution.IRQ)

	default:
		mc.fetchAndExecute()
	}

	mc.finalise()

	return mc.LastResult.Cycles, mc.LastResult.IsValid()
}

// finalise the last result and account for the cycles that have elapsed
func (mc *CPU) finalise() {
	mc.LastResult.Final = true
	mc.Clock += uint64(mc.LastResult.Cycles)
	mc.tick(mc.LastResult.Cycles)
}

// idle is a period in which no instruction is executed
func (mc *CPU) idle(cycles int) {
	mc.LastResult.Event = execution.Idle
	mc.LastResult.Cycles = cycles
}

// interrupt stacks the registers, sets the interrupt mask and loads the PC
// from the vector.
func (mc *CPU) interrupt(vector uint16, event execution.Event) {
	mc.stackRegisters()
	mc.Status.Interrupt = true
	mc.PC.Load(mc.mem.Load16(vector))

	if event == execution.NMI {
		mc.nmiPending = false
	}
	mc.waiting = false

	mc.LastResult.Event = event
	mc.LastResult.Cycles = interruptCycles
}

// stackRegisters pushes all registers in the order expected by RTI
func (mc *CPU) stackRegisters() {
	mc.push16(mc.PC.Address())
	mc.push16(mc.X.Address())
	mc.push8(mc.A.Value())
	mc.push8(mc.B.Value())
	mc.push8(mc.Status.Value())
}

// the stack pointer points to the next free location. a push stores and then
// decrements the stack pointer
func (mc *CPU) push8(v uint8) {
	mc.mem.Store8(mc.SP.Address(), v)
	mc.SP.Decrement()
}

// a pull increments the stack pointer and then loads
func (mc *CPU) pull8() uint8 {
	mc.SP.Increment()
	return mc.mem.Load8(mc.SP.Address())
}

// the low byte is pushed first so that the value is in big-endian order in
// memory
func (mc *CPU) push16(v uint16) {
	mc.push8(uint8(v))
	mc.push8(uint8(v >> 8))
}

func (mc *CPU) pull16() uint16 {
	hi := mc.pull8()
	lo := mc.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

// read the byte at the PC and advance the PC
func (mc *CPU) read8PC() uint8 {
	v := mc.mem.Load8(mc.PC.Address())
	mc.PC.Increment()
	mc.LastResult.ByteCount++
	return v
}

// read the 16-bit value at the PC and advance the PC
func (mc *CPU) read16PC() uint16 {
	hi := mc.read8PC()
	lo := mc.read8PC()
	return uint16(hi)<<8 | uint16(lo)
}
