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

package memory

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher6800/hardware/instance"
	"github.com/jetsetilly/gopher6800/hardware/memory/memorymap"
)

// ConfigurationError is returned when the address space is allocated with an
// invalid capacity or when a device registration is malformed. Configuration
// errors only happen during setup.
var ConfigurationError = errors.New("memory configuration error")

// AddressSpace maps every address to the owning Device.
type AddressSpace struct {
	env *instance.Instance

	// one entry per address. a nil entry resolves to the unmapped stub
	slots []Device

	// every registered device in order of registration. a device is listed
	// only once even if it has been registered more than once
	devices []Device

	unmapped Unmapped

	tracer tracer
}

// NewAddressSpace is the preferred method of initialisation for the
// AddressSpace type. The address space is allocated with the full capacity
// and every address is unmapped.
func NewAddressSpace(env *instance.Instance) *AddressSpace {
	spc := &AddressSpace{
		env: env,
	}
	spc.tracer.env = env
	_ = spc.Allocate(memorymap.Capacity)
	return spc
}

// Allocate resets the address space to capacity unmapped slots. Addresses at
// or above capacity resolve to the unmapped stub and devices cannot be
// registered over them.
func (spc *AddressSpace) Allocate(capacity int) error {
	if capacity < 0 || capacity > memorymap.Capacity {
		return fmt.Errorf("%w: capacity %d outside range 0 to %d", ConfigurationError, capacity, memorymap.Capacity)
	}
	spc.slots = make([]Device, capacity)
	spc.devices = nil
	return nil
}

// Capacity returns the number of addresses that can be mapped to a device.
func (spc *AddressSpace) Capacity() int {
	return len(spc.slots)
}

// Register the device over the addresses from its Origin() to its Memtop().
// Devices already registered over those addresses are replaced.
func (spc *AddressSpace) Register(dev Device) error {
	if dev == nil {
		return fmt.Errorf("%w: nil device", ConfigurationError)
	}

	origin := int(dev.Origin())
	memtop := int(dev.Memtop())

	if origin > memtop {
		return fmt.Errorf("%w: %s: origin %#04x is above memtop %#04x", ConfigurationError, dev.Label(), origin, memtop)
	}
	if memtop >= len(spc.slots) {
		return fmt.Errorf("%w: %s: memtop %#04x outside capacity %d", ConfigurationError, dev.Label(), memtop, len(spc.slots))
	}

	for a := origin; a <= memtop; a++ {
		spc.slots[a] = dev
	}

	if !slices.Contains(spc.devices, dev) {
		spc.devices = append(spc.devices, dev)
	}

	// forget devices that have been completely overwritten
	owned := make(map[Device]bool)
	for _, d := range spc.slots {
		if d != nil {
			owned[d] = true
		}
	}
	spc.devices = slices.DeleteFunc(spc.devices, func(d Device) bool {
		return !owned[d]
	})

	return nil
}

// Devices returns the registered devices in order of registration.
func (spc *AddressSpace) Devices() []Device {
	return slices.Clone(spc.devices)
}

// Resolve returns the device that owns the address.
func (spc *AddressSpace) Resolve(address uint16) Device {
	if int(address) < len(spc.slots) {
		if d := spc.slots[address]; d != nil {
			return d
		}
	}
	return spc.unmapped
}

// Load8 implements the cpubus.Memory interface.
func (spc *AddressSpace) Load8(address uint16) uint8 {
	d := spc.Resolve(address)
	data := d.Load(address)
	if spc.tracer.active.Load() {
		spc.tracer.access(false, address, data, d)
	}
	return data
}

// Store8 implements the cpubus.Memory interface.
func (spc *AddressSpace) Store8(address uint16, data uint8) {
	d := spc.Resolve(address)
	d.Store(address, data)
	if spc.tracer.active.Load() {
		spc.tracer.access(true, address, data, d)
	}
}

// Load16 implements the cpubus.Memory interface. The high byte is read first.
func (spc *AddressSpace) Load16(address uint16) uint16 {
	hi := spc.Load8(address)
	lo := spc.Load8(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Store16 implements the cpubus.Memory interface. The high byte is written
// first.
func (spc *AddressSpace) Store16(address uint16, data uint16) {
	spc.Store8(address, uint8(data>>8))
	spc.Store8(address+1, uint8(data))
}

// Reset every registered device.
func (spc *AddressSpace) Reset() {
	for _, d := range spc.devices {
		d.Reset()
	}
}

// Execute advances every registered device that implements the Executor
// interface.
func (spc *AddressSpace) Execute(clocks int) {
	for _, d := range spc.devices {
		if e, ok := d.(Executor); ok {
			e.Execute(clocks)
		}
	}
}

// Summary returns a single multiline string detailing every area of the
// address space. Useful for reference.
func (spc *AddressSpace) Summary() string {
	s := strings.Builder{}

	current := spc.Resolve(0)
	start := 0

	for a := 1; a <= int(memorymap.Memtop); a++ {
		d := spc.Resolve(uint16(a))
		if d != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, a-1, current.Label()))
			current = d
			start = a
		}
	}
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, memorymap.Memtop, current.Label()))

	return s.String()
}
