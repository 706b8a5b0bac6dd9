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
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopher6800/hardware/instance"
	"github.com/jetsetilly/gopher6800/logger"
)

// tracer records every memory access when active. it does not alter the
// result of the access.
type tracer struct {
	env    *instance.Instance
	active atomic.Bool

	crit sync.Mutex
	out  io.Writer
}

func (tr *tracer) access(write bool, address uint16, data uint8, d Device) {
	var s string
	if write {
		s = fmt.Sprintf("write %04x <- %02x (%s)", address, data, d.Label())
	} else {
		s = fmt.Sprintf("read  %04x -> %02x (%s)", address, data, d.Label())
	}

	logger.Log(tr.env, "memory", s)

	tr.crit.Lock()
	defer tr.crit.Unlock()
	if tr.out != nil {
		io.WriteString(tr.out, s)
		io.WriteString(tr.out, "\n")
	}
}

// SetTrace turns trace mode on or off. In trace mode every access is logged
// and, if the writer is not nil, written to the writer. Safe to call from any
// goroutine.
func (spc *AddressSpace) SetTrace(active bool, out io.Writer) {
	spc.tracer.crit.Lock()
	spc.tracer.out = out
	spc.tracer.crit.Unlock()
	spc.tracer.active.Store(active)
}

// Tracing returns true if trace mode is active.
func (spc *AddressSpace) Tracing() bool {
	return spc.tracer.active.Load()
}
