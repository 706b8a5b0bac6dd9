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

// Package assert contains functions that panic when an internal invariant of
// the emulation does not hold. These are not errors that can be recovered
// from by the component that detects them. The scheduler recovers the panic
// and stops the machine.
package assert

import (
	"errors"
	"fmt"
)

// InvariantViolation is wrapped by the error value of every panic raised by
// this package. Use errors.Is() to detect it after a recover().
var InvariantViolation = errors.New("invariant violation")

// Failf panics with an error wrapping InvariantViolation.
func Failf(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", InvariantViolation, fmt.Sprintf(format, args...)))
}

// That panics with the formatted message if cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		Failf(format, args...)
	}
}

// Recovered converts a value returned by recover() into an error. The
// returned error is nil if r is nil. Values that are not errors are wrapped
// as an InvariantViolation.
func Recovered(r any) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%w: %v", InvariantViolation, r)
}
