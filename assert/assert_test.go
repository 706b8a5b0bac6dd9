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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/gopher6800/assert"
	"github.com/jetsetilly/gopher6800/test"
)

func TestFailf(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = assert.Recovered(recover())
		}()
		assert.Failf("bad mode %d", 8)
		return nil
	}()
	test.ExpectFailure(t, err)
	test.ExpectError(t, err, assert.InvariantViolation)
	test.ExpectEquality(t, err.Error(), "invariant violation: bad mode 8")
}

func TestThat(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = assert.Recovered(recover())
		}()
		assert.That(true, "not reached")
		return nil
	}()
	test.ExpectSuccess(t, err)
}

func TestRecoveredValue(t *testing.T) {
	err := assert.Recovered("string panic")
	test.ExpectError(t, err, assert.InvariantViolation)
	test.ExpectSuccess(t, assert.Recovered(nil))
}

func TestGoRoutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectEquality(t, assert.GetGoRoutineID(), id)

	done := make(chan uint64)
	go func() {
		done <- assert.GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-done, id)
}
