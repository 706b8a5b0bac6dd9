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

package test_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/jetsetilly/gopher6800/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, uint16(0xfffe), 0xfffc+2)
	test.ExpectEquality(t, true, !false)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, uint8(0xfa), 0xfb)
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectApproximate(t, 1000000.0, 1010000.0, 0.01)
}

func TestExpectError(t *testing.T) {
	sentinel := errors.New("snapshot")
	wrapped := fmt.Errorf("%w: VIA: shift register mode 9", sentinel)
	test.ExpectError(t, wrapped, sentinel)
	test.ExpectError(t, sentinel, sentinel)
}

func TestDemand(t *testing.T) {
	test.DemandEquality(t, len("MB8861"), 6)
	test.DemandSuccess(t, true)
	test.DemandSuccess(t, nil)
	test.DemandFailure(t, io.EOF)
	test.DemandError(t, fmt.Errorf("reading state: %w", io.ErrUnexpectedEOF), io.ErrUnexpectedEOF)

	var w io.Writer = &test.CompareWriter{}
	test.DemandImplements(t, w, (io.Writer)(nil))
}

func TestCompareWriter(t *testing.T) {
	var w test.CompareWriter
	test.ExpectSuccess(t, w.Compare(""))

	fmt.Fprintf(&w, "%04x  %s", 0xe000, "LDS")
	test.ExpectSuccess(t, w.Compare("e000  LDS"))
	test.ExpectEquality(t, w.String(), "e000  LDS")

	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
	fmt.Fprint(&w, "VIA")
	test.ExpectEquality(t, w.String(), "VIA")
}
