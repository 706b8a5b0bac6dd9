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
// Package keyboard implements the 8x8 key matrix. The matrix is scanned by
// driving a column low and reading the rows. In the Computer the columns are
// driven by port A of the VIA and the rows are read through port B.
package keyboard

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher6800/hardware/state"
)

// Code identifies a key. The column is in bits 5 to 3 and the row in bits 2
// to 0.
type Code uint8

// NumKeys is the number of keys in the matrix.
const NumKeys = 64

// UnknownKey is returned when a Code is outside of the matrix.
var UnknownKey = errors.New("unknown key")

// NewCode returns the Code for the key at the column and row.
func NewCode(column int, row int) Code {
	return Code(column&0x07)<<3 | Code(row&0x07)
}

// Column returns the column of the key.
func (c Code) Column() int {
	return int(c>>3) & 0x07
}

// Row returns the row of the key.
func (c Code) Row() int {
	return int(c) & 0x07
}

func (c Code) String() string {
	return fmt.Sprintf("key %d,%d", c.Column(), c.Row())
}

// Keyboard is the state of the key matrix. Each entry is the set of pressed
// keys in a column, one bit per row.
type Keyboard struct {
	columns [8]uint8
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (kb *Keyboard) String() string {
	return fmt.Sprintf("% 02x", kb.columns[:])
}

// Reset releases every key.
func (kb *Keyboard) Reset() {
	clear(kb.columns[:])
}

// Press the key.
func (kb *Keyboard) Press(code Code) error {
	if code >= NumKeys {
		return fmt.Errorf("%w: %d", UnknownKey, code)
	}
	kb.columns[code.Column()] |= 0x01 << code.Row()
	return nil
}

// Release the key.
func (kb *Keyboard) Release(code Code) error {
	if code >= NumKeys {
		return fmt.Errorf("%w: %d", UnknownKey, code)
	}
	kb.columns[code.Column()] &^= 0x01 << code.Row()
	return nil
}

// IsPressed returns true if the key is pressed.
func (kb *Keyboard) IsPressed(code Code) bool {
	if code >= NumKeys {
		return false
	}
	return kb.columns[code.Column()]&(0x01<<code.Row()) != 0
}

// Scan returns the rows for the selected columns. A column is selected by a
// low bit in the select value. A row bit is low if any key in that row is
// pressed in any of the selected columns.
func (kb *Keyboard) Scan(sel uint8) uint8 {
	var rows uint8
	for c, keys := range kb.columns {
		if sel&(0x01<<c) == 0 {
			rows |= keys
		}
	}
	return ^rows
}

// SaveState writes the matrix to the sink.
func (kb *Keyboard) SaveState(sink state.Sink) {
	state.NewSaver(sink, "Keyboard").Bytes("matrix", kb.columns[:])
}

// LoadState restores the matrix from the source.
func (kb *Keyboard) LoadState(src state.Source) error {
	var columns [8]uint8
	l := state.NewLoader(src, "Keyboard")
	l.Bytes("matrix", columns[:])
	if err := l.Err(); err != nil {
		return err
	}
	kb.columns = columns
	return nil
}
