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
	"github.com/jetsetilly/gopher6800/hardware/keyboard"
)

// the characters on each column of the keyboard matrix. a zero entry is a
// position in the matrix with no key
var layout = [8][8]byte{
	{'0', '1', '2', '3', '4', '5', '6', '7'},
	{'8', '9', ':', ';', ',', '-', '.', '/'},
	{'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G'},
	{'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O'},
	{'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W'},
	{'X', 'Y', 'Z', '[', '\\', ']', '^', '_'},
	{' ', '\n', 0x08, 0x1b, '\t', 0, 0, 0},
	{},
}

var keymap map[byte]keyboard.Code

func init() {
	keymap = make(map[byte]keyboard.Code)
	for c, col := range layout {
		for r, ch := range col {
			if ch != 0 {
				keymap[ch] = keyboard.NewCode(c, r)
			}
		}
	}
}

// Translate a byte read from the terminal to a key on the keyboard matrix.
// Returns false if there is no matching key.
func Translate(b byte) (keyboard.Code, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		b -= 'a' - 'A'
	case b == '\r':
		b = '\n'
	case b == 0x7f:
		// most terminals send DEL for the backspace key
		b = 0x08
	}
	code, ok := keymap[b]
	return code, ok
}
