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
	"bytes"
	"strings"
)

// ANSI sequence to move the cursor to the top left of the terminal
const home = "\033[H"

// Render draws the text screen to the output. The screen is drawn only if it
// has changed since the previous call. Bytes outside of the printable ASCII
// range are drawn as spaces.
func (tm *Terminal) Render(screen []uint8, cols int) error {
	if cols <= 0 {
		return nil
	}

	tm.crit.Lock()
	defer tm.crit.Unlock()

	if bytes.Equal(screen, tm.lastScreen) {
		return nil
	}
	tm.lastScreen = append(tm.lastScreen[:0], screen...)

	var s strings.Builder
	s.WriteString(home)

	for i := 0; i < len(screen); i += cols {
		row := screen[i:min(i+cols, len(screen))]
		for _, b := range row {
			if b < 0x20 || b > 0x7e {
				b = ' '
			}
			s.WriteByte(b)
		}
		s.WriteString("\r\n")
	}

	_, err := tm.output.Write([]byte(s.String()))
	return err
}
