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

package addresses

// ChipRegister specifies the offset of a VIA register. Only the low four bits
// of an address inside the VIA area are used to select the register.
type ChipRegister int

// VIA registers.
const (
	ORB ChipRegister = iota
	ORA
	DDRB
	DDRA
	T1CL
	T1CH
	T1LL
	T1LH
	T2CL
	T2CH
	SR
	ACR
	PCR
	IFR
	IER
	ORANH
)

// RegisterMask selects the register from an address in the VIA area.
const RegisterMask = uint16(0x000f)

// ReadSymbols are the canonical names of the VIA registers when read.
var ReadSymbols = [16]string{
	"IRB", "IRA", "DDRB", "DDRA",
	"T1C-L", "T1C-H", "T1L-L", "T1L-H",
	"T2C-L", "T2C-H", "SR", "ACR",
	"PCR", "IFR", "IER", "IRA/NH",
}

// WriteSymbols are the canonical names of the VIA registers when written.
var WriteSymbols = [16]string{
	"ORB", "ORA", "DDRB", "DDRA",
	"T1L-L", "T1C-H", "T1L-L", "T1L-H",
	"T2L-L", "T2C-H", "SR", "ACR",
	"PCR", "IFR", "IER", "ORA/NH",
}

func (r ChipRegister) String() string {
	if r < 0 || int(r) >= len(WriteSymbols) {
		return "undefined"
	}
	return WriteSymbols[r]
}
