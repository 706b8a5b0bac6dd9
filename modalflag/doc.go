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

// Package modalflag handles command lines that are divided into modes. Each
// mode has its own set of flags and an optional list of sub-modes. The first
// sub-mode in the list is the default and is selected when the next argument
// does not name a sub-mode.
//
// For example, the command line
//
//	gopher6800 RUN -extendedram rom.bin
//
// is handled by a top level mode with the sub-modes RUN and VERSION,
// followed by a second mode with the flags for RUN:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VERSION")
//
//	p, err := md.Parse()
//	if err != nil || p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		extended := md.AddBool("extendedram", false, "map the additional 16K of RAM")
//		p, err := md.Parse()
//		...
//	}
//
// Because RUN is the default sub-mode the command line "gopher6800
// -extendedram rom.bin" is equivalent. Sub-mode names are not case
// sensitive.
//
// A help message is printed to Output when the -help flag is found. The
// message lists the flags and the sub-modes of the current mode.
package modalflag
