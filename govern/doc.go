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

// Package govern defines the types that control the running state of the
// emulation. The scheduler package owns the state and changes it only by
// dispatching events.
package govern
