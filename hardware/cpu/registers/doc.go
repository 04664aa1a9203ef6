// This file is part of chirp8.
//
// chirp8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// chirp8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with chirp8.  If not, see <https://www.gnu.org/licenses/>.

// Package registers implements the register types of the CHIP-8 machine: the
// 8 bit general purpose Register, the 12 bit Pointer used for the program
// counter and the index register, and the fixed depth CallStack.
//
// Arithmetic operations that feed the flag register report their carry,
// borrow or shifted-out bit to the caller. How that report reaches register
// VF is the concern of the cpu package.
package registers
