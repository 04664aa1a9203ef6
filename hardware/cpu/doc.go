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

// Package cpu implements the fetch/decode/execute cycle of the CHIP-8
// machine. Each call to Step() advances the machine by exactly one
// instruction, mutating registers, memory, the call stack, the framebuffer,
// the timers and the wait-for-key state as the instruction demands.
//
// The flag conventions implemented here follow one specific historical
// interpreter family: subtraction leaves the no-borrow condition in VF,
// computed on the operands before truncation; shifts act on Vx alone and
// leave the shifted-out bit in VF. Other historical interpreters disagree on
// these points and programs written for them may misbehave here. The
// convention is deliberately not configurable.
package cpu
