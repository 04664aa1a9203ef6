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

// Package hardware assembles the components of the CHIP-8 machine into the
// VM type and provides the entry points a frontend drives it with: StepBatch
// for instruction execution and timer ticking, Framebuffer for presentation
// and UpdateHexpad for input.
//
// A VM is exclusively owned by the single goroutine driving it. The entry
// points must never be called concurrently against the same VM; the
// reference protocol is one StepBatch and one UpdateHexpad per presented
// frame, so there is never more than one caller and no locking is required.
package hardware
