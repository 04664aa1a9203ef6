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

// Package memory implements the flat 4096 byte address space of the CHIP-8
// machine. The font table occupies the bottom of memory and the loaded
// program starts at ProgramOrigin. The area between the two is reserved and
// unused.
package memory

import "fmt"

const (
	// Size of the addressable memory in bytes.
	Size = 4096

	// ProgramOrigin is the address at which the loaded program begins. The
	// program counter starts here on creation.
	ProgramOrigin = 0x200

	// MaxROMSize is the largest program that fits in the address space.
	MaxROMSize = Size - ProgramOrigin
)

// Memory is the flat byte store of the CHIP-8 machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory creates the machine's memory, placing the font table at the
// bottom of the address space and the program at ProgramOrigin. An error is
// returned if the program is too large for the address space.
func NewMemory(rom []byte) (*Memory, error) {
	if len(rom) > MaxROMSize {
		return nil, fmt.Errorf("memory: ROM is too large (%d bytes, maximum is %d)", len(rom), MaxROMSize)
	}

	mem := &Memory{}
	copy(mem.data[FontOrigin:], fontData[:])
	copy(mem.data[ProgramOrigin:], rom)

	return mem, nil
}

// Read a byte of memory. Addresses are 12 bit values so the supplied address
// is masked to that range; pointer arithmetic that would run past the top of
// memory wraps to the bottom.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address&(Size-1)]
}

// Write a byte of memory. Addresses are masked as with Read().
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address&(Size-1)] = data
}
