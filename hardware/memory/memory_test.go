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

package memory_test

import (
	"testing"

	"github.com/hexlab/chirp8/hardware/memory"
	"github.com/hexlab/chirp8/test"
)

func TestNewMemory(t *testing.T) {
	mem, err := memory.NewMemory([]byte{0x12, 0x34})
	test.ExpectedSuccess(t, err)

	// program is placed at the program origin
	test.Equate(t, mem.Read(memory.ProgramOrigin), 0x12)
	test.Equate(t, mem.Read(memory.ProgramOrigin+1), 0x34)

	// the font table occupies the bottom of memory. first row of glyph 0 and
	// last row of glyph F
	test.Equate(t, mem.Read(memory.FontOrigin), 0xf0)
	test.Equate(t, mem.Read(memory.FontOrigin+16*memory.GlyphSize-1), 0x80)

	// the reserved area is zeroed
	test.Equate(t, mem.Read(0x1ff), 0)
}

func TestROMTooLarge(t *testing.T) {
	// the largest ROM that fits loads without error
	rom := make([]byte, memory.MaxROMSize)
	_, err := memory.NewMemory(rom)
	test.ExpectedSuccess(t, err)

	// one byte more is a load error
	rom = make([]byte, memory.MaxROMSize+1)
	_, err = memory.NewMemory(rom)
	test.ExpectedFailure(t, err)
}

func TestAddressMasking(t *testing.T) {
	mem, err := memory.NewMemory(nil)
	test.ExpectedSuccess(t, err)

	// addresses wrap at the top of memory
	mem.Write(0x1000, 0xab)
	test.Equate(t, mem.Read(0x000), 0xab)
	test.Equate(t, mem.Read(0x1000), 0xab)
}
