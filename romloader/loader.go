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

// Package romloader reads CHIP-8 programs from the filesystem. A ROM is raw
// bytes with no header; the only validation possible at load time is the
// size limit imposed by the machine's address space.
package romloader

import (
	"crypto/sha1"
	"fmt"
	"os"

	"github.com/hexlab/chirp8/hardware/memory"
	"github.com/hexlab/chirp8/logger"
)

// Loader is used to specify the ROM file to load into the machine.
type Loader struct {
	// filename of ROM to load
	Filename string

	// the loaded data. valid after a successful call to Load()
	Data []byte

	// hash of the loaded data. valid after a successful call to Load()
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// Load reads the ROM file from disk. A file larger than the machine's
// program space is a fatal load error, reported here before a machine is
// ever created.
func (ld *Loader) Load() error {
	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return fmt.Errorf("romloader: %w", err)
	}

	if len(data) > memory.MaxROMSize {
		return fmt.Errorf("romloader: %s is too large (%d bytes, maximum is %d)",
			ld.Filename, len(data), memory.MaxROMSize)
	}

	ld.Data = data
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	logger.Logf(logger.Allow, "romloader", "loaded %s (%d bytes, sha1 %s)", ld.Filename, len(data), ld.Hash)

	return nil
}
