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

package registers

import "fmt"

// AddressMask is applied on every write to a Pointer. An address in the
// CHIP-8 machine is 12 bits wide.
const AddressMask = 0x0fff

// Pointer is a 12 bit register. Both the program counter and the index
// register are pointers into the 4096 byte address space.
type Pointer struct {
	label string
	value uint16
}

// NewPointer creates a new 12 bit pointer register with an initial value and
// a label.
func NewPointer(val uint16, label string) Pointer {
	return Pointer{
		value: val & AddressMask,
		label: label,
	}
}

func (p Pointer) String() string {
	return fmt.Sprintf("%s=%#03x", p.label, p.value)
}

// Label returns the label assigned to the pointer.
func (p Pointer) Label() string {
	return p.label
}

// Address returns the current value of the pointer.
func (p Pointer) Address() uint16 {
	return p.value
}

// Load a value into the pointer. The value is masked to 12 bits.
func (p *Pointer) Load(val uint16) {
	p.value = val & AddressMask
}

// Add a value to the pointer. The result is masked to 12 bits.
func (p *Pointer) Add(val uint16) {
	p.value = (p.value + val) & AddressMask
}
