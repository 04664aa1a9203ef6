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

// Register is one of the sixteen 8 bit general purpose registers.
type Register struct {
	label string
	value uint8
}

// NewRegister creates a new register with an initial value and a label.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the label assigned to the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns true if the unwrapped sum exceeds the 8 bit
// range. The register itself always holds the wrapped sum.
func (r *Register) Add(val uint8) (carry bool) {
	v := r.value
	r.value += val
	return r.value < v
}

// Subtract value from register. The return value is true if no borrow
// occurred; that is, if the register value was greater than or equal to the
// subtracted value before truncation.
//
// The no-borrow test must happen before the subtraction wraps. Testing the
// wrapped result is a classic mistake that leaves the flag register
// permanently clear.
func (r *Register) Subtract(val uint8) (noBorrow bool) {
	noBorrow = r.value >= val
	r.value -= val
	return noBorrow
}

// LoadDifference loads the register with val minus the current register
// value. The return value is the no-borrow condition, computed on the
// operands before truncation, as with Subtract().
func (r *Register) LoadDifference(val uint8) (noBorrow bool) {
	noBorrow = val >= r.value
	r.value = val - r.value
	return noBorrow
}

// ShiftRight shifts the register one bit to the right. Returns the least
// significant bit as it was before the shift.
func (r *Register) ShiftRight() bool {
	bit := r.value&0x01 == 0x01
	r.value >>= 1
	return bit
}

// ShiftLeft shifts the register one bit to the left. Returns the most
// significant bit as it was before the shift.
func (r *Register) ShiftLeft() bool {
	bit := r.value&0x80 == 0x80
	r.value <<= 1
	return bit
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// ORA - OR value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// EOR - exclusive or value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}
