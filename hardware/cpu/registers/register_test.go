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

package registers_test

import (
	"testing"

	"github.com/hexlab/chirp8/hardware/cpu/registers"
	"github.com/hexlab/chirp8/test"
)

func TestRegister(t *testing.T) {
	// initialisation
	r := registers.NewRegister(0, "V0")
	test.Equate(t, r.Value(), 0)

	// loading wraps to 8 bits implicitly through the argument type
	r.Load(0xff)
	test.Equate(t, r.Value(), 0xff)

	// bitwise operations leave no flag to report
	r.Load(0xf0)
	r.ORA(0x0f)
	test.Equate(t, r.Value(), 0xff)
	r.AND(0x3c)
	test.Equate(t, r.Value(), 0x3c)
	r.EOR(0xff)
	test.Equate(t, r.Value(), 0xc3)
}

func TestRegisterAdd(t *testing.T) {
	r := registers.NewRegister(250, "Vx")

	// 250+10 wraps to 4 with carry
	carry := r.Add(10)
	test.Equate(t, r.Value(), 4)
	test.Equate(t, carry, true)

	// 5+10 does not carry
	r.Load(5)
	carry = r.Add(10)
	test.Equate(t, r.Value(), 15)
	test.Equate(t, carry, false)

	// sum of exactly 255 does not carry
	r.Load(255)
	carry = r.Add(0)
	test.Equate(t, r.Value(), 255)
	test.Equate(t, carry, false)
}

func TestRegisterSubtract(t *testing.T) {
	r := registers.NewRegister(10, "Vx")

	// 10-3 leaves no borrow
	noBorrow := r.Subtract(3)
	test.Equate(t, r.Value(), 7)
	test.Equate(t, noBorrow, true)

	// 3-10 wraps and borrows
	r.Load(3)
	noBorrow = r.Subtract(10)
	test.Equate(t, r.Value(), 249)
	test.Equate(t, noBorrow, false)

	// equal operands leave no borrow
	r.Load(20)
	noBorrow = r.Subtract(20)
	test.Equate(t, r.Value(), 0)
	test.Equate(t, noBorrow, true)
}

func TestRegisterLoadDifference(t *testing.T) {
	// reversed subtraction: register := val - register
	r := registers.NewRegister(3, "Vx")
	noBorrow := r.LoadDifference(10)
	test.Equate(t, r.Value(), 7)
	test.Equate(t, noBorrow, true)

	r.Load(10)
	noBorrow = r.LoadDifference(3)
	test.Equate(t, r.Value(), 249)
	test.Equate(t, noBorrow, false)
}

func TestRegisterShifts(t *testing.T) {
	r := registers.NewRegister(0x05, "Vx")

	// shift right reports the old least significant bit
	bit := r.ShiftRight()
	test.Equate(t, r.Value(), 0x02)
	test.Equate(t, bit, true)

	bit = r.ShiftRight()
	test.Equate(t, r.Value(), 0x01)
	test.Equate(t, bit, false)

	// shift left reports the old most significant bit
	r.Load(0x81)
	bit = r.ShiftLeft()
	test.Equate(t, r.Value(), 0x02)
	test.Equate(t, bit, true)

	bit = r.ShiftLeft()
	test.Equate(t, r.Value(), 0x04)
	test.Equate(t, bit, false)
}

func TestPointer(t *testing.T) {
	p := registers.NewPointer(0x200, "PC")
	test.Equate(t, p.Address(), 0x200)

	// every write is masked to 12 bits
	p.Load(0xffff)
	test.Equate(t, p.Address(), 0x0fff)

	p.Add(1)
	test.Equate(t, p.Address(), 0x000)

	p.Load(0x123)
	p.Add(2)
	test.Equate(t, p.Address(), 0x125)
}
