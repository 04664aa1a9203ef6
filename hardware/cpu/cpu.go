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

package cpu

import (
	"fmt"
	"strings"

	"github.com/hexlab/chirp8/hardware/cpu/instructions"
	"github.com/hexlab/chirp8/hardware/cpu/registers"
	"github.com/hexlab/chirp8/hardware/input"
	"github.com/hexlab/chirp8/hardware/memory"
	"github.com/hexlab/chirp8/hardware/timer"
	"github.com/hexlab/chirp8/hardware/video"
	"github.com/hexlab/chirp8/random"
)

// Flag is the index of the flag register. Arithmetic, shift and draw
// instructions overwrite it with a 0/1 result indicator, so programs cannot
// rely on it holding general data across those instructions.
const Flag = 0xf

// CPU implements the fetch/decode/execute cycle of the CHIP-8 machine.
// Register logic is implemented by types in the registers sub-package and
// decoding by the instructions sub-package.
type CPU struct {
	PC    registers.Pointer
	Index registers.Pointer
	V     [16]registers.Register
	Stack registers.CallStack

	mem   *memory.Memory
	fb    *video.Framebuffer
	pad   *input.Hexpad
	delay *timer.Timer
	sound *timer.Timer
	rnd   *random.Random

	// the most recently executed instruction. undefined until the first
	// completed call to Step()
	LastResult instructions.Instruction
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// program counter starts at the program origin.
func NewCPU(mem *memory.Memory, fb *video.Framebuffer, pad *input.Hexpad,
	delay *timer.Timer, sound *timer.Timer, rnd *random.Random) *CPU {

	mc := &CPU{
		mem:   mem,
		fb:    fb,
		pad:   pad,
		delay: delay,
		sound: sound,
		rnd:   rnd,
		PC:    registers.NewPointer(memory.ProgramOrigin, "PC"),
		Index: registers.NewPointer(0, "I"),
		Stack: registers.NewCallStack(),
	}

	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}

	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s %s\n", mc.PC, mc.Index, mc.Stack))
	for i := range mc.V {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(mc.V[i].String())
	}
	s.WriteString("\n")
	return s.String()
}

// setFlag loads the flag register with a 0/1 result indicator.
func (mc *CPU) setFlag(cond bool) {
	if cond {
		mc.V[Flag].Load(1)
	} else {
		mc.V[Flag].Load(0)
	}
}

// Step advances the machine by exactly one instruction. While a wait-for-key
// is outstanding Step is a no-op; no fetch, decode or execution takes place.
//
// An unrecognised instruction word is a fatal error, reported with the
// faulting program counter and the raw word. Decode always completes before
// execution begins, so an unrecognised word never causes partial state
// mutation.
func (mc *CPU) Step() error {
	if mc.pad.Waiting() {
		return nil
	}

	// fetch. high byte first, combined big-endian. the program counter is
	// advanced before execution so that flow instructions observe the
	// post-fetch value
	pc := mc.PC.Address()
	word := uint16(mc.mem.Read(pc))<<8 | uint16(mc.mem.Read(pc+1))
	mc.PC.Add(2)

	ins, err := instructions.Decode(word)
	if err != nil {
		return fmt.Errorf("cpu: %w at (%#03x)", err, pc)
	}
	mc.LastResult = ins

	return mc.execute(ins)
}

func (mc *CPU) execute(ins instructions.Instruction) error {
	switch ins.Operator {
	case instructions.ClearScreen:
		mc.fb.Clear()

	case instructions.Return:
		addr, err := mc.Stack.Pop()
		if err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
		mc.PC.Load(addr)

	case instructions.Jump:
		mc.PC.Load(ins.NNN)

	case instructions.Call:
		if err := mc.Stack.Push(mc.PC.Address()); err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
		mc.PC.Load(ins.NNN)

	case instructions.SkipEqualValue:
		if mc.V[ins.X].Value() == ins.NN {
			mc.PC.Add(2)
		}

	case instructions.SkipNotEqualValue:
		if mc.V[ins.X].Value() != ins.NN {
			mc.PC.Add(2)
		}

	case instructions.SkipEqual:
		if mc.V[ins.X].Value() == mc.V[ins.Y].Value() {
			mc.PC.Add(2)
		}

	case instructions.LoadValue:
		mc.V[ins.X].Load(ins.NN)

	case instructions.AddValue:
		// the flag register is unaffected by the immediate form
		mc.V[ins.X].Add(ins.NN)

	case instructions.Copy:
		mc.V[ins.X].Load(mc.V[ins.Y].Value())

	case instructions.Or:
		mc.V[ins.X].ORA(mc.V[ins.Y].Value())

	case instructions.And:
		mc.V[ins.X].AND(mc.V[ins.Y].Value())

	case instructions.Xor:
		mc.V[ins.X].EOR(mc.V[ins.Y].Value())

	case instructions.Add:
		carry := mc.V[ins.X].Add(mc.V[ins.Y].Value())
		mc.setFlag(carry)

	case instructions.Subtract:
		noBorrow := mc.V[ins.X].Subtract(mc.V[ins.Y].Value())
		mc.setFlag(noBorrow)

	case instructions.ShiftRight:
		// the shift operates on Vx alone, ignoring Vy. the shifted-out bit
		// goes to the flag register
		bit := mc.V[ins.X].ShiftRight()
		mc.setFlag(bit)

	case instructions.SubtractReverse:
		noBorrow := mc.V[ins.X].LoadDifference(mc.V[ins.Y].Value())
		mc.setFlag(noBorrow)

	case instructions.ShiftLeft:
		bit := mc.V[ins.X].ShiftLeft()
		mc.setFlag(bit)

	case instructions.SkipNotEqual:
		if mc.V[ins.X].Value() != mc.V[ins.Y].Value() {
			mc.PC.Add(2)
		}

	case instructions.LoadIndex:
		mc.Index.Load(ins.NNN)

	case instructions.JumpOffset:
		mc.PC.Load(uint16(mc.V[0x0].Value()) + ins.NNN)

	case instructions.Random:
		mc.V[ins.X].Load(mc.rnd.Byte() & ins.NN)

	case instructions.DrawSprite:
		mc.drawSprite(ins)

	case instructions.SkipKeyPressed:
		if mc.pad.IsKeyPressed(int(mc.V[ins.X].Value() & 0x0f)) {
			mc.PC.Add(2)
		}

	case instructions.SkipKeyNotPressed:
		if !mc.pad.IsKeyPressed(int(mc.V[ins.X].Value() & 0x0f)) {
			mc.PC.Add(2)
		}

	case instructions.ReadDelayTimer:
		mc.V[ins.X].Load(mc.delay.Value())

	case instructions.WaitKey:
		mc.pad.Wait(ins.X)

	case instructions.SetDelayTimer:
		mc.delay.Set(mc.V[ins.X].Value())

	case instructions.SetSoundTimer:
		mc.sound.Set(mc.V[ins.X].Value())

	case instructions.AddIndex:
		mc.Index.Add(uint16(mc.V[ins.X].Value()))

	case instructions.GlyphAddress:
		mc.Index.Load(uint16(mc.V[ins.X].Value()) * memory.GlyphSize)

	case instructions.StoreDecimal:
		v := mc.V[ins.X].Value()
		i := mc.Index.Address()
		mc.mem.Write(i, v/100)
		mc.mem.Write(i+1, (v/10)%10)
		mc.mem.Write(i+2, v%10)

	case instructions.StoreRegisters:
		i := mc.Index.Address()
		for j := 0; j <= ins.X; j++ {
			mc.mem.Write(i+uint16(j), mc.V[j].Value())
		}

	case instructions.LoadRegisters:
		i := mc.Index.Address()
		for j := 0; j <= ins.X; j++ {
			mc.V[j].Load(mc.mem.Read(i + uint16(j)))
		}

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", ins.Operator)
	}

	return nil
}

// drawSprite composites ins.N rows of eight pixels, read from memory at the
// index register, at the coordinates held in Vx/Vy. The most significant bit
// of a row is the leftmost pixel. The flag register receives the collision
// condition.
func (mc *CPU) drawSprite(ins instructions.Instruction) {
	x := int(mc.V[ins.X].Value())
	y := int(mc.V[ins.Y].Value())

	collision := false
	for row := 0; row < int(ins.N); row++ {
		sprite := mc.mem.Read(mc.Index.Address() + uint16(row))
		for col := 0; col < 8; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}

			// coordinates wrap toroidally. the collision condition is
			// computed per wrapped target pixel, not against the raw
			// operands
			px := (x + col) % video.Width
			py := (y + row) % video.Height
			if mc.fb.Composite(px, py) {
				collision = true
			}
		}
	}
	mc.setFlag(collision)
}
