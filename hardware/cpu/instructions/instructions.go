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

// Package instructions defines the CHIP-8 instruction set and the decoding
// of 16 bit instruction words into an enumerated operator plus operand
// fields. Execution of decoded instructions is the responsibility of the cpu
// package.
//
// Representing the operator as an enumeration means the execution switch in
// the cpu package covers the instruction set exhaustively; an instruction
// word that matches no pattern never reaches execution at all.
package instructions

import (
	"errors"
	"fmt"
)

// Operator identifies the operation an instruction word encodes.
type Operator int

// The instruction set. Operand fields used by each operation are given in
// the conventional notation: nnn is a 12 bit address, nn an 8 bit value, n a
// 4 bit value, x and y register indexes.
const (
	ClearScreen Operator = iota // 00E0
	Return                      // 00EE
	Jump                        // 1nnn
	Call                        // 2nnn
	SkipEqualValue              // 3xnn
	SkipNotEqualValue           // 4xnn
	SkipEqual                   // 5xy0
	LoadValue                   // 6xnn
	AddValue                    // 7xnn
	Copy                        // 8xy0
	Or                          // 8xy1
	And                         // 8xy2
	Xor                         // 8xy3
	Add                         // 8xy4
	Subtract                    // 8xy5
	ShiftRight                  // 8xy6
	SubtractReverse             // 8xy7
	ShiftLeft                   // 8xyE
	SkipNotEqual                // 9xy0
	LoadIndex                   // Annn
	JumpOffset                  // Bnnn
	Random                      // Cxnn
	DrawSprite                  // Dxyn
	SkipKeyPressed              // Ex9E
	SkipKeyNotPressed           // ExA1
	ReadDelayTimer              // Fx07
	WaitKey                     // Fx0A
	SetDelayTimer               // Fx15
	SetSoundTimer               // Fx18
	AddIndex                    // Fx1E
	GlyphAddress                // Fx29
	StoreDecimal                // Fx33
	StoreRegisters              // Fx55
	LoadRegisters               // Fx65
)

func (op Operator) String() string {
	switch op {
	case ClearScreen:
		return "CLS"
	case Return:
		return "RET"
	case Jump:
		return "JP"
	case Call:
		return "CALL"
	case SkipEqualValue, SkipEqual:
		return "SE"
	case SkipNotEqualValue, SkipNotEqual:
		return "SNE"
	case LoadValue, Copy, LoadIndex, ReadDelayTimer, WaitKey,
		SetDelayTimer, SetSoundTimer, GlyphAddress, StoreDecimal,
		StoreRegisters, LoadRegisters:
		return "LD"
	case AddValue, Add, AddIndex:
		return "ADD"
	case Or:
		return "OR"
	case And:
		return "AND"
	case Xor:
		return "XOR"
	case Subtract:
		return "SUB"
	case ShiftRight:
		return "SHR"
	case SubtractReverse:
		return "SUBN"
	case ShiftLeft:
		return "SHL"
	case JumpOffset:
		return "JP V0"
	case Random:
		return "RND"
	case DrawSprite:
		return "DRW"
	case SkipKeyPressed:
		return "SKP"
	case SkipKeyNotPressed:
		return "SKNP"
	}
	panic(fmt.Sprintf("instructions: unknown operator (%d)", int(op)))
}

// ErrUnknown is returned by Decode() for an instruction word that matches no
// pattern in the instruction set. The effect of such a word is undefined and
// execution must not continue past it.
var ErrUnknown = errors.New("unrecognised instruction")

// Instruction is a decoded instruction word.
type Instruction struct {
	// the raw instruction word as fetched
	Word uint16

	Operator Operator

	// operand fields. every field is extracted regardless of whether the
	// operator uses it; the masking during extraction is what keeps register
	// and address indexes in their legal ranges
	NNN uint16
	NN  uint8
	N   uint8
	X   int
	Y   int
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%#04x %s", ins.Word, ins.Operator)
}

// Decode an instruction word. Returns ErrUnknown (wrapped) if the word
// matches no pattern in the instruction set.
func Decode(word uint16) (Instruction, error) {
	ins := Instruction{
		Word: word,
		NNN:  word & 0x0fff,
		NN:   uint8(word & 0x00ff),
		N:    uint8(word & 0x000f),
		X:    int(word >> 8 & 0x0f),
		Y:    int(word >> 4 & 0x0f),
	}

	// the two instructions that match on the full word
	switch word {
	case 0x00e0:
		ins.Operator = ClearScreen
		return ins, nil
	case 0x00ee:
		ins.Operator = Return
		return ins, nil
	}

	switch word >> 12 {
	case 0x0:
		// 0nnn called into native code on the original hardware. no modern
		// interpreter supports it and its effect here is undefined
		return ins, fmt.Errorf("%w (%#04x)", ErrUnknown, word)
	case 0x1:
		ins.Operator = Jump
	case 0x2:
		ins.Operator = Call
	case 0x3:
		ins.Operator = SkipEqualValue
	case 0x4:
		ins.Operator = SkipNotEqualValue
	case 0x5:
		if ins.N != 0x0 {
			return ins, fmt.Errorf("%w (%#04x)", ErrUnknown, word)
		}
		ins.Operator = SkipEqual
	case 0x6:
		ins.Operator = LoadValue
	case 0x7:
		ins.Operator = AddValue
	case 0x8:
		switch ins.N {
		case 0x0:
			ins.Operator = Copy
		case 0x1:
			ins.Operator = Or
		case 0x2:
			ins.Operator = And
		case 0x3:
			ins.Operator = Xor
		case 0x4:
			ins.Operator = Add
		case 0x5:
			ins.Operator = Subtract
		case 0x6:
			ins.Operator = ShiftRight
		case 0x7:
			ins.Operator = SubtractReverse
		case 0xe:
			ins.Operator = ShiftLeft
		default:
			return ins, fmt.Errorf("%w (%#04x)", ErrUnknown, word)
		}
	case 0x9:
		if ins.N != 0x0 {
			return ins, fmt.Errorf("%w (%#04x)", ErrUnknown, word)
		}
		ins.Operator = SkipNotEqual
	case 0xa:
		ins.Operator = LoadIndex
	case 0xb:
		ins.Operator = JumpOffset
	case 0xc:
		ins.Operator = Random
	case 0xd:
		ins.Operator = DrawSprite
	case 0xe:
		switch ins.NN {
		case 0x9e:
			ins.Operator = SkipKeyPressed
		case 0xa1:
			ins.Operator = SkipKeyNotPressed
		default:
			return ins, fmt.Errorf("%w (%#04x)", ErrUnknown, word)
		}
	case 0xf:
		switch ins.NN {
		case 0x07:
			ins.Operator = ReadDelayTimer
		case 0x0a:
			ins.Operator = WaitKey
		case 0x15:
			ins.Operator = SetDelayTimer
		case 0x18:
			ins.Operator = SetSoundTimer
		case 0x1e:
			ins.Operator = AddIndex
		case 0x29:
			ins.Operator = GlyphAddress
		case 0x33:
			ins.Operator = StoreDecimal
		case 0x55:
			ins.Operator = StoreRegisters
		case 0x65:
			ins.Operator = LoadRegisters
		default:
			return ins, fmt.Errorf("%w (%#04x)", ErrUnknown, word)
		}
	}

	return ins, nil
}
