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

// Package input implements the 16 key hexadecimal pad of the CHIP-8 machine
// and the cooperative wait-for-key protocol.
//
// The pad is a latch: the frontend replaces the entire pressed-key bitmap
// once per frame with Update(). The wait-for-key state is entered only by
// the cpu (the wait instruction) and resolved only by Update(), when the new
// bitmap contains a key that was not pressed in the old one. Which register
// receives the key index is carried in the wait state itself.
package input

import (
	"fmt"
	"math/bits"
)

// NumKeys is the number of keys on the pad, one per hex digit.
const NumKeys = 16

// WaitState describes whether the machine is executing normally or is
// suspended waiting for a key press.
type WaitState int

// Valid WaitState values.
const (
	Running WaitState = iota
	WaitingForKey
)

func (state WaitState) String() string {
	switch state {
	case Running:
		return "running"
	case WaitingForKey:
		return "waiting for key"
	}
	panic(fmt.Sprintf("hexpad: unknown wait state (%d)", int(state)))
}

// Resolution is the outcome of a wait-for-key being satisfied: the index of
// the newly pressed key and the register it is destined for.
type Resolution struct {
	Key      int
	Register int
}

// Hexpad is the pressed-key latch and wait-for-key state.
type Hexpad struct {
	bitmap uint16
	state  WaitState

	// register index to receive the key. valid only when state is
	// WaitingForKey
	target int
}

// NewHexpad creates a new hexpad with no keys pressed.
func NewHexpad() *Hexpad {
	return &Hexpad{state: Running}
}

func (pad *Hexpad) String() string {
	return fmt.Sprintf("keys=%#04x (%s)", pad.bitmap, pad.state)
}

// IsKeyPressed returns whether the key at index is currently pressed. Index
// must be in the range [0, NumKeys).
func (pad *Hexpad) IsKeyPressed(index int) bool {
	if index < 0 || index >= NumKeys {
		panic(fmt.Sprintf("hexpad: key index out of range (%d)", index))
	}
	return pad.bitmap&(1<<index) != 0
}

// Wait suspends execution until a new key is pressed, at which point the key
// index will be destined for the register at targetRegister.
func (pad *Hexpad) Wait(targetRegister int) {
	pad.state = WaitingForKey
	pad.target = targetRegister
}

// Waiting returns true while a wait-for-key is outstanding. Instruction
// stepping is a no-op while this is true.
func (pad *Hexpad) Waiting() bool {
	return pad.state == WaitingForKey
}

// Update replaces the pressed-key latch. If a wait-for-key is outstanding
// and the new bitmap contains at least one key that was not pressed before,
// the wait is resolved: the returned Resolution names the lowest newly
// pressed key and the register that should receive it, and the second return
// value is true.
func (pad *Hexpad) Update(bitmap uint16) (Resolution, bool) {
	newKeys := bitmap &^ pad.bitmap
	pad.bitmap = bitmap

	if pad.state != WaitingForKey || newKeys == 0 {
		return Resolution{}, false
	}

	pad.state = Running
	return Resolution{
		Key:      bits.TrailingZeros16(newKeys),
		Register: pad.target,
	}, true
}
