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

// Package timer implements the two decrementing counters of the CHIP-8
// machine, the delay timer and the sound timer. Each is decremented by
// exactly one per external tick, nominally at 60Hz, and never below zero.
// The machine itself gives no meaning to the delay timer beyond reading it;
// the sound timer requests a tone from the frontend while it is non-zero.
package timer

import "fmt"

// Timer is an 8 bit decrementing counter.
type Timer struct {
	label string
	value uint8
}

// NewTimer creates a new timer with a value of zero.
func NewTimer(label string) Timer {
	return Timer{label: label}
}

func (tmr Timer) String() string {
	return fmt.Sprintf("%s=%d", tmr.label, tmr.value)
}

// Value returns the current value of the timer.
func (tmr Timer) Value() uint8 {
	return tmr.value
}

// Set the timer.
func (tmr *Timer) Set(val uint8) {
	tmr.value = val
}

// Tick decrements the timer by one, clamping at zero.
func (tmr *Timer) Tick() {
	if tmr.value > 0 {
		tmr.value--
	}
}

// Active returns true while the timer has not reached zero.
func (tmr Timer) Active() bool {
	return tmr.value > 0
}
