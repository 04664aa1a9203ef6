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

import (
	"errors"
	"fmt"
	"strings"
)

// StackDepth is the maximum number of nested subroutine calls. A call made
// at full depth is an overflow and a return made with an empty stack is an
// underflow. Both are fatal to the running program.
const StackDepth = 16

// sentinel errors returned by CallStack.Push() and CallStack.Pop().
var (
	ErrStackOverflow  = errors.New("callstack: overflow")
	ErrStackUnderflow = errors.New("callstack: underflow")
)

// CallStack records return addresses for nested subroutine calls. Pushes and
// pops must be exactly symmetric.
type CallStack struct {
	entries [StackDepth]uint16
	sp      int
}

// NewCallStack creates a new empty call stack.
func NewCallStack() CallStack {
	return CallStack{}
}

func (stk CallStack) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("SP=%d [", stk.sp))
	for i := 0; i < stk.sp; i++ {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%#03x", stk.entries[i]))
	}
	s.WriteString("]")
	return s.String()
}

// Depth returns the number of return addresses currently on the stack.
func (stk CallStack) Depth() int {
	return stk.sp
}

// Push a return address onto the stack.
func (stk *CallStack) Push(addr uint16) error {
	if stk.sp >= StackDepth {
		return ErrStackOverflow
	}
	stk.entries[stk.sp] = addr
	stk.sp++
	return nil
}

// Pop the most recently pushed return address off the stack.
func (stk *CallStack) Pop() (uint16, error) {
	if stk.sp <= 0 {
		return 0, ErrStackUnderflow
	}
	stk.sp--
	return stk.entries[stk.sp], nil
}
