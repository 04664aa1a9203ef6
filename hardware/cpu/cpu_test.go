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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/hexlab/chirp8/hardware/cpu"
	"github.com/hexlab/chirp8/hardware/cpu/instructions"
	"github.com/hexlab/chirp8/hardware/cpu/registers"
	"github.com/hexlab/chirp8/hardware/input"
	"github.com/hexlab/chirp8/hardware/memory"
	"github.com/hexlab/chirp8/hardware/timer"
	"github.com/hexlab/chirp8/hardware/video"
	"github.com/hexlab/chirp8/random"
	"github.com/hexlab/chirp8/test"
)

type testMachine struct {
	mc    *cpu.CPU
	mem   *memory.Memory
	fb    *video.Framebuffer
	pad   *input.Hexpad
	delay timer.Timer
	sound timer.Timer
}

// newTestMachine assembles a machine around a program. Bytes are given in
// fetch order: high byte then low byte of each instruction word.
func newTestMachine(t *testing.T, prog ...byte) *testMachine {
	t.Helper()

	mem, err := memory.NewMemory(prog)
	if err != nil {
		t.Fatalf("unexpected error creating memory (%v)", err)
	}

	tm := &testMachine{
		mem:   mem,
		fb:    video.NewFramebuffer(),
		pad:   input.NewHexpad(),
		delay: timer.NewTimer("delay"),
		sound: timer.NewTimer("sound"),
	}

	rnd := random.NewRandom()
	rnd.ZeroSeed = true

	tm.mc = cpu.NewCPU(tm.mem, tm.fb, tm.pad, &tm.delay, &tm.sound, rnd)
	return tm
}

func (tm *testMachine) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := tm.mc.Step(); err != nil {
			t.Fatalf("unexpected error stepping (%v)", err)
		}
	}
}

func TestFetch(t *testing.T) {
	// 6A0B: load 0x0b into VA
	tm := newTestMachine(t, 0x6a, 0x0b)

	test.Equate(t, tm.mc.PC.Address(), memory.ProgramOrigin)
	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0xa].Value(), 0x0b)
	test.Equate(t, tm.mc.PC.Address(), memory.ProgramOrigin+2)
}

func TestAddWithCarry(t *testing.T) {
	// V0=250, V1=10, V0+=V1 / V2=5, V3=10, V2+=V3
	tm := newTestMachine(t,
		0x60, 250, 0x61, 10, 0x80, 0x14,
		0x62, 5, 0x63, 10, 0x82, 0x34,
	)

	tm.step(t, 3)
	test.Equate(t, tm.mc.V[0x0].Value(), 4)
	test.Equate(t, tm.mc.V[cpu.Flag].Value(), 1)

	tm.step(t, 3)
	test.Equate(t, tm.mc.V[0x2].Value(), 15)
	test.Equate(t, tm.mc.V[cpu.Flag].Value(), 0)
}

func TestSubtractWithBorrow(t *testing.T) {
	// V0=10, V1=3, V0-=V1 / V2=3, V3=10, V2-=V3
	tm := newTestMachine(t,
		0x60, 10, 0x61, 3, 0x80, 0x15,
		0x62, 3, 0x63, 10, 0x82, 0x35,
	)

	tm.step(t, 3)
	test.Equate(t, tm.mc.V[0x0].Value(), 7)
	test.Equate(t, tm.mc.V[cpu.Flag].Value(), 1)

	tm.step(t, 3)
	test.Equate(t, tm.mc.V[0x2].Value(), 249)
	test.Equate(t, tm.mc.V[cpu.Flag].Value(), 0)
}

func TestSubtractReverse(t *testing.T) {
	// V0=3, V1=10, V0:=V1-V0
	tm := newTestMachine(t, 0x60, 3, 0x61, 10, 0x80, 0x17)
	tm.step(t, 3)
	test.Equate(t, tm.mc.V[0x0].Value(), 7)
	test.Equate(t, tm.mc.V[cpu.Flag].Value(), 1)
}

func TestShifts(t *testing.T) {
	// V0=5, V0>>=1 / V1=0x81, V1<<=1
	tm := newTestMachine(t, 0x60, 0x05, 0x80, 0x06, 0x61, 0x81, 0x81, 0x0e)

	tm.step(t, 2)
	test.Equate(t, tm.mc.V[0x0].Value(), 0x02)
	test.Equate(t, tm.mc.V[cpu.Flag].Value(), 1)

	tm.step(t, 2)
	test.Equate(t, tm.mc.V[0x1].Value(), 0x02)
	test.Equate(t, tm.mc.V[cpu.Flag].Value(), 1)
}

func TestSkips(t *testing.T) {
	// V0=7; skip-if-equal V0,7 must skip the jump that follows it
	tm := newTestMachine(t,
		0x60, 7, // 0x200 V0=7
		0x30, 7, // 0x202 skip if V0 == 7
		0x1f, 0xff, // 0x204 jump (skipped)
		0x40, 7, // 0x206 skip if V0 != 7 (no skip)
		0x61, 1, // 0x208 V1=1
	)

	tm.step(t, 2)
	test.Equate(t, tm.mc.PC.Address(), 0x206)
	tm.step(t, 2)
	test.Equate(t, tm.mc.V[0x1].Value(), 1)
}

func TestCallReturnSymmetry(t *testing.T) {
	// call to 0x206, which returns immediately
	tm := newTestMachine(t,
		0x22, 0x06, // 0x200 call 0x206
		0x60, 1, // 0x202 V0=1 (after return)
		0x00, 0x00, // 0x204 (padding)
		0x00, 0xee, // 0x206 return
	)

	tm.step(t, 1)
	test.Equate(t, tm.mc.PC.Address(), 0x206)
	test.Equate(t, tm.mc.Stack.Depth(), 1)

	tm.step(t, 1)
	test.Equate(t, tm.mc.PC.Address(), 0x202)
	test.Equate(t, tm.mc.Stack.Depth(), 0)

	tm.step(t, 1)
	test.Equate(t, tm.mc.V[0x0].Value(), 1)
}

func TestCallOverflow(t *testing.T) {
	// a subroutine that calls itself overflows the stack on the seventeenth
	// nested call
	tm := newTestMachine(t, 0x22, 0x00) // 0x200 call 0x200

	for i := 0; i < registers.StackDepth; i++ {
		if err := tm.mc.Step(); err != nil {
			t.Fatalf("unexpected error stepping (%v)", err)
		}
	}

	err := tm.mc.Step()
	test.ExpectedFailure(t, err)
	if !errors.Is(err, registers.ErrStackOverflow) {
		t.Errorf("expected stack overflow error (%v)", err)
	}
}

func TestReturnUnderflow(t *testing.T) {
	tm := newTestMachine(t, 0x00, 0xee)
	err := tm.mc.Step()
	test.ExpectedFailure(t, err)
	if !errors.Is(err, registers.ErrStackUnderflow) {
		t.Errorf("expected stack underflow error (%v)", err)
	}
}

func TestUnknownInstruction(t *testing.T) {
	// top nibble 0 with low bits that are neither 0x0e0 nor 0x0ee must be a
	// fatal decode error, never a skip or no-op
	tm := newTestMachine(t, 0x01, 0x23)
	err := tm.mc.Step()
	test.ExpectedFailure(t, err)
	if !errors.Is(err, instructions.ErrUnknown) {
		t.Errorf("expected unknown instruction error (%v)", err)
	}
}

func TestJumpOffset(t *testing.T) {
	// V0=4, jump 0x300+V0
	tm := newTestMachine(t, 0x60, 4, 0xb3, 0x00)
	tm.step(t, 2)
	test.Equate(t, tm.mc.PC.Address(), 0x304)
}

func TestRandomMask(t *testing.T) {
	// the random byte is ANDed with the immediate mask
	tm := newTestMachine(t, 0xc0, 0x0f, 0xc1, 0x00)
	tm.step(t, 2)
	test.Equate(t, tm.mc.V[0x0].Value()&0xf0, 0)
	test.Equate(t, tm.mc.V[0x1].Value(), 0)
}

func TestGlyphAddress(t *testing.T) {
	// glyph address for Vx=10 is 50
	tm := newTestMachine(t, 0x60, 10, 0xf0, 0x29)
	tm.step(t, 2)
	test.Equate(t, tm.mc.Index.Address(), 50)
}

func TestStoreDecimal(t *testing.T) {
	// V0=234 decomposed at I=0x400
	tm := newTestMachine(t, 0x60, 234, 0xa4, 0x00, 0xf0, 0x33)
	tm.step(t, 3)
	test.Equate(t, tm.mem.Read(0x400), 2)
	test.Equate(t, tm.mem.Read(0x401), 3)
	test.Equate(t, tm.mem.Read(0x402), 4)
}

func TestStoreLoadRegisters(t *testing.T) {
	// store V0..V2 at I=0x400, clobber them, load them back
	tm := newTestMachine(t,
		0x60, 11, 0x61, 22, 0x62, 33, // V0..V2
		0xa4, 0x00, // I=0x400
		0xf2, 0x55, // store V0..V2
		0x60, 0, 0x61, 0, 0x62, 0, // clobber
		0xf2, 0x65, // load V0..V2
	)

	tm.step(t, 5)
	test.Equate(t, tm.mem.Read(0x400), 11)
	test.Equate(t, tm.mem.Read(0x401), 22)
	test.Equate(t, tm.mem.Read(0x402), 33)

	tm.step(t, 4)
	test.Equate(t, tm.mc.V[0x0].Value(), 11)
	test.Equate(t, tm.mc.V[0x1].Value(), 22)
	test.Equate(t, tm.mc.V[0x2].Value(), 33)
}

func TestTimerInstructions(t *testing.T) {
	// V0=9, delay=V0, V1=delay, sound=V0
	tm := newTestMachine(t, 0x60, 9, 0xf0, 0x15, 0xf1, 0x07, 0xf0, 0x18)
	tm.step(t, 4)
	test.Equate(t, tm.delay.Value(), 9)
	test.Equate(t, tm.mc.V[0x1].Value(), 9)
	test.Equate(t, tm.sound.Value(), 9)
}

func TestSkipOnKey(t *testing.T) {
	// V0=5; skip-if-pressed V0 with key 5 down
	tm := newTestMachine(t,
		0x60, 5, // 0x200 V0=5
		0xe0, 0x9e, // 0x202 skip if key 5 pressed
		0x1f, 0xff, // 0x204 jump (skipped)
		0xe0, 0xa1, // 0x206 skip if key 5 not pressed (no skip)
		0x61, 1, // 0x208 V1=1
	)

	tm.pad.Update(0x0020) // key 5 down
	tm.step(t, 4)
	test.Equate(t, tm.mc.V[0x1].Value(), 1)
}

func TestWaitForKeySuspends(t *testing.T) {
	tm := newTestMachine(t,
		0xf3, 0x0a, // 0x200 wait for key into V3
		0x60, 1, // 0x202 V0=1
	)

	tm.step(t, 1)
	test.Equate(t, tm.pad.Waiting(), true)

	// while waiting, stepping does not fetch or execute
	pc := tm.mc.PC.Address()
	tm.step(t, 10)
	test.Equate(t, tm.mc.PC.Address(), pc)
	test.Equate(t, tm.mc.V[0x0].Value(), 0)
}

func TestDrawCollisionAndWrap(t *testing.T) {
	// a one row sprite of all eight pixels, drawn from the font table area.
	// glyph 0 row 0 is 0xf0
	tm := newTestMachine(t,
		0x60, 59, 0x61, 0, // V0=59 V1=0
		0xa0, 0x00, // I=0 (first font row, 0xf0)
		0xd0, 0x11, // draw 1 row at (59,0)
		0xd0, 0x11, // draw again at the same spot
	)

	tm.step(t, 4)

	// the leftmost sprite pixel lands at x=59 and the remaining lit pixels
	// wrap to the left edge
	test.Equate(t, tm.fb.PixelStatus(59, 0), true)
	test.Equate(t, tm.fb.PixelStatus(0, 0), true)
	test.Equate(t, tm.fb.PixelStatus(1, 0), true)
	test.Equate(t, tm.fb.PixelStatus(2, 0), true)
	test.Equate(t, tm.fb.PixelStatus(3, 0), false) // 0xf0 has four lit pixels
	test.Equate(t, tm.mc.V[cpu.Flag].Value(), 0)

	// drawing the identical sprite again clears every touched pixel and
	// reports the collision
	tm.step(t, 1)
	test.Equate(t, tm.fb.PixelStatus(59, 0), false)
	test.Equate(t, tm.fb.PixelStatus(0, 0), false)
	test.Equate(t, tm.fb.PixelStatus(1, 0), false)
	test.Equate(t, tm.fb.PixelStatus(2, 0), false)
	test.Equate(t, tm.mc.V[cpu.Flag].Value(), 1)
}

func TestDrawVerticalWrap(t *testing.T) {
	// drawing two rows starting on the bottom row wraps the second row to
	// the top
	tm := newTestMachine(t,
		0x60, 0, 0x61, 59, // V0=0 V1=59
		0xa0, 0x00, // I=0 (font rows 0xf0, 0x90)
		0xd0, 0x12, // draw 2 rows at (0,59)
	)

	tm.step(t, 4)
	test.Equate(t, tm.fb.PixelStatus(0, 59), true)
	test.Equate(t, tm.fb.PixelStatus(0, 0), true)
}

func TestAddIndex(t *testing.T) {
	// index arithmetic is masked to 12 bits
	tm := newTestMachine(t,
		0xaf, 0xff, // I=0xfff
		0x60, 2, // V0=2
		0xf0, 0x1e, // I+=V0
	)
	tm.step(t, 3)
	test.Equate(t, tm.mc.Index.Address(), 0x001)
}
