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

package hardware

import (
	"github.com/hexlab/chirp8/hardware/cpu"
	"github.com/hexlab/chirp8/hardware/input"
	"github.com/hexlab/chirp8/hardware/memory"
	"github.com/hexlab/chirp8/hardware/timer"
	"github.com/hexlab/chirp8/hardware/video"
	"github.com/hexlab/chirp8/logger"
	"github.com/hexlab/chirp8/random"
)

// VM is the CHIP-8 machine: one live instance per emulated program, created
// at ROM load and driven until the process ends or a fatal error halts it.
type VM struct {
	CPU *cpu.CPU
	Mem *memory.Memory
	FB  *video.Framebuffer
	Pad *input.Hexpad

	Delay timer.Timer
	Sound timer.Timer

	Rnd *random.Random

	// a fatal error (decode error, stack overflow/underflow) ends processing
	// of this instance. the error is latched and returned by every
	// subsequent call to Step() and StepBatch()
	halted error
}

// NewVM creates a new CHIP-8 machine with the supplied program loaded and
// the program counter at the program origin. Fails if the program does not
// fit in memory; the error is reported before any instruction executes.
func NewVM(rom []byte) (*VM, error) {
	mem, err := memory.NewMemory(rom)
	if err != nil {
		return nil, err
	}

	vm := &VM{
		Mem:   mem,
		FB:    video.NewFramebuffer(),
		Pad:   input.NewHexpad(),
		Delay: timer.NewTimer("delay"),
		Sound: timer.NewTimer("sound"),
		Rnd:   random.NewRandom(),
	}
	vm.CPU = cpu.NewCPU(vm.Mem, vm.FB, vm.Pad, &vm.Delay, &vm.Sound, vm.Rnd)

	logger.Logf(logger.Allow, "vm", "created with %d byte program", len(rom))

	return vm, nil
}

// Step advances the machine by one instruction, or does nothing while a
// wait-for-key is outstanding.
func (vm *VM) Step() error {
	if vm.halted != nil {
		return vm.halted
	}

	if err := vm.CPU.Step(); err != nil {
		vm.halted = err
		logger.Logf(logger.Allow, "vm", "halted: %v", err)
		return err
	}

	return nil
}

// StepBatch runs Step() n times and then ticks both timers exactly once.
// Called once per presented frame it yields the conventional execution rate
// of n*60 instructions per second against 60Hz timers.
//
// An instruction is never partially executed: the batch stops at the first
// error and a batch run while waiting for a key is a safe no-op.
func (vm *VM) StepBatch(n int) error {
	for i := 0; i < n; i++ {
		if err := vm.Step(); err != nil {
			return err
		}
	}
	vm.TickTimers()
	return nil
}

// TickTimers decrements both timers by one, clamping at zero.
func (vm *VM) TickTimers() {
	vm.Delay.Tick()
	vm.Sound.Tick()
}

// Framebuffer returns the read-only view of the framebuffer for
// presentation.
func (vm *VM) Framebuffer() video.View {
	return vm.FB
}

// UpdateHexpad replaces the pressed-key latch from an ordered vector of key
// states, one entry per hex key. If the update resolves an outstanding
// wait-for-key the resolved key index is written to the waiting register.
func (vm *VM) UpdateHexpad(keys [input.NumKeys]bool) {
	var bitmap uint16
	for i, pressed := range keys {
		if pressed {
			bitmap |= 1 << i
		}
	}

	if res, ok := vm.Pad.Update(bitmap); ok {
		vm.CPU.V[res.Register].Load(uint8(res.Key))
	}
}

// Halted returns the latched fatal error, or nil while the machine is
// healthy.
func (vm *VM) Halted() error {
	return vm.halted
}
