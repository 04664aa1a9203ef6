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

// Package playmode runs a loaded machine against the SDL frontend. Once per
// frame: a batch of instructions is executed and the timers ticked, the
// framebuffer is presented, the beep serviced and the hexpad updated from
// the keyboard.
package playmode

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/hexlab/chirp8/gui"
	"github.com/hexlab/chirp8/gui/sdlplay"
	"github.com/hexlab/chirp8/hardware"
	"github.com/hexlab/chirp8/logger"
	"github.com/hexlab/chirp8/romloader"
	"github.com/hexlab/chirp8/wavwriter"
)

// Play sets the machine running - without any debugging features. It returns
// when the window is closed, on interrupt, or when a fatal machine error
// halts execution.
//
// MUST ONLY be called from the #mainthread
func Play(cartload romloader.Loader, scaling float32, batchSize int, wavFile string) error {
	err := cartload.Load()
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	vm, err := hardware.NewVM(cartload.Data)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	var mixer gui.AudioMixer
	if wavFile != "" {
		aw := wavwriter.New(wavFile, sdlplay.SampleFreq)
		mixer = aw
		defer func() {
			if err := aw.EndMixing(); err != nil {
				logger.Logf(logger.Allow, "playmode", "%v", err)
			}
		}()
	}

	scr, err := sdlplay.NewSdlPlay(scaling, mixer)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}
	defer scr.Destroy()

	// we need to make sure we call the deferred EndMixing() even when ctrl-c
	// is pressed. redirect interrupt signal to an os.Signal channel
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	for !scr.Quit() {
		select {
		case <-intChan:
			return nil
		default:
		}

		// window/keyboard events and frame pacing
		scr.Service()

		if err := vm.StepBatch(batchSize); err != nil {
			return fmt.Errorf("playmode: %w", err)
		}

		if err := scr.Render(vm.Framebuffer()); err != nil {
			return fmt.Errorf("playmode: %w", err)
		}

		if err := scr.SetBeep(vm.Sound.Active()); err != nil {
			return fmt.Errorf("playmode: %w", err)
		}

		vm.UpdateHexpad(scr.HexpadState())
	}

	return nil
}
