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

// Package gui defines the operations the play loop performs on a frontend.
// Frontend implementations live in the sub-packages.
package gui

import (
	"github.com/hexlab/chirp8/hardware/input"
	"github.com/hexlab/chirp8/hardware/video"
)

// GUI defines the operations that can be performed on visual user
// interfaces.
type GUI interface {
	// Service processes pending window and keyboard events and paces the
	// frame rate. Must be called once per frame from the main goroutine.
	Service()

	// Render presents the current state of the display.
	Render(view video.View) error

	// SetBeep queues one frame of the beep tone (or of silence).
	SetBeep(active bool) error

	// HexpadState returns the pressed state of every hex key.
	HexpadState() [input.NumKeys]bool

	// Quit returns true once the user has asked to close the window.
	Quit() bool

	// Destroy frees all frontend resources.
	Destroy()
}

// AudioMixer implementations receive a copy of every queued audio sample.
// Samples are unsigned 8bit PCM.
type AudioMixer interface {
	SetAudio(samples []uint8) error
	EndMixing() error
}
