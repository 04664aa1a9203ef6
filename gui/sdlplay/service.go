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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"
)

// the machine's sixteen hex keys laid out on the left-hand side of a
// standard keyboard:
//
//	1 2 3 4        1 2 3 c
//	q w e r   =>   4 5 6 d
//	a s d f        7 8 9 e
//	z x c v        a 0 b f
var keyMap = map[sdl.Keycode]int{
	sdl.K_1: 0x01, sdl.K_2: 0x02, sdl.K_3: 0x03, sdl.K_4: 0x0c,
	sdl.K_q: 0x04, sdl.K_w: 0x05, sdl.K_e: 0x06, sdl.K_r: 0x0d,
	sdl.K_a: 0x07, sdl.K_s: 0x08, sdl.K_d: 0x09, sdl.K_f: 0x0e,
	sdl.K_z: 0x0a, sdl.K_x: 0x00, sdl.K_c: 0x0b, sdl.K_v: 0x0f,
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. servicing just one
	// event per frame is not enough, queued events would take one frame or
	// longer to resolve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			if ev.Keysym.Sym == sdl.K_ESCAPE {
				scr.quit = true
				continue
			}

			if k, ok := keyMap[ev.Keysym.Sym]; ok {
				scr.keys[k] = ev.Type == sdl.KEYDOWN
			}
		}
	}

	// wait for frame limiter
	scr.lmtr.Wait()
}
