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

// Package video implements the framebuffer of the CHIP-8 machine: a fixed
// grid of binary pixels. Sprites are composited onto the grid with XOR and
// the only externally observable signal of that compositing, besides the
// pixels themselves, is the collision condition - a previously lit pixel
// being turned off.
//
// The framebuffer knows nothing of presentation. Frontends read pixels
// through the View interface and are responsible for scaling and colour.
package video

import "fmt"

// Dimensions of the pixel grid.
const (
	Width  = 60
	Height = 60
)

// View is the read-only access to the framebuffer given to frontends.
type View interface {
	PixelStatus(x, y int) bool
}

// Framebuffer is the fixed grid of binary pixels.
type Framebuffer struct {
	pixels [Width * Height]bool
}

// NewFramebuffer creates a new framebuffer with every pixel off.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// all callers derive coordinates by wrapping modulo Width/Height before
// calling into the framebuffer. an out of range coordinate can only mean a
// bug in this program, never in the running CHIP-8 program.
func (fb *Framebuffer) offset(x, y int) int {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		panic(fmt.Sprintf("framebuffer: pixel coordinate out of range (%d, %d)", x, y))
	}
	return y*Width + x
}

// PixelStatus returns whether the pixel at (x, y) is lit. Coordinates must
// satisfy x < Width and y < Height.
func (fb *Framebuffer) PixelStatus(x, y int) bool {
	return fb.pixels[fb.offset(x, y)]
}

// SetPixel sets the pixel at (x, y). Coordinates must satisfy x < Width and
// y < Height.
func (fb *Framebuffer) SetPixel(x, y int, status bool) {
	fb.pixels[fb.offset(x, y)] = status
}

// Composite XORs a lit sprite bit onto the pixel at (x, y), toggling it.
// Returns true if the pixel was turned off by the toggle - the collision
// condition.
func (fb *Framebuffer) Composite(x, y int) bool {
	o := fb.offset(x, y)
	collision := fb.pixels[o]
	fb.pixels[o] = !fb.pixels[o]
	return collision
}

// Clear turns every pixel off.
func (fb *Framebuffer) Clear() {
	fb.pixels = [Width * Height]bool{}
}
