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

package video_test

import (
	"testing"

	"github.com/hexlab/chirp8/hardware/video"
	"github.com/hexlab/chirp8/test"
)

func TestFramebuffer(t *testing.T) {
	fb := video.NewFramebuffer()

	// all pixels start off
	test.Equate(t, fb.PixelStatus(0, 0), false)
	test.Equate(t, fb.PixelStatus(video.Width-1, video.Height-1), false)

	fb.SetPixel(10, 20, true)
	test.Equate(t, fb.PixelStatus(10, 20), true)

	fb.Clear()
	test.Equate(t, fb.PixelStatus(10, 20), false)
}

func TestComposite(t *testing.T) {
	fb := video.NewFramebuffer()

	// compositing onto an unlit pixel lights it without collision
	collision := fb.Composite(5, 5)
	test.Equate(t, collision, false)
	test.Equate(t, fb.PixelStatus(5, 5), true)

	// compositing again turns the pixel off and reports the collision
	collision = fb.Composite(5, 5)
	test.Equate(t, collision, true)
	test.Equate(t, fb.PixelStatus(5, 5), false)
}

func TestOutOfRange(t *testing.T) {
	fb := video.NewFramebuffer()

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for out of range coordinate")
		}
	}()
	fb.PixelStatus(video.Width, 0)
}
