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

// Package sdlplay is a simple SDL implementation of the gui.GUI interface.
package sdlplay

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexlab/chirp8/gui"
	"github.com/hexlab/chirp8/hardware/input"
	"github.com/hexlab/chirp8/hardware/video"
	"github.com/hexlab/chirp8/logger"
	"github.com/hexlab/chirp8/performance/limiter"
)

const windowTitle = "chirp8"

const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// limit screen updates to the fixed 60Hz rate the machine assumes
	lmtr *limiter.FpsLimiter

	// all audio is handled by the sound type
	snd *sound

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer. the texture is the same size as the display; scaling
	// to the window happens in the renderer copy
	pixels []byte

	// current state of the hex keys, updated by Service()
	keys [input.NumKeys]bool

	quit bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The mixer receives a copy of all queued audio and may be nil.
func NewSdlPlay(scale float32, mixer gui.AudioMixer) (*SdlPlay, error) {
	scr := &SdlPlay{}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	winW := int32(float32(video.Width) * scale)
	winH := int32(float32(video.Height) * scale)

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		winW, winH,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// texture is applied to the renderer to show the image. we copy the
	// pixels to it on every Render()
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		video.Width, video.Height)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.pixels = make([]byte, video.Width*video.Height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	// initialise the sound system
	scr.snd, err = newSound(mixer)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.lmtr = limiter.NewFpsLimiter(framesPerSecond)

	logger.Logf(logger.Allow, "sdlplay", "window %dx%d (scale %.1f)", winW, winH, scale)

	return scr, nil
}

// Render implements the gui.GUI interface.
func (scr *SdlPlay) Render(view video.View) error {
	i := 0
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			var c byte
			if view.PixelStatus(x, y) {
				c = 255
			}
			scr.pixels[i] = c
			scr.pixels[i+1] = c
			scr.pixels[i+2] = c
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, video.Width*pixelDepth)
	if err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer.Present()

	return nil
}

// SetBeep implements the gui.GUI interface.
func (scr *SdlPlay) SetBeep(active bool) error {
	return scr.snd.service(active)
}

// HexpadState implements the gui.GUI interface.
func (scr *SdlPlay) HexpadState() [input.NumKeys]bool {
	return scr.keys
}

// Quit implements the gui.GUI interface.
func (scr *SdlPlay) Quit() bool {
	return scr.quit
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	scr.snd.destroy()

	if err := scr.texture.Destroy(); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
	}
	if err := scr.renderer.Destroy(); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
	}
	if err := scr.window.Destroy(); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
	}

	sdl.Quit()
}
