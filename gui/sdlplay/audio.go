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
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexlab/chirp8/gui"
)

// the play loop presents one frame per timer tick
const framesPerSecond = 60

// SampleFreq is the number of samples generated per second. the value is
// chosen so that a whole number of samples fits into a 60Hz frame.
const SampleFreq = 24000

const samplesPerFrame = SampleFreq / framesPerSecond

// the beep is a plain square wave. a period of 50 samples gives a 480Hz
// tone, a whole number of cycles per frame
const (
	tonePeriod = 50
	toneVolume = 40
)

// don't let queued audio accumulate beyond this point or the beep will lag
// behind the sound timer
const maxQueuedFrames = 4

type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer [samplesPerFrame]uint8
	phase  int

	// mixer receives a copy of every queued sample. may be nil
	mixer gui.AudioMixer
}

func newSound(mixer gui.AudioMixer) (*sound, error) {
	snd := &sound{mixer: mixer}

	spec := &sdl.AudioSpec{
		Freq:     SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(samplesPerFrame),
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	snd.spec = actualSpec

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

// service queues one frame's worth of samples: the square wave while the
// sound timer is active, silence otherwise. called once per frame.
func (snd *sound) service(beep bool) error {
	for i := range snd.buffer {
		v := snd.spec.Silence
		if beep {
			if snd.phase < tonePeriod/2 {
				v += toneVolume
			} else {
				v -= toneVolume
			}
			snd.phase = (snd.phase + 1) % tonePeriod
		} else {
			snd.phase = 0
		}
		snd.buffer[i] = v
	}

	if sdl.GetQueuedAudioSize(snd.id) > uint32(maxQueuedFrames*samplesPerFrame) {
		sdl.ClearQueuedAudio(snd.id)
	}

	if err := sdl.QueueAudio(snd.id, snd.buffer[:]); err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}

	if snd.mixer != nil {
		return snd.mixer.SetAudio(snd.buffer[:])
	}

	return nil
}

func (snd *sound) destroy() {
	sdl.CloseAudioDevice(snd.id)
}
