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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. The play loop uses it to pace frames at the 60Hz rate the
// machine's timers assume.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFpsLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderFrame()
//	}
package limiter

import (
	"time"
)

// FpsLimiter will trigger at the requested number of frames per second.
type FpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
}

// NewFpsLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFpsLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Duration(float64(time.Second) / float64(framesPerSecond)),
		tick:            make(chan bool),
	}

	// run ticker concurrently. the sleep period is adjusted every iteration
	// to absorb the time spent delivering the previous tick
	go func() {
		adjustedSecondsPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedSecondsPerFrame)
			nt := time.Now()
			adjustedSecondsPerFrame -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim
}

// Wait will block until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}
