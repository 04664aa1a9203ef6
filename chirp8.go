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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/hexlab/chirp8/logger"
	"github.com/hexlab/chirp8/playmode"
	"github.com/hexlab/chirp8/romloader"
	"github.com/hexlab/chirp8/statsview"
)

// SDL event handling and rendering must happen on the main OS thread
func init() {
	runtime.LockOSThread()
}

func main() {
	scaling := flag.Float64("scale", 8.0, "window scaling")
	batchSize := flag.Int("batch", 11, "instructions executed per 60Hz frame")
	wav := flag.String("wav", "", "record audio to wav file")
	log := flag.Bool("log", false, "echo debugging log to stdout")
	stats := flag.Bool("statsview", false, "run statsview server")

	flag.Parse()

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	if len(flag.Args()) != 1 {
		fmt.Println("* ROM file required")
		os.Exit(10)
	}

	cartload := romloader.NewLoader(flag.Arg(0))

	err := playmode.Play(cartload, float32(*scaling), *batchSize, *wav)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(20)
	}
}
