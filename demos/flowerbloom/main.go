// Flower Bloom — the animated flower in a window.
//
// Plays the full bloom cycle at 30 ticks per second: the center fades in,
// twelve petals open one by one, the stem and leaves unfurl, and the plant
// sways forever. Close the window to exit.
//
// Demonstrates: Run, RunConfig, and the FPS overlay.
package main

import (
	"log"

	"github.com/phanxgames/bloom"
)

func main() {
	if err := bloom.Run(bloom.RunConfig{ShowFPS: true}); err != nil {
		log.Fatal(err)
	}
}
