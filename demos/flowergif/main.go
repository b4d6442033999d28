// Flower GIF — records one full bloom cycle to an animated GIF.
//
// Opens the same window as the flowerbloom demo, captures every rendered
// frame, and exits once a full playback has been written to
// flower_bloom.gif in the working directory.
//
// Demonstrates: NewGIFRecorder and recorder-driven shutdown.
package main

import (
	"log"

	"github.com/phanxgames/bloom"
)

const outputPath = "flower_bloom.gif"

func main() {
	rec := bloom.NewGIFRecorder(outputPath)
	if err := bloom.Run(bloom.RunConfig{Recorder: rec}); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", outputPath)
}
