package bloom

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshFrames is how often the overlay text is rebuilt. Half a second
// at the fixed tick rate keeps the readout legible.
const fpsRefreshFrames = FramesPerSecond / 2

// fpsOverlay is a debug readout in the top-left corner showing the measured
// frame and tick rates plus the current phase. It renders into its own small
// image so the text is only rebuilt when the readout refreshes.
type fpsOverlay struct {
	img    *ebiten.Image
	frames int
}

func newFPSOverlay() *fpsOverlay {
	// 100x48 is enough for "FPS: 60.0\nTPS: 30.0" and a phase name.
	o := &fpsOverlay{img: ebiten.NewImage(100, 48)}
	o.refresh(PhaseCenter)
	return o
}

func (o *fpsOverlay) refresh(p Phase) {
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s", ebiten.ActualFPS(), ebiten.ActualTPS(), p))
}

func (o *fpsOverlay) draw(screen *ebiten.Image, p Phase) {
	o.frames++
	if o.frames >= fpsRefreshFrames {
		o.frames = 0
		o.refresh(p)
	}
	screen.DrawImage(o.img, nil)
}
