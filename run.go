package bloom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 480
	DefaultHeight = 480
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string // window title; defaults to Title
	Width   int    // canvas width in pixels; defaults to DefaultWidth
	Height  int    // canvas height in pixels; defaults to DefaultHeight
	ShowFPS bool   // draw the FPS/TPS overlay in the top-left corner

	// Recorder, when set, receives every rendered frame, and playback stops
	// once it reports done. Leave nil for an endless interactive window.
	Recorder Recorder
}

// Run opens a window and plays the illustration from the start until the
// window is closed or the configured recorder has captured a full playback.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Title == "" {
		cfg.Title = Title
	}

	r, err := NewRenderer(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	g := &game{
		il:       NewIllustration(),
		renderer: r,
		recorder: cfg.Recorder,
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(FramesPerSecond)

	err = ebiten.RunGame(g)
	if g.recorder != nil {
		if cerr := g.recorder.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// game adapts the illustration to the ebiten.Game interface.
type game struct {
	il       *Illustration
	renderer *Renderer
	recorder Recorder
	fps      *fpsOverlay
}

func (g *game) Update() error {
	if g.recorder != nil && g.recorder.Done() {
		return ebiten.Termination
	}
	g.il.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.il)
	// Capture before the overlay so recordings stay clean.
	if g.recorder != nil {
		g.recorder.Capture(screen)
	}
	if g.fps != nil {
		g.fps.draw(screen, g.il.Phase())
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.width, g.renderer.height
}
