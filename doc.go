// Package bloom is a procedurally animated blooming-flower illustration for
// [Ebitengine].
//
// The flower assembles itself over a few hundred fixed-rate frames: the
// golden center fades in, twelve petals bloom one after another around it,
// the stem and three pairs of leaves unfurl, and finally the whole plant
// sways gently forever. Every shape is rebuilt from parameters each frame;
// there are no image assets.
//
// # Quick start
//
// The simplest way to play the illustration is [Run], which creates a
// window and game loop for you:
//
//	bloom.Run(bloom.RunConfig{ShowFPS: true})
//
// For full control, implement [ebiten.Game] yourself, advance an
// [Illustration] with [Illustration.Step] once per tick, and draw it with a
// [Renderer]:
//
//	type Game struct {
//		il *bloom.Illustration
//		r  *bloom.Renderer
//	}
//
//	func (g *Game) Update() error        { g.il.Step(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.r.Draw(s, g.il) }
//
// # Phases
//
// Playback walks a one-way chain of [Phase] values: [PhaseCenter],
// [PhasePetals], [PhaseStemLeaves], then [PhaseSway], which never ends. A
// caption at the bottom of the canvas names the running phase; its opacity
// follows a per-phase cadence.
//
// # Coordinates
//
// Illustration state lives in flower space: y grows upward and the flower
// center sits at the origin. Petal and leaf geometry, sway offsets, and the
// title position are all expressed in these units. [Renderer] maps flower
// space to the pixel grid with a uniform scale and a y flip.
//
// # Recording
//
// A [Recorder] passed in [RunConfig] captures every rendered frame and ends
// playback after one full cycle. [NewGIFRecorder] writes a single animated
// GIF, [NewPNGSequenceRecorder] writes numbered PNG frames, and
// [NewRecorder] picks by format name, returning [ErrEncoderUnavailable] for
// formats it does not know.
//
// # Concurrency
//
// The package assumes the single-threaded ebiten game loop. An
// [Illustration] and a [Renderer] must not be shared across goroutines.
//
// [Ebitengine]: https://ebitengine.org
package bloom
