package bloom

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrEncoderUnavailable is returned by NewRecorder when no encoder is
// registered for the requested output format.
var ErrEncoderUnavailable = errors.New("encoder unavailable")

// Recording output formats accepted by NewRecorder.
const (
	FormatGIF = "gif" // a single animated GIF file
	FormatPNG = "png" // numbered PNG frames in a directory
)

// A Recorder captures rendered frames during playback. Capture is invoked at
// the end of every Draw with the finished frame; Done reports when enough
// frames have been taken; Close finalizes the output.
type Recorder interface {
	// Capture copies one finished frame. It cannot return an error because
	// it runs inside Draw; failures are reported by Close.
	Capture(screen *ebiten.Image)
	// Done reports whether the recorder has captured every frame it wants.
	Done() bool
	// Close finalizes the output and returns the first error encountered.
	Close() error
}

// NewRecorder creates a recorder for the given output format. path names the
// output file for FormatGIF and the output directory for FormatPNG.
func NewRecorder(format, path string) (Recorder, error) {
	switch format {
	case FormatGIF:
		return NewGIFRecorder(path), nil
	case FormatPNG:
		return NewPNGSequenceRecorder(path), nil
	}
	return nil, fmt.Errorf("format %q: %w", format, ErrEncoderUnavailable)
}

// --- GIF ---

// GIFRecorder accumulates paletted frames in memory and writes a single
// animated GIF on Close. One full playback at 480x480 holds a few hundred
// frames, so expect on the order of 100 MB of frame data before Close.
type GIFRecorder struct {
	path   string
	delay  int // per frame, in 1/100ths of a second
	limit  int
	frames int
	anim   gif.GIF
}

// NewGIFRecorder creates a recorder that writes an animated GIF to path,
// stopping after one full playback.
func NewGIFRecorder(path string) *GIFRecorder {
	return &GIFRecorder{
		path:  path,
		delay: 100 / FramesPerSecond,
		limit: TotalFrames,
	}
}

func (g *GIFRecorder) Capture(screen *ebiten.Image) {
	if g.Done() {
		return
	}
	src := readFrame(screen)
	frame := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, src.Bounds(), src, image.Point{})
	g.anim.Image = append(g.anim.Image, frame)
	g.anim.Delay = append(g.anim.Delay, g.delay)
	g.frames++
}

func (g *GIFRecorder) Done() bool {
	return g.frames >= g.limit
}

func (g *GIFRecorder) Close() error {
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("write %s: no frames captured", g.path)
	}
	f, err := os.Create(g.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", g.path, err)
	}
	if err := gif.EncodeAll(f, &g.anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", g.path, err)
	}
	return f.Close()
}

// --- PNG sequence ---

// PNGSequenceRecorder writes each captured frame as frame_NNNN.png under a
// directory, creating the directory on the first capture.
type PNGSequenceRecorder struct {
	dir    string
	limit  int
	frames int
	err    error
}

// NewPNGSequenceRecorder creates a recorder that writes numbered PNG frames
// into dir, stopping after one full playback.
func NewPNGSequenceRecorder(dir string) *PNGSequenceRecorder {
	return &PNGSequenceRecorder{dir: dir, limit: TotalFrames}
}

func (r *PNGSequenceRecorder) Capture(screen *ebiten.Image) {
	if r.err != nil || r.Done() {
		return
	}
	if r.frames == 0 {
		if err := os.MkdirAll(r.dir, 0o755); err != nil {
			r.fail(fmt.Errorf("mkdir %s: %w", r.dir, err))
			return
		}
	}
	img := readFrame(screen)
	path := filepath.Join(r.dir, fmt.Sprintf("frame_%04d.png", r.frames))
	if err := writePNG(path, img); err != nil {
		r.fail(err)
		return
	}
	r.frames++
}

func (r *PNGSequenceRecorder) Done() bool {
	return r.frames >= r.limit
}

func (r *PNGSequenceRecorder) Close() error {
	return r.err
}

// fail records the first error and logs it, since Capture itself cannot
// report one.
func (r *PNGSequenceRecorder) fail(err error) {
	if r.err == nil {
		r.err = err
	}
	log.Printf("bloom: record: %v", err)
}

// --- Frame capture ---

// readFrame copies the screen into a straight-alpha image.
func readFrame(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}

// unpremultiply converts premultiplied RGBA bytes, as returned by
// ReadPixels, to a straight-alpha NRGBA image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
