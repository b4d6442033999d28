package bloom

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at vertex build time.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the
// API. Flower space is y-up with the flower origin at (0, 0); the renderer
// flips to screen space.
type Vec2 struct {
	X, Y float64
}

// WithAlpha returns the color with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts a bloom Color to a premultiplied 8-bit color.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image fills and text.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// --- Scene colors ---

// Fixed scene colors (CSS named values).
var (
	ColorBackground = Color{173.0 / 255, 216.0 / 255, 230.0 / 255, 1} // lightblue
	ColorCenter     = Color{255.0 / 255, 215.0 / 255, 0, 1}           // gold
	ColorStem       = Color{34.0 / 255, 139.0 / 255, 34.0 / 255, 1}   // forestgreen
	ColorLeaf       = Color{0, 100.0 / 255, 0, 1}                     // darkgreen
	ColorTitle      = Color{0, 0, 139.0 / 255, 1}                     // darkblue
	ColorLabel      = Color{0, 0, 0, 1}                               // black
)

// PetalPalette returns n evenly spaced opaque petal colors around the hue
// wheel at fixed saturation 0.9 and lightness 0.65, a vibrant cycle in the
// spirit of the husl palette.
func PetalPalette(n int) []Color {
	colors := make([]Color, n)
	for i := range colors {
		h := float64(i) / float64(n)
		r, g, b := hslToRGB(h, 0.9, 0.65)
		colors[i] = Color{r, g, b, 1}
	}
	return colors
}

// hslToRGB converts hue/saturation/lightness (all in [0,1]) to RGB.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	r = hueToRGB(p, q, h+1.0/3)
	g = hueToRGB(p, q, h)
	b = hueToRGB(p, q, h-1.0/3)
	return r, g, b
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// --- Animation parameters ---

// Title is the headline drawn above the flower. Run also uses it as the
// default window title.
const Title = "Animated Blooming Flower"

// FramesPerSecond is the fixed tick rate of the illustration. Run sets the
// ebiten TPS to this value, and recorders derive frame delays from it.
const FramesPerSecond = 30

// TotalFrames is the nominal length of one full playback: enough to finish
// every phase and idle in the sway for a while. Recorders stop after this
// many frames; the live window keeps swaying indefinitely.
const TotalFrames = 600

const (
	petalCount   = 12
	petalLength  = 50.0
	petalWidth   = 30.0
	petalTwist   = math.Pi / 12 // 15 degrees of twist at full bloom
	tipExtension = 1.2          // tip sits at length*tipExtension along the axis
	baseTaper    = 0.25         // petal base half-width as a fraction of width

	centerRadius = 25.0

	stemTop         = -centerRadius // stem starts at the center's lower edge
	stemBottom      = -220.0
	stemStrokeWidth = 10.0

	leafPairs      = 3
	leafSize       = 30.0 // target leaf width; height is leafAspect of this
	leafAspect     = 0.7
	leafOffsetX    = 40.0        // resting horizontal offset from the stem
	leafTilt       = math.Pi / 6 // left leaves tilt -30 degrees, right +30
	swaySideOffset = 50.0        // horizontal arm used when swaying leaves

	centerFadeFrames    = 40
	phasePauseFrames    = 20
	bloomDurationFrames = 40
	bloomStaggerFrames  = 20
	leafUnfurlFrames    = 20
	leafStaggerFrames   = 10
	labelFadeFrames     = 10

	swayStep           = 0.03 // radians added to the sway angle each frame
	titleSwayAmplitude = 5.0  // flower units of horizontal title drift

	titleY        = 120.0
	titleFontSize = 18.0
	labelFontSize = 12.0
)

// leafRowY lists the vertical anchor of each leaf pair along the stem.
var leafRowY = [leafPairs]float64{-70, -10, 60}
