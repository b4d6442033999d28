package bloom

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// World extent in flower units. The scene frames the flower with 250 units
// of stem room below the origin and 150 above.
const (
	worldMinX = -200.0
	worldMaxX = 200.0
	worldMinY = -250.0
	worldMaxY = 150.0
)

// Curve fidelity in chords per segment.
const (
	quadSegments = 16 // petal quadratic edges
	leafSegments = 32
	diskSegments = 48
)

// labelMargin is the gap in pixels between the caption and the canvas bottom.
const labelMargin = 10.0

// Renderer draws an Illustration onto an ebiten image. It owns the world to
// screen mapping, the text faces, and scratch geometry buffers that grow to
// a high-water mark and are reused every frame.
type Renderer struct {
	width  int
	height int
	scale  float64
	view   [6]float64 // flower space (y-up) to screen space (y-down)

	titleFace *text.GoTextFace
	labelFace *text.GoTextFace

	verts   []ebiten.Vertex
	inds    []uint16
	outline []Vec2
}

// NewRenderer creates a renderer for a canvas of the given pixel size. The
// world is fit with a uniform scale and centered; the embedded Go Regular
// face is loaded for the title and caption.
func NewRenderer(width, height int) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	r := &Renderer{width: width, height: height}
	r.scale, r.view = fitWorld(width, height)
	r.titleFace = &text.GoTextFace{Source: src, Size: titleFontSize * r.scale}
	r.labelFace = &text.GoTextFace{Source: src, Size: labelFontSize * r.scale}
	return r, nil
}

// fitWorld computes the uniform world scale and the view affine mapping
// flower space to screen space for a canvas of the given size.
func fitWorld(width, height int) (float64, [6]float64) {
	spanX := worldMaxX - worldMinX
	spanY := worldMaxY - worldMinY
	scale := float64(width) / spanX
	if s := float64(height) / spanY; s < scale {
		scale = s
	}
	// World x is symmetric about 0; center the y span vertically.
	originX := float64(width) / 2
	originY := (float64(height)-scale*spanY)/2 + scale*worldMaxY
	return scale, [6]float64{scale, 0, 0, -scale, originX, originY}
}

// Draw renders one frame. Layering follows the scene's stacking: background,
// then the filled shapes in creation order (center, petals, leaves), the
// stem line above them, and text on top.
func (r *Renderer) Draw(screen *ebiten.Image, il *Illustration) {
	screen.Fill(ColorBackground.toRGBA())

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	if il.centerOpacity > 0 {
		r.outline = DiskOutline(r.outline[:0], Vec2{}, centerRadius, diskSegments)
		r.verts, r.inds = appendFan(r.verts, r.inds, r.outline, r.view, ColorCenter.WithAlpha(il.centerOpacity))
	}

	for i := range il.petals {
		p := &il.petals[i]
		if p.opacity <= 0 {
			continue
		}
		r.outline = p.outline.Flatten(r.outline[:0], quadSegments)
		r.verts, r.inds = appendFan(r.verts, r.inds, r.outline, r.view, p.Color.WithAlpha(p.opacity))
	}

	for i := range il.leaves {
		l := &il.leaves[i]
		if l.opacity <= 0 || l.width <= 0 {
			continue
		}
		r.outline = LeafOutline(r.outline[:0], l.center, l.width, l.height, l.Tilt(), leafSegments)
		r.verts, r.inds = appendFan(r.verts, r.inds, r.outline, r.view, ColorLeaf.WithAlpha(l.opacity))
	}

	if len(r.inds) > 0 {
		var op ebiten.DrawTrianglesOptions
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		screen.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &op)
	}

	if il.stemVisible {
		x0, y0 := transformPoint(r.view, 0, stemTop)
		x1, y1 := transformPoint(r.view, 0, stemBottom)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), stemStrokeWidth, ColorStem.toRGBA(), true)
	}

	r.drawTitle(screen, il)
	r.drawLabel(screen, il)
}

// drawTitle draws the fading, gently drifting headline above the flower.
func (r *Renderer) drawTitle(screen *ebiten.Image, il *Illustration) {
	if il.titleOpacity <= 0 {
		return
	}
	x, y := transformPoint(r.view, il.titleSway, titleY)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(ColorTitle.toRGBA())
	op.ColorScale.ScaleAlpha(float32(il.titleOpacity))
	text.Draw(screen, Title, r.titleFace, op)
}

// drawLabel draws the phase caption centered near the canvas bottom.
func (r *Renderer) drawLabel(screen *ebiten.Image, il *Illustration) {
	if il.labelOpacity <= 0 || il.labelCaption == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.width)/2, float64(r.height)-labelMargin)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	op.ColorScale.ScaleWithColor(ColorLabel.toRGBA())
	op.ColorScale.ScaleAlpha(float32(il.labelOpacity))
	text.Draw(screen, il.labelCaption, r.labelFace, op)
}
