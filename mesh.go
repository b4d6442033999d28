package bloom

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// appendFan appends a fan-triangulated convex polygon to the vertex and
// index lists and returns them. Each point is mapped through the view affine
// into screen space. The tint is premultiplied into the vertex colors, so
// shapes with different colors and opacities batch into a single
// DrawTriangles call against the shared white pixel.
//
// For N points: N vertices, 3*(N-2) indices.
func appendFan(verts []ebiten.Vertex, inds []uint16, pts []Vec2, view [6]float64, tint Color) ([]ebiten.Vertex, []uint16) {
	n := len(pts)
	if n < 3 {
		return verts, inds
	}

	base := uint16(len(verts))
	a, b, c, d, tx, ty := view[0], view[1], view[2], view[3], view[4], view[5]
	cr := float32(tint.R * tint.A)
	cg := float32(tint.G * tint.A)
	cb := float32(tint.B * tint.A)
	ca := float32(tint.A)

	for _, p := range pts {
		verts = append(verts, ebiten.Vertex{
			DstX: float32(a*p.X + c*p.Y + tx),
			DstY: float32(b*p.X + d*p.Y + ty),
			// Untextured: sample the center of the white pixel.
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 1; i < n-1; i++ {
		inds = append(inds, base, base+uint16(i), base+uint16(i+1))
	}
	return verts, inds
}

// --- White pixel singleton (no sync.Once - bloom is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used by
// all untextured fills. Lazy so that pure-logic tests never touch the GPU.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
