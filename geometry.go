package bloom

import "math"

// --- Affine transforms ---

// identityAffine is the identity affine matrix.
var identityAffine = [6]float64{1, 0, 0, 1, 0, 0}

// rotationAffine returns the affine matrix rotating points by angle radians
// about the origin (counter-clockwise in flower space).
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func rotationAffine(angle float64) [6]float64 {
	sin, cos := math.Sincos(angle)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// --- Path ---

// PathVerb tags one segment of a Path.
type PathVerb uint8

const (
	VerbMoveTo PathVerb = iota // one point: start the contour
	VerbLineTo                 // one point: straight segment to it
	VerbQuadTo                 // two points: quadratic control, then end
	VerbClose                  // no points: close the contour
)

// Path is an ordered sequence of 2D points plus segment verbs describing a
// closed silhouette. Points are consumed by verbs in order: MoveTo and
// LineTo take one point, QuadTo takes two (control, end), Close takes none.
type Path struct {
	Verbs  []PathVerb
	Points []Vec2
}

// Reset empties the path while keeping its backing storage, so per-frame
// regeneration does not allocate once the buffers reach their final size.
func (p *Path) Reset() {
	p.Verbs = p.Verbs[:0]
	p.Points = p.Points[:0]
}

// MoveTo starts the contour at pt.
func (p *Path) MoveTo(pt Vec2) {
	p.Verbs = append(p.Verbs, VerbMoveTo)
	p.Points = append(p.Points, pt)
}

// LineTo adds a straight segment to pt.
func (p *Path) LineTo(pt Vec2) {
	p.Verbs = append(p.Verbs, VerbLineTo)
	p.Points = append(p.Points, pt)
}

// QuadTo adds a quadratic Bézier segment through control ctrl ending at pt.
func (p *Path) QuadTo(ctrl, pt Vec2) {
	p.Verbs = append(p.Verbs, VerbQuadTo)
	p.Points = append(p.Points, ctrl, pt)
}

// Close closes the contour back to the MoveTo point.
func (p *Path) Close() {
	p.Verbs = append(p.Verbs, VerbClose)
}

// Flatten appends a polygon approximation of the path to dst and returns it.
// Quadratic segments are subdivided into quadSegments chords using the
// standard Bézier evaluation u*u*a + 2*u*t*c + t*t*b. The closing edge is
// implicit: the last point is not repeated.
func (p *Path) Flatten(dst []Vec2, quadSegments int) []Vec2 {
	if quadSegments < 1 {
		quadSegments = 1
	}
	var cur Vec2
	pi := 0
	for _, verb := range p.Verbs {
		switch verb {
		case VerbMoveTo, VerbLineTo:
			cur = p.Points[pi]
			pi++
			dst = append(dst, cur)
		case VerbQuadTo:
			a := cur
			c := p.Points[pi]
			b := p.Points[pi+1]
			pi += 2
			for i := 1; i <= quadSegments; i++ {
				t := float64(i) / float64(quadSegments)
				u := 1 - t
				dst = append(dst, Vec2{
					X: u*u*a.X + 2*u*t*c.X + t*t*b.X,
					Y: u*u*a.Y + 2*u*t*c.Y + t*t*b.Y,
				})
			}
			cur = b
		case VerbClose:
			// Fan triangulation closes the polygon implicitly.
		}
	}
	return dst
}

// --- Outline builders ---

// PetalOutline rebuilds dst as the closed silhouette of one petal, reusing
// its storage. The petal grows from center along the axis at baseAngle +
// extraRotation radians: a base-left point, a quadratic through the left
// bulge control (width/2 perpendicular at mid-length) to the tip at
// length*tipExtension, a quadratic back through the right bulge to the
// base-right point, closed. The base points sit baseTaper*width to either
// side, keeping the silhouette convex. Degenerates to a zero-area path at
// length = width = 0, the invisible pre-bloom state.
func PetalOutline(dst *Path, center Vec2, baseAngle, length, width, extraRotation float64) {
	dst.Reset()

	sin, cos := math.Sincos(baseAngle + extraRotation)
	// Axis and perpendicular-left unit vectors.
	ax, ay := cos, sin
	px, py := -sin, cos

	half := width * baseTaper
	midX := center.X + ax*length*0.5
	midY := center.Y + ay*length*0.5

	baseLeft := Vec2{X: center.X + px*half, Y: center.Y + py*half}
	baseRight := Vec2{X: center.X - px*half, Y: center.Y - py*half}
	bulgeLeft := Vec2{X: midX + px*width/2, Y: midY + py*width/2}
	bulgeRight := Vec2{X: midX - px*width/2, Y: midY - py*width/2}
	tip := Vec2{X: center.X + ax*length*tipExtension, Y: center.Y + ay*length*tipExtension}

	dst.MoveTo(baseLeft)
	dst.QuadTo(bulgeLeft, tip)
	dst.QuadTo(bulgeRight, baseRight)
	dst.Close()
}

// LeafOutline appends a closed polyline approximating a leaf to dst and
// returns it: an ellipse of the given full width and height, rotated by tilt
// radians about its center. The last point is not repeated.
func LeafOutline(dst []Vec2, center Vec2, width, height, tilt float64, segments int) []Vec2 {
	if segments < 3 {
		segments = 3
	}
	tsin, tcos := math.Sincos(tilt)
	rx := width / 2
	ry := height / 2
	for i := 0; i < segments; i++ {
		t := float64(i) / float64(segments) * 2 * math.Pi
		ex := rx * math.Cos(t)
		ey := ry * math.Sin(t)
		dst = append(dst, Vec2{
			X: center.X + ex*tcos - ey*tsin,
			Y: center.Y + ex*tsin + ey*tcos,
		})
	}
	return dst
}

// DiskOutline appends a regular polygon approximating a circle to dst and
// returns it. The last point is not repeated.
func DiskOutline(dst []Vec2, center Vec2, radius float64, segments int) []Vec2 {
	if segments < 3 {
		segments = 3
	}
	for i := 0; i < segments; i++ {
		t := float64(i) / float64(segments) * 2 * math.Pi
		sin, cos := math.Sincos(t)
		dst = append(dst, Vec2{X: center.X + radius*cos, Y: center.Y + radius*sin})
	}
	return dst
}
