package bloom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec2(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, got.X, got.Y, want.X, want.Y)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- rotationAffine / transformPoint ---

func TestRotationAffineZero(t *testing.T) {
	assertMatrix(t, "rot0", rotationAffine(0), identityAffine)
}

func TestRotationAffineQuarterTurn(t *testing.T) {
	// CCW in flower space: (1,0) rotated 90° lands on (0,1).
	x, y := transformPoint(rotationAffine(math.Pi/2), 1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

func TestRotationAffineFullTurn(t *testing.T) {
	assertMatrix(t, "rot2pi", rotationAffine(2*math.Pi), rotationAffine(0))
}

func TestRotationAffinePreservesLength(t *testing.T) {
	for _, angle := range []float64{0.1, 1.0, 2.5, 5.0, 17.3} {
		x, y := transformPoint(rotationAffine(angle), 3, 4)
		assertNear(t, "radius", math.Hypot(x, y), 5)
	}
}

func TestTransformPointTranslation(t *testing.T) {
	m := [6]float64{1, 0, 0, 1, 10, 20}
	x, y := transformPoint(m, 1, 2)
	assertNear(t, "x", x, 11)
	assertNear(t, "y", y, 22)
}

func TestTransformPointFlipsY(t *testing.T) {
	// A view-style matrix with d < 0 maps world up to screen down.
	m := [6]float64{2, 0, 0, -2, 100, 200}
	x, y := transformPoint(m, 10, 5)
	assertNear(t, "x", x, 120)
	assertNear(t, "y", y, 190)
}

// --- Path ---

func TestPathVerbPointCounts(t *testing.T) {
	var p Path
	p.MoveTo(Vec2{X: 1})
	p.LineTo(Vec2{X: 2})
	p.QuadTo(Vec2{X: 3}, Vec2{X: 4})
	p.Close()

	if len(p.Verbs) != 4 {
		t.Fatalf("len(Verbs) = %d, want 4", len(p.Verbs))
	}
	if len(p.Points) != 4 {
		t.Fatalf("len(Points) = %d, want 4", len(p.Points))
	}
}

func TestPathResetKeepsStorage(t *testing.T) {
	var p Path
	p.MoveTo(Vec2{})
	p.QuadTo(Vec2{}, Vec2{})
	p.Close()

	verbCap, pointCap := cap(p.Verbs), cap(p.Points)
	p.Reset()

	if len(p.Verbs) != 0 || len(p.Points) != 0 {
		t.Errorf("after Reset: len = %d/%d, want 0/0", len(p.Verbs), len(p.Points))
	}
	if cap(p.Verbs) != verbCap || cap(p.Points) != pointCap {
		t.Errorf("after Reset: cap = %d/%d, want %d/%d", cap(p.Verbs), cap(p.Points), verbCap, pointCap)
	}
}

func TestFlattenPolyline(t *testing.T) {
	var p Path
	p.MoveTo(Vec2{0, 0})
	p.LineTo(Vec2{1, 0})
	p.LineTo(Vec2{1, 1})
	p.Close()

	pts := p.Flatten(nil, 8)
	if len(pts) != 3 {
		t.Fatalf("len = %d, want 3", len(pts))
	}
	assertVec2(t, "pts[0]", pts[0], Vec2{0, 0})
	assertVec2(t, "pts[2]", pts[2], Vec2{1, 1})
}

func TestFlattenQuad(t *testing.T) {
	a := Vec2{0, 0}
	c := Vec2{1, 2}
	b := Vec2{2, 0}

	var p Path
	p.MoveTo(a)
	p.QuadTo(c, b)

	pts := p.Flatten(nil, 4)
	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	// Endpoints are exact; the t=0.5 chord is (a + 2c + b)/4.
	assertVec2(t, "start", pts[0], a)
	assertVec2(t, "end", pts[4], b)
	assertVec2(t, "mid", pts[2], Vec2{X: 1, Y: 1})
}

func TestFlattenSegmentCountFloor(t *testing.T) {
	var p Path
	p.MoveTo(Vec2{})
	p.QuadTo(Vec2{1, 1}, Vec2{2, 0})

	pts := p.Flatten(nil, 0)
	// quadSegments below 1 is clamped to a single chord.
	if len(pts) != 2 {
		t.Fatalf("len = %d, want 2", len(pts))
	}
}

// --- PetalOutline ---

func TestPetalOutlineStructure(t *testing.T) {
	var p Path
	PetalOutline(&p, Vec2{}, 0, petalLength, petalWidth, 0)

	want := []PathVerb{VerbMoveTo, VerbQuadTo, VerbQuadTo, VerbClose}
	if len(p.Verbs) != len(want) {
		t.Fatalf("len(Verbs) = %d, want %d", len(p.Verbs), len(want))
	}
	for i, v := range want {
		if p.Verbs[i] != v {
			t.Errorf("Verbs[%d] = %d, want %d", i, p.Verbs[i], v)
		}
	}
	if len(p.Points) != 5 {
		t.Fatalf("len(Points) = %d, want 5", len(p.Points))
	}
}

func TestPetalOutlinePointsAlongXAxis(t *testing.T) {
	var p Path
	PetalOutline(&p, Vec2{}, 0, 50, 30, 0)

	// Base half-width 30*0.25 = 7.5, bulges at mid-length ±15, tip at 50*1.2.
	assertVec2(t, "baseLeft", p.Points[0], Vec2{X: 0, Y: 7.5})
	assertVec2(t, "bulgeLeft", p.Points[1], Vec2{X: 25, Y: 15})
	assertVec2(t, "tip", p.Points[2], Vec2{X: 60, Y: 0})
	assertVec2(t, "bulgeRight", p.Points[3], Vec2{X: 25, Y: -15})
	assertVec2(t, "baseRight", p.Points[4], Vec2{X: 0, Y: -7.5})
}

func TestPetalOutlineTipScalesWithLength(t *testing.T) {
	var p Path
	prev := -1.0
	for _, length := range []float64{0, 10, 25, 40, 50} {
		PetalOutline(&p, Vec2{}, 0, length, length*petalWidth/petalLength, 0)
		tip := p.Points[2]
		dist := math.Hypot(tip.X, tip.Y)
		assertNear(t, "tip distance", dist, length*tipExtension)
		if dist < prev {
			t.Errorf("tip distance %v shrank below %v at length %v", dist, prev, length)
		}
		prev = dist
	}
}

func TestPetalOutlineBaseAngle(t *testing.T) {
	var p Path
	PetalOutline(&p, Vec2{}, math.Pi/2, 50, 30, 0)
	assertVec2(t, "tip", p.Points[2], Vec2{X: 0, Y: 60})
}

func TestPetalOutlineExtraRotationAddsToBase(t *testing.T) {
	var a, b Path
	PetalOutline(&a, Vec2{}, math.Pi/3, 50, 30, math.Pi/6)
	PetalOutline(&b, Vec2{}, math.Pi/2, 50, 30, 0)
	for i := range a.Points {
		assertVec2(t, "point", a.Points[i], b.Points[i])
	}
}

func TestPetalOutlineOffsetCenter(t *testing.T) {
	var p Path
	PetalOutline(&p, Vec2{X: 10, Y: -20}, 0, 50, 30, 0)
	assertVec2(t, "tip", p.Points[2], Vec2{X: 70, Y: -20})
	assertVec2(t, "baseLeft", p.Points[0], Vec2{X: 10, Y: -12.5})
}

func TestPetalOutlineDegenerate(t *testing.T) {
	var p Path
	PetalOutline(&p, Vec2{}, 1.0, 0, 0, 0)
	for _, pt := range p.Points {
		assertVec2(t, "point", pt, Vec2{})
	}
}

func TestPetalOutlineReusesStorage(t *testing.T) {
	var p Path
	PetalOutline(&p, Vec2{}, 0, 50, 30, 0)
	verbCap, pointCap := cap(p.Verbs), cap(p.Points)

	PetalOutline(&p, Vec2{}, 1, 40, 20, 0.2)
	if cap(p.Verbs) != verbCap || cap(p.Points) != pointCap {
		t.Errorf("rebuild grew storage: cap %d/%d → %d/%d", verbCap, pointCap, cap(p.Verbs), cap(p.Points))
	}
}

// --- LeafOutline / DiskOutline ---

func TestLeafOutlineExtents(t *testing.T) {
	pts := LeafOutline(nil, Vec2{}, 30, 21, 0, 64)
	if len(pts) != 64 {
		t.Fatalf("len = %d, want 64", len(pts))
	}
	var maxX, maxY float64
	for _, p := range pts {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	// Segment count divisible by 4, so the axes are sampled exactly.
	assertNear(t, "maxX", maxX, 15)
	assertNear(t, "maxY", maxY, 10.5)
}

func TestLeafOutlineTiltSwapsExtents(t *testing.T) {
	pts := LeafOutline(nil, Vec2{}, 30, 21, math.Pi/2, 64)
	var maxX, maxY float64
	for _, p := range pts {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	assertNear(t, "maxX", maxX, 10.5)
	assertNear(t, "maxY", maxY, 15)
}

func TestLeafOutlineCentered(t *testing.T) {
	center := Vec2{X: -40, Y: -70}
	pts := LeafOutline(nil, center, 30, 21, -leafTilt, 32)
	var sum Vec2
	for _, p := range pts {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(pts))
	assertNear(t, "centroid.x", sum.X/n, center.X)
	assertNear(t, "centroid.y", sum.Y/n, center.Y)
}

func TestLeafOutlineMinSegments(t *testing.T) {
	pts := LeafOutline(nil, Vec2{}, 10, 7, 0, 1)
	if len(pts) != 3 {
		t.Fatalf("len = %d, want 3", len(pts))
	}
}

func TestDiskOutlineRadius(t *testing.T) {
	pts := DiskOutline(nil, Vec2{X: 5, Y: -3}, centerRadius, 48)
	if len(pts) != 48 {
		t.Fatalf("len = %d, want 48", len(pts))
	}
	for _, p := range pts {
		assertNear(t, "radius", math.Hypot(p.X-5, p.Y+3), centerRadius)
	}
}

func TestDiskOutlineDoesNotRepeatFirstPoint(t *testing.T) {
	pts := DiskOutline(nil, Vec2{}, 10, 16)
	first, last := pts[0], pts[len(pts)-1]
	if math.Abs(first.X-last.X) < epsilon && math.Abs(first.Y-last.Y) < epsilon {
		t.Error("last point duplicates the first; the closing edge is implicit")
	}
}

func TestOutlineAppendsToDst(t *testing.T) {
	dst := make([]Vec2, 0, 128)
	dst = DiskOutline(dst, Vec2{}, 10, 16)
	dst = LeafOutline(dst, Vec2{X: 40}, 30, 21, leafTilt, 32)
	if len(dst) != 48 {
		t.Fatalf("len = %d, want 48", len(dst))
	}
}

// --- Benchmarks ---

func BenchmarkPetalOutline(b *testing.B) {
	var p Path
	b.ReportAllocs()
	for b.Loop() {
		PetalOutline(&p, Vec2{}, 1.2, petalLength, petalWidth, 0.1)
	}
}

func BenchmarkFlattenPetal(b *testing.B) {
	var p Path
	PetalOutline(&p, Vec2{}, 1.2, petalLength, petalWidth, 0.1)
	buf := make([]Vec2, 0, 64)
	b.ReportAllocs()
	for b.Loop() {
		buf = p.Flatten(buf[:0], quadSegments)
	}
}

func BenchmarkLeafOutline(b *testing.B) {
	buf := make([]Vec2, 0, 64)
	b.ReportAllocs()
	for b.Loop() {
		buf = LeafOutline(buf[:0], Vec2{X: 40, Y: -10}, leafSize, leafSize*leafAspect, leafTilt, leafSegments)
	}
}
