package bloom

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// --- Frame-unit progress ramp ---

// ramp is a linear progress tween measured in frames. The first Tick after
// creation reads 0 (the start frame contributes no elapsed time); each
// subsequent Tick advances one frame, so after k frames the value is
// min(k/duration, 1). Done latches once the duration has elapsed.
type ramp struct {
	tween *gween.Tween
	value float64
	done  bool
	fresh bool
}

// newRamp creates a ramp lasting the given number of frames.
func newRamp(frames int) *ramp {
	return &ramp{
		tween: gween.New(0, 1, float32(frames), ease.Linear),
		fresh: true,
	}
}

// Tick advances the ramp by one frame. Call exactly once per Step.
func (r *ramp) Tick() {
	if r.fresh {
		r.fresh = false
		return
	}
	if r.done {
		return
	}
	v, finished := r.tween.Update(1)
	r.value = float64(v)
	r.done = finished
}

// --- Petal ---

// Petal is one of the bloom's petals. BaseAngle and Color are fixed at
// construction; everything else is rewritten by Step while the petal blooms
// or sways.
type Petal struct {
	Index     int
	BaseAngle float64 // radians from +x in flower space
	Color     Color

	bloom   *ramp // nil until the launch scheduler starts this petal
	outline Path
	opacity float64
}

// Started reports whether the launch scheduler has started this petal's
// bloom. A nil ramp, not a zero frame number, encodes "not started", so a
// petal launched on frame 0 is unambiguous.
func (p *Petal) Started() bool { return p.bloom != nil }

// Progress returns the bloom progress in [0, 1], or 0 if not started.
func (p *Petal) Progress() float64 {
	if p.bloom == nil {
		return 0
	}
	return p.bloom.value
}

// Opacity returns the petal's current fill opacity in [0, 1].
func (p *Petal) Opacity() float64 { return p.opacity }

// Outline returns the petal's current silhouette. The path aliases internal
// storage and is rewritten by the next Step.
func (p *Petal) Outline() *Path { return &p.outline }

// --- Leaf ---

// LeafSide distinguishes the two columns of leaves along the stem.
type LeafSide uint8

const (
	LeafLeft  LeafSide = iota // unfurls first, tilts -30 degrees
	LeafRight                 // unfurls half a window later, tilts +30 degrees
)

// Leaf is one of the six stem leaves: three rows of left/right pairs.
type Leaf struct {
	Row  int
	Side LeafSide

	unfurl  *ramp // nil until the first frame matching this side's offset
	center  Vec2
	width   float64
	height  float64
	opacity float64
}

// Started reports whether this leaf has begun unfurling.
func (l *Leaf) Started() bool { return l.unfurl != nil }

// Progress returns the unfurl progress in [0, 1], or 0 if not started.
func (l *Leaf) Progress() float64 {
	if l.unfurl == nil {
		return 0
	}
	return l.unfurl.value
}

// Center returns the leaf's current position in flower space. It holds the
// resting stem offset until the sway phase rotates it about the origin.
func (l *Leaf) Center() Vec2 { return l.center }

// Width returns the leaf's current full width.
func (l *Leaf) Width() float64 { return l.width }

// Height returns the leaf's current full height, always leafAspect of the
// width.
func (l *Leaf) Height() float64 { return l.height }

// Opacity returns the leaf's current fill opacity in [0, 1].
func (l *Leaf) Opacity() float64 { return l.opacity }

// Tilt returns the leaf's fixed tilt in radians: left leaves lean one way,
// right leaves the other.
func (l *Leaf) Tilt() float64 {
	if l.Side == LeafLeft {
		return -leafTilt
	}
	return leafTilt
}

// triggerOffset is the frame offset within the repeating unfurl window at
// which this leaf starts.
func (l *Leaf) triggerOffset() int {
	if l.Side == LeafLeft {
		return 0
	}
	return leafStaggerFrames
}

// restOffset is the leaf's position while attached to the stem at rest.
func (l *Leaf) restOffset() Vec2 {
	x := leafOffsetX
	if l.Side == LeafLeft {
		x = -x
	}
	return Vec2{X: x, Y: leafRowY[l.Row]}
}

// swayArm is the offset rotated about the origin during the sway phase.
func (l *Leaf) swayArm() Vec2 {
	x := swaySideOffset
	if l.Side == LeafLeft {
		x = -x
	}
	return Vec2{X: x, Y: leafRowY[l.Row]}
}

// --- Illustration ---

// Illustration owns every animated entity of the flower and advances their
// visual state one frame per Step. All animation state lives in this struct;
// there is no package-level mutable state.
type Illustration struct {
	phase      Phase
	phaseFrame int     // frame index the next Step processes, resets per phase
	frame      int     // frames since construction, never reset
	swayAngle  float64 // accumulates swayStep every frame in every phase

	centerFade    *ramp // drives both center disk and title opacity
	centerOpacity float64
	titleOpacity  float64
	titleSway     float64 // horizontal title drift in flower units

	petals    [petalCount]Petal
	nextPetal int // index of the next petal the launch scheduler starts

	stemVisible bool
	leaves      [2 * leafPairs]Leaf

	labelCaption string
	labelOpacity float64
}

// NewIllustration creates the flower in its initial state: everything
// invisible, ready for the center fade.
func NewIllustration() *Illustration {
	il := &Illustration{
		centerFade: newRamp(centerFadeFrames),
	}

	palette := PetalPalette(petalCount)
	for i := range il.petals {
		p := &il.petals[i]
		p.Index = i
		p.BaseAngle = float64(i) * 2 * math.Pi / petalCount
		p.Color = palette[i]
		// Zero-area outline: the invisible pre-bloom state.
		PetalOutline(&p.outline, Vec2{}, p.BaseAngle, 0, 0, 0)
	}

	for i := range il.leaves {
		l := &il.leaves[i]
		l.Row = i / 2
		l.Side = LeafSide(i % 2)
		l.center = l.restOffset()
	}

	return il
}

// Phase returns the current phase.
func (il *Illustration) Phase() Phase { return il.phase }

// Frame returns the number of frames stepped since construction.
func (il *Illustration) Frame() int { return il.frame }

// PhaseFrame returns the phase-local frame index the next Step will process.
func (il *Illustration) PhaseFrame() int { return il.phaseFrame }

// SwayAngle returns the cumulative sway angle in radians.
func (il *Illustration) SwayAngle() float64 { return il.swayAngle }

// CenterOpacity returns the center disk's opacity in [0, 1].
func (il *Illustration) CenterOpacity() float64 { return il.centerOpacity }

// TitleOpacity returns the title text's opacity in [0, 1].
func (il *Illustration) TitleOpacity() float64 { return il.titleOpacity }

// TitleSway returns the title's current horizontal drift in flower units.
func (il *Illustration) TitleSway() float64 { return il.titleSway }

// StemVisible reports whether the stem has appeared.
func (il *Illustration) StemVisible() bool { return il.stemVisible }

// LabelCaption returns the caption currently shown at the bottom of the
// canvas, empty before the first Step.
func (il *Illustration) LabelCaption() string { return il.labelCaption }

// LabelOpacity returns the caption's current opacity in [0, 1].
func (il *Illustration) LabelOpacity() float64 { return il.labelOpacity }

// Petals returns the petals, aliased: the slice observes future Steps.
func (il *Illustration) Petals() []Petal { return il.petals[:] }

// Leaves returns the leaves, aliased: the slice observes future Steps.
func (il *Illustration) Leaves() []Leaf { return il.leaves[:] }

// Step advances the illustration by one frame. The run loop calls it once
// per tick; ticks arrive in increasing frame order. A transition takes
// effect on the following Step, so the phase-local counter restarts at 0.
func (il *Illustration) Step() {
	f := il.phaseFrame
	il.swayAngle += swayStep

	before := il.phase
	switch il.phase {
	case PhaseCenter:
		il.stepCenter(f)
	case PhasePetals:
		il.stepPetals(f)
	case PhaseStemLeaves:
		il.stepStemLeaves(f)
	case PhaseSway:
		il.stepSway()
	}

	// The caption reflects the phase that just ran, even on a transition
	// frame.
	il.labelCaption = before.Caption()
	il.labelOpacity = labelAlpha(before, f)

	il.frame++
	if il.phase != before {
		il.phaseFrame = 0
	} else {
		il.phaseFrame++
	}
}

// stepCenter ramps the center disk and title in, then waits out the
// inter-phase pause.
func (il *Illustration) stepCenter(f int) {
	il.centerFade.Tick()
	il.centerOpacity = il.centerFade.value
	il.titleOpacity = il.centerFade.value

	if f >= centerFadeFrames+phasePauseFrames {
		il.phase = PhasePetals
	}
}

// stepPetals launches one petal per stagger interval and grows every started
// petal. Leaves the phase on the first frame all twelve have finished.
func (il *Illustration) stepPetals(f int) {
	if f%bloomStaggerFrames == 0 && il.nextPetal < petalCount {
		il.petals[il.nextPetal].bloom = newRamp(bloomDurationFrames)
		il.nextPetal++
	}

	done := il.nextPetal == petalCount
	for i := range il.petals {
		p := &il.petals[i]
		if p.bloom == nil {
			continue
		}
		p.bloom.Tick()
		pr := p.bloom.value
		p.opacity = pr
		// Rebuilt from scratch every frame: scaled and twisted by progress.
		PetalOutline(&p.outline, Vec2{}, p.BaseAngle, petalLength*pr, petalWidth*pr, petalTwist*pr)
		if !p.bloom.done {
			done = false
		}
	}

	if done {
		il.phase = PhaseStemLeaves
	}
}

// stepStemLeaves shows the stem immediately, then unfurls the left and right
// leaf waves inside the repeating trigger window.
func (il *Illustration) stepStemLeaves(f int) {
	if f == 0 {
		il.stemVisible = true
	}

	done := true
	for i := range il.leaves {
		l := &il.leaves[i]
		if l.unfurl == nil {
			if f%leafUnfurlFrames != l.triggerOffset() {
				done = false
				continue
			}
			l.unfurl = newRamp(leafUnfurlFrames)
		}
		l.unfurl.Tick()
		pr := l.unfurl.value
		l.width = leafSize * pr
		l.height = l.width * leafAspect
		l.opacity = pr
		if !l.unfurl.done {
			done = false
		}
	}

	if done {
		il.phase = PhaseSway
	}
}

// stepSway rotates petal anchors and leaf arms about the origin by the
// accumulated sway angle and drifts the title. Terminal: never transitions.
func (il *Illustration) stepSway() {
	rot := rotationAffine(il.swayAngle)

	for i := range il.petals {
		p := &il.petals[i]
		// The petal's mid-length anchor orbits; its orientation stays fixed.
		ax := petalLength / 2 * math.Cos(p.BaseAngle)
		ay := petalLength / 2 * math.Sin(p.BaseAngle)
		x, y := transformPoint(rot, ax, ay)
		p.opacity = 1
		PetalOutline(&p.outline, Vec2{X: x, Y: y}, p.BaseAngle, petalLength, petalWidth, 0)
	}

	for i := range il.leaves {
		l := &il.leaves[i]
		arm := l.swayArm()
		x, y := transformPoint(rot, arm.X, arm.Y)
		l.center = Vec2{X: x, Y: y}
		l.width = leafSize
		l.height = leafSize * leafAspect
		l.opacity = 1
	}

	il.titleSway = math.Sin(2*il.swayAngle) * titleSwayAmplitude
}
