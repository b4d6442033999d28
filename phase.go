package bloom

// Phase identifies one stage of the illustration. Transitions are monotonic
// and one-directional; PhaseSway is terminal.
type Phase uint8

const (
	PhaseCenter     Phase = iota // center disk and title fade in
	PhasePetals                  // petals bloom one at a time, staggered
	PhaseStemLeaves              // stem appears, leaves unfurl in two waves
	PhaseSway                    // terminal: the whole flower sways
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseCenter:
		return "Center"
	case PhasePetals:
		return "Petals"
	case PhaseStemLeaves:
		return "StemLeaves"
	case PhaseSway:
		return "Sway"
	}
	return "Unknown"
}

// Caption returns the status line shown near the bottom of the canvas while
// the phase is active.
func (p Phase) Caption() string {
	switch p {
	case PhaseCenter:
		return "Center Appearing..."
	case PhasePetals:
		return "Petals Blooming..."
	case PhaseStemLeaves:
		return "Leaves Unfurling..."
	case PhaseSway:
		return "Flower Swaying..."
	}
	return ""
}

// swayLabelAlpha is the fixed caption opacity held through the sway phase.
const swayLabelAlpha = 0.7

// labelAlpha returns the caption opacity for the given phase-local frame.
// The center caption fades in once, holds, and clears; the petal and leaf
// captions pulse in a repeating triangle (up, down, dark); the sway caption
// holds faint and steady.
func labelAlpha(p Phase, frame int) float64 {
	switch p {
	case PhaseCenter:
		if frame >= 2*labelFadeFrames {
			return 0
		}
		return clamp01(float64(frame) / labelFadeFrames)
	case PhasePetals, PhaseStemLeaves:
		pr := float64(frame%(3*labelFadeFrames)) / labelFadeFrames
		if pr < 1 {
			return pr
		}
		if pr > 2 {
			return 0
		}
		return 2 - pr
	case PhaseSway:
		return swayLabelAlpha
	}
	return 0
}
