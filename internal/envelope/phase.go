package envelope

// Phase is the current point of a card's open/close sequence.
type Phase int

const (
	PhaseClosed          Phase = iota // Front face up, nothing running.
	PhaseOpeningFlip                  // Card rotating to its back face.
	PhaseOpeningFlap                  // Flap lifting.
	PhaseOpeningContents              // Folded paper sliding out.
	PhaseOpeningExpand                // Paper grown into the overlay; settling.
	PhaseOpen                         // Overlay shown, nothing running.
	PhaseClosingContents              // Overlay gone, paper back in the envelope.
	PhaseClosingFlap                  // Paper tucked away, flap closing.
	PhaseClosingFlip                  // Card rotating back to its front face.
)

var phaseNames = [...]string{
	PhaseClosed:          "closed",
	PhaseOpeningFlip:     "opening-flip",
	PhaseOpeningFlap:     "opening-flap",
	PhaseOpeningContents: "opening-contents",
	PhaseOpeningExpand:   "opening-expand",
	PhaseOpen:            "open",
	PhaseClosingContents: "closing-contents",
	PhaseClosingFlap:     "closing-flap",
	PhaseClosingFlip:     "closing-flip",
}

// String returns a human-readable label for the phase.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Transitioning reports whether a sequence is in flight.
func (p Phase) Transitioning() bool {
	return p != PhaseClosed && p != PhaseOpen
}

// Direction returns which sequence the phase belongs to.
// Closed and Open are at rest and report DirectionNone.
func (p Phase) Direction() Direction {
	switch p {
	case PhaseOpeningFlip, PhaseOpeningFlap, PhaseOpeningContents, PhaseOpeningExpand:
		return DirectionOpening
	case PhaseClosingContents, PhaseClosingFlap, PhaseClosingFlip:
		return DirectionClosing
	default:
		return DirectionNone
	}
}

// Vector returns the phase as the five booleans the renderer reads.
func (p Phase) Vector() Vector {
	v := Vector{Transitioning: p.Transitioning()}
	switch p {
	case PhaseOpeningFlip, PhaseClosingFlip:
		v.Flipped = true
	case PhaseOpeningFlap, PhaseClosingFlap:
		v.Flipped, v.FlapOpen = true, true
	case PhaseOpeningContents, PhaseClosingContents:
		v.Flipped, v.FlapOpen, v.ContentsVisible = true, true, true
	case PhaseOpeningExpand, PhaseOpen:
		v.Flipped, v.FlapOpen, v.ContentsVisible, v.ContentsExpanded = true, true, true, true
	}
	return v
}

// Direction distinguishes the opening sequence from the closing one.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionOpening
	DirectionClosing
)

// String returns a human-readable label for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionOpening:
		return "open"
	case DirectionClosing:
		return "close"
	default:
		return "none"
	}
}

// Vector is the progress of a sequence as independent flags.
type Vector struct {
	Flipped          bool // back face showing
	FlapOpen         bool
	ContentsVisible  bool // paper visible inside the envelope
	ContentsExpanded bool // paper shown as the full-screen overlay
	Transitioning    bool
}

// Rank counts the raised phase flags. Opening raises them one at a time in
// order; closing lowers them in reverse.
func (v Vector) Rank() int {
	n := 0
	for _, b := range []bool{v.Flipped, v.FlapOpen, v.ContentsVisible, v.ContentsExpanded} {
		if !b {
			break
		}
		n++
	}
	return n
}
