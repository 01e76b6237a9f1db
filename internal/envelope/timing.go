package envelope

import "time"

// Timing holds the delays between phases. Opening delays are measured from
// the phase named by the field; closing delays likewise.
type Timing struct {
	Flip     time.Duration // OpeningFlip -> OpeningFlap
	Flap     time.Duration // OpeningFlap -> OpeningContents
	Contents time.Duration // OpeningContents -> OpeningExpand
	Settle   time.Duration // OpeningExpand -> Open

	CloseContents time.Duration // ClosingContents -> ClosingFlap
	CloseFlap     time.Duration // ClosingFlap -> ClosingFlip
	CloseFlip     time.Duration // ClosingFlip -> Closed

	// Reveal is the overlay's own delay before the message body fades in.
	Reveal time.Duration
}

// DefaultTiming returns the delays the card animations are drawn for.
func DefaultTiming() Timing {
	return Timing{
		Flip:          600 * time.Millisecond,
		Flap:          400 * time.Millisecond,
		Contents:      500 * time.Millisecond,
		Settle:        300 * time.Millisecond,
		CloseContents: 400 * time.Millisecond,
		CloseFlap:     400 * time.Millisecond,
		CloseFlip:     400 * time.Millisecond,
		Reveal:        400 * time.Millisecond,
	}
}

// Scaled divides every delay by speed. Non-positive speeds return t unchanged.
func (t Timing) Scaled(speed float64) Timing {
	if speed <= 0 || speed == 1 {
		return t
	}
	s := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) / speed)
	}
	return Timing{
		Flip:          s(t.Flip),
		Flap:          s(t.Flap),
		Contents:      s(t.Contents),
		Settle:        s(t.Settle),
		CloseContents: s(t.CloseContents),
		CloseFlap:     s(t.CloseFlap),
		CloseFlip:     s(t.CloseFlip),
		Reveal:        s(t.Reveal),
	}
}

// OpenDuration is the total time from toggle to Open.
func (t Timing) OpenDuration() time.Duration {
	return t.Flip + t.Flap + t.Contents + t.Settle
}

// CloseDuration is the total time from close to Closed.
func (t Timing) CloseDuration() time.Duration {
	return t.CloseContents + t.CloseFlap + t.CloseFlip
}

// next returns the phase that follows p and how long p lasts.
// ok is false for the resting phases.
func (t Timing) next(p Phase) (next Phase, after time.Duration, ok bool) {
	switch p {
	case PhaseOpeningFlip:
		return PhaseOpeningFlap, t.Flip, true
	case PhaseOpeningFlap:
		return PhaseOpeningContents, t.Flap, true
	case PhaseOpeningContents:
		return PhaseOpeningExpand, t.Contents, true
	case PhaseOpeningExpand:
		return PhaseOpen, t.Settle, true
	case PhaseClosingContents:
		return PhaseClosingFlap, t.CloseContents, true
	case PhaseClosingFlap:
		return PhaseClosingFlip, t.CloseFlap, true
	case PhaseClosingFlip:
		return PhaseClosed, t.CloseFlip, true
	}
	return p, 0, false
}
