package envelope

import "time"

// Step is a deferred phase change issued by Machine. The caller must deliver
// it back to Advance once After has elapsed.
type Step struct {
	Card  string
	Seq   uint64
	Next  Phase
	After time.Duration
}

// Machine sequences one card.
type Machine struct {
	id       string
	phase    Phase
	seq      uint64
	timing   Timing
	observer Observer
}

// New creates a closed Machine. id identifies the card in Steps and observer calls.
// A nil observer is replaced with NoopObserver.
func New(id string, timing Timing, observer Observer) *Machine {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Machine{
		id:       id,
		phase:    PhaseClosed,
		timing:   timing,
		observer: observer,
	}
}

// ID returns the card identifier.
func (m *Machine) ID() string { return m.id }

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Vector returns the current phase as flags.
func (m *Machine) Vector() Vector { return m.phase.Vector() }

// Seq returns the number of the most recently started sequence (0 before any).
func (m *Machine) Seq() uint64 { return m.seq }

// Timing returns the delays the machine schedules with.
func (m *Machine) Timing() Timing { return m.timing }

// Toggle starts the opening sequence from Closed or the closing sequence from
// Open. While a sequence is running it does nothing and returns false.
func (m *Machine) Toggle() (Step, bool) {
	switch m.phase {
	case PhaseClosed:
		return m.begin(PhaseOpeningFlip), true
	case PhaseOpen:
		return m.begin(PhaseClosingContents), true
	}
	return Step{}, false
}

// Close starts the closing sequence. It is honoured only in Open: a close
// requested while a sequence is running, or when already closed, does nothing.
func (m *Machine) Close() (Step, bool) {
	if m.phase != PhaseOpen {
		return Step{}, false
	}
	return m.begin(PhaseClosingContents), true
}

// Advance applies a Step previously returned by this Machine. It returns the
// following Step and true while the sequence has further phases. Steps from
// an earlier sequence, or that do not follow the current phase, are ignored.
func (m *Machine) Advance(s Step) (Step, bool) {
	if s.Card != m.id || s.Seq != m.seq {
		return Step{}, false
	}
	next, _, ok := m.timing.next(m.phase)
	if !ok || next != s.Next {
		return Step{}, false
	}
	m.enter(next)
	if !next.Transitioning() {
		m.observer.OnSequenceEnd(m.id, m.seq, s.Next)
		return Step{}, false
	}
	return m.schedule(), true
}

func (m *Machine) begin(first Phase) Step {
	m.seq++
	m.observer.OnSequenceStart(m.id, m.seq, first.Direction())
	m.enter(first)
	return m.schedule()
}

func (m *Machine) enter(p Phase) {
	m.phase = p
	m.observer.OnPhase(m.id, m.seq, p)
}

func (m *Machine) schedule() Step {
	next, after, _ := m.timing.next(m.phase)
	return Step{Card: m.id, Seq: m.seq, Next: next, After: after}
}
