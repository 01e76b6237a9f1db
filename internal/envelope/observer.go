package envelope

// Observer receives sequence progress from a Machine.
type Observer interface {
	// OnSequenceStart is called when Toggle or Close starts a sequence.
	OnSequenceStart(card string, seq uint64, dir Direction)
	// OnPhase is called on entering every phase of a sequence, including the last.
	OnPhase(card string, seq uint64, p Phase)
	// OnSequenceEnd is called once the resting phase is reached.
	OnSequenceEnd(card string, seq uint64, final Phase)
}

// NoopObserver ignores every call. Embed it to implement a subset of Observer.
type NoopObserver struct{}

func (NoopObserver) OnSequenceStart(string, uint64, Direction) {}
func (NoopObserver) OnPhase(string, uint64, Phase)             {}
func (NoopObserver) OnSequenceEnd(string, uint64, Phase)       {}

// MultiObserver fans calls out to several observers.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver drops nil observers.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// safeCall calls fn with panic recovery. One observer failing shouldn't block others.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// OnSequenceStart forwards the call to all observers.
func (m *MultiObserver) OnSequenceStart(card string, seq uint64, dir Direction) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnSequenceStart(card, seq, dir) })
	}
}

// OnPhase forwards the call to all observers.
func (m *MultiObserver) OnPhase(card string, seq uint64, p Phase) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnPhase(card, seq, p) })
	}
}

// OnSequenceEnd forwards the call to all observers.
func (m *MultiObserver) OnSequenceEnd(card string, seq uint64, final Phase) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnSequenceEnd(card, seq, final) })
	}
}

// Recorder is an Observer that keeps every call, for tests and diagnostics.
type Recorder struct {
	Events []Event
}

// Event is one Recorder entry.
type Event struct {
	Kind  string // "start", "phase" or "end"
	Card  string
	Seq   uint64
	Dir   Direction
	Phase Phase
}

// Ensure Recorder implements Observer.
var _ Observer = (*Recorder)(nil)

func (r *Recorder) OnSequenceStart(card string, seq uint64, dir Direction) {
	r.Events = append(r.Events, Event{Kind: "start", Card: card, Seq: seq, Dir: dir})
}

func (r *Recorder) OnPhase(card string, seq uint64, p Phase) {
	r.Events = append(r.Events, Event{Kind: "phase", Card: card, Seq: seq, Phase: p})
}

func (r *Recorder) OnSequenceEnd(card string, seq uint64, final Phase) {
	r.Events = append(r.Events, Event{Kind: "end", Card: card, Seq: seq, Phase: final})
}

// Phases returns the recorded phases in order.
func (r *Recorder) Phases() []Phase {
	var out []Phase
	for _, e := range r.Events {
		if e.Kind == "phase" {
			out = append(out, e.Phase)
		}
	}
	return out
}
