package trace

import (
	"context"
	"sync"

	"openwhen/internal/envelope"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Attribute keys set on sequence spans.
const (
	AttrCard      = "openwhen.card.id"
	AttrTitle     = "openwhen.card.title"
	AttrSeq       = "openwhen.sequence"
	AttrDirection = "openwhen.direction"
	AttrPhase     = "openwhen.phase"
)

// SequenceObserver implements envelope.Observer and records one span per
// open or close sequence, with an event for every phase entered.
type SequenceObserver struct {
	envelope.NoopObserver
	tracer oteltrace.Tracer
	titles map[string]string

	mu    sync.Mutex
	spans map[spanKey]oteltrace.Span
}

type spanKey struct {
	card string
	seq  uint64
}

// Ensure SequenceObserver implements envelope.Observer.
var _ envelope.Observer = (*SequenceObserver)(nil)

// NewSequenceObserver returns nil when exporter is nil (tracing disabled);
// check before registering it.
func NewSequenceObserver(exporter *OTLPExporter) *SequenceObserver {
	if exporter == nil {
		return nil
	}
	return &SequenceObserver{
		tracer: exporter.Tracer(),
		titles: make(map[string]string),
		spans:  make(map[spanKey]oteltrace.Span),
	}
}

// Label attaches a human-readable title to a card's spans.
func (o *SequenceObserver) Label(card, title string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.titles[card] = title
}

// OnSequenceStart opens the sequence span.
func (o *SequenceObserver) OnSequenceStart(card string, seq uint64, dir envelope.Direction) {
	o.mu.Lock()
	defer o.mu.Unlock()

	attrs := []attribute.KeyValue{
		attribute.String(AttrCard, card),
		attribute.Int64(AttrSeq, int64(seq)),
		attribute.String(AttrDirection, dir.String()),
	}
	if title, ok := o.titles[card]; ok {
		attrs = append(attrs, attribute.String(AttrTitle, title))
	}
	_, span := o.tracer.Start(context.Background(), "envelope."+dir.String(),
		oteltrace.WithAttributes(attrs...))
	o.spans[spanKey{card, seq}] = span
}

// OnPhase records a phase event on the open span.
func (o *SequenceObserver) OnPhase(card string, seq uint64, p envelope.Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if span, ok := o.spans[spanKey{card, seq}]; ok {
		span.AddEvent(p.String(), oteltrace.WithAttributes(attribute.String(AttrPhase, p.String())))
	}
}

// OnSequenceEnd ends the span.
func (o *SequenceObserver) OnSequenceEnd(card string, seq uint64, final envelope.Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	key := spanKey{card, seq}
	if span, ok := o.spans[key]; ok {
		span.SetAttributes(attribute.String(AttrPhase, final.String()))
		span.End()
		delete(o.spans, key)
	}
}

// Open returns the number of sequences still in flight.
func (o *SequenceObserver) Open() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.spans)
}
