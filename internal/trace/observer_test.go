package trace

import (
	"context"
	"testing"

	"openwhen/internal/envelope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestObserver(t *testing.T) (*SequenceObserver, *tracetest.InMemoryExporter) {
	t.Helper()
	mem := tracetest.NewInMemoryExporter()
	exp := NewExporterWith(sdktrace.WithSyncer(mem), "openwhen-test")
	t.Cleanup(func() { _ = exp.Shutdown(context.Background()) })
	return NewSequenceObserver(exp), mem
}

func drive(m *envelope.Machine, s envelope.Step) {
	for {
		next, more := m.Advance(s)
		if !more {
			return
		}
		s = next
	}
}

func TestSequenceObserver_SpanPerSequence(t *testing.T) {
	obs, mem := newTestObserver(t)
	obs.Label("card-1", "Open When You Need a Hug")

	m := envelope.New("card-1", envelope.DefaultTiming(), obs)
	s, ok := m.Toggle()
	require.True(t, ok)
	assert.Equal(t, 1, obs.Open())
	drive(m, s)
	s, ok = m.Toggle()
	require.True(t, ok)
	drive(m, s)
	assert.Equal(t, 0, obs.Open())

	spans := mem.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "envelope.open", spans[0].Name)
	assert.Equal(t, "envelope.close", spans[1].Name)

	assert.Len(t, spans[0].Events, 5)
	assert.Equal(t, "opening-flip", spans[0].Events[0].Name)
	assert.Equal(t, "open", spans[0].Events[4].Name)
	assert.Len(t, spans[1].Events, 4)

	assert.Contains(t, spans[0].Attributes, attribute.String(AttrTitle, "Open When You Need a Hug"))
	assert.Contains(t, spans[1].Attributes, attribute.Int64(AttrSeq, 2))
}

func TestNewSequenceObserver_NilExporter(t *testing.T) {
	assert.Nil(t, NewSequenceObserver(nil))
}

func TestNewOTLPExporter_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	exp, err := NewOTLPExporter(context.Background())
	require.NoError(t, err)
	assert.Nil(t, exp)
	assert.NoError(t, exp.Shutdown(context.Background()))
}
