package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.Publish(context.Background(), "k", Event{Type: TypeVoteCast}))
	assert.NoError(t, p.Close())
}

func TestNewMessage(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	msg, err := newMessage(context.Background(), "s-1", Event{
		Type:       TypeVoteCast,
		OccurredAt: at,
		Data:       map[string]string{"vote_type": "brilliant"},
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("s-1"), msg.Key)
	assert.Equal(t, "vote.cast", headerCarrier{headers: &msg.Headers}.Get("event-type"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "vote.cast", decoded["type"])
	assert.Equal(t, "2024-06-01T12:00:00Z", decoded["occurred_at"])
	assert.Equal(t, "brilliant", decoded["data"].(map[string]any)["vote_type"])
}

func TestNewMessage_DefaultsTimestamp(t *testing.T) {
	msg, err := newMessage(context.Background(), "k", Event{Type: TypeSubmissionCreated})
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.False(t, decoded.OccurredAt.IsZero())
}

func TestNewMessage_PropagatesTrace(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer otel.SetTextMapPropagator(prev)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	msg, err := newMessage(ctx, "k", Event{Type: TypeVoteCast})
	require.NoError(t, err)
	assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01",
		headerCarrier{headers: &msg.Headers}.Get("traceparent"))
}

func TestHeaderCarrier_Keys(t *testing.T) {
	headers := []kafka.Header{}
	c := headerCarrier{headers: &headers}
	c.Set("a", "1")
	c.Set("b", "2")
	assert.Equal(t, []string{"a", "b"}, c.Keys())
	assert.Equal(t, "", c.Get("missing"))
}
