package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishOrderPlaced(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	err := p.PublishOrderPlaced(context.Background(), OrderPlaced{
		OrderID: 42, Email: "a@example.com", Total: 77.9, PaymentMethodID: 1, ItemCount: 2, PlacedAt: at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, at, msg.Time)

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, float64(42), got["order_id"])
	assert.Equal(t, "a@example.com", got["email"])
	assert.Equal(t, 77.9, got["total"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriterError(t *testing.T) {
	p := NewKafkaPublisher(&fakeWriter{err: errors.New("broker down")})
	err := p.PublishOrderPlaced(context.Background(), OrderPlaced{OrderID: 1})
	require.EqualError(t, err, "broker down")
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"localhost:9092"}, "order.placed")
	assert.Equal(t, "order.placed", w.Topic)
	assert.True(t, w.AllowAutoTopicCreation)
	assert.IsType(t, &kafka.CRC32Balancer{}, w.Balancer)
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher(zerolog.Nop())
	require.NoError(t, p.PublishOrderPlaced(context.Background(), OrderPlaced{OrderID: 1}))
	require.NoError(t, p.Close())
}
