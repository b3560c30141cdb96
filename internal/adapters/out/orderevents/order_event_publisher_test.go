package orderevents

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

var publishedAt = time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

func newPlacedOrder(t *testing.T) *order.PlacedOrder {
	t.Helper()
	placed, err := order.RestorePlacedOrder(kernel.NewUUID(), 7, []order.PlacedLine{
		{Position: 1, Description: "Deluxe\nsize: large", Price: decimal.RequireFromString("10.00")},
		{Position: 2, Description: "Hawaiian", Price: decimal.RequireFromString("5.50")},
	}, publishedAt.Add(-time.Minute))
	require.NoError(t, err)
	return placed
}

func TestOrderEventPublisher_PublishOrderPlaced(t *testing.T) {
	writer := &recordingWriter{}
	publisher := newOrderEventPublisher(writer, func() time.Time { return publishedAt })
	placed := newPlacedOrder(t)

	err := publisher.PublishOrderPlaced(t.Context(), placed)

	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, placed.ID().String(), string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, EventTypeOrderPlaced, string(msg.Headers[0].Value))

	var event OrderPlacedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventTypeOrderPlaced, event.Type)
	assert.Equal(t, placed.ID().String(), event.OrderID)
	assert.Equal(t, 7, event.Number)
	require.Len(t, event.Items, 2)
	assert.Equal(t, "Deluxe\nsize: large", event.Items[0].Description)
	assert.Equal(t, "15.50", event.Subtotal.StringFixed(2))
	assert.Equal(t, "16.53", event.Total.StringFixed(2))
	assert.True(t, publishedAt.Equal(event.Timestamp))
	assert.True(t, placed.PlacedAt().Equal(event.PlacedAt))
}

func TestOrderEventPublisher_AmountsAreStrings(t *testing.T) {
	event := newOrderPlacedEvent(newPlacedOrder(t), publishedAt)

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	subtotal, ok := fields["subtotal"].(string)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("15.50").Equal(decimal.RequireFromString(subtotal)))
	assert.IsType(t, "", fields["total"])
}

func TestOrderEventPublisher_WriterError(t *testing.T) {
	brokerDown := errors.New("broker down")
	publisher := newOrderEventPublisher(&recordingWriter{err: brokerDown}, time.Now)

	err := publisher.PublishOrderPlaced(t.Context(), newPlacedOrder(t))

	require.ErrorIs(t, err, brokerDown)
}

func TestOrderEventPublisher_NotConstructed(t *testing.T) {
	writer := &recordingWriter{}
	publisher := newOrderEventPublisher(writer, time.Now)

	err := publisher.PublishOrderPlaced(t.Context(), &order.PlacedOrder{})

	require.ErrorIs(t, err, order.ErrPlacedOrderIsNotConstructed)
	assert.Empty(t, writer.messages)
}

func TestOrderEventPublisher_Close(t *testing.T) {
	writer := &recordingWriter{}

	require.NoError(t, newOrderEventPublisher(writer, time.Now).Close())
	assert.True(t, writer.closed)
}
