// Package orderevents announces placed orders on a Kafka topic so the kitchen can
// start baking. Messages are keyed by order id and carry an OrderPlacedEvent
// encoded as JSON.
package orderevents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const EventTypeOrderPlaced = "order.placed"

// OrderPlacedEvent is the message body published for every placed order.
type OrderPlacedEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	OrderID   string          `json:"order_id"`
	Number    int             `json:"number"`
	Items     []EventItem     `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	SalesTax  decimal.Decimal `json:"sales_tax"`
	Total     decimal.Decimal `json:"total"`
	PlacedAt  time.Time       `json:"placed_at"`
	Timestamp time.Time       `json:"timestamp"`
}

type EventItem struct {
	Position    int             `json:"position"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher writes OrderPlacedEvents to one topic.
type OrderEventPublisher struct {
	writer messageWriter
	now    func() time.Time
}

func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireAll,
	}

	return newOrderEventPublisher(writer, time.Now)
}

func newOrderEventPublisher(writer messageWriter, now func() time.Time) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer, now: now}
}

// PublishOrderPlaced writes one message for placed and waits for the
// brokers to acknowledge it.
func (p *OrderEventPublisher) PublishOrderPlaced(ctx context.Context, placed *order.PlacedOrder) error {
	if err := placed.Validate(); err != nil {
		return err
	}

	event := newOrderPlacedEvent(placed, p.now())
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func newOrderPlacedEvent(placed *order.PlacedOrder, at time.Time) OrderPlacedEvent {
	lines := placed.Lines()
	items := make([]EventItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, EventItem{
			Position:    line.Position,
			Description: line.Description,
			Price:       line.Price,
		})
	}

	totals := placed.Totals()
	return OrderPlacedEvent{
		ID:        kernel.NewUUID().String(),
		Type:      EventTypeOrderPlaced,
		OrderID:   placed.ID().String(),
		Number:    placed.Number(),
		Items:     items,
		Subtotal:  totals.Subtotal,
		SalesTax:  totals.SalesTax,
		Total:     totals.Total,
		PlacedAt:  placed.PlacedAt(),
		Timestamp: at.UTC(),
	}
}
