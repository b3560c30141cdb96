package ports

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// PlacedOrderOutbox tracks which placed orders have been announced to the
// kitchen. Rows are written by PlacedOrderRepository.Add and are unpublished
// until MarkPublished is called.
type PlacedOrderOutbox interface {
	// Unpublished returns up to limit unpublished orders, oldest first.
	// Inside a transaction the rows stay locked until it ends.
	Unpublished(ctx context.Context, limit int) ([]*order.PlacedOrder, error)

	// MarkPublished records when the order was announced. Returns
	// *errs.ObjectNotFoundError for an unknown id.
	MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error
}

// OrderEventPublisher announces placed orders to downstream consumers.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, placed *order.PlacedOrder) error
}
