// Package ports defines the contracts between the order desk core and its
// infrastructure, so command handlers can be tested without a database.
package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// PlacedOrderRepository is the order history collaborator. The order desk
// only hands placed orders over and reads them back; it never edits them.
type PlacedOrderRepository interface {
	// Add persists a placed order together with its lines.
	Add(ctx context.Context, placed *order.PlacedOrder) error

	// Get retrieves a placed order by id. Returns *errs.ObjectNotFoundError
	// when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.PlacedOrder, error)

	// List returns all placed orders, oldest first.
	List(ctx context.Context) ([]*order.PlacedOrder, error)
}
