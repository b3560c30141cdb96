// Package commands contains business operations that modify the order desk.
// Every command is built through a validating constructor and executed by a
// handler; handlers that reach order history run inside a unit of work.
package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PlacedOrderRepoFactory provides access to order history within a transaction.
	PlacedOrderRepoFactory interface {
		PlacedOrderRepository() ports.PlacedOrderRepository
	}

	// PlacedOrderUoW manages transactions for order history writes.
	PlacedOrderUoW interface {
		TxManager
		PlacedOrderRepoFactory
	}

	// PlacedOrderUoWFactory creates new placed order unit of work instances.
	PlacedOrderUoWFactory interface {
		Create() PlacedOrderUoW
	}

	// OutboxUoW manages transactions over the placed order publication log.
	OutboxUoW interface {
		TxManager
		PlacedOrderOutbox() ports.PlacedOrderOutbox
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
