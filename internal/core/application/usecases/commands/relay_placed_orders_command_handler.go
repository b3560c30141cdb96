package commands

import (
	"context"
	"fmt"

	"pizzeria/internal/core/ports"
)

// RelayPlacedOrdersCommandHandler drains the placed order outbox into an
// OrderEventPublisher.
type RelayPlacedOrdersCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.OrderEventPublisher
}

func NewRelayPlacedOrdersCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.OrderEventPublisher,
) RelayPlacedOrdersCommandHandler {
	return RelayPlacedOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes pending orders oldest first and returns how many were
// relayed. Orders are delivered at least once: a publish failure stops the
// batch, the orders announced before it are still committed as published.
func (h RelayPlacedOrdersCommandHandler) Handle(ctx context.Context, cmd RelayPlacedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.PlacedOrderOutbox()
	pending, err := outbox.Unpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, fmt.Errorf("load unpublished orders: %w", err)
	}

	relayed := 0
	var publishErr error
	for _, placed := range pending {
		if publishErr = h.publisher.PublishOrderPlaced(ctx, placed); publishErr != nil {
			publishErr = fmt.Errorf("publish order %s: %w", placed.ID(), publishErr)
			break
		}
		if err := outbox.MarkPublished(ctx, placed.ID(), cmd.PublishedAt()); err != nil {
			return 0, fmt.Errorf("mark order %s published: %w", placed.ID(), err)
		}
		relayed++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return relayed, publishErr
}
