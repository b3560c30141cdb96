package commands

import (
	"context"
	"fmt"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
)

// PlaceOrderCommandHandler persists the current order and opens the next one.
type PlaceOrderCommandHandler struct {
	desk       *services.CurrentOrder
	uowFactory PlacedOrderUoWFactory
}

func NewPlaceOrderCommandHandler(
	desk *services.CurrentOrder,
	uowFactory PlacedOrderUoWFactory,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		desk:       desk,
		uowFactory: uowFactory,
	}
}

// Handle snapshots the current order, stores it in one transaction and, once
// committed, activates an empty order numbered one past the placed one.
// Nothing changes on the desk if the order is empty or the commit fails.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.desk.Swap(func(current *order.Order) (*order.Order, error) {
		current.ComputeTotals()

		placed, err := order.Place(cmd.PlacedOrderID(), current, cmd.PlacedAt())
		if err != nil {
			return nil, err
		}

		if err := h.persist(ctx, placed); err != nil {
			return nil, err
		}

		next := order.NewOrder()
		next.SetNumber(current.Number() + 1)
		return next, nil
	})
	return err
}

func (h PlaceOrderCommandHandler) persist(ctx context.Context, placed *order.PlacedOrder) error {
	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PlacedOrderRepository().Add(ctx, placed); err != nil {
		return fmt.Errorf("add placed order: %w", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
