package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
)

type StartNewOrderCommandHandler struct {
	desk *services.CurrentOrder
}

func NewStartNewOrderCommandHandler(desk *services.CurrentOrder) StartNewOrderCommandHandler {
	return StartNewOrderCommandHandler{desk: desk}
}

// Handle builds the successor and activates it in one step, so callers never
// observe the previous order after Handle returns.
func (h StartNewOrderCommandHandler) Handle(_ context.Context, cmd StartNewOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.desk.Swap(func(current *order.Order) (*order.Order, error) {
		return current.StartNew(), nil
	})
	return err
}
