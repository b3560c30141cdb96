package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
)

// AddItemCommandHandler appends items to the current order.
type AddItemCommandHandler struct {
	desk *services.CurrentOrder
}

func NewAddItemCommandHandler(desk *services.CurrentOrder) AddItemCommandHandler {
	return AddItemCommandHandler{desk: desk}
}

// Handle builds an order.Item from the command and appends it.
func (h AddItemCommandHandler) Handle(_ context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := order.NewItem(cmd.Name(), cmd.Price())
	if err != nil {
		return err
	}

	return h.desk.Update(func(o *order.Order) error {
		o.Add(item)
		return nil
	})
}
