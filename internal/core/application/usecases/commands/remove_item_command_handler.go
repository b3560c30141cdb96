package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"
)

// RemoveItemCommandHandler removes items from the current order by position.
type RemoveItemCommandHandler struct {
	desk *services.CurrentOrder
}

func NewRemoveItemCommandHandler(desk *services.CurrentOrder) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{desk: desk}
}

// Handle resolves the position against the current order and removes that
// item. A position past the end of the order is reported as
// *errs.ValueIsOutOfRangeError; the order itself is left unchanged.
func (h RemoveItemCommandHandler) Handle(_ context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.desk.Update(func(o *order.Order) error {
		item, ok := o.At(cmd.Position())
		if !ok {
			return errs.NewValueIsOutOfRangeError("position", cmd.Position(), 1, o.Len())
		}
		o.Remove(item)
		return nil
	})
}
