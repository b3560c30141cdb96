package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
)

type SetOrderNumberCommandHandler struct {
	desk *services.CurrentOrder
}

func NewSetOrderNumberCommandHandler(desk *services.CurrentOrder) SetOrderNumberCommandHandler {
	return SetOrderNumberCommandHandler{desk: desk}
}

func (h SetOrderNumberCommandHandler) Handle(_ context.Context, cmd SetOrderNumberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.desk.Update(func(o *order.Order) error {
		o.SetNumber(cmd.Number())
		return nil
	})
}
