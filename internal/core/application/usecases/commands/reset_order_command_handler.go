package commands

import (
	"context"

	"pizzeria/internal/core/domain/services"
)

type ResetOrderCommandHandler struct {
	desk *services.CurrentOrder
}

func NewResetOrderCommandHandler(desk *services.CurrentOrder) ResetOrderCommandHandler {
	return ResetOrderCommandHandler{desk: desk}
}

func (h ResetOrderCommandHandler) Handle(_ context.Context, cmd ResetOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.desk.Reset()
	return nil
}
