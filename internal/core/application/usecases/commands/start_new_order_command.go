package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrStartNewOrderCommandIsNotConstructed = errors.New(
	"StartNewOrderCommand must be created via NewStartNewOrderCommand constructor",
)

// StartNewOrderCommand replaces the current order with a copy of itself:
// same number, same items, fresh totals.
type StartNewOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewStartNewOrderCommand() StartNewOrderCommand {
	return StartNewOrderCommand{guard: guard.NewConstructorGuard()}
}

func (c StartNewOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartNewOrderCommandIsNotConstructed)
}
