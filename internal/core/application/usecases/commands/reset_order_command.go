package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrResetOrderCommandIsNotConstructed = errors.New(
	"ResetOrderCommand must be created via NewResetOrderCommand constructor",
)

// ResetOrderCommand clears the current order and zeroes its number.
type ResetOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewResetOrderCommand() ResetOrderCommand {
	return ResetOrderCommand{guard: guard.NewConstructorGuard()}
}

func (c ResetOrderCommand) Validate() error {
	return c.guard.Validate(ErrResetOrderCommandIsNotConstructed)
}
