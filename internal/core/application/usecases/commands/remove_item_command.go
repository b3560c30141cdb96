package commands

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand removes the item shown at a 1-based position.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	position int

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand requires position to be at least 1.
func NewRemoveItemCommand(position int) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPosition(position); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

func (c RemoveItemCommand) Position() int {
	return c.position
}

func (c *RemoveItemCommand) setPosition(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("position", fmt.Errorf("%d is less than 1", position))
	}
	c.position = position
	return nil
}
