package commands

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrSetOrderNumberCommandIsNotConstructed = errors.New(
	"SetOrderNumberCommand must be created via NewSetOrderNumberCommand constructor",
)

// SetOrderNumberCommand assigns the number shown on the current order.
type SetOrderNumberCommand struct { //nolint:recvcheck //using for validation
	number int

	guard guard.ConstructorGuard
}

// NewSetOrderNumberCommand rejects negative numbers.
func NewSetOrderNumberCommand(number int) (SetOrderNumberCommand, error) {
	cmd := SetOrderNumberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNumber(number); err != nil {
		return SetOrderNumberCommand{}, err
	}

	return cmd, nil
}

func (c SetOrderNumberCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderNumberCommandIsNotConstructed)
}

func (c SetOrderNumberCommand) Number() int {
	return c.number
}

func (c *SetOrderNumberCommand) setNumber(number int) error {
	if number < 0 {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is negative", number))
	}
	c.number = number
	return nil
}
