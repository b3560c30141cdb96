package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand appends a named, priced item to the current order.
//
// Example:
//
//	cmd, err := NewAddItemCommand("Deluxe, large", decimal.RequireFromString("14.99"))
//	if err != nil {
//	    return fmt.Errorf("invalid item: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type AddItemCommand struct { //nolint:recvcheck //using for validation
	name  string
	price decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddItemCommand validates that name is not blank and price is not negative.
func NewAddItemCommand(name string, price decimal.Decimal) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

func (c AddItemCommand) Name() string {
	return c.name
}

func (c AddItemCommand) Price() decimal.Decimal {
	return c.price
}

func (c *AddItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddItemCommand) setPrice(price decimal.Decimal) error {
	if err := kernel.ValidateMoney(price); err != nil {
		return err
	}
	c.price = price
	return nil
}
