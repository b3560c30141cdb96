package commands

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand hands the current order over to order history under
// placedOrderID.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	placedOrderID kernel.UUID
	placedAt      time.Time

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(placedOrderID kernel.UUID, placedAt time.Time) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPlacedOrderID(placedOrderID),
		cmd.setPlacedAt(placedAt),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) PlacedOrderID() kernel.UUID {
	return c.placedOrderID
}

func (c PlaceOrderCommand) PlacedAt() time.Time {
	return c.placedAt
}

func (c *PlaceOrderCommand) setPlacedOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.placedOrderID = id
	return nil
}

func (c *PlaceOrderCommand) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	c.placedAt = placedAt
	return nil
}
