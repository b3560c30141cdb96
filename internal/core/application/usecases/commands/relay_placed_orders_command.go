package commands

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrRelayPlacedOrdersCommandIsNotConstructed = errors.New(
	"RelayPlacedOrdersCommand must be created via NewRelayPlacedOrdersCommand constructor",
)

// RelayPlacedOrdersCommand announces up to batchSize unpublished placed
// orders and stamps them with publishedAt.
type RelayPlacedOrdersCommand struct { //nolint:recvcheck //using for validation
	batchSize   int
	publishedAt time.Time

	guard guard.ConstructorGuard
}

func NewRelayPlacedOrdersCommand(batchSize int, publishedAt time.Time) (RelayPlacedOrdersCommand, error) {
	cmd := RelayPlacedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchSize(batchSize),
		cmd.setPublishedAt(publishedAt),
	); err != nil {
		return RelayPlacedOrdersCommand{}, err
	}

	return cmd, nil
}

func (c RelayPlacedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRelayPlacedOrdersCommandIsNotConstructed)
}

func (c RelayPlacedOrdersCommand) BatchSize() int {
	return c.batchSize
}

func (c RelayPlacedOrdersCommand) PublishedAt() time.Time {
	return c.publishedAt
}

func (c *RelayPlacedOrdersCommand) setBatchSize(batchSize int) error {
	if batchSize < 1 {
		return errs.NewValueIsInvalidErrorWithCause("batchSize", fmt.Errorf("%d is less than 1", batchSize))
	}
	c.batchSize = batchSize
	return nil
}

func (c *RelayPlacedOrdersCommand) setPublishedAt(publishedAt time.Time) error {
	if publishedAt.IsZero() {
		return errs.NewValueIsRequiredError("publishedAt")
	}
	c.publishedAt = publishedAt
	return nil
}
