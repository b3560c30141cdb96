package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPlacedOrderIsNotConstructed = errors.New("PlacedOrder must be created via Place or RestorePlacedOrder")
	ErrOrderIsEmpty                = errs.NewValueIsRequiredError("order must contain at least one item")
)

// PlacedLine is the snapshot of one line item at the time the order was placed.
type PlacedLine struct {
	Position    int
	Description string
	Price       decimal.Decimal
}

// PlacedOrder is an immutable record of a completed order, handed over to
// order history. Its totals are recomputed from the lines and never stored
// independently.
type PlacedOrder struct {
	id       kernel.UUID
	number   int
	lines    []PlacedLine
	totals   Totals
	placedAt time.Time

	guard guard.ConstructorGuard
}

// Place snapshots o under id. The order must contain at least one item.
// o is left untouched apart from its cached totals.
func Place(id kernel.UUID, o *Order, placedAt time.Time) (*PlacedOrder, error) {
	if o == nil || o.IsEmpty() {
		return nil, ErrOrderIsEmpty
	}

	lines := make([]PlacedLine, 0, o.Len())
	for i, item := range o.items {
		lines = append(lines, PlacedLine{
			Position:    i + 1,
			Description: item.String(),
			Price:       item.Price(),
		})
	}

	return RestorePlacedOrder(id, o.Number(), lines, placedAt)
}

// RestorePlacedOrder rebuilds a placed order from persisted data.
func RestorePlacedOrder(id kernel.UUID, number int, lines []PlacedLine, placedAt time.Time) (*PlacedOrder, error) {
	placed := &PlacedOrder{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		placed.setID(id),
		placed.setNumber(number),
		placed.setLines(lines),
	); err != nil {
		return nil, err
	}
	placed.placedAt = placedAt.UTC()

	return placed, nil
}

func (p *PlacedOrder) Validate() error {
	if p == nil {
		return ErrPlacedOrderIsNotConstructed
	}
	return p.guard.Validate(ErrPlacedOrderIsNotConstructed)
}

func (p *PlacedOrder) ID() kernel.UUID {
	return p.id
}

func (p *PlacedOrder) Number() int {
	return p.number
}

// Lines returns a copy of the lines in position order.
func (p *PlacedOrder) Lines() []PlacedLine {
	return slices.Clone(p.lines)
}

func (p *PlacedOrder) Totals() Totals {
	return p.totals
}

func (p *PlacedOrder) PlacedAt() time.Time {
	return p.placedAt
}

func (p *PlacedOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *PlacedOrder) setNumber(number int) error {
	if number < 0 {
		return errs.NewValueIsInvalidErrorWithCause("order number is invalid", fmt.Errorf("%d is negative", number))
	}
	p.number = number
	return nil
}

func (p *PlacedOrder) setLines(lines []PlacedLine) error {
	if len(lines) == 0 {
		return ErrOrderIsEmpty
	}

	sorted := slices.Clone(lines)
	slices.SortFunc(sorted, func(a, b PlacedLine) int { return a.Position - b.Position })

	subtotal := decimal.Zero
	for _, line := range sorted {
		if err := kernel.ValidateMoney(line.Price); err != nil {
			return err
		}
		subtotal = subtotal.Add(line.Price)
	}

	p.lines = sorted
	p.totals = totalsFromSubtotal(subtotal)
	return nil
}
