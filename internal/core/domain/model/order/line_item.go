package order

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// LineItem is one priced unit within an order.
//
// Items are matched by identity when removed, so implementations must be
// comparable; pointer receivers are the usual choice.
type LineItem interface {
	// Price is the non-negative amount charged for the item.
	Price() decimal.Decimal
	// String renders the item's configuration, possibly over several lines.
	String() string
}

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a LineItem described by a name and a fixed price.
type Item struct {
	name  string
	price decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem validates name and price and returns a new Item.
//
// Example:
//
//	margherita, err := order.NewItem("Margherita, large", decimal.RequireFromString("12.99"))
//	if err != nil {
//	    return err
//	}
//	current.Add(margherita)
func NewItem(name string, price decimal.Decimal) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Price() decimal.Decimal {
	return i.price
}

// String renders the name on the first line and the price on the second.
func (i *Item) String() string {
	return fmt.Sprintf("%s\nPrice: $%s", i.name, kernel.FormatMoney(i.price))
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if err := kernel.ValidateMoney(price); err != nil {
		return err
	}
	i.price = price
	return nil
}
