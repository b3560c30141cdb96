package queries

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrGetCurrentOrderQueryIsNotConstructed = errors.New(
	"GetCurrentOrderQuery must be created via NewGetCurrentOrderQuery constructor",
)

// GetCurrentOrderQuery reads the order currently being assembled.
type GetCurrentOrderQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCurrentOrderQuery() GetCurrentOrderQuery {
	return GetCurrentOrderQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCurrentOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentOrderQueryIsNotConstructed)
}

// GetCurrentOrderQueryResponse is a snapshot of the current order with freshly
// computed totals. Amounts are formatted to two decimal places.
type GetCurrentOrderQueryResponse struct {
	Number           int
	Items            []CurrentOrderItem
	ItemDescriptions []string
	Subtotal         string
	SalesTax         string
	Total            string
	Receipt          string
}

// CurrentOrderItem is one line of the current order.
type CurrentOrderItem struct {
	Position    int
	Description string
	Price       string
}
