package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPlacedOrdersQueryIsNotConstructed = errors.New(
	"GetPlacedOrdersQuery must be created via NewGetPlacedOrdersQuery constructor",
)

// GetPlacedOrdersQuery lists order history, oldest first.
//
// Example:
//
//	query := NewGetPlacedOrdersQuery()
//	handler := NewGetPlacedOrdersQueryHandler(db)
//
//	placed, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list placed orders: %w", err)
//	}
//	for _, p := range placed {
//	    fmt.Printf("#%d: %d pizzas, $%s\n", p.Number, p.ItemCount, kernel.FormatMoney(p.Total))
//	}
type GetPlacedOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPlacedOrdersQuery() GetPlacedOrdersQuery {
	return GetPlacedOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPlacedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPlacedOrdersQueryIsNotConstructed)
}

// GetPlacedOrdersQueryResponse summarises one placed order.
type GetPlacedOrdersQueryResponse struct {
	ID        kernel.UUID
	Number    int
	ItemCount int
	Subtotal  decimal.Decimal
	SalesTax  decimal.Decimal
	Total     decimal.Decimal
	PlacedAt  time.Time
}
