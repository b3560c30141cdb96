package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
)

// GetCurrentOrderQueryHandler renders the active order of the desk.
//
// Example:
//
//	handler := NewGetCurrentOrderQueryHandler(desk)
//	current, err := handler.Handle(ctx, NewGetCurrentOrderQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Print(current.Receipt)
type GetCurrentOrderQueryHandler struct {
	desk *services.CurrentOrder
}

func NewGetCurrentOrderQueryHandler(desk *services.CurrentOrder) GetCurrentOrderQueryHandler {
	return GetCurrentOrderQueryHandler{desk: desk}
}

// Handle recomputes the totals of the current order and returns its snapshot.
// The whole snapshot is taken under the desk lock, so concurrent commands
// cannot interleave with it.
func (h GetCurrentOrderQueryHandler) Handle(
	_ context.Context,
	query GetCurrentOrderQuery,
) (GetCurrentOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentOrderQueryResponse{}, err
	}

	var resp GetCurrentOrderQueryResponse
	err := h.desk.Update(func(o *order.Order) error {
		resp = snapshot(o)
		return nil
	})
	return resp, err
}

func snapshot(o *order.Order) GetCurrentOrderQueryResponse {
	receipt := o.StringWithTotals()
	totals, _ := o.FormattedTotals()

	items := make([]CurrentOrderItem, 0, o.Len())
	for i, item := range o.Items() {
		items = append(items, CurrentOrderItem{
			Position:    i + 1,
			Description: item.String(),
			Price:       kernel.FormatMoney(item.Price()),
		})
	}

	return GetCurrentOrderQueryResponse{
		Number:           o.Number(),
		Items:            items,
		ItemDescriptions: o.ItemDescriptions(),
		Subtotal:         totals.Subtotal,
		SalesTax:         totals.SalesTax,
		Total:            totals.Total,
		Receipt:          receipt,
	}
}
