package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPlacedOrdersQueryHandler reads order history straight from the database.
type GetPlacedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetPlacedOrdersQueryHandler(db *gorm.DB) GetPlacedOrdersQueryHandler {
	return GetPlacedOrdersQueryHandler{db: db}
}

// Handle returns every placed order ordered by placement time, then number.
func (h GetPlacedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPlacedOrdersQuery,
) ([]GetPlacedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	placed := make([]GetPlacedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			COUNT(l.position) AS item_count,
			o.subtotal,
			o.sales_tax,
			o.total,
			o.placed_at
		FROM placed_orders o
		LEFT JOIN placed_order_lines l ON l.placed_order_id = o.id
		GROUP BY o.id
		ORDER BY o.placed_at, o.number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPlacedOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.ItemCount,
			&resp.Subtotal,
			&resp.SalesTax,
			&resp.Total,
			&resp.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		placedID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = placedID
		resp.PlacedAt = resp.PlacedAt.UTC()

		placed = append(placed, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return placed, nil
}
