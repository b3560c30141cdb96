// Package placedorderrepo provides data transfer objects and mapping functions for
// order history persistence. Placed orders are stored in "placed_orders" with one
// row per line item in "placed_order_lines".
package placedorderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlacedOrderDTO represents the database structure for persisting placed orders.
// The amount columns duplicate what the lines add up to so reports can read
// them without touching placed_order_lines.
type PlacedOrderDTO struct {
	ID       uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Number   int                  `gorm:"type:int;not null;index"`
	Subtotal decimal.Decimal      `gorm:"type:numeric;not null"`
	SalesTax decimal.Decimal      `gorm:"type:numeric;not null"`
	Total    decimal.Decimal      `gorm:"type:numeric;not null"`
	PlacedAt time.Time            `gorm:"type:timestamptz;not null;index"`
	Lines    []PlacedOrderLineDTO `gorm:"foreignKey:PlacedOrderID;constraint:OnDelete:CASCADE"`

	// PublishedAt is nil until the order has been announced to the kitchen.
	PublishedAt *time.Time `gorm:"type:timestamptz;index"`
}

func (PlacedOrderDTO) TableName() string {
	return "placed_orders"
}

// PlacedOrderLineDTO is one line item of a placed order, keyed by order and position.
type PlacedOrderLineDTO struct {
	PlacedOrderID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position      int             `gorm:"type:int;primaryKey;autoIncrement:false"`
	Description   string          `gorm:"type:text;not null"`
	Price         decimal.Decimal `gorm:"type:numeric;not null"`
}

func (PlacedOrderLineDTO) TableName() string {
	return "placed_order_lines"
}

func fromDomain(placed *order.PlacedOrder) PlacedOrderDTO {
	id := placed.ID().Bytes()
	totals := placed.Totals()

	lines := make([]PlacedOrderLineDTO, 0, len(placed.Lines()))
	for _, line := range placed.Lines() {
		lines = append(lines, PlacedOrderLineDTO{
			PlacedOrderID: id,
			Position:      line.Position,
			Description:   line.Description,
			Price:         line.Price,
		})
	}

	return PlacedOrderDTO{
		ID:       id,
		Number:   placed.Number(),
		Subtotal: totals.Subtotal,
		SalesTax: totals.SalesTax,
		Total:    totals.Total,
		PlacedAt: placed.PlacedAt(),
		Lines:    lines,
	}
}

// toDomain rebuilds the aggregate from its lines; stored amounts are not
// trusted and are recomputed by RestorePlacedOrder.
func toDomain(dto PlacedOrderDTO) (*order.PlacedOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.PlacedLine, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		lines = append(lines, order.PlacedLine{
			Position:    line.Position,
			Description: line.Description,
			Price:       line.Price,
		})
	}

	return order.RestorePlacedOrder(id, dto.Number, lines, dto.PlacedAt)
}
