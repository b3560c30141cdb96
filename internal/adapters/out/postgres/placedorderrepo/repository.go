package placedorderrepo

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPlacedOrderRepository implements PlacedOrderRepository using GORM.
type GormPlacedOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPlacedOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPlacedOrderRepository {
	return &GormPlacedOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores a placed order together with its lines.
func (r *GormPlacedOrderRepository) Add(ctx context.Context, aggregate *order.PlacedOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a placed order by ID.
func (r *GormPlacedOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.PlacedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PlacedOrderDTO
	if err := r.withLines(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("placed order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns every placed order, oldest first.
func (r *GormPlacedOrderRepository) List(ctx context.Context) ([]*order.PlacedOrder, error) {
	var dtos []PlacedOrderDTO
	if err := r.withLines(ctx).Order("placed_at, number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	placed := make([]*order.PlacedOrder, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		placed = append(placed, p)
	}

	return placed, nil
}

// Unpublished returns up to limit orders not yet announced, oldest first.
// Rows locked by a concurrent relay are skipped.
func (r *GormPlacedOrderRepository) Unpublished(ctx context.Context, limit int) ([]*order.PlacedOrder, error) {
	var dtos []PlacedOrderDTO
	err := r.withLines(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("placed_at, number").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	placed := make([]*order.PlacedOrder, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		placed = append(placed, p)
	}

	return placed, nil
}

// MarkPublished stamps the order as announced at the given time.
func (r *GormPlacedOrderRepository) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&PlacedOrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("published_at", at.UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("placed order", id.String())
	}

	return nil
}

func (r *GormPlacedOrderRepository) withLines(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
