package contract

import (
	"context"

	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/repository/specification"
)

// ReservationRepository persists product reservations. Reads always preload
// the reserved product.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reservation, error)
	FindById(ctx context.Context, id uint) (*entity.Reservation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*entity.Reservation, error)
}
