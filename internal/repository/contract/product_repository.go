package contract

import (
	"context"

	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	FindById(ctx context.Context, id uint) (*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
