package contract

import (
	"context"

	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/repository/specification"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error)
	FindById(ctx context.Context, id uint) (*entity.Review, error)
	ExistsByUserAndProduct(ctx context.Context, userId, productId uint) (bool, error)
	Update(ctx context.Context, id uint, rating int, comment string) error
	Delete(ctx context.Context, id uint) error
	ProductRating(ctx context.Context, productId uint) (*entity.ProductRating, error)
	Stats(ctx context.Context) (*entity.ReviewStats, error)
}
