package implementation

import (
	"context"
	"errors"

	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/mapper"
	"sneakers-store-be/internal/model"
	"sneakers-store-be/internal/repository/contract"
	"sneakers-store-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) contract.ReviewRepository {
	return &ReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewMapper(),
	}
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *entity.Review) error {
	m := r.mapper.ToModel(review)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	created, err := r.FindById(ctx, m.Id)
	if err != nil {
		return err
	}
	*review = *created
	return nil
}

func (r *ReviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Review, error) {
	var models []*model.Review
	query := applySpecifications(r.db.WithContext(ctx).Preload("User").Preload("Product"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Review, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ReviewRepositoryImpl) FindById(ctx context.Context, id uint) (*entity.Review, error) {
	var m model.Review
	if err := r.db.WithContext(ctx).Preload("User").Preload("Product").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReviewRepositoryImpl) ExistsByUserAndProduct(ctx context.Context, userId, productId uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("user_id = ? AND product_id = ?", userId, productId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReviewRepositoryImpl) Update(ctx context.Context, id uint, rating int, comment string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "comment": comment})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) ProductRating(ctx context.Context, productId uint) (*entity.ProductRating, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ?", productId).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &entity.ProductRating{Average: row.Average, Count: row.Count}, nil
}

func (r *ReviewRepositoryImpl) Stats(ctx context.Context) (*entity.ReviewStats, error) {
	var row struct {
		TotalReviews        int64
		AverageRating       float64
		TotalReviewers      int64
		ProductsWithReviews int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Select("COUNT(*) AS total_reviews, COALESCE(AVG(rating), 0) AS average_rating, COUNT(DISTINCT user_id) AS total_reviewers, COUNT(DISTINCT product_id) AS products_with_reviews").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &entity.ReviewStats{
		TotalReviews:        row.TotalReviews,
		AverageRating:       row.AverageRating,
		TotalReviewers:      row.TotalReviewers,
		ProductsWithReviews: row.ProductsWithReviews,
	}, nil
}
