package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	nextId  uint
	reviews map[uint]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{nextId: 1, reviews: map[uint]*entity.Review{}}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	review.Id = r.nextId
	r.nextId++
	review.CreatedAt = time.Now()
	stored := *review
	r.reviews[review.Id] = &stored
	return nil
}

func (r *fakeReviewRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Review, error) {
	out := make([]*entity.Review, 0, len(r.reviews))
	for _, rev := range r.reviews {
		include := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByUserID:
				if rev.UserId != s.UserID {
					include = false
				}
			case specification.ByProductID:
				if rev.ProductId != s.ProductID {
					include = false
				}
			}
		}
		if include {
			copied := *rev
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id > out[j].Id })
	return out, nil
}

func (r *fakeReviewRepo) FindById(_ context.Context, id uint) (*entity.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	copied := *rev
	return &copied, nil
}

func (r *fakeReviewRepo) ExistsByUserAndProduct(_ context.Context, userId, productId uint) (bool, error) {
	for _, rev := range r.reviews {
		if rev.UserId == userId && rev.ProductId == productId {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) Update(_ context.Context, id uint, rating int, comment string) error {
	rev, ok := r.reviews[id]
	if !ok {
		return nil
	}
	rev.Rating = rating
	rev.Comment = comment
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id uint) error {
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) ProductRating(_ context.Context, productId uint) (*entity.ProductRating, error) {
	var sum, count int64
	for _, rev := range r.reviews {
		if rev.ProductId == productId {
			sum += int64(rev.Rating)
			count++
		}
	}
	rating := &entity.ProductRating{Count: count}
	if count > 0 {
		rating.Average = float64(sum) / float64(count)
	}
	return rating, nil
}

func (r *fakeReviewRepo) Stats(_ context.Context) (*entity.ReviewStats, error) {
	users := map[uint]bool{}
	products := map[uint]bool{}
	var sum int64
	for _, rev := range r.reviews {
		users[rev.UserId] = true
		products[rev.ProductId] = true
		sum += int64(rev.Rating)
	}
	stats := &entity.ReviewStats{
		TotalReviews:        int64(len(r.reviews)),
		TotalReviewers:      int64(len(users)),
		ProductsWithReviews: int64(len(products)),
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalReviews)
	}
	return stats, nil
}

func newTestReviewService() (IReviewService, *fakeReviewRepo) {
	products := &fakeProductRepo{products: map[uint]*entity.Product{
		1: {Id: 1, Name: "Nike Air Max 90", Price: 129.99, Stock: 5},
	}}
	repo := newFakeReviewRepo()
	return NewReviewService(repo, products, logger.NewNopLogger()), repo
}

func TestGetUserReviews(t *testing.T) {
	svc, _ := newTestReviewService()

	_, err := svc.CreateReview(context.Background(), 3, &dto.CreateReviewRequest{ProductId: 1, Rating: 5, Comment: "Excelentes"})
	require.NoError(t, err)

	mine, err := svc.GetUserReviews(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, uint(3), mine[0].UserId)

	other, err := svc.GetUserReviews(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUpdateReviewOwnership(t *testing.T) {
	svc, _ := newTestReviewService()

	created, err := svc.CreateReview(context.Background(), 3, &dto.CreateReviewRequest{ProductId: 1, Rating: 4, Comment: "Buenos"})
	require.NoError(t, err)

	// Another customer cannot touch it.
	_, err = svc.UpdateReview(context.Background(), created.Id, 99, false, &dto.UpdateReviewRequest{Rating: 1, Comment: "no"})
	assert.ErrorIs(t, err, ErrReviewForbidden)

	// The owner can.
	updated, err := svc.UpdateReview(context.Background(), created.Id, 3, false, &dto.UpdateReviewRequest{Rating: 5, Comment: "Excelentes"})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)

	// Admins edit any review, like they delete any.
	updated, err = svc.UpdateReview(context.Background(), created.Id, 99, true, &dto.UpdateReviewRequest{Rating: 3, Comment: "moderado"})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Rating)

	_, err = svc.UpdateReview(context.Background(), 42, 3, true, &dto.UpdateReviewRequest{Rating: 3, Comment: "x"})
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	svc, _ := newTestReviewService()

	_, err := svc.CreateReview(context.Background(), 3, &dto.CreateReviewRequest{ProductId: 1, Rating: 5, Comment: "Excelentes"})
	require.NoError(t, err)

	_, err = svc.CreateReview(context.Background(), 3, &dto.CreateReviewRequest{ProductId: 1, Rating: 1, Comment: "cambié de idea"})
	assert.ErrorIs(t, err, ErrDuplicateReview)
}
