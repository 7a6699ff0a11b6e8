package service

import (
	"context"
	"errors"
	"math"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/repository/contract"
	"sneakers-store-be/internal/repository/specification"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("you have already reviewed this product")
	ErrReviewForbidden = errors.New("review belongs to another user")
)

type IReviewService interface {
	CreateReview(ctx context.Context, userId uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetProductReviews(ctx context.Context, productId uint) (*dto.ProductReviewsResponse, error)
	GetUserReviews(ctx context.Context, userId uint) ([]*dto.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewId, userId uint, isAdmin bool, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewId, userId uint, isAdmin bool) error
	GetStats(ctx context.Context) (*dto.ReviewStatsResponse, error)
}

type reviewService struct {
	reviewRepo  contract.ReviewRepository
	productRepo contract.ProductRepository
	log         logger.ILogger
}

func NewReviewService(
	reviewRepo contract.ReviewRepository,
	productRepo contract.ProductRepository,
	log logger.ILogger,
) IReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		log:         log,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userId uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	product, err := s.productRepo.FindById(ctx, req.ProductId)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	exists, err := s.reviewRepo.ExistsByUserAndProduct(ctx, userId, req.ProductId)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	review := &entity.Review{
		ProductId: req.ProductId,
		UserId:    userId,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) GetProductReviews(ctx context.Context, productId uint) (*dto.ProductReviewsResponse, error) {
	reviews, err := s.reviewRepo.FindAll(ctx,
		specification.ByProductID{ProductID: productId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	rating, err := s.reviewRepo.ProductRating(ctx, productId)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}

	return &dto.ProductReviewsResponse{
		Reviews: out,
		Rating: dto.ProductRatingResponse{
			Average: roundRating(rating.Average),
			Count:   rating.Count,
		},
	}, nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userId uint) ([]*dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	return out, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewId, userId uint, isAdmin bool, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindById(ctx, reviewId)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if !isAdmin && review.UserId != userId {
		return nil, ErrReviewForbidden
	}

	if err := s.reviewRepo.Update(ctx, reviewId, req.Rating, req.Comment); err != nil {
		return nil, err
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	return toReviewResponse(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewId, userId uint, isAdmin bool) error {
	review, err := s.reviewRepo.FindById(ctx, reviewId)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if !isAdmin && review.UserId != userId {
		return ErrReviewForbidden
	}

	return s.reviewRepo.Delete(ctx, reviewId)
}

func (s *reviewService) GetStats(ctx context.Context) (*dto.ReviewStatsResponse, error) {
	stats, err := s.reviewRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReviewStatsResponse{
		TotalReviews:        stats.TotalReviews,
		AverageRating:       roundRating(stats.AverageRating),
		TotalReviewers:      stats.TotalReviewers,
		ProductsWithReviews: stats.ProductsWithReviews,
	}, nil
}

// roundRating keeps averages to one decimal, matching what the storefront
// displays.
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		Id:          r.Id,
		ProductId:   r.ProductId,
		UserId:      r.UserId,
		Rating:      r.Rating,
		Comment:     r.Comment,
		Username:    r.Username,
		ProductName: r.ProductName,
		CreatedAt:   r.CreatedAt,
	}
}
