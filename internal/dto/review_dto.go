package dto

import "time"

type CreateReviewRequest struct {
	ProductId uint   `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReviewResponse struct {
	Id          uint      `json:"id"`
	ProductId   uint      `json:"productId"`
	UserId      uint      `json:"userId"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Username    string    `json:"username,omitempty"`
	ProductName string    `json:"productName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductRatingResponse struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type ProductReviewsResponse struct {
	Reviews []*ReviewResponse     `json:"reviews"`
	Rating  ProductRatingResponse `json:"rating"`
}

type ReviewStatsResponse struct {
	TotalReviews        int64   `json:"totalReviews"`
	AverageRating       float64 `json:"averageRating"`
	TotalReviewers      int64   `json:"totalReviewers"`
	ProductsWithReviews int64   `json:"productsWithReviews"`
}
