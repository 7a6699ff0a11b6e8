package entity

import "time"

type Review struct {
	Id        uint
	ProductId uint
	UserId    uint
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Denormalized display fields, populated on joined reads.
	Username    string
	ProductName string
}

// ProductRating is the aggregate rating of one product.
type ProductRating struct {
	Average float64
	Count   int64
}

// ReviewStats is the admin-facing aggregate over all reviews.
type ReviewStats struct {
	TotalReviews        int64
	AverageRating       float64
	TotalReviewers      int64
	ProductsWithReviews int64
}
