package dto

import "time"

// ProductFilter carries the optional catalog filters; empty fields are
// ignored when building the query.
type ProductFilter struct {
	Brand    string
	Category string
}

type ProductResponse struct {
	Id        uint      `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	Sizes     []string  `json:"sizes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
