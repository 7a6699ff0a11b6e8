package entity

import "time"

type Product struct {
	Id        uint
	Name      string
	Brand     string
	Price     float64
	Image     string
	Stock     int
	Category  string
	Sizes     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
