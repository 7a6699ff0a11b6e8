package dto

import "time"

type CreateReservationRequest struct {
	UserId          uint      `json:"userId" validate:"required"`
	ProductId       uint      `json:"productId" validate:"required"`
	Quantity        int       `json:"quantity" validate:"required,min=1"`
	ReservationDate time.Time `json:"reservationDate" validate:"required"`
	Notes           *string   `json:"notes"`
}

type UpdateReservationRequest struct {
	Status     string     `json:"status" validate:"required"`
	PickupDate *time.Time `json:"pickupDate"`
}

type ReservationProduct struct {
	Id    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type ReservationResponse struct {
	Id              uint                `json:"id"`
	UserId          uint                `json:"userId"`
	ProductId       uint                `json:"productId"`
	Quantity        int                 `json:"quantity"`
	ReservationDate time.Time           `json:"reservationDate"`
	PickupDate      *time.Time          `json:"pickupDate"`
	Status          string              `json:"status"`
	Notes           *string             `json:"notes"`
	CreatedAt       time.Time           `json:"createdAt"`
	Product         *ReservationProduct `json:"product,omitempty"`
}

type ReservationListResponse struct {
	Total        int64                  `json:"total"`
	Reservations []*ReservationResponse `json:"reservations"`
}

type ReservationStatsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}
