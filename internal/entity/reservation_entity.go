package entity

import "time"

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusReady     = "ready"
	ReservationStatusPickedUp  = "picked_up"
	ReservationStatusCancelled = "cancelled"
)

// ReservationStatuses is the full set of accepted status values.
var ReservationStatuses = []string{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusReady,
	ReservationStatusPickedUp,
	ReservationStatusCancelled,
}

func IsValidReservationStatus(status string) bool {
	for _, s := range ReservationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Reservation struct {
	Id              uint
	UserId          uint
	ProductId       uint
	Quantity        int
	ReservationDate time.Time
	PickupDate      *time.Time
	Status          string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Product is populated when the reservation is loaded with its product.
	Product *Product
}
