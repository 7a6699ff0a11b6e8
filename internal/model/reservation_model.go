package model

import "time"

type Reservation struct {
	Id              uint       `gorm:"primaryKey;autoIncrement"`
	UserId          uint       `gorm:"not null;index"`
	ProductId       uint       `gorm:"not null;index"`
	Quantity        int        `gorm:"not null"`
	ReservationDate time.Time  `gorm:"not null"`
	PickupDate      *time.Time
	Status          string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	Notes           *string    `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`

	Product Product `gorm:"foreignKey:ProductId"`
}

func (Reservation) TableName() string {
	return "reservations"
}
