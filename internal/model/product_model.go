package model

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	Id        uint           `gorm:"primaryKey;autoIncrement"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Brand     string         `gorm:"type:varchar(100);not null;index"`
	Price     float64        `gorm:"not null"`
	Image     string         `gorm:"type:text"`
	Stock     int            `gorm:"not null;default:0"`
	Category  string         `gorm:"type:varchar(100);index"`
	Sizes     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
