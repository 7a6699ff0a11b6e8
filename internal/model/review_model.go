package model

import "time"

type Review struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	ProductId uint      `gorm:"not null;uniqueIndex:idx_reviews_user_product"`
	UserId    uint      `gorm:"not null;uniqueIndex:idx_reviews_user_product"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	User    User    `gorm:"foreignKey:UserId"`
	Product Product `gorm:"foreignKey:ProductId"`
}

func (Review) TableName() string {
	return "reviews"
}
