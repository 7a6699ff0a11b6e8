package model

import "time"

// ChatMessage rows are append-mostly: the insert assigns id and created_at,
// and only resolved/intent are ever updated afterwards.
type ChatMessage struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	UserId      *uint     `gorm:"index"`
	UserMessage string    `gorm:"type:text;not null"`
	BotResponse string    `gorm:"type:text;not null"`
	Intent      string    `gorm:"type:varchar(50);not null;default:'general'"`
	Resolved    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
