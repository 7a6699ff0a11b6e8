package entity

import (
	"time"

	"sneakers-store-be/pkg/chatbot"
)

// ChatMessage is one user/bot exchange. UserMessage, BotResponse, Intent and
// CreatedAt are fixed at creation; only Resolved (and, administratively,
// Intent) may change afterwards.
type ChatMessage struct {
	Id          uint
	UserId      *uint
	UserMessage string
	BotResponse string
	Intent      chatbot.Intent
	Resolved    bool
	CreatedAt   time.Time
}
