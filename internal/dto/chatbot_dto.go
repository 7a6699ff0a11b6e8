package dto

import "time"

type SendMessageRequest struct {
	UserId      *uint  `json:"userId"`
	UserMessage string `json:"userMessage"`
}

type ChatMessageResponse struct {
	Id          uint      `json:"id"`
	UserId      *uint     `json:"userId"`
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	Intent      string    `json:"intent"`
	Resolved    bool      `json:"resolved"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ChatStatsResponse struct {
	TotalMessages      int64          `json:"totalMessages"`
	ResolvedMessages   int64          `json:"resolvedMessages"`
	ResolutionRate     string         `json:"resolutionRate"`
	IntentDistribution map[string]int `json:"intentDistribution"`
}

// ChatMessageCreatedEvent is the payload published on the event bus after a
// message is persisted.
type ChatMessageCreatedEvent struct {
	Id          uint      `json:"id"`
	UserId      *uint     `json:"userId"`
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	Intent      string    `json:"intent"`
	CreatedAt   time.Time `json:"createdAt"`
}
