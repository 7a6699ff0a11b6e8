package mapper

import (
	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/model"
	"sneakers-store-be/pkg/chatbot"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToModel(e *entity.ChatMessage) *model.ChatMessage {
	return &model.ChatMessage{
		Id:          e.Id,
		UserId:      e.UserId,
		UserMessage: e.UserMessage,
		BotResponse: e.BotResponse,
		Intent:      string(e.Intent),
		Resolved:    e.Resolved,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *ChatMapper) ToEntity(mo *model.ChatMessage) *entity.ChatMessage {
	return &entity.ChatMessage{
		Id:          mo.Id,
		UserId:      mo.UserId,
		UserMessage: mo.UserMessage,
		BotResponse: mo.BotResponse,
		Intent:      chatbot.Intent(mo.Intent),
		Resolved:    mo.Resolved,
		CreatedAt:   mo.CreatedAt,
	}
}
