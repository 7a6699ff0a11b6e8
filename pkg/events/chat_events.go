package events

import "time"

const TypeChatMessageCreated = "CHAT_MESSAGE_CREATED"

// TopicChatMessageCreated is the in-process bus topic chat submissions are
// fanned out on.
const TopicChatMessageCreated = "chatbot.message.created"

// NewChatMessageCreated builds the event emitted after a chat message is
// persisted.
func NewChatMessageCreated(id uint, userId *uint, userMessage, intent string) Event {
	data := map[string]interface{}{
		"id":           id,
		"user_message": userMessage,
		"intent":       intent,
	}
	if userId != nil {
		data["user_id"] = *userId
	}
	return BaseEvent{
		Type:       TypeChatMessageCreated,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
