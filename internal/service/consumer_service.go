package service

import (
	"context"
	"encoding/json"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/pkg/mailer"
	internalWS "sneakers-store-be/internal/websocket"
	"sneakers-store-be/pkg/chatbot"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the chat event topic: every created message is
// pushed to the admin live feed, and support requests additionally wake the
// support inbox.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	hub          *internalWS.Hub
	emailService mailer.IEmailService // nil when SMTP is not configured
	supportEmail string
	log          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *internalWS.Hub,
	emailService mailer.IEmailService,
	supportEmail string,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		hub:          hub,
		emailService: emailService,
		supportEmail: supportEmail,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.ChatMessageCreatedEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal chat event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.hub != nil {
		cs.hub.Broadcast("chat_message", payload)
	}

	if payload.Intent == string(chatbot.IntentSupport) && cs.emailService != nil && cs.supportEmail != "" {
		// Email delivery must not stall the consumer loop.
		go func(p dto.ChatMessageCreatedEvent) {
			if err := cs.emailService.SendSupportAlert(cs.supportEmail, p.UserMessage, p.BotResponse, p.Id); err != nil {
				cs.log.Warn("consumer", "support alert failed", map[string]interface{}{"error": err.Error(), "chat_id": p.Id})
			}
		}(payload)
	}

	msg.Ack()
}
