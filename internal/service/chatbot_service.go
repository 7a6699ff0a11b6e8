package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/repository/contract"
	"sneakers-store-be/internal/repository/specification"
	"sneakers-store-be/pkg/chatbot"
	"sneakers-store-be/pkg/events"
	natspkg "sneakers-store-be/pkg/nats"

	gocache "github.com/patrickmn/go-cache"
)

var (
	ErrEmptyMessage        = errors.New("El mensaje no puede estar vacío")
	ErrChatMessageNotFound = errors.New("chat message not found")
)

const (
	statsCacheKey = "chatbot:stats"

	// intentSampleSize bounds the window the intent distribution is
	// computed over, so stats stay cheap as the log grows.
	intentSampleSize = 100

	// historyLimit and adminHistoryLimit cap the two listings; the widget
	// and the dashboard only render the newest page.
	historyLimit      = 50
	adminHistoryLimit = 100
)

// IChatbotService is the application service behind the chatbot endpoints.
type IChatbotService interface {
	SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.ChatMessageResponse, error)
	GetChatHistory(ctx context.Context, userId uint) ([]*dto.ChatMessageResponse, error)
	GetAllMessages(ctx context.Context) ([]*dto.ChatMessageResponse, error)
	GetStats(ctx context.Context) (*dto.ChatStatsResponse, error)
	MarkResolved(ctx context.Context, chatId uint) (*dto.ChatMessageResponse, error)
}

type chatbotService struct {
	chatRepo   contract.ChatMessageRepository
	classifier *chatbot.Classifier
	responder  *chatbot.Responder
	publisher  IPublisherService
	natsPub    *natspkg.Publisher // nil when NATS is not configured
	statsCache *gocache.Cache
	log        logger.ILogger
}

func NewChatbotService(
	chatRepo contract.ChatMessageRepository,
	publisher IPublisherService,
	natsPub *natspkg.Publisher,
	statsCache *gocache.Cache,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		chatRepo:   chatRepo,
		classifier: chatbot.NewClassifier(),
		responder:  chatbot.NewResponder(),
		publisher:  publisher,
		natsPub:    natsPub,
		statsCache: statsCache,
		log:        log,
	}
}

// SendMessage classifies the message, generates the reply, persists the
// exchange and fans the created event out. Classification and response
// generation both read the raw message independently, so their rule tables
// may disagree about what a message is "about".
func (cs *chatbotService) SendMessage(ctx context.Context, request *dto.SendMessageRequest) (*dto.ChatMessageResponse, error) {
	if strings.TrimSpace(request.UserMessage) == "" {
		return nil, ErrEmptyMessage
	}

	intent := cs.classifier.Classify(request.UserMessage)
	reply := cs.responder.Respond(request.UserMessage)

	msg := &entity.ChatMessage{
		UserId:      request.UserId,
		UserMessage: request.UserMessage,
		BotResponse: reply,
		Intent:      intent,
	}

	if err := cs.chatRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	cs.statsCache.Delete(statsCacheKey)
	cs.publishCreated(ctx, msg)

	return toChatMessageResponse(msg), nil
}

// publishCreated fans the event out without failing the request; the reply
// was already persisted and delivery to side channels is auxiliary.
func (cs *chatbotService) publishCreated(ctx context.Context, msg *entity.ChatMessage) {
	evt := dto.ChatMessageCreatedEvent{
		Id:          msg.Id,
		UserId:      msg.UserId,
		UserMessage: msg.UserMessage,
		BotResponse: msg.BotResponse,
		Intent:      string(msg.Intent),
		CreatedAt:   msg.CreatedAt,
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		cs.log.Error("chatbot", "failed to marshal created event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := cs.publisher.Publish(ctx, payload); err != nil {
		cs.log.Warn("chatbot", "failed to publish created event", map[string]interface{}{"error": err.Error()})
	}

	if cs.natsPub != nil {
		ev := events.NewChatMessageCreated(msg.Id, msg.UserId, msg.UserMessage, string(msg.Intent))
		if err := cs.natsPub.Publish(ctx, ev); err != nil {
			cs.log.Warn("chatbot", "failed to mirror event to NATS", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (cs *chatbotService) GetChatHistory(ctx context.Context, userId uint) ([]*dto.ChatMessageResponse, error) {
	messages, err := cs.chatRepo.FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: historyLimit},
	)
	if err != nil {
		return nil, err
	}
	return toChatMessageResponses(messages), nil
}

func (cs *chatbotService) GetAllMessages(ctx context.Context) ([]*dto.ChatMessageResponse, error) {
	messages, err := cs.chatRepo.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: adminHistoryLimit},
	)
	if err != nil {
		return nil, err
	}
	return toChatMessageResponses(messages), nil
}

// GetStats aggregates totals, resolution rate and the intent distribution
// over the most recent messages. Results are memoized briefly since the
// admin dashboard polls this endpoint.
func (cs *chatbotService) GetStats(ctx context.Context) (*dto.ChatStatsResponse, error) {
	if cached, found := cs.statsCache.Get(statsCacheKey); found {
		if stats, ok := cached.(*dto.ChatStatsResponse); ok {
			return stats, nil
		}
	}

	total, err := cs.chatRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	resolved, err := cs.chatRepo.Count(ctx, specification.ByResolved{Resolved: true})
	if err != nil {
		return nil, err
	}

	rate := "0.00%"
	if total > 0 {
		rate = fmt.Sprintf("%.2f%%", float64(resolved)/float64(total)*100)
	}

	recent, err := cs.chatRepo.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: intentSampleSize},
	)
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int)
	for _, msg := range recent {
		distribution[string(msg.Intent)]++
	}

	stats := &dto.ChatStatsResponse{
		TotalMessages:      total,
		ResolvedMessages:   resolved,
		ResolutionRate:     rate,
		IntentDistribution: distribution,
	}

	cs.statsCache.Set(statsCacheKey, stats, gocache.DefaultExpiration)
	return stats, nil
}

func (cs *chatbotService) MarkResolved(ctx context.Context, chatId uint) (*dto.ChatMessageResponse, error) {
	updated, err := cs.chatRepo.UpdateFields(ctx, chatId, map[string]interface{}{"resolved": true})
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrChatMessageNotFound
		}
		return nil, err
	}

	cs.statsCache.Delete(statsCacheKey)
	return toChatMessageResponse(updated), nil
}

func toChatMessageResponse(msg *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:          msg.Id,
		UserId:      msg.UserId,
		UserMessage: msg.UserMessage,
		BotResponse: msg.BotResponse,
		Intent:      string(msg.Intent),
		Resolved:    msg.Resolved,
		CreatedAt:   msg.CreatedAt,
	}
}

func toChatMessageResponses(messages []*entity.ChatMessage) []*dto.ChatMessageResponse {
	out := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toChatMessageResponse(m))
	}
	return out
}
