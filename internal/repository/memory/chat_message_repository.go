package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/repository/contract"
	"sneakers-store-be/internal/repository/specification"
	"sneakers-store-be/pkg/chatbot"
)

// ChatMessageRepository is an in-memory implementation of the chat message
// store, used by unit tests. It interprets the same specification values the
// GORM implementation applies as SQL, so service-level behavior (filters,
// ordering, limits, monotonic ids) can be exercised without a database.
type ChatMessageRepository struct {
	mu       sync.Mutex
	nextId   uint
	messages []*entity.ChatMessage
}

func NewChatMessageRepository() *ChatMessageRepository {
	return &ChatMessageRepository{nextId: 1}
}

func (r *ChatMessageRepository) Create(_ context.Context, message *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	message.Id = r.nextId
	r.nextId++
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	if message.Intent == "" {
		message.Intent = chatbot.IntentGeneral
	}
	stored := *message
	r.messages = append(r.messages, &stored)
	return nil
}

func (r *ChatMessageRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]*entity.ChatMessage, 0, len(r.messages))
	for _, m := range r.messages {
		if matches(m, specs) {
			copied := *m
			filtered = append(filtered, &copied)
		}
	}

	for _, spec := range specs {
		if order, ok := spec.(specification.OrderBy); ok && order.Field == "created_at" {
			sort.SliceStable(filtered, func(i, j int) bool {
				if order.Desc {
					return newerThan(filtered[i], filtered[j])
				}
				return newerThan(filtered[j], filtered[i])
			})
		}
	}

	for _, spec := range specs {
		if limit, ok := spec.(specification.Limit); ok && len(filtered) > limit.Limit {
			filtered = filtered[:limit.Limit]
		}
	}
	return filtered, nil
}

func (r *ChatMessageRepository) FindById(_ context.Context, id uint) (*entity.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.messages {
		if m.Id == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *ChatMessageRepository) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, m := range r.messages {
		if matches(m, specs) {
			count++
		}
	}
	return count, nil
}

func (r *ChatMessageRepository) UpdateFields(_ context.Context, id uint, fields map[string]interface{}) (*entity.ChatMessage, error) {
	if len(fields) == 0 {
		return nil, contract.ErrNoFields
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.messages {
		if m.Id != id {
			continue
		}
		if v, ok := fields["resolved"]; ok {
			if resolved, ok := v.(bool); ok {
				m.Resolved = resolved
			}
		}
		if v, ok := fields["intent"]; ok {
			if intent, ok := v.(string); ok {
				m.Intent = chatbot.Intent(intent)
			}
		}
		copied := *m
		return &copied, nil
	}
	return nil, contract.ErrNotFound
}

// newerThan orders by creation time, falling back to id when timestamps
// collide (ids are monotonic).
func newerThan(a, b *entity.ChatMessage) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.Id > b.Id
}

func matches(m *entity.ChatMessage, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByUserID:
			if m.UserId == nil || *m.UserId != s.UserID {
				return false
			}
		case specification.ByResolved:
			if m.Resolved != s.Resolved {
				return false
			}
		}
	}
	return true
}
