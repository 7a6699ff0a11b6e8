package contract

import (
	"context"

	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/repository/specification"
)

// ChatMessageRepository is the persistence contract of the chat message log.
// Create assigns Id and CreatedAt on the passed entity. FindById returns
// (nil, nil) when the id is unknown. UpdateFields patches only the given
// columns and returns ErrNotFound when no row matched, ErrNoFields when the
// field map is empty.
type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	FindById(ctx context.Context, id uint) (*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*entity.ChatMessage, error)
}
