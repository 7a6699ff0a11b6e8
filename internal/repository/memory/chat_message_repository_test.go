package memory

import (
	"context"
	"testing"

	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFieldsRejectsEmptyFieldMap(t *testing.T) {
	repo := NewChatMessageRepository()

	msg := &entity.ChatMessage{UserMessage: "Hola", BotResponse: "¡Hola!"}
	require.NoError(t, repo.Create(context.Background(), msg))

	updated, err := repo.UpdateFields(context.Background(), msg.Id, map[string]interface{}{})
	assert.ErrorIs(t, err, contract.ErrNoFields)
	assert.Nil(t, updated)

	// The stored record is untouched.
	stored, err := repo.FindById(context.Background(), msg.Id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Resolved)
}

func TestUpdateFieldsUnknownId(t *testing.T) {
	repo := NewChatMessageRepository()

	_, err := repo.UpdateFields(context.Background(), 42, map[string]interface{}{"resolved": true})
	assert.ErrorIs(t, err, contract.ErrNotFound)
}
