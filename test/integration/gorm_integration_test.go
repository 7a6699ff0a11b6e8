package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/repository/contract"
	"sneakers-store-be/internal/repository/implementation"
	"sneakers-store-be/internal/repository/specification"
	"sneakers-store-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB")

	chatRepo := implementation.NewChatMessageRepository(gormDB)
	productRepo := implementation.NewProductRepository(gormDB)

	t.Run("Check Chat Message Repository", func(t *testing.T) {
		count, err := chatRepo.Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Chat message count: %d", count)
	})

	t.Run("Check Product Repository", func(t *testing.T) {
		count, err := productRepo.Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Product count: %d", count)
	})

	t.Run("Chat Message Round Trip", func(t *testing.T) {
		msg := &entity.ChatMessage{
			UserMessage: "integration test message",
			BotResponse: "integration test reply",
			Intent:      "general",
		}
		require.NoError(t, chatRepo.Create(context.Background(), msg))
		require.NotZero(t, msg.Id)

		found, err := chatRepo.FindById(context.Background(), msg.Id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, msg.UserMessage, found.UserMessage)
		assert.False(t, found.CreatedAt.IsZero())

		unresolved, err := chatRepo.FindAll(context.Background(),
			specification.ByResolved{Resolved: false},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Limit{Limit: 10},
		)
		require.NoError(t, err)
		assert.NotEmpty(t, unresolved)

		// An update without fields is rejected before touching the DB.
		_, err = chatRepo.UpdateFields(context.Background(), msg.Id, map[string]interface{}{})
		assert.ErrorIs(t, err, contract.ErrNoFields)
	})
}
