package service

import (
	"context"
	"testing"
	"time"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/repository/memory"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopPublisher struct {
	published [][]byte
}

func (p *noopPublisher) Publish(_ context.Context, payload []byte) error {
	p.published = append(p.published, payload)
	return nil
}

func newTestChatbotService() (IChatbotService, *memory.ChatMessageRepository, *noopPublisher) {
	repo := memory.NewChatMessageRepository()
	pub := &noopPublisher{}
	cache := gocache.New(time.Minute, time.Minute)
	svc := NewChatbotService(repo, pub, nil, cache, logger.NewNopLogger())
	return svc, repo, pub
}

func TestSendMessageRejectsEmptyMessage(t *testing.T) {
	svc, repo, pub := newTestChatbotService()

	for _, msg := range []string{"", "   ", "\t\n"} {
		_, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{UserMessage: msg})
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count, "rejected messages must not be persisted")
	assert.Empty(t, pub.published, "rejected messages must not be published")
}

func TestSendMessagePersistsAndClassifies(t *testing.T) {
	svc, _, pub := newTestChatbotService()

	userId := uint(7)
	res, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		UserId:      &userId,
		UserMessage: "¿Cuánto cuesta el Nike Air Max?",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), res.Id)
	assert.Equal(t, "product_inquiry", res.Intent)
	assert.NotEmpty(t, res.BotResponse)
	assert.False(t, res.Resolved)
	require.NotNil(t, res.UserId)
	assert.Equal(t, userId, *res.UserId)

	assert.Len(t, pub.published, 1)
}

func TestSendMessageAssignsMonotonicIds(t *testing.T) {
	svc, _, _ := newTestChatbotService()

	first, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{UserMessage: "Hola"})
	require.NoError(t, err)
	second, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{UserMessage: "Gracias"})
	require.NoError(t, err)

	assert.Greater(t, second.Id, first.Id)
}

func TestGetChatHistoryFiltersByUser(t *testing.T) {
	svc, _, _ := newTestChatbotService()

	alice, bob := uint(1), uint(2)
	for _, req := range []*dto.SendMessageRequest{
		{UserId: &alice, UserMessage: "Hola"},
		{UserId: &bob, UserMessage: "¿Hacen envíos?"},
		{UserId: &alice, UserMessage: "Gracias"},
		{UserMessage: "mensaje anónimo"},
	} {
		_, err := svc.SendMessage(context.Background(), req)
		require.NoError(t, err)
	}

	history, err := svc.GetChatHistory(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, msg := range history {
		require.NotNil(t, msg.UserId)
		assert.Equal(t, alice, *msg.UserId)
	}

	all, err := svc.GetAllMessages(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestGetChatHistoryCapsAtFifty(t *testing.T) {
	svc, repo, _ := newTestChatbotService()

	userId := uint(1)
	base := time.Now().Add(-2 * time.Hour)
	for i := 0; i < 120; i++ {
		msg := &entity.ChatMessage{
			UserId:      &userId,
			UserMessage: "Hola",
			BotResponse: "¡Hola!",
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Create(context.Background(), msg))
	}

	history, err := svc.GetChatHistory(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, history, 50)

	// The page holds the newest messages, newest first.
	assert.Equal(t, uint(120), history[0].Id)
	assert.Equal(t, uint(71), history[49].Id)
}

func TestGetAllMessagesCapsAtHundred(t *testing.T) {
	svc, repo, _ := newTestChatbotService()

	base := time.Now().Add(-2 * time.Hour)
	for i := 0; i < 120; i++ {
		msg := &entity.ChatMessage{
			UserMessage: "Hola",
			BotResponse: "¡Hola!",
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Create(context.Background(), msg))
	}

	all, err := svc.GetAllMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 100)
	assert.Equal(t, uint(120), all[0].Id)
	assert.Equal(t, uint(21), all[99].Id)
}

func TestGetStatsEmptyStore(t *testing.T) {
	svc, _, _ := newTestChatbotService()

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalMessages)
	assert.Zero(t, stats.ResolvedMessages)
	assert.Equal(t, "0.00%", stats.ResolutionRate)
	assert.Empty(t, stats.IntentDistribution)
}

func TestGetStatsResolutionRate(t *testing.T) {
	svc, _, _ := newTestChatbotService()

	var ids []uint
	for _, msg := range []string{"Hola", "¿Cuánto cuesta?", "dónde está mi pedido", "hablar con un agente"} {
		res, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{UserMessage: msg})
		require.NoError(t, err)
		ids = append(ids, res.Id)
	}

	for _, id := range ids[:3] {
		_, err := svc.MarkResolved(context.Background(), id)
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalMessages)
	assert.Equal(t, int64(3), stats.ResolvedMessages)
	assert.Equal(t, "75.00%", stats.ResolutionRate)

	var sampled int
	for _, n := range stats.IntentDistribution {
		sampled += n
	}
	assert.Equal(t, 4, sampled)
}

func TestGetStatsIsCached(t *testing.T) {
	svc, _, _ := newTestChatbotService()

	_, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{UserMessage: "Hola"})
	require.NoError(t, err)

	first, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	second, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second, "second read within TTL should come from cache")

	// A new message invalidates the memo.
	_, err = svc.SendMessage(context.Background(), &dto.SendMessageRequest{UserMessage: "Gracias"})
	require.NoError(t, err)

	third, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), third.TotalMessages)
}

func TestMarkResolved(t *testing.T) {
	svc, _, _ := newTestChatbotService()

	res, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{UserMessage: "Hola"})
	require.NoError(t, err)
	assert.False(t, res.Resolved)

	updated, err := svc.MarkResolved(context.Background(), res.Id)
	require.NoError(t, err)
	assert.True(t, updated.Resolved)

	// Resolving twice is harmless.
	again, err := svc.MarkResolved(context.Background(), res.Id)
	require.NoError(t, err)
	assert.True(t, again.Resolved)
}

func TestMarkResolvedUnknownId(t *testing.T) {
	svc, _, _ := newTestChatbotService()

	_, err := svc.MarkResolved(context.Background(), 999)
	assert.ErrorIs(t, err, ErrChatMessageNotFound)
}
