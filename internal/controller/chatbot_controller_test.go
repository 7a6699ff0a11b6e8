package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatbotService struct {
	sent    []dto.SendMessageRequest
	sendErr error
}

func (s *stubChatbotService) SendMessage(_ context.Context, req *dto.SendMessageRequest) (*dto.ChatMessageResponse, error) {
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	if strings.TrimSpace(req.UserMessage) == "" {
		return nil, service.ErrEmptyMessage
	}
	s.sent = append(s.sent, *req)
	return &dto.ChatMessageResponse{
		Id:          uint(len(s.sent)),
		UserId:      req.UserId,
		UserMessage: req.UserMessage,
		BotResponse: "¡Hola! 👟 Bienvenido a Sneakers Store.",
		Intent:      "general",
		CreatedAt:   time.Now(),
	}, nil
}

func (s *stubChatbotService) GetChatHistory(context.Context, uint) ([]*dto.ChatMessageResponse, error) {
	return nil, nil
}

func (s *stubChatbotService) GetAllMessages(context.Context) ([]*dto.ChatMessageResponse, error) {
	return nil, nil
}

func (s *stubChatbotService) GetStats(context.Context) (*dto.ChatStatsResponse, error) {
	return &dto.ChatStatsResponse{ResolutionRate: "0.00%", IntentDistribution: map[string]int{}}, nil
}

func (s *stubChatbotService) MarkResolved(_ context.Context, chatId uint) (*dto.ChatMessageResponse, error) {
	if chatId == 999 {
		return nil, service.ErrChatMessageNotFound
	}
	return &dto.ChatMessageResponse{Id: chatId, Resolved: true}, nil
}

func newTestApp(svc service.IChatbotService) *fiber.App {
	app := fiber.New()
	NewChatbotController(svc, logger.NewNopLogger()).RegisterRoutes(app.Group("/api"))
	return app
}

func TestSendMessageEndpoint(t *testing.T) {
	svc := &stubChatbotService{}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/api/chatbot/message", strings.NewReader(`{"userMessage":"Hola"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Success bool                    `json:"success"`
		Message string                  `json:"message"`
		Data    dto.ChatMessageResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Hola", envelope.Data.UserMessage)
	assert.Equal(t, "general", envelope.Data.Intent)
	assert.NotEmpty(t, envelope.Data.BotResponse)

	require.Len(t, svc.sent, 1)
}

func TestSendMessageEndpointRejectsEmpty(t *testing.T) {
	svc := &stubChatbotService{}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/api/chatbot/message", strings.NewReader(`{"userMessage":"   "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, svc.sent, "empty message must not reach persistence")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "El mensaje no puede estar vacío")
}

func TestSendMessageEndpointRejectsBadBody(t *testing.T) {
	app := newTestApp(&stubChatbotService{})

	req := httptest.NewRequest("POST", "/api/chatbot/message", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSendMessageEndpointHidesInternalErrors(t *testing.T) {
	svc := &stubChatbotService{sendErr: errors.New(`pq: relation "chat_messages" does not exist`)}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/api/chatbot/message", strings.NewReader(`{"userMessage":"Hola"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Internal server error", envelope.Message)
	assert.NotContains(t, string(body), "chat_messages", "database detail must not reach the client")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := newTestApp(&stubChatbotService{})

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/chatbot/all"},
		{"GET", "/api/chatbot/stats"},
		{"PUT", "/api/chatbot/1/resolve"},
		{"GET", "/api/chatbot/history/1"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s should require a token", route.method, route.path)
	}
}
