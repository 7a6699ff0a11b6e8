package controller

import (
	"errors"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/pkg/serverutils"
	"sneakers-store-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	GetAllMessages(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
	MarkResolved(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
	log     logger.ILogger
}

func NewChatbotController(service service.IChatbotService, log logger.ILogger) IChatbotController {
	return &chatbotController{service: service, log: log}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot")

	// Visitors chat without an account, so sending stays public.
	h.Post("/message", c.SendMessage)

	h.Get("/history/:userId", serverutils.JwtMiddleware, c.GetChatHistory)

	// Admin dashboard
	h.Get("/all", serverutils.JwtMiddleware, serverutils.AdminMiddleware, c.GetAllMessages)
	h.Get("/stats", serverutils.JwtMiddleware, serverutils.AdminMiddleware, c.GetStats)
	h.Put("/:chatId/resolve", serverutils.JwtMiddleware, serverutils.AdminMiddleware, c.MarkResolved)
}

func (c *chatbotController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.SendMessage(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return internalError(ctx, c.log, "chatbot", err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message processed", res))
}

func (c *chatbotController) GetChatHistory(ctx *fiber.Ctx) error {
	userId, err := ctx.ParamsInt("userId")
	if err != nil || userId <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user ID"))
	}

	// Users read their own history; admins read anyone's.
	authedId, _ := ctx.Locals("user_id").(uint)
	role, _ := ctx.Locals("role").(string)
	if role != "admin" && authedId != uint(userId) {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Access denied"))
	}

	res, err := c.service.GetChatHistory(ctx.UserContext(), uint(userId))
	if err != nil {
		return internalError(ctx, c.log, "chatbot", err)
	}

	return ctx.JSON(serverutils.SuccessListResponse("Chat history", len(res), res))
}

func (c *chatbotController) GetAllMessages(ctx *fiber.Ctx) error {
	res, err := c.service.GetAllMessages(ctx.UserContext())
	if err != nil {
		return internalError(ctx, c.log, "chatbot", err)
	}

	return ctx.JSON(serverutils.SuccessListResponse("All chat messages", len(res), res))
}

func (c *chatbotController) GetStats(ctx *fiber.Ctx) error {
	stats, err := c.service.GetStats(ctx.UserContext())
	if err != nil {
		return internalError(ctx, c.log, "chatbot", err)
	}

	return ctx.JSON(fiber.Map{"success": true, "stats": stats})
}

func (c *chatbotController) MarkResolved(ctx *fiber.Ctx) error {
	chatId, err := ctx.ParamsInt("chatId")
	if err != nil || chatId <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid chat ID"))
	}

	res, err := c.service.MarkResolved(ctx.UserContext(), uint(chatId))
	if err != nil {
		if errors.Is(err, service.ErrChatMessageNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return internalError(ctx, c.log, "chatbot", err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat marked as resolved", res))
}
