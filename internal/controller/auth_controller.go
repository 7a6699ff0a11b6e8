package controller

import (
	"errors"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/pkg/serverutils"
	"sneakers-store-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	CheckAdmin(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	log     logger.ILogger
}

func NewAuthController(service service.IAuthService, log logger.ILogger) IAuthController {
	return &authController{service: service, log: log}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Get("/profile", serverutils.JwtMiddleware, c.GetProfile)
	h.Get("/check-admin", serverutils.JwtMiddleware, c.CheckAdmin)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return internalError(ctx, c.log, "auth", err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("User registered", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
		}
		return internalError(ctx, c.log, "auth", err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) GetProfile(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(uint)

	res, err := c.service.GetProfile(ctx.UserContext(), userId)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return internalError(ctx, c.log, "auth", err)
	}

	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}

func (c *authController) CheckAdmin(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(uint)

	res, err := c.service.CheckAdmin(ctx.UserContext(), userId)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return internalError(ctx, c.log, "auth", err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Admin status", res))
}
