package controller

import (
	"errors"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/pkg/serverutils"
	"sneakers-store-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReservationController interface {
	RegisterRoutes(r fiber.Router)
	CreateReservation(ctx *fiber.Ctx) error
	GetReservation(ctx *fiber.Ctx) error
	GetMyReservations(ctx *fiber.Ctx) error
	GetAllReservations(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
	UpdateReservation(ctx *fiber.Ctx) error
	CancelReservation(ctx *fiber.Ctx) error
}

type reservationController struct {
	service service.IReservationService
	log     logger.ILogger
}

func NewReservationController(service service.IReservationService, log logger.ILogger) IReservationController {
	return &reservationController{service: service, log: log}
}

func (c *reservationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reservations")
	h.Use(serverutils.JwtMiddleware)

	h.Post("/", c.CreateReservation)
	h.Get("/my", c.GetMyReservations)

	// Admin routes. /stats must be registered before /:reservationId.
	h.Get("/stats", serverutils.AdminMiddleware, c.GetStats)
	h.Get("/", serverutils.AdminMiddleware, c.GetAllReservations)
	h.Put("/:reservationId", serverutils.AdminMiddleware, c.UpdateReservation)

	h.Get("/:reservationId", c.GetReservation)
	h.Delete("/:reservationId", c.CancelReservation)
}

func (c *reservationController) CreateReservation(ctx *fiber.Ctx) error {
	var req dto.CreateReservationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	// A customer can only reserve for themselves.
	userId, _ := ctx.Locals("user_id").(uint)
	req.UserId = userId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateReservation(ctx.UserContext(), &req)
	if err != nil {
		var stockErr *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case errors.As(err, &stockErr):
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, stockErr.Error()))
		default:
			return internalError(ctx, c.log, "reservation", err)
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Reservation created", res))
}

func (c *reservationController) GetReservation(ctx *fiber.Ctx) error {
	reservationId, err := ctx.ParamsInt("reservationId")
	if err != nil || reservationId <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid reservation ID"))
	}

	userId, _ := ctx.Locals("user_id").(uint)
	role, _ := ctx.Locals("role").(string)
	if role == "admin" {
		userId = 0 // admins may read any reservation
	}

	res, err := c.service.GetReservation(ctx.UserContext(), uint(reservationId), userId)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return internalError(ctx, c.log, "reservation", err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Reservation", res))
}

func (c *reservationController) GetMyReservations(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(uint)

	res, err := c.service.GetUserReservations(ctx.UserContext(), userId)
	if err != nil {
		return internalError(ctx, c.log, "reservation", err)
	}

	return ctx.JSON(serverutils.SuccessResponse("My reservations", res))
}

func (c *reservationController) GetAllReservations(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetAllReservations(ctx.UserContext(), status, limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return internalError(ctx, c.log, "reservation", err)
	}

	return ctx.JSON(serverutils.SuccessResponse("All reservations", res))
}

func (c *reservationController) GetStats(ctx *fiber.Ctx) error {
	stats, err := c.service.GetStats(ctx.UserContext())
	if err != nil {
		return internalError(ctx, c.log, "reservation", err)
	}

	return ctx.JSON(fiber.Map{"success": true, "stats": stats})
}

func (c *reservationController) UpdateReservation(ctx *fiber.Ctx) error {
	reservationId, err := ctx.ParamsInt("reservationId")
	if err != nil || reservationId <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid reservation ID"))
	}

	var req dto.UpdateReservationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateReservation(ctx.UserContext(), uint(reservationId), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		case errors.Is(err, service.ErrReservationNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		default:
			return internalError(ctx, c.log, "reservation", err)
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Reservation updated", res))
}

func (c *reservationController) CancelReservation(ctx *fiber.Ctx) error {
	reservationId, err := ctx.ParamsInt("reservationId")
	if err != nil || reservationId <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid reservation ID"))
	}

	userId, _ := ctx.Locals("user_id").(uint)
	role, _ := ctx.Locals("role").(string)
	if role == "admin" {
		userId = 0 // admins may cancel any reservation
	}

	res, err := c.service.CancelReservation(ctx.UserContext(), uint(reservationId), userId)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReservationNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case errors.Is(err, service.ErrReservationCancelled):
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		default:
			return internalError(ctx, c.log, "reservation", err)
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Reservation cancelled", res))
}
