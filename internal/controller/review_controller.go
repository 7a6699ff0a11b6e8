package controller

import (
	"errors"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/pkg/serverutils"
	"sneakers-store-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
	CreateReview(ctx *fiber.Ctx) error
	GetProductReviews(ctx *fiber.Ctx) error
	GetUserReviews(ctx *fiber.Ctx) error
	UpdateReview(ctx *fiber.Ctx) error
	DeleteReview(ctx *fiber.Ctx) error
	GetStats(ctx *fiber.Ctx) error
}

type reviewController struct {
	service service.IReviewService
	log     logger.ILogger
}

func NewReviewController(service service.IReviewService, log logger.ILogger) IReviewController {
	return &reviewController{service: service, log: log}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reviews")

	h.Get("/product/:productId", c.GetProductReviews)

	h.Get("/user/:userId", serverutils.JwtMiddleware, c.GetUserReviews)
	h.Post("/", serverutils.JwtMiddleware, c.CreateReview)
	h.Put("/:reviewId", serverutils.JwtMiddleware, c.UpdateReview)
	h.Delete("/:reviewId", serverutils.JwtMiddleware, c.DeleteReview)

	h.Get("/stats", serverutils.JwtMiddleware, serverutils.AdminMiddleware, c.GetStats)
}

func (c *reviewController) CreateReview(ctx *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	userId, _ := ctx.Locals("user_id").(uint)

	res, err := c.service.CreateReview(ctx.UserContext(), userId, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case errors.Is(err, service.ErrDuplicateReview):
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		default:
			return internalError(ctx, c.log, "review", err)
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Review created", res))
}

func (c *reviewController) GetProductReviews(ctx *fiber.Ctx) error {
	productId, err := ctx.ParamsInt("productId")
	if err != nil || productId <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid product ID"))
	}

	res, err := c.service.GetProductReviews(ctx.UserContext(), uint(productId))
	if err != nil {
		return internalError(ctx, c.log, "review", err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Product reviews", res))
}

func (c *reviewController) GetUserReviews(ctx *fiber.Ctx) error {
	userId, err := ctx.ParamsInt("userId")
	if err != nil || userId <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user ID"))
	}

	// Users list their own reviews; admins list anyone's.
	authedId, _ := ctx.Locals("user_id").(uint)
	role, _ := ctx.Locals("role").(string)
	if role != "admin" && authedId != uint(userId) {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Access denied"))
	}

	res, err := c.service.GetUserReviews(ctx.UserContext(), uint(userId))
	if err != nil {
		return internalError(ctx, c.log, "review", err)
	}

	return ctx.JSON(serverutils.SuccessListResponse("User reviews", len(res), res))
}

func (c *reviewController) UpdateReview(ctx *fiber.Ctx) error {
	reviewId, err := ctx.ParamsInt("reviewId")
	if err != nil || reviewId <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid review ID"))
	}

	var req dto.UpdateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	userId, _ := ctx.Locals("user_id").(uint)
	role, _ := ctx.Locals("role").(string)

	res, err := c.service.UpdateReview(ctx.UserContext(), uint(reviewId), userId, role == "admin", &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case errors.Is(err, service.ErrReviewForbidden):
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
		default:
			return internalError(ctx, c.log, "review", err)
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Review updated", res))
}

func (c *reviewController) DeleteReview(ctx *fiber.Ctx) error {
	reviewId, err := ctx.ParamsInt("reviewId")
	if err != nil || reviewId <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid review ID"))
	}

	userId, _ := ctx.Locals("user_id").(uint)
	role, _ := ctx.Locals("role").(string)

	if err := c.service.DeleteReview(ctx.UserContext(), uint(reviewId), userId, role == "admin"); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case errors.Is(err, service.ErrReviewForbidden):
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
		default:
			return internalError(ctx, c.log, "review", err)
		}
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Review deleted", nil))
}

func (c *reviewController) GetStats(ctx *fiber.Ctx) error {
	stats, err := c.service.GetStats(ctx.UserContext())
	if err != nil {
		return internalError(ctx, c.log, "review", err)
	}

	return ctx.JSON(fiber.Map{"success": true, "stats": stats})
}
