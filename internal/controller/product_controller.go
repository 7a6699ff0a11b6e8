package controller

import (
	"errors"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/pkg/serverutils"
	"sneakers-store-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	GetProducts(ctx *fiber.Ctx) error
	GetProduct(ctx *fiber.Ctx) error
}

type productController struct {
	service service.IProductService
	log     logger.ILogger
}

func NewProductController(service service.IProductService, log logger.ILogger) IProductController {
	return &productController{service: service, log: log}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products")
	h.Get("/", c.GetProducts)
	h.Get("/:productId", c.GetProduct)
}

func (c *productController) GetProducts(ctx *fiber.Ctx) error {
	filter := &dto.ProductFilter{
		Brand:    ctx.Query("brand"),
		Category: ctx.Query("category"),
	}

	res, err := c.service.GetProducts(ctx.UserContext(), filter)
	if err != nil {
		return internalError(ctx, c.log, "product", err)
	}

	return ctx.JSON(serverutils.SuccessListResponse("Products", len(res), res))
}

func (c *productController) GetProduct(ctx *fiber.Ctx) error {
	productId, err := ctx.ParamsInt("productId")
	if err != nil || productId <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid product ID"))
	}

	res, err := c.service.GetProduct(ctx.UserContext(), uint(productId))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return internalError(ctx, c.log, "product", err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Product", res))
}
