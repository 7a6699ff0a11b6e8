package controller

import (
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// internalError logs an unclassified failure and answers with a generic 500.
// The cause stays in the server log; clients never see driver or SQL detail.
func internalError(ctx *fiber.Ctx, log logger.ILogger, module string, err error) error {
	log.Error(module, "request failed", map[string]interface{}{
		"method": ctx.Method(),
		"path":   ctx.Path(),
		"error":  err.Error(),
	})
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Internal server error"))
}
