package serverutils

import (
	"errors"

	"noteverse-be/internal/pkg/apperr"
	"noteverse-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors bubbling out of handlers into the
// BaseResponse envelope with the taxonomy's stable status codes. Unclassified
// errors become a 500 with a generic message; the real cause goes to the log.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			status := appErr.StatusCode()
			if appErr.Kind == apperr.Internal {
				log.Error("HTTP", "request failed", map[string]interface{}{
					"path":  ctx.Path(),
					"error": err.Error(),
				})
				return ctx.Status(status).JSON(ErrorResponse(status, "Internal server error"))
			}
			return ctx.Status(status).JSON(ErrorResponse(status, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("HTTP", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
