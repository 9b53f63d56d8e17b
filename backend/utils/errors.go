package utils

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunar87/foodgram/foodgram/logger"
	"github.com/sunar87/foodgram/internal/domain"
)

// SendDomainError maps a service error onto a response. Anything it does
// not recognise is logged and answered with a bare 500.
func SendDomainError(c *fiber.Ctx, err error) error {
	if errs, ok := domain.AsValidation(err); ok {
		return SendValidationError(c, errs.Fields())
	}

	switch {
	case domain.IsConflict(err):
		return SendError(c, fiber.StatusBadRequest, "ALREADY_EXISTS", err.Error(), nil)
	case domain.IsNotFound(err):
		return SendNotFound(c, err.Error())
	case domain.IsForbidden(err):
		return SendForbidden(c, err.Error())
	case domain.IsUnauthorized(err):
		return SendUnauthorized(c, err.Error())
	}

	logger.LogError("Request failed", err,
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
	)
	return SendInternalServerError(c, "Internal Server Error")
}
