package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunar87/foodgram/backend/models"
	"github.com/sunar87/foodgram/backend/utils"
)

func Login(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if details := utils.BindJSON(c, &req); details != nil {
			return utils.SendValidationError(c, details)
		}

		token, err := webApp.Users.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			slog.Debug("Login rejected",
				slog.String("ip", utils.GetIPAddress(c)),
				slog.Any("error", err),
			)
			return utils.SendDomainError(c, err)
		}
		return utils.SendOK(c, fiber.Map{"auth_token": token})
	}
}

// Logout revokes every token of the current user, not just the one sent.
func Logout(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)
		if err := webApp.Users.Logout(c.UserContext(), user); err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendNoContent(c)
	}
}
