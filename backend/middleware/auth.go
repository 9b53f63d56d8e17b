package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sunar87/foodgram/backend/handlers"
	"github.com/sunar87/foodgram/backend/utils"
	"github.com/sunar87/foodgram/internal/domain"
)

// bearerToken extracts the token from "Token <t>" or "Bearer <t>".
func bearerToken(c *fiber.Ctx) (string, bool) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok {
		return "", false
	}
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// authenticate resolves the request's token. A missing header yields a
// nil user and no error.
func authenticate(webApp *handlers.WebApp, c *fiber.Ctx) error {
	if c.Get(fiber.HeaderAuthorization) == "" {
		return nil
	}
	token, ok := bearerToken(c)
	if !ok {
		return &domain.UnauthorizedError{Reason: "malformed authorization header"}
	}

	user, err := webApp.Users.Authenticate(c.UserContext(), token)
	if err != nil {
		return err
	}
	utils.SetUser(c, user)
	slog.Debug("Auth middleware: user authenticated",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))
	return nil
}

// AuthRequired rejects requests without a valid token.
func AuthRequired(webApp *handlers.WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authenticate(webApp, c); err != nil {
			return utils.SendDomainError(c, err)
		}
		if _, ok := utils.CurrentUser(c); !ok {
			slog.Debug("Auth required: no credentials", slog.String("path", c.Path()))
			return utils.SendUnauthorized(c, "Authentication credentials were not provided")
		}
		return c.Next()
	}
}

// OptionalAuth identifies the user when a token is sent. A token that is
// sent but invalid is still rejected.
func OptionalAuth(webApp *handlers.WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authenticate(webApp, c); err != nil {
			return utils.SendDomainError(c, err)
		}
		return c.Next()
	}
}
