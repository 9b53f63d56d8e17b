package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sunar87/foodgram/backend/models"
	"github.com/sunar87/foodgram/backend/utils"
	"github.com/sunar87/foodgram/foodgram"
	"github.com/sunar87/foodgram/internal/domain/catalog"
	"github.com/sunar87/foodgram/internal/domain/membership"
	"github.com/sunar87/foodgram/internal/domain/recipes"
	"github.com/sunar87/foodgram/internal/domain/shopping"
	"github.com/sunar87/foodgram/internal/domain/shortlinks"
	"github.com/sunar87/foodgram/internal/domain/users"
)

// Pinger is satisfied by *bun.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// WebApp carries the services every handler needs.
type WebApp struct {
	Config     foodgram.WebConfig
	DB         Pinger
	Catalog    catalog.Service
	Recipes    recipes.Service
	Membership membership.Service
	Shopping   shopping.Service
	ShortLinks shortlinks.Service
	Users      users.Service
	Version    string
	Commit     string
}

func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := models.NewHealthCheck(webApp.Version)
		if err := webApp.DB.PingContext(c.UserContext()); err != nil {
			health.AddComponent("database", "unhealthy", err.Error())
			return utils.SendJSON(c, fiber.StatusServiceUnavailable, models.NewSuccessResponse(health, "Health check failed"))
		}
		health.AddComponent("database", "healthy", "")
		return utils.SendSuccess(c, health, "Health check successful")
	}
}
