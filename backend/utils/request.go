package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

const userKey = "user"

func SetUser(c *fiber.Ctx, user *models.User) {
	c.Locals(userKey, user)
}

// CurrentUser returns the authenticated user, if any.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(userKey).(*models.User)
	return user, ok && user != nil
}

// ViewerID is the authenticated user's id, or zero for anonymous requests.
func ViewerID(c *fiber.Ctx) int64 {
	if user, ok := CurrentUser(c); ok {
		return user.ID
	}
	return 0
}

func ParamID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusNotFound, "Not Found")
	}
	return id, nil
}

// QueryPage reads page and limit.
func QueryPage(c *fiber.Ctx) domain.Page {
	return domain.NewPage(c.QueryInt("page", 1), c.QueryInt("limit", config.DefaultPageSize))
}

// QueryFlag treats "1" and "true" as set.
func QueryFlag(c *fiber.Ctx, name string) bool {
	switch c.Query(name) {
	case "1", "true", "True":
		return true
	}
	return false
}

func QueryStrings(c *fiber.Ctx, name string) []string {
	raw := c.Context().QueryArgs().PeekMulti(name)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if len(v) > 0 {
			out = append(out, string(v))
		}
	}
	return out
}

// GetIPAddress is the client address as resolved by fiber, which reads the
// proxy header only for trusted proxies.
func GetIPAddress(c *fiber.Ctx) string {
	return c.IP()
}

func GetUserAgent(c *fiber.Ctx) string {
	return c.Get("User-Agent")
}
