package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunar87/foodgram/backend/models"
	"github.com/sunar87/foodgram/backend/utils"
	"github.com/sunar87/foodgram/internal/domain/users"
)

func UsersList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := utils.QueryPage(c)
		result, err := webApp.Users.List(c.UserContext(), utils.ViewerID(c), page)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendPaginated(c, page, result)
	}
}

func UsersRegister(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if details := utils.BindJSON(c, &req); details != nil {
			return utils.SendValidationError(c, details)
		}

		view, err := webApp.Users.Register(c.UserContext(), users.RegisterCommand{
			Email:     req.Email,
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Password:  req.Password,
		})
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendCreated(c, fiber.Map{
			"email":      view.Email,
			"id":         view.ID,
			"username":   view.Username,
			"first_name": view.FirstName,
			"last_name":  view.LastName,
		})
	}
}

func UsersDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return err
		}
		view, err := webApp.Users.Get(c.UserContext(), utils.ViewerID(c), id)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendOK(c, view)
	}
}

func UsersMe(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)
		return utils.SendOK(c, webApp.Users.Me(c.UserContext(), user))
	}
}

func UsersSetPassword(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)

		var req models.SetPasswordRequest
		if details := utils.BindJSON(c, &req); details != nil {
			return utils.SendValidationError(c, details)
		}

		err := webApp.Users.SetPassword(c.UserContext(), user, users.SetPasswordCommand{
			CurrentPassword: req.CurrentPassword,
			NewPassword:     req.NewPassword,
		})
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendNoContent(c)
	}
}

func AvatarUpdate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)

		var req models.AvatarRequest
		if details := utils.BindJSON(c, &req); details != nil {
			return utils.SendValidationError(c, details)
		}

		url, err := webApp.Users.SetAvatar(c.UserContext(), user, req.Avatar)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendOK(c, fiber.Map{"avatar": url})
	}
}

func AvatarDelete(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)
		if err := webApp.Users.DeleteAvatar(c.UserContext(), user); err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendNoContent(c)
	}
}

func Subscriptions(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)
		page := utils.QueryPage(c)

		result, err := webApp.Users.Subscriptions(c.UserContext(), user, page, c.QueryInt("recipes_limit", 0))
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendPaginated(c, page, result)
	}
}

func Subscribe(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return err
		}

		view, err := webApp.Users.Subscribe(c.UserContext(), user, id, c.QueryInt("recipes_limit", 0))
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendCreated(c, view)
	}
}

func Unsubscribe(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return err
		}
		if err := webApp.Users.Unsubscribe(c.UserContext(), user, id); err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendNoContent(c)
	}
}
