package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunar87/foodgram/backend/utils"
)

func TagsList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := webApp.Catalog.ListTags(c.UserContext())
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendList(c, tags)
	}
}

func TagsDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return err
		}
		tag, err := webApp.Catalog.GetTag(c.UserContext(), id)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendOK(c, tag)
	}
}

// IngredientsList searches by the name query parameter. Without it the
// whole catalog is returned.
func IngredientsList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ingredients, err := webApp.Catalog.SearchIngredients(c.UserContext(), c.Query("name"))
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendList(c, ingredients)
	}
}

func IngredientsDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return err
		}
		ingredient, err := webApp.Catalog.GetIngredient(c.UserContext(), id)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendOK(c, ingredient)
	}
}
