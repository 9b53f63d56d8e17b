package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunar87/foodgram/backend/models"
	"github.com/sunar87/foodgram/backend/utils"
	"github.com/sunar87/foodgram/internal/domain/recipes"
	dbmodels "github.com/sunar87/foodgram/internal/gateways/database/models"
)

func recipeCommand(req *models.RecipeRequest) recipes.RecipeCommand {
	cmd := recipes.RecipeCommand{
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       req.Image,
		TagIDs:      req.Tags,
		Ingredients: make([]recipes.IngredientSpec, len(req.Ingredients)),
	}
	for i, ing := range req.Ingredients {
		cmd.Ingredients[i] = recipes.IngredientSpec{ID: ing.ID, Amount: ing.Amount}
	}
	return cmd
}

func RecipesList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := utils.QueryPage(c)
		query := recipes.ListQuery{
			AuthorID:  int64(c.QueryInt("author", 0)),
			TagSlugs:  utils.QueryStrings(c, "tags"),
			Favorited: utils.QueryFlag(c, "is_favorited"),
			InCart:    utils.QueryFlag(c, "is_in_shopping_cart"),
			Page:      page,
		}

		result, err := webApp.Recipes.List(c.UserContext(), utils.ViewerID(c), query)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendPaginated(c, page, result)
	}
}

func RecipesDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return err
		}
		view, err := webApp.Recipes.Get(c.UserContext(), utils.ViewerID(c), id)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendOK(c, view)
	}
}

func RecipesCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)

		var req models.RecipeRequest
		if details := utils.BindJSON(c, &req); details != nil {
			return utils.SendValidationError(c, details)
		}

		view, err := webApp.Recipes.Create(c.UserContext(), user, recipeCommand(&req))
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendCreated(c, view)
	}
}

func RecipesUpdate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return err
		}

		var req models.RecipeRequest
		if details := utils.BindJSON(c, &req); details != nil {
			return utils.SendValidationError(c, details)
		}

		view, err := webApp.Recipes.Update(c.UserContext(), user, id, recipeCommand(&req))
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendOK(c, view)
	}
}

func RecipesDelete(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return err
		}
		if err := webApp.Recipes.Delete(c.UserContext(), user, id); err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendNoContent(c)
	}
}

// MembershipAdd puts the recipe into the user's favorites or cart.
func MembershipAdd(webApp *WebApp, kind dbmodels.MembershipKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return err
		}
		short, err := webApp.Membership.Add(c.UserContext(), kind, user.ID, id)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendCreated(c, short)
	}
}

func MembershipRemove(webApp *WebApp, kind dbmodels.MembershipKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return err
		}
		if err := webApp.Membership.Remove(c.UserContext(), kind, user.ID, id); err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendNoContent(c)
	}
}

// ShoppingCartDownload serves the aggregated cart as a text attachment.
func ShoppingCartDownload(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := utils.CurrentUser(c)
		list, err := webApp.Shopping.Aggregate(c.UserContext(), user.ID)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		if list.Empty() {
			return utils.SendBadRequest(c, "shopping cart is empty", nil)
		}

		slog.Debug("Shopping list rendered",
			slog.Int64("user_id", user.ID),
			slog.Int("items", len(list.Items)),
		)
		c.Attachment("shopping_list.txt")
		c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
		return c.SendString(list.Text())
	}
}

func RecipesGetLink(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.ParamID(c, "id")
		if err != nil {
			return err
		}
		link, err := webApp.ShortLinks.RecipeLink(c.UserContext(), id)
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return utils.SendOK(c, fiber.Map{"short-link": link})
	}
}

// ShortLinkRedirect sends the client on to the canonical recipe URL.
func ShortLinkRedirect(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := webApp.ShortLinks.Resolve(c.UserContext(), c.Params("token"))
		if err != nil {
			return utils.SendDomainError(c, err)
		}
		return c.Redirect(url, fiber.StatusFound)
	}
}
