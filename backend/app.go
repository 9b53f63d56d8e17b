package backend

import (
	"github.com/sunar87/foodgram/backend/handlers"
	"github.com/sunar87/foodgram/foodgram"
	"github.com/sunar87/foodgram/internal/domain/catalog"
	"github.com/sunar87/foodgram/internal/domain/membership"
	"github.com/sunar87/foodgram/internal/domain/recipes"
	"github.com/sunar87/foodgram/internal/domain/shopping"
	"github.com/sunar87/foodgram/internal/domain/shortlinks"
	"github.com/sunar87/foodgram/internal/domain/users"
	"github.com/sunar87/foodgram/internal/gateways/database/repositories"
	"github.com/sunar87/foodgram/internal/gateways/storage"
	"github.com/uptrace/bun"
)

// NewWebApp wires repositories and services over db.
func NewWebApp(db *bun.DB, images storage.Store, web foodgram.WebConfig, auth foodgram.AuthConfig) *handlers.WebApp {
	tokens := users.NewTokenIssuer(auth.JWTSecret, auth.TTL())

	return &handlers.WebApp{
		Config:     web,
		DB:         db,
		Catalog:    catalog.NewService(repositories.NewCatalogRepository(db)),
		Recipes:    recipes.NewService(repositories.NewRecipeRepository(db), images),
		Membership: membership.NewService(repositories.NewMembershipRepository(db), images.URL),
		Shopping:   shopping.NewService(repositories.NewShoppingRepository(db)),
		ShortLinks: shortlinks.NewService(repositories.NewShortLinkRepository(db), web.BaseURL),
		Users:      users.NewService(repositories.NewUserRepository(db), images, tokens),
	}
}
