package users

import "github.com/sunar87/foodgram/internal/domain"

// SubscriptionView is an author as seen by a subscriber, with a preview of
// the author's newest recipes.
type SubscriptionView struct {
	domain.UserView
	Recipes      []domain.RecipeShort `json:"recipes"`
	RecipesCount int                  `json:"recipes_count"`
}
