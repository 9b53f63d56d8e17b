package recipes

import "github.com/sunar87/foodgram/internal/domain"

type TagView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type IngredientView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeView struct {
	ID               int64            `json:"id"`
	Tags             []TagView        `json:"tags"`
	Author           domain.UserView  `json:"author"`
	Ingredients      []IngredientView `json:"ingredients"`
	IsFavorited      bool             `json:"is_favorited"`
	IsInShoppingCart bool             `json:"is_in_shopping_cart"`
	Name             string           `json:"name"`
	Image            string           `json:"image"`
	Text             string           `json:"text"`
	CookingTime      int              `json:"cooking_time"`
}

// ListQuery selects a page of recipes. Favorited and InCart are ignored for
// anonymous viewers.
type ListQuery struct {
	AuthorID  int64
	TagSlugs  []string
	Favorited bool
	InCart    bool
	Page      domain.Page
}
