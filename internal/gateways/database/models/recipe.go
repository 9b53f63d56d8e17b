package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Recipe struct {
	bun.BaseModel `bun:"table:recipes,alias:r"`

	ID          int64     `bun:"id,pk,autoincrement"`
	AuthorID    int64     `bun:"author_id,notnull"`
	Name        string    `bun:"name,notnull,type:varchar(256)"`
	Text        string    `bun:"text,notnull"`
	Image       string    `bun:"image,notnull"`
	CookingTime int       `bun:"cooking_time,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

type RecipeIngredient struct {
	bun.BaseModel `bun:"table:recipe_ingredients,alias:ri"`

	ID           int64 `bun:"id,pk,autoincrement"`
	RecipeID     int64 `bun:"recipe_id,notnull,unique:recipe_ingredient"`
	IngredientID int64 `bun:"ingredient_id,notnull,unique:recipe_ingredient"`
	Amount       int   `bun:"amount,notnull"`
}

type RecipeTag struct {
	bun.BaseModel `bun:"table:recipe_tags,alias:rt"`

	ID       int64 `bun:"id,pk,autoincrement"`
	RecipeID int64 `bun:"recipe_id,notnull,unique:recipe_tag"`
	TagID    int64 `bun:"tag_id,notnull,unique:recipe_tag"`
}

// IngredientAmount is an ingredient row joined with its amount in a recipe.
type IngredientAmount struct {
	RecipeID        int64  `bun:"recipe_id"`
	ID              int64  `bun:"id"`
	Name            string `bun:"name"`
	MeasurementUnit string `bun:"measurement_unit"`
	Amount          int    `bun:"amount"`
}

// RecipeTagRow is a tag joined with the recipe it is attached to.
type RecipeTagRow struct {
	RecipeID int64  `bun:"recipe_id"`
	ID       int64  `bun:"id"`
	Name     string `bun:"name"`
	Slug     string `bun:"slug"`
}

// RecipeFilter narrows recipe listings. Favorited and InCart only apply
// when ViewerID is set.
type RecipeFilter struct {
	AuthorID  int64
	TagSlugs  []string
	ViewerID  int64
	Favorited bool
	InCart    bool
	Offset    int
	Limit     int
}
