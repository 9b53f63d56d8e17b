package recipes

import (
	"context"

	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

type Repository interface {
	Create(ctx context.Context, recipe *models.Recipe, tagIDs []int64, ingredients []models.RecipeIngredient) error
	Update(ctx context.Context, recipe *models.Recipe, tagIDs []int64, ingredients []models.RecipeIngredient) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	List(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, int, error)
	TagsByRecipe(ctx context.Context, recipeIDs []int64) (map[int64][]models.RecipeTagRow, error)
	IngredientsByRecipe(ctx context.Context, recipeIDs []int64) (map[int64][]models.IngredientAmount, error)
	UsersByID(ctx context.Context, ids []int64) (map[int64]*models.User, error)
	SubscribedAuthors(ctx context.Context, viewerID int64, authorIDs []int64) (map[int64]bool, error)
	MemberRecipes(ctx context.Context, kind models.MembershipKind, userID int64, recipeIDs []int64) (map[int64]bool, error)
}

type ImageStore interface {
	Save(ctx context.Context, prefix, dataURL string) (string, error)
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}
