package catalog

import (
	"context"

	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

type Repository interface {
	ListTags(ctx context.Context) ([]*models.Tag, error)
	GetTag(ctx context.Context, id int64) (*models.Tag, error)
	GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error)
	SearchIngredients(ctx context.Context, prefix string, limit int) ([]*models.Ingredient, error)
	ListIngredients(ctx context.Context) ([]*models.Ingredient, error)
	InsertIngredients(ctx context.Context, ingredients []*models.Ingredient) (int64, error)
	InsertTags(ctx context.Context, tags []*models.Tag) (int64, error)
}
