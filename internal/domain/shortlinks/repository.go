package shortlinks

import (
	"context"

	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

type Repository interface {
	GetByURL(ctx context.Context, url string) (*models.ShortLink, error)
	GetByToken(ctx context.Context, token string) (*models.ShortLink, error)
	Insert(ctx context.Context, link *models.ShortLink) (bool, error)
	RecipeExists(ctx context.Context, recipeID int64) (bool, error)
}
