package membership

import (
	"context"

	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

type Repository interface {
	Add(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) (bool, error)
	Remove(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) (bool, error)
	GetRecipe(ctx context.Context, recipeID int64) (*models.Recipe, error)
}
