package shopping

import (
	"context"

	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

type Repository interface {
	AggregateCart(ctx context.Context, userID int64) ([]models.ShoppingItem, error)
}
