package repositories

import (
	"context"

	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type ShoppingRepository struct {
	*BaseRepository
}

func NewShoppingRepository(db *bun.DB) *ShoppingRepository {
	return &ShoppingRepository{BaseRepository: NewBaseRepository(db)}
}

// AggregateCart sums ingredient amounts over every recipe in the user's
// cart, one row per (name, unit), ordered by name then unit.
func (r *ShoppingRepository) AggregateCart(ctx context.Context, userID int64) ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem
	err := r.SelectWithTimeout(ctx, "aggregate", "shopping_cart", func(ctx context.Context) error {
		return r.db.NewSelect().
			TableExpr("cart_entries AS ce").
			Join("JOIN recipe_ingredients AS ri ON ri.recipe_id = ce.recipe_id").
			Join("JOIN ingredients AS i ON i.id = ri.ingredient_id").
			ColumnExpr("i.name AS name").
			ColumnExpr("i.measurement_unit AS measurement_unit").
			ColumnExpr("SUM(ri.amount) AS total_amount").
			Where("ce.user_id = ?", userID).
			GroupExpr("i.name, i.measurement_unit").
			OrderExpr("i.name ASC, i.measurement_unit ASC").
			Scan(ctx, &items)
	})
	return items, err
}
