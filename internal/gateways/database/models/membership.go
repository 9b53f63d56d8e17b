package models

import (
	"time"

	"github.com/uptrace/bun"
)

// MembershipKind selects between the two per-user recipe collections that
// share the same shape.
type MembershipKind int

const (
	KindFavorite MembershipKind = iota
	KindCart
)

func (k MembershipKind) String() string {
	switch k {
	case KindFavorite:
		return "favorite"
	case KindCart:
		return "shopping cart entry"
	default:
		return "membership"
	}
}

// Table returns the table backing the collection.
func (k MembershipKind) Table() string {
	if k == KindCart {
		return "cart_entries"
	}
	return "favorites"
}

type Favorite struct {
	bun.BaseModel `bun:"table:favorites,alias:f"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull,unique:favorite_user_recipe"`
	RecipeID  int64     `bun:"recipe_id,notnull,unique:favorite_user_recipe"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

type CartEntry struct {
	bun.BaseModel `bun:"table:cart_entries,alias:ce"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull,unique:cart_user_recipe"`
	RecipeID  int64     `bun:"recipe_id,notnull,unique:cart_user_recipe"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

// ShoppingItem is one aggregated line of a shopping list.
type ShoppingItem struct {
	Name            string `bun:"name"`
	MeasurementUnit string `bun:"measurement_unit"`
	TotalAmount     int64  `bun:"total_amount"`
}
