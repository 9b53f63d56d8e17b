package repositories

import (
	"context"
	"time"

	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

// MembershipRepository stores favorites and shopping cart entries. Both are
// (user, recipe) pairs with a uniqueness constraint, selected by kind.
type MembershipRepository struct {
	*BaseRepository
}

func NewMembershipRepository(db *bun.DB) *MembershipRepository {
	return &MembershipRepository{BaseRepository: NewBaseRepository(db)}
}

func membershipModel(kind models.MembershipKind, userID, recipeID int64) any {
	now := time.Now()
	if kind == models.KindCart {
		return &models.CartEntry{UserID: userID, RecipeID: recipeID, CreatedAt: now}
	}
	return &models.Favorite{UserID: userID, RecipeID: recipeID, CreatedAt: now}
}

func membershipTable(kind models.MembershipKind) any {
	if kind == models.KindCart {
		return (*models.CartEntry)(nil)
	}
	return (*models.Favorite)(nil)
}

// Add inserts the pair and reports false when it was already present.
func (r *MembershipRepository) Add(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) (bool, error) {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	n, err := r.InsertIgnoringConflicts(timeoutCtx, r.db, kind.String(), membershipModel(kind, userID, recipeID))
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, &domain.NotFoundError{Entity: "recipe", ID: recipeID}
		}
		return false, err
	}
	return n > 0, nil
}

// Remove deletes the pair and reports false when it was not present.
func (r *MembershipRepository) Remove(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) (bool, error) {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewDelete().
		Model(membershipTable(kind)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Exec(timeoutCtx)
	if err != nil {
		return false, r.HandleError("delete", kind.String(), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, r.HandleError("delete", kind.String(), err)
	}
	return n > 0, nil
}

func (r *MembershipRepository) Exists(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) (bool, error) {
	return r.BaseRepository.Exists(ctx, kind.String(), r.db.NewSelect().
		Model(membershipTable(kind)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID))
}

func (r *MembershipRepository) GetRecipe(ctx context.Context, recipeID int64) (*models.Recipe, error) {
	recipe := new(models.Recipe)
	err := r.SelectOneWithTimeout(ctx, "get", "recipe", recipeID, func(ctx context.Context) error {
		return r.db.NewSelect().Model(recipe).Where("id = ?", recipeID).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}
