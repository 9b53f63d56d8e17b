package repositories

import (
	"context"
	"time"

	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/domain/logger"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type RecipeRepository struct {
	*BaseRepository
}

func NewRecipeRepository(db *bun.DB) *RecipeRepository {
	return &RecipeRepository{BaseRepository: NewBaseRepository(db)}
}

// Create inserts the recipe and its tag and ingredient rows in one
// transaction. Unknown tag or ingredient ids abort before any write.
func (r *RecipeRepository) Create(ctx context.Context, recipe *models.Recipe, tagIDs []int64, ingredients []models.RecipeIngredient) error {
	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := resolveReferences(ctx, tx, tagIDs, ingredients); err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(recipe).Exec(ctx); err != nil {
			return err
		}
		return insertAssociations(ctx, tx, recipe.ID, tagIDs, ingredients)
	})
	return r.mutationError("create", recipe.ID, err)
}

// Update rewrites the recipe fields and replaces its whole tag and
// ingredient sets. Either everything is applied or nothing is.
func (r *RecipeRepository) Update(ctx context.Context, recipe *models.Recipe, tagIDs []int64, ingredients []models.RecipeIngredient) error {
	recipe.UpdatedAt = time.Now()

	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := resolveReferences(ctx, tx, tagIDs, ingredients); err != nil {
			return err
		}

		res, err := tx.NewUpdate().
			Model(recipe).
			Column("name", "text", "image", "cooking_time", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return &domain.NotFoundError{Entity: "recipe", ID: recipe.ID}
		}

		if _, err := tx.NewDelete().
			Model((*models.RecipeTag)(nil)).
			Where("recipe_id = ?", recipe.ID).
			Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewDelete().
			Model((*models.RecipeIngredient)(nil)).
			Where("recipe_id = ?", recipe.ID).
			Exec(ctx); err != nil {
			return err
		}
		return insertAssociations(ctx, tx, recipe.ID, tagIDs, ingredients)
	})
	return r.mutationError("update", recipe.ID, err)
}

func (r *RecipeRepository) mutationError(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := domain.AsValidation(err); ok {
		return err
	}
	if domain.IsNotFound(err) {
		return err
	}
	if IsUniqueViolation(err) || IsForeignKeyViolation(err) || IsCheckViolation(err) {
		return &domain.IntegrityError{Op: op + " recipe", Err: err}
	}
	return r.HandleErrorWithID(op, "recipe", id, err)
}

func resolveReferences(ctx context.Context, tx bun.Tx, tagIDs []int64, ingredients []models.RecipeIngredient) error {
	var errs domain.ValidationErrors

	if len(tagIDs) > 0 {
		var found []int64
		if err := tx.NewSelect().
			Model((*models.Tag)(nil)).
			Column("id").
			Where("id IN (?)", bun.In(tagIDs)).
			Scan(ctx, &found); err != nil {
			return err
		}
		if missing := missingIDs(tagIDs, found); len(missing) > 0 {
			errs = append(errs, domain.UnknownReferences("tags", missing))
		}
	}

	if len(ingredients) > 0 {
		ids := make([]int64, len(ingredients))
		for i, ing := range ingredients {
			ids[i] = ing.IngredientID
		}
		var found []int64
		if err := tx.NewSelect().
			Model((*models.Ingredient)(nil)).
			Column("id").
			Where("id IN (?)", bun.In(ids)).
			Scan(ctx, &found); err != nil {
			return err
		}
		if missing := missingIDs(ids, found); len(missing) > 0 {
			errs = append(errs, domain.UnknownReferences("ingredients", missing))
		}
	}

	return errs.Err()
}

func insertAssociations(ctx context.Context, tx bun.Tx, recipeID int64, tagIDs []int64, ingredients []models.RecipeIngredient) error {
	if len(tagIDs) > 0 {
		tagRows := make([]*models.RecipeTag, len(tagIDs))
		for i, id := range tagIDs {
			tagRows[i] = &models.RecipeTag{RecipeID: recipeID, TagID: id}
		}
		if _, err := tx.NewInsert().Model(&tagRows).Exec(ctx); err != nil {
			return err
		}
	}

	if len(ingredients) > 0 {
		ingredientRows := make([]*models.RecipeIngredient, len(ingredients))
		for i, ing := range ingredients {
			ingredientRows[i] = &models.RecipeIngredient{
				RecipeID:     recipeID,
				IngredientID: ing.IngredientID,
				Amount:       ing.Amount,
			}
		}
		if _, err := tx.NewInsert().Model(&ingredientRows).Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the recipe; association and membership rows cascade.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	qlog := logger.NewQueryLogger("delete", "DELETE FROM recipes WHERE id = ?", id)
	res, err := r.db.NewDelete().Model((*models.Recipe)(nil)).Where("id = ?", id).Exec(timeoutCtx)
	if err != nil {
		qlog.Log(err, 0)
		return r.HandleErrorWithID("delete", "recipe", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		qlog.Log(err, 0)
		return r.HandleErrorWithID("delete", "recipe", id, err)
	}
	qlog.Log(nil, n)
	if n == 0 {
		return &domain.NotFoundError{Entity: "recipe", ID: id}
	}
	return nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	recipe := new(models.Recipe)
	err := r.SelectOneWithTimeout(ctx, "get", "recipe", id, func(ctx context.Context) error {
		return r.db.NewSelect().Model(recipe).Where("id = ?", id).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// List returns one page of recipes, newest first, and the total number of
// recipes matching the filter.
func (r *RecipeRepository) List(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, int, error) {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var recipes []*models.Recipe
	q := r.db.NewSelect().Model(&recipes)

	if filter.AuthorID != 0 {
		q = q.Where("r.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		tagged := r.db.NewSelect().
			TableExpr("recipe_tags AS rt").
			Join("JOIN tags AS t ON t.id = rt.tag_id").
			Column("rt.recipe_id").
			Where("t.slug IN (?)", bun.In(filter.TagSlugs))
		q = q.Where("r.id IN (?)", tagged)
	}
	if filter.ViewerID != 0 && filter.Favorited {
		q = q.Where("r.id IN (?)", memberSubquery(r.db, models.KindFavorite, filter.ViewerID))
	}
	if filter.ViewerID != 0 && filter.InCart {
		q = q.Where("r.id IN (?)", memberSubquery(r.db, models.KindCart, filter.ViewerID))
	}

	total, err := q.Count(timeoutCtx)
	if err != nil {
		return nil, 0, r.HandleError("count", "recipe", err)
	}

	q = q.Order("r.id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := q.Scan(timeoutCtx); err != nil {
		return nil, 0, r.HandleError("list", "recipe", err)
	}
	return recipes, total, nil
}

func memberSubquery(db bun.IDB, kind models.MembershipKind, userID int64) *bun.SelectQuery {
	return db.NewSelect().
		Table(kind.Table()).
		Column("recipe_id").
		Where("user_id = ?", userID)
}

// TagsByRecipe loads the tags of every given recipe in one query.
func (r *RecipeRepository) TagsByRecipe(ctx context.Context, recipeIDs []int64) (map[int64][]models.RecipeTagRow, error) {
	out := make(map[int64][]models.RecipeTagRow, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return out, nil
	}

	var rows []models.RecipeTagRow
	err := r.SelectWithTimeout(ctx, "list", "recipe_tag", func(ctx context.Context) error {
		return r.db.NewSelect().
			TableExpr("recipe_tags AS rt").
			Join("JOIN tags AS t ON t.id = rt.tag_id").
			ColumnExpr("rt.recipe_id, t.id, t.name, t.slug").
			Where("rt.recipe_id IN (?)", bun.In(recipeIDs)).
			OrderExpr("t.name ASC, t.id ASC").
			Scan(ctx, &rows)
	})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.RecipeID] = append(out[row.RecipeID], row)
	}
	return out, nil
}

// IngredientsByRecipe loads ingredient rows with amounts for every given
// recipe in one query, in insertion order.
func (r *RecipeRepository) IngredientsByRecipe(ctx context.Context, recipeIDs []int64) (map[int64][]models.IngredientAmount, error) {
	out := make(map[int64][]models.IngredientAmount, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return out, nil
	}

	var rows []models.IngredientAmount
	err := r.SelectWithTimeout(ctx, "list", "recipe_ingredient", func(ctx context.Context) error {
		return r.db.NewSelect().
			TableExpr("recipe_ingredients AS ri").
			Join("JOIN ingredients AS i ON i.id = ri.ingredient_id").
			ColumnExpr("ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount").
			Where("ri.recipe_id IN (?)", bun.In(recipeIDs)).
			OrderExpr("ri.id ASC").
			Scan(ctx, &rows)
	})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.RecipeID] = append(out[row.RecipeID], row)
	}
	return out, nil
}

func (r *RecipeRepository) UsersByID(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	out := make(map[int64]*models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var users []*models.User
	err := r.SelectWithTimeout(ctx, "list", "user", func(ctx context.Context) error {
		return r.db.NewSelect().Model(&users).Where("id IN (?)", bun.In(ids)).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// SubscribedAuthors reports which of authorIDs the viewer follows.
func (r *RecipeRepository) SubscribedAuthors(ctx context.Context, viewerID int64, authorIDs []int64) (map[int64]bool, error) {
	return subscribedAuthors(ctx, r.BaseRepository, viewerID, authorIDs)
}

// MemberRecipes reports which of recipeIDs are in the user's favorites or
// cart depending on kind.
func (r *RecipeRepository) MemberRecipes(ctx context.Context, kind models.MembershipKind, userID int64, recipeIDs []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(recipeIDs))
	if userID == 0 || len(recipeIDs) == 0 {
		return out, nil
	}

	var found []int64
	err := r.SelectWithTimeout(ctx, "list", kind.String(), func(ctx context.Context) error {
		return memberSubquery(r.db, kind, userID).
			Where("recipe_id IN (?)", bun.In(recipeIDs)).
			Scan(ctx, &found)
	})
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		out[id] = true
	}
	return out, nil
}

func subscribedAuthors(ctx context.Context, br *BaseRepository, viewerID int64, authorIDs []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(authorIDs))
	if viewerID == 0 || len(authorIDs) == 0 {
		return out, nil
	}

	var found []int64
	err := br.SelectWithTimeout(ctx, "list", "subscription", func(ctx context.Context) error {
		return br.db.NewSelect().
			Model((*models.Subscription)(nil)).
			Column("author_id").
			Where("user_id = ?", viewerID).
			Where("author_id IN (?)", bun.In(authorIDs)).
			Scan(ctx, &found)
	})
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		out[id] = true
	}
	return out, nil
}
