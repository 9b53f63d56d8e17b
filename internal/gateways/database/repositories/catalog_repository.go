package repositories

import (
	"context"
	"strings"

	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type CatalogRepository struct {
	*BaseRepository
}

func NewCatalogRepository(db *bun.DB) *CatalogRepository {
	return &CatalogRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *CatalogRepository) ListTags(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.SelectWithTimeout(ctx, "list", "tag", func(ctx context.Context) error {
		return r.db.NewSelect().Model(&tags).Order("name ASC", "id ASC").Scan(ctx)
	})
	return tags, err
}

func (r *CatalogRepository) GetTag(ctx context.Context, id int64) (*models.Tag, error) {
	tag := new(models.Tag)
	err := r.SelectOneWithTimeout(ctx, "get", "tag", id, func(ctx context.Context) error {
		return r.db.NewSelect().Model(tag).Where("id = ?", id).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *CatalogRepository) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	ing := new(models.Ingredient)
	err := r.SelectOneWithTimeout(ctx, "get", "ingredient", id, func(ctx context.Context) error {
		return r.db.NewSelect().Model(ing).Where("id = ?", id).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return ing, nil
}

// SearchIngredients matches names starting with prefix, ignoring case.
// An empty prefix lists the catalog.
func (r *CatalogRepository) SearchIngredients(ctx context.Context, prefix string, limit int) ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	timeoutCtx, cancel := r.WithCustomTimeout(ctx, config.SearchTimeout)
	defer cancel()

	err := r.SelectWithTimeout(timeoutCtx, "search", "ingredient", func(ctx context.Context) error {
		q := r.db.NewSelect().Model(&ingredients).Order("name ASC", "id ASC")
		if prefix != "" {
			q = q.Where("lower(name) LIKE ? ESCAPE '\\'", escapeLike(strings.ToLower(prefix))+"%")
		}
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q.Scan(ctx)
	})
	return ingredients, err
}

func (r *CatalogRepository) ListIngredients(ctx context.Context) ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	err := r.SelectWithTimeout(ctx, "list", "ingredient", func(ctx context.Context) error {
		return r.db.NewSelect().Model(&ingredients).Order("name ASC", "id ASC").Scan(ctx)
	})
	return ingredients, err
}

// InsertIngredients writes the rows in batches, skipping (name, unit) pairs
// that already exist, and returns the number of new rows.
func (r *CatalogRepository) InsertIngredients(ctx context.Context, ingredients []*models.Ingredient) (int64, error) {
	return insertBatches(ctx, r.BaseRepository, "ingredient", ingredients)
}

// InsertTags is InsertIngredients for tags, keyed by slug.
func (r *CatalogRepository) InsertTags(ctx context.Context, tags []*models.Tag) (int64, error) {
	return insertBatches(ctx, r.BaseRepository, "tag", tags)
}

func insertBatches[T any](ctx context.Context, br *BaseRepository, entity string, rows []*T) (int64, error) {
	timeoutCtx, cancel := br.WithCustomTimeout(ctx, config.BatchQueryTimeout)
	defer cancel()

	var inserted int64
	for start := 0; start < len(rows); start += config.DefaultBatchSize {
		end := min(start+config.DefaultBatchSize, len(rows))
		batch := rows[start:end]
		n, err := br.InsertIgnoringConflicts(timeoutCtx, br.db, entity, &batch)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
