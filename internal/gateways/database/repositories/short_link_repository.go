package repositories

import (
	"context"
	"time"

	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type ShortLinkRepository struct {
	*BaseRepository
}

func NewShortLinkRepository(db *bun.DB) *ShortLinkRepository {
	return &ShortLinkRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *ShortLinkRepository) GetByURL(ctx context.Context, url string) (*models.ShortLink, error) {
	link := new(models.ShortLink)
	err := r.SelectOneWithTimeout(ctx, "get", "short_link", url, func(ctx context.Context) error {
		return r.db.NewSelect().Model(link).Where("url = ?", url).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (r *ShortLinkRepository) GetByToken(ctx context.Context, token string) (*models.ShortLink, error) {
	link := new(models.ShortLink)
	err := r.SelectOneWithTimeout(ctx, "get", "short_link", token, func(ctx context.Context) error {
		return r.db.NewSelect().Model(link).Where("token = ?", token).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// Insert stores the link unless its url or token is taken, reporting
// whether the row was written.
func (r *ShortLinkRepository) Insert(ctx context.Context, link *models.ShortLink) (bool, error) {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now()
	}
	n, err := r.InsertIgnoringConflicts(timeoutCtx, r.db, "short_link", link)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ShortLinkRepository) RecipeExists(ctx context.Context, recipeID int64) (bool, error) {
	return r.Exists(ctx, "recipe", r.db.NewSelect().
		Model((*models.Recipe)(nil)).
		Where("id = ?", recipeID))
}
