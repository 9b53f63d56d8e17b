package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type UserRepository struct {
	*BaseRepository
}

func NewUserRepository(db *bun.DB) *UserRepository {
	return &UserRepository{BaseRepository: NewBaseRepository(db)}
}

// Create inserts the user. A taken email or username becomes a
// ConflictError naming the field.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.NewInsert().Model(user).Exec(timeoutCtx)
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		if strings.Contains(err.Error(), "email") {
			return &domain.ConflictError{Entity: "user", Field: "email", Value: user.Email}
		}
		return &domain.ConflictError{Entity: "user", Field: "username", Value: user.Username}
	}
	return r.HandleError("create", "user", err)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := new(models.User)
	err := r.SelectOneWithTimeout(ctx, "get", "user", id, func(ctx context.Context) error {
		return r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)
	err := r.SelectOneWithTimeout(ctx, "get", "user", email, func(ctx context.Context) error {
		return r.db.NewSelect().Model(user).Where("lower(email) = lower(?)", email).Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) EmailOrUsernameTaken(ctx context.Context, email, username string) (emailTaken, usernameTaken bool, err error) {
	emailTaken, err = r.Exists(ctx, "user", r.db.NewSelect().
		Model((*models.User)(nil)).
		Where("lower(email) = lower(?)", email))
	if err != nil {
		return false, false, err
	}
	usernameTaken, err = r.Exists(ctx, "user", r.db.NewSelect().
		Model((*models.User)(nil)).
		Where("username = ?", username))
	return emailTaken, usernameTaken, err
}

// List returns users newest first.
func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]*models.User, int, error) {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var users []*models.User
	q := r.db.NewSelect().Model(&users)
	total, err := q.Count(timeoutCtx)
	if err != nil {
		return nil, 0, r.HandleError("count", "user", err)
	}
	if err := q.Order("u.id DESC").Limit(limit).Offset(offset).Scan(timeoutCtx); err != nil {
		return nil, 0, r.HandleError("list", "user", err)
	}
	return users, total, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return r.updateColumn(ctx, id, "password_hash", hash)
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id int64, avatar string) error {
	return r.updateColumn(ctx, id, "avatar", avatar)
}

// RevokeTokens bumps the user's token version so every token issued before
// the call stops authenticating.
func (r *UserRepository) RevokeTokens(ctx context.Context, id int64) error {
	return r.update(ctx, id, "token_version = token_version + 1")
}

func (r *UserRepository) updateColumn(ctx context.Context, id int64, column string, value any) error {
	return r.update(ctx, id, "? = ?", bun.Ident(column), value)
}

func (r *UserRepository) update(ctx context.Context, id int64, set string, args ...any) error {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set(set, args...).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(timeoutCtx)
	if err != nil {
		return r.HandleErrorWithID("update", "user", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return r.HandleErrorWithID("update", "user", id, err)
	}
	if n == 0 {
		return &domain.NotFoundError{Entity: "user", ID: id}
	}
	return nil
}

// Subscribe records that userID follows authorID, reporting false when the
// subscription already existed.
func (r *UserRepository) Subscribe(ctx context.Context, userID, authorID int64) (bool, error) {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	sub := &models.Subscription{UserID: userID, AuthorID: authorID, CreatedAt: time.Now()}
	n, err := r.InsertIgnoringConflicts(timeoutCtx, r.db, "subscription", sub)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return false, &domain.NotFoundError{Entity: "user", ID: authorID}
		}
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) Unsubscribe(ctx context.Context, userID, authorID int64) (bool, error) {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewDelete().
		Model((*models.Subscription)(nil)).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Exec(timeoutCtx)
	if err != nil {
		return false, r.HandleError("delete", "subscription", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, r.HandleError("delete", "subscription", err)
	}
	return n > 0, nil
}

// Subscriptions lists the authors userID follows, newest author first.
func (r *UserRepository) Subscriptions(ctx context.Context, userID int64, offset, limit int) ([]*models.User, int, error) {
	timeoutCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var authors []*models.User
	q := r.db.NewSelect().
		Model(&authors).
		Where("u.id IN (?)", r.db.NewSelect().
			Model((*models.Subscription)(nil)).
			Column("author_id").
			Where("user_id = ?", userID))
	total, err := q.Count(timeoutCtx)
	if err != nil {
		return nil, 0, r.HandleError("count", "subscription", err)
	}
	if err := q.Order("u.id DESC").Limit(limit).Offset(offset).Scan(timeoutCtx); err != nil {
		return nil, 0, r.HandleError("list", "subscription", err)
	}
	return authors, total, nil
}

func (r *UserRepository) SubscribedAuthors(ctx context.Context, viewerID int64, authorIDs []int64) (map[int64]bool, error) {
	return subscribedAuthors(ctx, r.BaseRepository, viewerID, authorIDs)
}

// RecipesByAuthor returns up to limit newest recipes per author. A limit
// below one returns every recipe.
func (r *UserRepository) RecipesByAuthor(ctx context.Context, authorIDs []int64, limit int) (map[int64][]*models.Recipe, error) {
	out := make(map[int64][]*models.Recipe, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}

	var recipes []*models.Recipe
	err := r.SelectWithTimeout(ctx, "list", "recipe", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&recipes).
			Where("r.author_id IN (?)", bun.In(authorIDs)).
			Order("r.id DESC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}
	for _, recipe := range recipes {
		if limit > 0 && len(out[recipe.AuthorID]) >= limit {
			continue
		}
		out[recipe.AuthorID] = append(out[recipe.AuthorID], recipe)
	}
	return out, nil
}

// RecipeCounts counts recipes per author.
func (r *UserRepository) RecipeCounts(ctx context.Context, authorIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		AuthorID int64 `bun:"author_id"`
		Count    int   `bun:"count"`
	}
	err := r.SelectWithTimeout(ctx, "count", "recipe", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model((*models.Recipe)(nil)).
			ColumnExpr("r.author_id AS author_id").
			ColumnExpr("count(*) AS count").
			Where("r.author_id IN (?)", bun.In(authorIDs)).
			GroupExpr("r.author_id").
			Scan(ctx, &rows)
	})
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.AuthorID] = row.Count
	}
	return out, nil
}
