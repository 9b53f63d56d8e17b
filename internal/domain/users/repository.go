package users

import (
	"context"

	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailOrUsernameTaken(ctx context.Context, email, username string) (bool, bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	UpdateAvatar(ctx context.Context, id int64, avatar string) error
	RevokeTokens(ctx context.Context, id int64) error
	Subscribe(ctx context.Context, userID, authorID int64) (bool, error)
	Unsubscribe(ctx context.Context, userID, authorID int64) (bool, error)
	Subscriptions(ctx context.Context, userID int64, offset, limit int) ([]*models.User, int, error)
	SubscribedAuthors(ctx context.Context, viewerID int64, authorIDs []int64) (map[int64]bool, error)
	RecipesByAuthor(ctx context.Context, authorIDs []int64, limit int) (map[int64][]*models.Recipe, error)
	RecipeCounts(ctx context.Context, authorIDs []int64) (map[int64]int, error)
}

type ImageStore interface {
	Save(ctx context.Context, prefix, dataURL string) (string, error)
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}
