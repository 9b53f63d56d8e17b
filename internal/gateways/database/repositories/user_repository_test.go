package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/gateways/database/dbtest"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

func TestUserRepository_CreateConflicts(t *testing.T) {
	db := dbtest.New(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "a@example.com", Username: "alice", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	err := repo.Create(ctx, &models.User{Email: "a@example.com", Username: "other", PasswordHash: "h"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email", conflict.Field)

	err = repo.Create(ctx, &models.User{Email: "b@example.com", Username: "alice", PasswordHash: "h"})
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "username", conflict.Field)

	emailTaken, usernameTaken, err := repo.EmailOrUsernameTaken(ctx, "A@example.com", "bob")
	require.NoError(t, err)
	assert.True(t, emailTaken)
	assert.False(t, usernameTaken)

	got, err := repo.GetByEmail(ctx, "A@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserRepository_UpdateColumns(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := fx.User("alice")
	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))
	require.NoError(t, repo.UpdateAvatar(ctx, user.ID, "users/a.png"))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.PasswordHash)
	assert.Equal(t, "users/a.png", got.Avatar)
	assert.Zero(t, got.TokenVersion)

	require.NoError(t, repo.RevokeTokens(ctx, user.ID))
	require.NoError(t, repo.RevokeTokens(ctx, user.ID))
	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TokenVersion)

	assert.True(t, domain.IsNotFound(repo.UpdateAvatar(ctx, 999, "")))
	assert.True(t, domain.IsNotFound(repo.RevokeTokens(ctx, 999)))
}

func TestUserRepository_Subscriptions(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	reader := fx.User("reader")
	a1 := fx.User("author1")
	a2 := fx.User("author2")
	fx.Recipe(a1, "r1", nil, nil)
	fx.Recipe(a1, "r2", nil, nil)
	newest := fx.Recipe(a1, "r3", nil, nil)

	ok, err := repo.Subscribe(ctx, reader.ID, a1.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Subscribe(ctx, reader.ID, a1.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = repo.Subscribe(ctx, reader.ID, a2.ID)
	require.NoError(t, err)

	authors, total, err := repo.Subscriptions(ctx, reader.ID, 0, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, authors, 2)
	assert.Equal(t, a2.ID, authors[0].ID)

	recipes, err := repo.RecipesByAuthor(ctx, []int64{a1.ID, a2.ID}, 2)
	require.NoError(t, err)
	require.Len(t, recipes[a1.ID], 2)
	assert.Equal(t, newest.ID, recipes[a1.ID][0].ID)
	assert.Empty(t, recipes[a2.ID])

	counts, err := repo.RecipeCounts(ctx, []int64{a1.ID, a2.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, counts[a1.ID])
	assert.Equal(t, 0, counts[a2.ID])

	subscribed, err := repo.SubscribedAuthors(ctx, reader.ID, []int64{a1.ID, a2.ID, reader.ID})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{a1.ID: true, a2.ID: true}, subscribed)

	removed, err := repo.Unsubscribe(ctx, reader.ID, a1.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.Unsubscribe(ctx, reader.ID, a1.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.Subscribe(ctx, reader.ID, 999)
	assert.True(t, domain.IsNotFound(err))
}

func TestUserRepository_List(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	repo := NewUserRepository(db)

	fx.User("u1")
	fx.User("u2")
	u3 := fx.User("u3")

	users, total, err := repo.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, users, 2)
	assert.Equal(t, u3.ID, users[0].ID)
}
