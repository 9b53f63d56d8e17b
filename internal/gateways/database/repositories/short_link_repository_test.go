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

func TestShortLinkRepository(t *testing.T) {
	db := dbtest.New(t)
	repo := NewShortLinkRepository(db)
	ctx := context.Background()

	ok, err := repo.Insert(ctx, &models.ShortLink{URL: "http://x/recipes/1", Token: "abcdefg"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Insert(ctx, &models.ShortLink{URL: "http://x/recipes/1", Token: "zzzzzzz"})
	require.NoError(t, err)
	assert.False(t, ok, "url already linked")

	ok, err = repo.Insert(ctx, &models.ShortLink{URL: "http://x/recipes/2", Token: "abcdefg"})
	require.NoError(t, err)
	assert.False(t, ok, "token already taken")

	byToken, err := repo.GetByToken(ctx, "abcdefg")
	require.NoError(t, err)
	assert.Equal(t, "http://x/recipes/1", byToken.URL)

	byURL, err := repo.GetByURL(ctx, "http://x/recipes/1")
	require.NoError(t, err)
	assert.Equal(t, "abcdefg", byURL.Token)

	_, err = repo.GetByToken(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestShortLinkRepository_RecipeExists(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	repo := NewShortLinkRepository(db)

	recipe := fx.Recipe(fx.User("cook"), "Tea", nil, nil)

	ok, err := repo.RecipeExists(context.Background(), recipe.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.RecipeExists(context.Background(), recipe.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)
}
