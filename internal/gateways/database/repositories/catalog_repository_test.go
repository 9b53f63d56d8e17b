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

func TestCatalogRepository_Tags(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	breakfast := fx.Tag("Breakfast", "breakfast")
	fx.Tag("Supper", "supper")
	fx.Tag("Brunch", "brunch")

	tags, err := repo.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, []string{"Breakfast", "Brunch", "Supper"}, []string{tags[0].Name, tags[1].Name, tags[2].Name})

	got, err := repo.GetTag(ctx, breakfast.ID)
	require.NoError(t, err)
	assert.Equal(t, "breakfast", got.Slug)

	_, err = repo.GetTag(ctx, 999)
	assert.True(t, domain.IsNotFound(err))
}

func TestCatalogRepository_SearchIngredients(t *testing.T) {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	fx.Ingredient("Sugar", "g")
	fx.Ingredient("salt", "g")
	fx.Ingredient("sugar syrup", "ml")
	fx.Ingredient("100% juice", "ml")

	tests := []struct {
		name   string
		prefix string
		limit  int
		want   []string
	}{
		{name: "case insensitive prefix", prefix: "su", want: []string{"Sugar", "sugar syrup"}},
		{name: "limit", prefix: "s", limit: 1, want: []string{"Sugar"}},
		{name: "percent is literal", prefix: "100%", want: []string{"100% juice"}},
		{name: "wildcard not expanded", prefix: "%", want: nil},
		{name: "no match", prefix: "zz", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.SearchIngredients(ctx, tt.prefix, tt.limit)
			require.NoError(t, err)
			var names []string
			for _, ing := range got {
				names = append(names, ing.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCatalogRepository_InsertIngredients_Idempotent(t *testing.T) {
	db := dbtest.New(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	batch := func() []*models.Ingredient {
		return []*models.Ingredient{
			{Name: "flour", MeasurementUnit: "g"},
			{Name: "flour", MeasurementUnit: "cup"},
			{Name: "milk", MeasurementUnit: "ml"},
		}
	}

	n, err := repo.InsertIngredients(ctx, batch())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.InsertIngredients(ctx, batch())
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := repo.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	n, err = repo.InsertTags(ctx, []*models.Tag{{Name: "Lunch", Slug: "lunch"}, {Name: "Lunch again", Slug: "lunch"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
