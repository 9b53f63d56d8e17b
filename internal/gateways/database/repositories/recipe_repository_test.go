package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/gateways/database/dbtest"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type recipeFixture struct {
	db     *bun.DB
	fx     *dbtest.Fixtures
	repo   *RecipeRepository
	author *models.User
	reader *models.User
	lunch  *models.Tag
	dinner *models.Tag
	flour  *models.Ingredient
	sugar  *models.Ingredient
	milk   *models.Ingredient
}

func newRecipeFixture(t *testing.T) *recipeFixture {
	db := dbtest.New(t)
	fx := dbtest.NewFixtures(t, db)
	return &recipeFixture{
		db:     db,
		fx:     fx,
		repo:   NewRecipeRepository(db),
		author: fx.User("chef"),
		reader: fx.User("reader"),
		lunch:  fx.Tag("Lunch", "lunch"),
		dinner: fx.Tag("Dinner", "dinner"),
		flour:  fx.Ingredient("flour", "g"),
		sugar:  fx.Ingredient("sugar", "g"),
		milk:   fx.Ingredient("milk", "ml"),
	}
}

func countRows(t *testing.T, db *bun.DB, model any, recipeID int64) int {
	t.Helper()
	n, err := db.NewSelect().Model(model).Where("recipe_id = ?", recipeID).Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestRecipeRepository_Create(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := &models.Recipe{AuthorID: f.author.ID, Name: "Pancakes", Text: "Mix and fry", Image: "img.png", CookingTime: 15}
	err := f.repo.Create(ctx, recipe, []int64{f.lunch.ID, f.dinner.ID}, []models.RecipeIngredient{
		{IngredientID: f.flour.ID, Amount: 200},
		{IngredientID: f.milk.ID, Amount: 300},
	})
	require.NoError(t, err)
	require.NotZero(t, recipe.ID)

	ingredients, err := f.repo.IngredientsByRecipe(ctx, []int64{recipe.ID})
	require.NoError(t, err)
	require.Len(t, ingredients[recipe.ID], 2)
	assert.Equal(t, "flour", ingredients[recipe.ID][0].Name)
	assert.Equal(t, 200, ingredients[recipe.ID][0].Amount)
	assert.Equal(t, "ml", ingredients[recipe.ID][1].MeasurementUnit)

	tags, err := f.repo.TagsByRecipe(ctx, []int64{recipe.ID})
	require.NoError(t, err)
	require.Len(t, tags[recipe.ID], 2)
	assert.Equal(t, "dinner", tags[recipe.ID][0].Slug)
}

func TestRecipeRepository_Create_UnknownReferences(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := &models.Recipe{AuthorID: f.author.ID, Name: "Ghost", Text: "t", Image: "i", CookingTime: 5}
	err := f.repo.Create(ctx, recipe, []int64{f.lunch.ID, 999}, []models.RecipeIngredient{
		{IngredientID: f.flour.ID, Amount: 1},
		{IngredientID: 777, Amount: 1},
	})
	require.Error(t, err)

	verrs, ok := domain.AsValidation(err)
	require.True(t, ok)
	require.Len(t, verrs, 2)
	assert.Equal(t, domain.CodeUnknownReference, verrs[0].Code)
	assert.Equal(t, []int64{999}, verrs[0].IDs)
	assert.Equal(t, "ingredients", verrs[1].Field)
	assert.Equal(t, []int64{777}, verrs[1].IDs)

	n, err := f.db.NewSelect().Model((*models.Recipe)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "no recipe row may survive a rejected create")
}

func TestRecipeRepository_Update_ReplacesAssociations(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := f.fx.Recipe(f.author, "Cake", []*models.Tag{f.lunch}, map[int64]int{f.flour.ID: 100, f.sugar.ID: 50})

	recipe.Name = "Better cake"
	recipe.CookingTime = 40
	err := f.repo.Update(ctx, recipe, []int64{f.dinner.ID}, []models.RecipeIngredient{
		{IngredientID: f.milk.ID, Amount: 250},
	})
	require.NoError(t, err)

	stored, err := f.repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Better cake", stored.Name)
	assert.Equal(t, 40, stored.CookingTime)

	ingredients, err := f.repo.IngredientsByRecipe(ctx, []int64{recipe.ID})
	require.NoError(t, err)
	require.Len(t, ingredients[recipe.ID], 1)
	assert.Equal(t, f.milk.ID, ingredients[recipe.ID][0].ID)
	assert.Equal(t, 250, ingredients[recipe.ID][0].Amount)

	tags, err := f.repo.TagsByRecipe(ctx, []int64{recipe.ID})
	require.NoError(t, err)
	require.Len(t, tags[recipe.ID], 1)
	assert.Equal(t, f.dinner.ID, tags[recipe.ID][0].ID)
}

func TestRecipeRepository_Update_RollsBackOnUnknownReference(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := f.fx.Recipe(f.author, "Soup", []*models.Tag{f.lunch}, map[int64]int{f.milk.ID: 500})

	recipe.Name = "Renamed"
	err := f.repo.Update(ctx, recipe, []int64{f.lunch.ID}, []models.RecipeIngredient{
		{IngredientID: 12345, Amount: 1},
	})
	require.Error(t, err)

	stored, err := f.repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", stored.Name)
	assert.Equal(t, 1, countRows(t, f.db, (*models.RecipeIngredient)(nil), recipe.ID))
	assert.Equal(t, 1, countRows(t, f.db, (*models.RecipeTag)(nil), recipe.ID))
}

func TestRecipeRepository_Update_DuplicateRowIsIntegrityError(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := f.fx.Recipe(f.author, "Bread", []*models.Tag{f.lunch}, map[int64]int{f.flour.ID: 500})

	err := f.repo.Update(ctx, recipe, []int64{f.lunch.ID}, []models.RecipeIngredient{
		{IngredientID: f.flour.ID, Amount: 1},
		{IngredientID: f.flour.ID, Amount: 2},
	})
	require.Error(t, err)
	assert.True(t, domain.IsIntegrity(err))

	ingredients, err := f.repo.IngredientsByRecipe(ctx, []int64{recipe.ID})
	require.NoError(t, err)
	require.Len(t, ingredients[recipe.ID], 1)
	assert.Equal(t, 500, ingredients[recipe.ID][0].Amount)
}

func TestRecipeRepository_CheckConstraints(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := f.fx.Recipe(f.author, "Bread", []*models.Tag{f.lunch}, map[int64]int{f.flour.ID: 500})

	tests := []struct {
		name string
		exec func() error
	}{
		{
			name: "Non-positive amount",
			exec: func() error {
				_, err := f.db.NewInsert().
					Model(&models.RecipeIngredient{RecipeID: recipe.ID, IngredientID: f.sugar.ID, Amount: -5}).
					Exec(ctx)
				return err
			},
		},
		{
			name: "Amount above the cap",
			exec: func() error {
				_, err := f.db.NewInsert().
					Model(&models.RecipeIngredient{RecipeID: recipe.ID, IngredientID: f.milk.ID, Amount: 32001}).
					Exec(ctx)
				return err
			},
		},
		{
			name: "Zero cooking time",
			exec: func() error {
				_, err := f.db.NewUpdate().
					Model((*models.Recipe)(nil)).
					Set("cooking_time = ?", 0).
					Where("id = ?", recipe.ID).
					Exec(ctx)
				return err
			},
		},
		{
			name: "Cooking time above the cap",
			exec: func() error {
				_, err := f.db.NewUpdate().
					Model((*models.Recipe)(nil)).
					Set("cooking_time = ?", 32001).
					Where("id = ?", recipe.ID).
					Exec(ctx)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.exec()
			require.Error(t, err)
			assert.True(t, IsCheckViolation(err), "unexpected error %v", err)
		})
	}

	assert.Equal(t, 1, countRows(t, f.db, (*models.RecipeIngredient)(nil), recipe.ID))
}

func TestRecipeRepository_Create_CheckViolationIsIntegrityError(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := &models.Recipe{AuthorID: f.author.ID, Name: "Broken", Text: "x", Image: "img.png", CookingTime: 10}
	err := f.repo.Create(ctx, recipe, []int64{f.lunch.ID}, []models.RecipeIngredient{
		{IngredientID: f.flour.ID, Amount: -5},
	})
	require.Error(t, err)
	assert.True(t, domain.IsIntegrity(err))

	n, err := f.db.NewSelect().Model((*models.Recipe)(nil)).Where("name = ?", "Broken").Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRecipeRepository_Update_CheckViolationIsIntegrityError(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := f.fx.Recipe(f.author, "Stew", []*models.Tag{f.lunch}, map[int64]int{f.flour.ID: 500})
	recipe.CookingTime = 0

	err := f.repo.Update(ctx, recipe, []int64{f.lunch.ID}, []models.RecipeIngredient{
		{IngredientID: f.flour.ID, Amount: 100},
	})
	require.Error(t, err)
	assert.True(t, domain.IsIntegrity(err))

	stored, err := f.repo.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.CookingTime)
}

func TestRecipeRepository_Update_Missing(t *testing.T) {
	f := newRecipeFixture(t)

	err := f.repo.Update(context.Background(), &models.Recipe{ID: 404, Name: "x"}, []int64{f.lunch.ID}, []models.RecipeIngredient{
		{IngredientID: f.flour.ID, Amount: 1},
	})
	assert.True(t, domain.IsNotFound(err))
}

func TestRecipeRepository_Delete_Cascades(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	recipe := f.fx.Recipe(f.author, "Salad", []*models.Tag{f.lunch}, map[int64]int{f.sugar.ID: 5})
	f.fx.Favorite(f.reader, recipe)
	f.fx.Cart(f.reader, recipe)

	require.NoError(t, f.repo.Delete(ctx, recipe.ID))

	assert.Zero(t, countRows(t, f.db, (*models.RecipeIngredient)(nil), recipe.ID))
	assert.Zero(t, countRows(t, f.db, (*models.RecipeTag)(nil), recipe.ID))
	assert.Zero(t, countRows(t, f.db, (*models.Favorite)(nil), recipe.ID))
	assert.Zero(t, countRows(t, f.db, (*models.CartEntry)(nil), recipe.ID))

	assert.True(t, domain.IsNotFound(f.repo.Delete(ctx, recipe.ID)))
}

func TestRecipeRepository_List(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	other := f.fx.User("other")
	r1 := f.fx.Recipe(f.author, "One", []*models.Tag{f.lunch}, map[int64]int{f.flour.ID: 1})
	r2 := f.fx.Recipe(f.author, "Two", []*models.Tag{f.dinner}, map[int64]int{f.flour.ID: 1})
	r3 := f.fx.Recipe(other, "Three", []*models.Tag{f.lunch, f.dinner}, map[int64]int{f.flour.ID: 1})
	f.fx.Favorite(f.reader, r1)
	f.fx.Cart(f.reader, r3)

	ids := func(recipes []*models.Recipe) []int64 {
		out := make([]int64, len(recipes))
		for i, r := range recipes {
			out[i] = r.ID
		}
		return out
	}

	tests := []struct {
		name      string
		filter    models.RecipeFilter
		want      []int64
		wantTotal int
	}{
		{name: "all newest first", filter: models.RecipeFilter{Limit: 6}, want: []int64{r3.ID, r2.ID, r1.ID}, wantTotal: 3},
		{name: "paged", filter: models.RecipeFilter{Limit: 2, Offset: 2}, want: []int64{r1.ID}, wantTotal: 3},
		{name: "by author", filter: models.RecipeFilter{AuthorID: f.author.ID, Limit: 6}, want: []int64{r2.ID, r1.ID}, wantTotal: 2},
		{name: "by tag", filter: models.RecipeFilter{TagSlugs: []string{"lunch"}, Limit: 6}, want: []int64{r3.ID, r1.ID}, wantTotal: 2},
		{name: "any of tags", filter: models.RecipeFilter{TagSlugs: []string{"lunch", "dinner"}, Limit: 6}, want: []int64{r3.ID, r2.ID, r1.ID}, wantTotal: 3},
		{name: "favorited", filter: models.RecipeFilter{ViewerID: f.reader.ID, Favorited: true, Limit: 6}, want: []int64{r1.ID}, wantTotal: 1},
		{name: "in cart", filter: models.RecipeFilter{ViewerID: f.reader.ID, InCart: true, Limit: 6}, want: []int64{r3.ID}, wantTotal: 1},
		{name: "favorited ignored for anonymous", filter: models.RecipeFilter{Favorited: true, Limit: 6}, want: []int64{r3.ID, r2.ID, r1.ID}, wantTotal: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := f.repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestRecipeRepository_ViewerLookups(t *testing.T) {
	f := newRecipeFixture(t)
	ctx := context.Background()

	r1 := f.fx.Recipe(f.author, "One", nil, nil)
	r2 := f.fx.Recipe(f.author, "Two", nil, nil)
	f.fx.Favorite(f.reader, r2)
	f.fx.Subscribe(f.reader, f.author)

	favs, err := f.repo.MemberRecipes(ctx, models.KindFavorite, f.reader.ID, []int64{r1.ID, r2.ID})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{r2.ID: true}, favs)

	anon, err := f.repo.MemberRecipes(ctx, models.KindFavorite, 0, []int64{r1.ID, r2.ID})
	require.NoError(t, err)
	assert.Empty(t, anon)

	subs, err := f.repo.SubscribedAuthors(ctx, f.reader.ID, []int64{f.author.ID, f.reader.ID})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{f.author.ID: true}, subs)

	users, err := f.repo.UsersByID(ctx, []int64{f.author.ID})
	require.NoError(t, err)
	assert.Equal(t, "chef", users[f.author.ID].Username)
}
