// Package dbtest opens throwaway SQLite databases with the application schema.
package dbtest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/sunar87/foodgram/internal/gateways/database"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

// New returns an in-memory database with the schema applied. A single
// connection is kept open so every query sees the same memory database.
func New(t testing.TB) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	if err := database.CreateSchema(context.Background(), db); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

// Fixtures inserts rows straight through bun.
type Fixtures struct {
	t  testing.TB
	db *bun.DB
}

func NewFixtures(t testing.TB, db *bun.DB) *Fixtures {
	return &Fixtures{t: t, db: db}
}

func (f *Fixtures) insert(model any) {
	f.t.Helper()
	if _, err := f.db.NewInsert().Model(model).Exec(context.Background()); err != nil {
		f.t.Fatalf("insert fixture %T: %v", model, err)
	}
}

func (f *Fixtures) User(username string) *models.User {
	f.t.Helper()
	now := time.Now()
	u := &models.User{
		Email:        username + "@example.com",
		Username:     username,
		FirstName:    username,
		LastName:     "Tester",
		PasswordHash: "x",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.insert(u)
	return u
}

func (f *Fixtures) Tag(name, slug string) *models.Tag {
	f.t.Helper()
	tag := &models.Tag{Name: name, Slug: slug}
	f.insert(tag)
	return tag
}

func (f *Fixtures) Ingredient(name, unit string) *models.Ingredient {
	f.t.Helper()
	ing := &models.Ingredient{Name: name, MeasurementUnit: unit}
	f.insert(ing)
	return ing
}

// Recipe inserts a recipe with the given tags and ingredient amounts keyed
// by ingredient id.
func (f *Fixtures) Recipe(author *models.User, name string, tags []*models.Tag, amounts map[int64]int) *models.Recipe {
	f.t.Helper()
	now := time.Now()
	r := &models.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        "Cook " + name,
		Image:       "recipes/images/" + name + ".png",
		CookingTime: 10,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.insert(r)
	for _, tag := range tags {
		f.insert(&models.RecipeTag{RecipeID: r.ID, TagID: tag.ID})
	}
	for ingredientID, amount := range amounts {
		f.insert(&models.RecipeIngredient{RecipeID: r.ID, IngredientID: ingredientID, Amount: amount})
	}
	return r
}

func (f *Fixtures) Favorite(user *models.User, recipe *models.Recipe) {
	f.t.Helper()
	f.insert(&models.Favorite{UserID: user.ID, RecipeID: recipe.ID, CreatedAt: time.Now()})
}

func (f *Fixtures) Cart(user *models.User, recipe *models.Recipe) {
	f.t.Helper()
	f.insert(&models.CartEntry{UserID: user.ID, RecipeID: recipe.ID, CreatedAt: time.Now()})
}

func (f *Fixtures) Subscribe(user, author *models.User) {
	f.t.Helper()
	f.insert(&models.Subscription{UserID: user.ID, AuthorID: author.ID, CreatedAt: time.Now()})
}
