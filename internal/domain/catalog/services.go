package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

type Service interface {
	ListTags(ctx context.Context) ([]*models.Tag, error)
	GetTag(ctx context.Context, id int64) (*models.Tag, error)
	SearchIngredients(ctx context.Context, name string) ([]*models.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error)
	ImportIngredients(ctx context.Context, r io.Reader) (ImportResult, error)
	ImportTags(ctx context.Context, r io.Reader) (ImportResult, error)
}

type service struct {
	repository Repository
}

func NewService(repository Repository) *service {
	return &service{
		repository: repository,
	}
}

func (s *service) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return s.repository.ListTags(ctx)
}

func (s *service) GetTag(ctx context.Context, id int64) (*models.Tag, error) {
	return s.repository.GetTag(ctx, id)
}

func (s *service) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	return s.repository.GetIngredient(ctx, id)
}

// SearchIngredients returns ingredients whose name starts with name. When
// nothing starts with it the whole catalog is ranked by fuzzy match so a
// typo still finds something.
func (s *service) SearchIngredients(ctx context.Context, name string) ([]*models.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.repository.ListIngredients(ctx)
	}

	found, err := s.repository.SearchIngredients(ctx, name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}
	if len(found) > 0 {
		return found, nil
	}

	all, err := s.repository.ListIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	matches := fuzzy.FindFrom(strings.ToLower(name), ingredientNames(all))
	out := make([]*models.Ingredient, 0, min(len(matches), config.IngredientSearchLimit))
	for _, m := range matches {
		if len(out) == config.IngredientSearchLimit {
			break
		}
		out = append(out, all[m.Index])
	}

	slog.Debug("Ingredient search fell back to fuzzy match",
		slog.String("query", name),
		slog.Int("matches", len(out)),
	)
	return out, nil
}

type ingredientNames []*models.Ingredient

func (n ingredientNames) String(i int) string { return strings.ToLower(n[i].Name) }
func (n ingredientNames) Len() int            { return len(n) }
