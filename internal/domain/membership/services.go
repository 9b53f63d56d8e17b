package membership

import (
	"context"
	"log/slog"

	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

// Service toggles a recipe in a user's favorites or shopping cart.
type Service interface {
	Add(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) (*domain.RecipeShort, error)
	Remove(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) error
}

type service struct {
	repository Repository
	imageURL   domain.ImageURLFunc
}

func NewService(repository Repository, imageURL domain.ImageURLFunc) *service {
	return &service{
		repository: repository,
		imageURL:   imageURL,
	}
}

// Add returns the short recipe view on success and a ConflictError when the
// recipe is already there. Two concurrent adds resolve to one success and
// one conflict.
func (s *service) Add(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) (*domain.RecipeShort, error) {
	recipe, err := s.repository.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	added, err := s.repository.Add(ctx, kind, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, &domain.ConflictError{Entity: kind.String(), Field: "recipe", Value: recipeID}
	}

	slog.Debug("Recipe added",
		slog.String("kind", kind.String()),
		slog.Int64("user_id", userID),
		slog.Int64("recipe_id", recipeID),
	)
	short := domain.NewRecipeShort(recipe, s.imageURL)
	return &short, nil
}

// Remove returns a NotFoundError naming the recipe when it is missing and
// one naming the membership when the recipe was not in the collection.
func (s *service) Remove(ctx context.Context, kind models.MembershipKind, userID, recipeID int64) error {
	if _, err := s.repository.GetRecipe(ctx, recipeID); err != nil {
		return err
	}

	removed, err := s.repository.Remove(ctx, kind, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return &domain.NotFoundError{Entity: kind.String(), ID: recipeID}
	}
	return nil
}
