package recipes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"github.com/sunar87/foodgram/internal/gateways/storage"
)

type Service interface {
	Create(ctx context.Context, actor *models.User, cmd RecipeCommand) (*RecipeView, error)
	Update(ctx context.Context, actor *models.User, id int64, cmd RecipeCommand) (*RecipeView, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
	Get(ctx context.Context, viewerID, id int64) (*RecipeView, error)
	List(ctx context.Context, viewerID int64, query ListQuery) (domain.PageResult[*RecipeView], error)
}

type service struct {
	repository Repository
	images     ImageStore
}

func NewService(repository Repository, images ImageStore) *service {
	return &service{
		repository: repository,
		images:     images,
	}
}

func (s *service) Create(ctx context.Context, actor *models.User, cmd RecipeCommand) (*RecipeView, error) {
	if err := cmd.Validate(true).Err(); err != nil {
		return nil, err
	}

	ref, err := s.saveImage(ctx, cmd.Image)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    actor.ID,
		Name:        strings.TrimSpace(cmd.Name),
		Text:        cmd.Text,
		Image:       ref,
		CookingTime: cmd.CookingTime,
	}
	if err := s.repository.Create(ctx, recipe, cmd.TagIDs, cmd.ingredientRows()); err != nil {
		s.discardImage(ctx, ref)
		return nil, s.mutationError("create", err)
	}

	slog.Info("Recipe created",
		slog.Int64("recipe_id", recipe.ID),
		slog.Int64("author_id", actor.ID),
		slog.Int("tags", len(cmd.TagIDs)),
		slog.Int("ingredients", len(cmd.Ingredients)),
	)
	return s.one(ctx, actor.ID, recipe)
}

func (s *service) Update(ctx context.Context, actor *models.User, id int64, cmd RecipeCommand) (*RecipeView, error) {
	existing, err := s.authorize(ctx, actor, id, "update recipe")
	if err != nil {
		return nil, err
	}
	if err := cmd.Validate(false).Err(); err != nil {
		return nil, err
	}

	recipe := *existing
	recipe.Name = strings.TrimSpace(cmd.Name)
	recipe.Text = cmd.Text
	recipe.CookingTime = cmd.CookingTime

	var newRef string
	if strings.TrimSpace(cmd.Image) != "" {
		if newRef, err = s.saveImage(ctx, cmd.Image); err != nil {
			return nil, err
		}
		recipe.Image = newRef
	}

	if err := s.repository.Update(ctx, &recipe, cmd.TagIDs, cmd.ingredientRows()); err != nil {
		s.discardImage(ctx, newRef)
		return nil, s.mutationError("update", err)
	}
	if newRef != "" {
		s.discardImage(ctx, existing.Image)
	}

	slog.Info("Recipe updated",
		slog.Int64("recipe_id", recipe.ID),
		slog.Int64("actor_id", actor.ID),
	)
	return s.one(ctx, actor.ID, &recipe)
}

func (s *service) Delete(ctx context.Context, actor *models.User, id int64) error {
	existing, err := s.authorize(ctx, actor, id, "delete recipe")
	if err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}
	s.discardImage(ctx, existing.Image)

	slog.Info("Recipe deleted", slog.Int64("recipe_id", id), slog.Int64("actor_id", actor.ID))
	return nil
}

func (s *service) Get(ctx context.Context, viewerID, id int64) (*RecipeView, error) {
	recipe, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.one(ctx, viewerID, recipe)
}

func (s *service) List(ctx context.Context, viewerID int64, query ListQuery) (domain.PageResult[*RecipeView], error) {
	filter := models.RecipeFilter{
		AuthorID:  query.AuthorID,
		TagSlugs:  query.TagSlugs,
		ViewerID:  viewerID,
		Favorited: query.Favorited,
		InCart:    query.InCart,
		Offset:    query.Page.Offset(),
		Limit:     query.Page.Limit,
	}

	recipes, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return domain.PageResult[*RecipeView]{}, fmt.Errorf("failed to list recipes: %w", err)
	}

	views, err := s.project(ctx, viewerID, recipes)
	if err != nil {
		return domain.PageResult[*RecipeView]{}, err
	}
	return domain.PageResult[*RecipeView]{Count: total, Items: views}, nil
}

// authorize loads the recipe and checks that actor may change it.
func (s *service) authorize(ctx context.Context, actor *models.User, id int64, action string) (*models.Recipe, error) {
	recipe, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != actor.ID && !actor.IsAdmin {
		return nil, &domain.ForbiddenError{Action: action}
	}
	return recipe, nil
}

func (s *service) saveImage(ctx context.Context, dataURL string) (string, error) {
	ref, err := s.images.Save(ctx, config.RecipeImagePrefix, dataURL)
	if err != nil {
		if storage.IsInvalidImage(err) {
			return "", domain.ValidationErrors{{Code: domain.CodeInvalidFormat, Field: "image", Message: err.Error()}}
		}
		return "", fmt.Errorf("failed to store recipe image: %w", err)
	}
	return ref, nil
}

// discardImage removes an image that is no longer referenced. Failures only
// leave an orphaned object behind, so they are logged and dropped.
func (s *service) discardImage(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.images.Delete(ctx, ref); err != nil {
		slog.Warn("Failed to delete recipe image",
			slog.String("ref", ref),
			slog.Any("error", err),
		)
	}
}

func (s *service) mutationError(op string, err error) error {
	if domain.IsIntegrity(err) {
		slog.Error("Recipe write violated a constraint",
			slog.String("type", "db"),
			slog.String("operation", op),
			slog.Any("error", err),
		)
	}
	return err
}

func (s *service) one(ctx context.Context, viewerID int64, recipe *models.Recipe) (*RecipeView, error) {
	views, err := s.project(ctx, viewerID, []*models.Recipe{recipe})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}
