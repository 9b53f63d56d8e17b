package recipes

import (
	"context"
	"fmt"

	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"golang.org/x/sync/errgroup"
)

// project turns stored recipes into read views. Tags, ingredients, authors
// and the viewer's flags are loaded concurrently, one query each for the
// whole page.
func (s *service) project(ctx context.Context, viewerID int64, recipes []*models.Recipe) ([]*RecipeView, error) {
	if len(recipes) == 0 {
		return []*RecipeView{}, nil
	}

	recipeIDs := make([]int64, len(recipes))
	authorIDs := make([]int64, 0, len(recipes))
	seenAuthor := make(map[int64]bool, len(recipes))
	for i, r := range recipes {
		recipeIDs[i] = r.ID
		if !seenAuthor[r.AuthorID] {
			seenAuthor[r.AuthorID] = true
			authorIDs = append(authorIDs, r.AuthorID)
		}
	}

	var (
		tags        map[int64][]models.RecipeTagRow
		ingredients map[int64][]models.IngredientAmount
		authors     map[int64]*models.User
		subscribed  = map[int64]bool{}
		favorited   = map[int64]bool{}
		inCart      = map[int64]bool{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tags, err = s.repository.TagsByRecipe(gctx, recipeIDs)
		return err
	})
	g.Go(func() (err error) {
		ingredients, err = s.repository.IngredientsByRecipe(gctx, recipeIDs)
		return err
	})
	g.Go(func() (err error) {
		authors, err = s.repository.UsersByID(gctx, authorIDs)
		return err
	})
	if viewerID != 0 {
		g.Go(func() (err error) {
			subscribed, err = s.repository.SubscribedAuthors(gctx, viewerID, authorIDs)
			return err
		})
		g.Go(func() (err error) {
			favorited, err = s.repository.MemberRecipes(gctx, models.KindFavorite, viewerID, recipeIDs)
			return err
		})
		g.Go(func() (err error) {
			inCart, err = s.repository.MemberRecipes(gctx, models.KindCart, viewerID, recipeIDs)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load recipe details: %w", err)
	}

	views := make([]*RecipeView, 0, len(recipes))
	for _, r := range recipes {
		author, ok := authors[r.AuthorID]
		if !ok {
			return nil, &domain.NotFoundError{Entity: "user", ID: r.AuthorID}
		}

		view := &RecipeView{
			ID:               r.ID,
			Tags:             make([]TagView, 0, len(tags[r.ID])),
			Author:           domain.NewUserView(author, subscribed[r.AuthorID], s.images.URL),
			Ingredients:      make([]IngredientView, 0, len(ingredients[r.ID])),
			IsFavorited:      favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            s.images.URL(r.Image),
			Text:             r.Text,
			CookingTime:      r.CookingTime,
		}
		for _, t := range tags[r.ID] {
			view.Tags = append(view.Tags, TagView{ID: t.ID, Name: t.Name, Slug: t.Slug})
		}
		for _, ing := range ingredients[r.ID] {
			view.Ingredients = append(view.Ingredients, IngredientView{
				ID:              ing.ID,
				Name:            ing.Name,
				MeasurementUnit: ing.MeasurementUnit,
				Amount:          ing.Amount,
			})
		}
		views = append(views, view)
	}
	return views, nil
}
