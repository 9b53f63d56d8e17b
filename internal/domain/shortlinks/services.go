package shortlinks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

var ErrTokenSpaceExhausted = errors.New("could not allocate a unique short link token")

type Service interface {
	// RecipeLink returns the short URL for a recipe, creating it on first use.
	RecipeLink(ctx context.Context, recipeID int64) (string, error)
	GetOrCreate(ctx context.Context, url string) (*models.ShortLink, error)
	// Resolve maps a token back to the canonical URL.
	Resolve(ctx context.Context, token string) (string, error)
}

type service struct {
	repository Repository
	baseURL    string
	cache      *lru.Cache
	newToken   func() (string, error)
}

func NewService(repository Repository, baseURL string) *service {
	return newService(repository, baseURL, config.ShortLinkCacheSize)
}

// newService falls back to uncached lookups when the cache cannot be built.
func newService(repository Repository, baseURL string, cacheSize int) *service {
	cache, err := lru.New(cacheSize)
	if err != nil {
		slog.Warn("Short link cache disabled",
			slog.Int("size", cacheSize),
			slog.Any("error", err),
		)
		cache = nil
	}
	return &service{
		repository: repository,
		baseURL:    baseURL,
		cache:      cache,
		newToken:   randomToken,
	}
}

func (s *service) remember(link *models.ShortLink) {
	if s.cache != nil {
		s.cache.Add(link.Token, link.URL)
	}
}

func (s *service) RecipeURL(recipeID int64) string {
	return fmt.Sprintf("%s/recipes/%d", s.baseURL, recipeID)
}

func (s *service) ShortURL(token string) string {
	return fmt.Sprintf("%s/s/%s", s.baseURL, token)
}

func (s *service) RecipeLink(ctx context.Context, recipeID int64) (string, error) {
	exists, err := s.repository.RecipeExists(ctx, recipeID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", &domain.NotFoundError{Entity: "recipe", ID: recipeID}
	}

	link, err := s.GetOrCreate(ctx, s.RecipeURL(recipeID))
	if err != nil {
		return "", err
	}
	return s.ShortURL(link.Token), nil
}

// GetOrCreate is idempotent per URL. A lost insert race re-reads the
// winner's row; a token collision draws a new token.
func (s *service) GetOrCreate(ctx context.Context, url string) (*models.ShortLink, error) {
	existing, err := s.repository.GetByURL(ctx, url)
	if err == nil {
		return existing, nil
	}
	if !domain.IsNotFound(err) {
		return nil, err
	}

	for attempt := 1; attempt <= config.ShortLinkMaxAttempts; attempt++ {
		token, err := s.newToken()
		if err != nil {
			return nil, err
		}

		link := &models.ShortLink{URL: url, Token: token}
		inserted, err := s.repository.Insert(ctx, link)
		if err != nil {
			return nil, err
		}
		if inserted {
			s.remember(link)
			return link, nil
		}

		winner, err := s.repository.GetByURL(ctx, url)
		if err == nil {
			return winner, nil
		}
		if !domain.IsNotFound(err) {
			return nil, err
		}
		slog.Debug("Short link token collision",
			slog.String("token", token),
			slog.Int("attempt", attempt),
		)
	}
	return nil, ErrTokenSpaceExhausted
}

func (s *service) Resolve(ctx context.Context, token string) (string, error) {
	if s.cache != nil {
		if url, ok := s.cache.Get(token); ok {
			return url.(string), nil
		}
	}

	link, err := s.repository.GetByToken(ctx, token)
	if err != nil {
		return "", err
	}
	s.remember(link)
	return link.URL, nil
}
