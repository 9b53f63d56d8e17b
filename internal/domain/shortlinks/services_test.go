package shortlinks

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/domain/shortlinks/mock"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

const baseURL = "https://foodgram.example"

func fixedTokens(tokens ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		if i >= len(tokens) {
			return "", errors.New("no more tokens")
		}
		token := tokens[i]
		i++
		return token, nil
	}
}

func Test_service_RecipeLink(t *testing.T) {
	canonical := baseURL + "/recipes/10"
	notFound := &domain.NotFoundError{Entity: "short_link"}

	tests := []struct {
		name    string
		prepare func(repo *mock.MockRepository)
		tokens  []string
		want    string
		wantErr func(error) bool
	}{
		{
			name: "Existing link",
			prepare: func(repo *mock.MockRepository) {
				repo.EXPECT().RecipeExists(gomock.Any(), int64(10)).Return(true, nil)
				repo.EXPECT().GetByURL(gomock.Any(), canonical).
					Return(&models.ShortLink{URL: canonical, Token: "abcdefg"}, nil)
			},
			want: baseURL + "/s/abcdefg",
		},
		{
			name: "New link",
			prepare: func(repo *mock.MockRepository) {
				repo.EXPECT().RecipeExists(gomock.Any(), int64(10)).Return(true, nil)
				repo.EXPECT().GetByURL(gomock.Any(), canonical).Return(nil, notFound)
				repo.EXPECT().Insert(gomock.Any(), &models.ShortLink{URL: canonical, Token: "AAAAAAA"}).Return(true, nil)
			},
			tokens: []string{"AAAAAAA"},
			want:   baseURL + "/s/AAAAAAA",
		},
		{
			name: "Concurrent creator wins",
			prepare: func(repo *mock.MockRepository) {
				repo.EXPECT().RecipeExists(gomock.Any(), int64(10)).Return(true, nil)
				gomock.InOrder(
					repo.EXPECT().GetByURL(gomock.Any(), canonical).Return(nil, notFound),
					repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil),
					repo.EXPECT().GetByURL(gomock.Any(), canonical).
						Return(&models.ShortLink{URL: canonical, Token: "winnerx"}, nil),
				)
			},
			tokens: []string{"AAAAAAA"},
			want:   baseURL + "/s/winnerx",
		},
		{
			name: "Token collision retries",
			prepare: func(repo *mock.MockRepository) {
				repo.EXPECT().RecipeExists(gomock.Any(), int64(10)).Return(true, nil)
				repo.EXPECT().GetByURL(gomock.Any(), canonical).Return(nil, notFound).Times(2)
				gomock.InOrder(
					repo.EXPECT().Insert(gomock.Any(), &models.ShortLink{URL: canonical, Token: "AAAAAAA"}).Return(false, nil),
					repo.EXPECT().Insert(gomock.Any(), &models.ShortLink{URL: canonical, Token: "BBBBBBB"}).Return(true, nil),
				)
			},
			tokens: []string{"AAAAAAA", "BBBBBBB"},
			want:   baseURL + "/s/BBBBBBB",
		},
		{
			name: "Attempts exhausted",
			prepare: func(repo *mock.MockRepository) {
				repo.EXPECT().RecipeExists(gomock.Any(), int64(10)).Return(true, nil)
				repo.EXPECT().GetByURL(gomock.Any(), canonical).Return(nil, notFound).Times(config.ShortLinkMaxAttempts + 1)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(false, nil).Times(config.ShortLinkMaxAttempts)
			},
			tokens: []string{"a", "b", "c", "d", "e", "f"},
			wantErr: func(err error) bool {
				return errors.Is(err, ErrTokenSpaceExhausted)
			},
		},
		{
			name: "Missing recipe",
			prepare: func(repo *mock.MockRepository) {
				repo.EXPECT().RecipeExists(gomock.Any(), int64(10)).Return(false, nil)
			},
			wantErr: domain.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockRepository(gomock.NewController(t))
			tt.prepare(repo)

			s := NewService(repo, baseURL)
			s.newToken = fixedTokens(tt.tokens...)

			got, err := s.RecipeLink(context.Background(), 10)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_service_Resolve(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().GetByToken(gomock.Any(), "abcdefg").
		Return(&models.ShortLink{URL: baseURL + "/recipes/4", Token: "abcdefg"}, nil).
		Times(1)
	repo.EXPECT().GetByToken(gomock.Any(), "missing").
		Return(nil, &domain.NotFoundError{Entity: "short_link", ID: "missing"})

	s := NewService(repo, baseURL)

	for i := 0; i < 2; i++ {
		url, err := s.Resolve(context.Background(), "abcdefg")
		require.NoError(t, err)
		assert.Equal(t, baseURL+"/recipes/4", url)
	}

	_, err := s.Resolve(context.Background(), "missing")
	assert.True(t, domain.IsNotFound(err))
}

func Test_service_Resolve_WithoutCache(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().GetByToken(gomock.Any(), "abcdefg").
		Return(&models.ShortLink{URL: baseURL + "/recipes/4", Token: "abcdefg"}, nil).
		Times(2)

	s := newService(repo, baseURL, 0)
	require.Nil(t, s.cache)

	for i := 0; i < 2; i++ {
		url, err := s.Resolve(context.Background(), "abcdefg")
		require.NoError(t, err)
		assert.Equal(t, baseURL+"/recipes/4", url)
	}
}

func TestRandomToken(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Za-z]{7}$`)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, err := randomToken()
		require.NoError(t, err)
		assert.Regexp(t, pattern, token)
		seen[token] = true
	}
	assert.Greater(t, len(seen), 1)
}
