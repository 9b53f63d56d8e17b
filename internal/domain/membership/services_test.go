package membership

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/domain/membership/mock"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

var recipe = &models.Recipe{ID: 7, AuthorID: 1, Name: "Borscht", Image: "recipes/images/b.png", CookingTime: 90}

func imageURL(ref string) string { return "/media/" + ref }

func Test_service_Add(t *testing.T) {
	type args struct {
		kind     models.MembershipKind
		recipeID int64
	}
	tests := []struct {
		name    string
		args    args
		setup   func(repo *mock.MockRepository)
		want    *domain.RecipeShort
		wantErr func(error) bool
	}{
		{
			name: "Added to favorites",
			args: args{kind: models.KindFavorite, recipeID: 7},
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetRecipe(gomock.Any(), int64(7)).Return(recipe, nil)
				repo.EXPECT().Add(gomock.Any(), models.KindFavorite, int64(2), int64(7)).Return(true, nil)
			},
			want: &domain.RecipeShort{ID: 7, Name: "Borscht", Image: "/media/recipes/images/b.png", CookingTime: 90},
		},
		{
			name: "Already in cart",
			args: args{kind: models.KindCart, recipeID: 7},
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetRecipe(gomock.Any(), int64(7)).Return(recipe, nil)
				repo.EXPECT().Add(gomock.Any(), models.KindCart, int64(2), int64(7)).Return(false, nil)
			},
			wantErr: domain.IsConflict,
		},
		{
			name: "Missing recipe",
			args: args{kind: models.KindCart, recipeID: 99},
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetRecipe(gomock.Any(), int64(99)).
					Return(nil, &domain.NotFoundError{Entity: "recipe", ID: 99})
			},
			wantErr: domain.IsNotFound,
		},
		{
			name: "Storage failure",
			args: args{kind: models.KindFavorite, recipeID: 7},
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetRecipe(gomock.Any(), int64(7)).Return(recipe, nil)
				repo.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("boom"))
			},
			wantErr: func(err error) bool { return err != nil && !domain.IsConflict(err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockRepository(gomock.NewController(t))
			tt.setup(repo)
			s := NewService(repo, imageURL)

			got, err := s.Add(context.Background(), tt.args.kind, 2, tt.args.recipeID)
			if tt.wantErr != nil {
				if !tt.wantErr(err) {
					t.Errorf("service.Add() error = %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("service.Add() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("service.Add() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_service_Remove(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(repo *mock.MockRepository)
		wantErr bool
	}{
		{
			name: "Removed",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetRecipe(gomock.Any(), int64(7)).Return(recipe, nil)
				repo.EXPECT().Remove(gomock.Any(), models.KindCart, int64(2), int64(7)).Return(true, nil)
			},
		},
		{
			name: "Not in cart",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().GetRecipe(gomock.Any(), int64(7)).Return(recipe, nil)
				repo.EXPECT().Remove(gomock.Any(), models.KindCart, int64(2), int64(7)).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockRepository(gomock.NewController(t))
			tt.setup(repo)

			err := NewService(repo, imageURL).Remove(context.Background(), models.KindCart, 2, 7)
			if (err != nil) != tt.wantErr {
				t.Errorf("service.Remove() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !domain.IsNotFound(err) {
				t.Errorf("service.Remove() error = %v, want NotFoundError", err)
			}
		})
	}
}
