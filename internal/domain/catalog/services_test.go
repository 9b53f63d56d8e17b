package catalog

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sunar87/foodgram/internal/domain/catalog/mock"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

func Test_service_SearchIngredients(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		setup   func(repo *mock.MockRepository)
		want    []*models.Ingredient
		wantErr bool
	}{
		{
			name:  "Prefix match",
			query: "ap",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().
					SearchIngredients(gomock.Any(), "ap", 0).
					Return(mock.Ingredients[:2], nil)
			},
			want: mock.Ingredients[:2],
		},
		{
			name:  "Empty query lists catalog",
			query: "  ",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().ListIngredients(gomock.Any()).Return(mock.Ingredients, nil)
			},
			want: mock.Ingredients,
		},
		{
			name:  "Fuzzy fallback",
			query: "cnmn",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().
					SearchIngredients(gomock.Any(), "cnmn", 0).
					Return(nil, nil)
				repo.EXPECT().ListIngredients(gomock.Any()).Return(mock.Ingredients, nil)
			},
			want: []*models.Ingredient{mock.Ingredients[3]},
		},
		{
			name:  "Fuzzy fallback without match",
			query: "zzz",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().
					SearchIngredients(gomock.Any(), "zzz", 0).
					Return(nil, nil)
				repo.EXPECT().ListIngredients(gomock.Any()).Return(mock.Ingredients, nil)
			},
			want: []*models.Ingredient{},
		},
		{
			name:  "Repository failure",
			query: "ap",
			setup: func(repo *mock.MockRepository) {
				repo.EXPECT().
					SearchIngredients(gomock.Any(), "ap", 0).
					Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockRepository(gomock.NewController(t))
			tt.setup(repo)
			s := NewService(repo)

			got, err := s.SearchIngredients(context.Background(), tt.query)
			if (err != nil) != tt.wantErr {
				t.Errorf("service.SearchIngredients() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("service.SearchIngredients() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_service_ImportIngredients(t *testing.T) {
	csv := strings.Join([]string{
		"name,measurement_unit",
		"flour,g",
		"milk,ml",
		",g",
		"no unit",
		`"salt, coarse",g`,
	}, "\n")

	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().
		InsertIngredients(gomock.Any(), []*models.Ingredient{
			{Name: "flour", MeasurementUnit: "g"},
			{Name: "milk", MeasurementUnit: "ml"},
			{Name: "salt, coarse", MeasurementUnit: "g"},
		}).
		Return(int64(2), nil)

	got, err := NewService(repo).ImportIngredients(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("service.ImportIngredients() error = %v", err)
	}
	want := ImportResult{Read: 5, Inserted: 2, Skipped: 2}
	if got != want {
		t.Errorf("service.ImportIngredients() got = %+v, want %+v", got, want)
	}
}

func Test_service_ImportTags(t *testing.T) {
	csv := "Breakfast,breakfast\nBad slug,bad slug\nLunch,lunch\n"

	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().
		InsertTags(gomock.Any(), []*models.Tag{
			{Name: "Breakfast", Slug: "breakfast"},
			{Name: "Lunch", Slug: "lunch"},
		}).
		Return(int64(2), nil)

	got, err := NewService(repo).ImportTags(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("service.ImportTags() error = %v", err)
	}
	want := ImportResult{Read: 3, Inserted: 2, Skipped: 1}
	if got != want {
		t.Errorf("service.ImportTags() got = %+v, want %+v", got, want)
	}
}
