package shopping

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sunar87/foodgram/internal/domain/shopping/mock"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

func Test_service_Aggregate(t *testing.T) {
	tests := []struct {
		name      string
		rows      []models.ShoppingItem
		repoErr   error
		want      List
		wantEmpty bool
		wantErr   bool
	}{
		{
			name: "Success",
			rows: []models.ShoppingItem{
				{Name: "flour", MeasurementUnit: "cup", TotalAmount: 1},
				{Name: "flour", MeasurementUnit: "g", TotalAmount: 700},
			},
			want: List{Items: []Item{
				{Name: "flour", Unit: "cup", TotalAmount: 1},
				{Name: "flour", Unit: "g", TotalAmount: 700},
			}},
		},
		{
			name:      "Empty cart",
			rows:      nil,
			want:      List{Items: []Item{}},
			wantEmpty: true,
		},
		{
			name:    "Repository failure",
			repoErr: errors.New("db down"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockRepository(gomock.NewController(t))
			repo.EXPECT().AggregateCart(gomock.Any(), int64(3)).Return(tt.rows, tt.repoErr)

			got, err := NewService(repo).Aggregate(context.Background(), 3)
			if (err != nil) != tt.wantErr {
				t.Errorf("service.Aggregate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("service.Aggregate() got = %v, want %v", got, tt.want)
			}
			if got.Empty() != tt.wantEmpty {
				t.Errorf("List.Empty() = %v, want %v", got.Empty(), tt.wantEmpty)
			}
		})
	}
}

func TestList_Text(t *testing.T) {
	list := List{Items: []Item{
		{Name: "eggs", Unit: "pcs", TotalAmount: 5},
		{Name: "flour", Unit: "g", TotalAmount: 700},
	}}
	want := "Shopping list:\neggs (pcs) — 5\nflour (g) — 700\n"
	if got := list.Text(); got != want {
		t.Errorf("List.Text() = %q, want %q", got, want)
	}
}
