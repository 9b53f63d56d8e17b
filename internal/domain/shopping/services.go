package shopping

import (
	"context"
	"fmt"

	"github.com/sunar87/foodgram/internal/domain/logger"
)

type Service interface {
	Aggregate(ctx context.Context, userID int64) (List, error)
}

type service struct {
	repository Repository
}

func NewService(repository Repository) *service {
	return &service{
		repository: repository,
	}
}

// Aggregate sums every ingredient across the recipes in the user's cart.
// Lines sharing a name but not a unit stay separate.
func (s *service) Aggregate(ctx context.Context, userID int64) (List, error) {
	qlog := logger.NewQueryLogger("aggregate", "shopping cart", userID)
	rows, err := s.repository.AggregateCart(ctx, userID)
	if err != nil {
		qlog.Log(err, 0)
		return List{}, fmt.Errorf("failed to aggregate shopping cart: %w", err)
	}
	qlog.Log(nil, int64(len(rows)))

	list := List{Items: make([]Item, 0, len(rows))}
	for _, row := range rows {
		list.Items = append(list.Items, Item{
			Name:        row.Name,
			Unit:        row.MeasurementUnit,
			TotalAmount: row.TotalAmount,
		})
	}
	return list, nil
}
