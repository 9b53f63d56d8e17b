package mock

import "github.com/sunar87/foodgram/internal/gateways/database/models"

var Ingredients = []*models.Ingredient{
	{ID: 1, Name: "Apple", MeasurementUnit: "pcs"},
	{ID: 2, Name: "Apricot", MeasurementUnit: "g"},
	{ID: 3, Name: "Butter", MeasurementUnit: "g"},
	{ID: 4, Name: "Cinnamon", MeasurementUnit: "tsp"},
}

var Tags = []*models.Tag{
	{ID: 1, Name: "Breakfast", Slug: "breakfast"},
	{ID: 2, Name: "Dinner", Slug: "dinner"},
}
