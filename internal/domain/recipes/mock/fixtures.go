package mock

import "github.com/sunar87/foodgram/internal/gateways/database/models"

var (
	Author = &models.User{ID: 1, Email: "chef@example.com", Username: "chef", FirstName: "Julia", LastName: "Child"}
	Reader = &models.User{ID: 2, Email: "reader@example.com", Username: "reader"}
	Admin  = &models.User{ID: 3, Email: "admin@example.com", Username: "admin", IsAdmin: true}
)

var Recipe = &models.Recipe{
	ID:          10,
	AuthorID:    1,
	Name:        "Pancakes",
	Text:        "Mix and fry",
	Image:       "recipes/images/old.png",
	CookingTime: 15,
}

var TagRows = map[int64][]models.RecipeTagRow{
	10: {{RecipeID: 10, ID: 1, Name: "Breakfast", Slug: "breakfast"}},
}

var IngredientRows = map[int64][]models.IngredientAmount{
	10: {
		{RecipeID: 10, ID: 5, Name: "flour", MeasurementUnit: "g", Amount: 200},
		{RecipeID: 10, ID: 6, Name: "milk", MeasurementUnit: "ml", Amount: 300},
	},
}
