package mock

import "github.com/sunar87/foodgram/internal/gateways/database/models"

var (
	Follower = &models.User{ID: 1, Email: "follower@example.com", Username: "follower", FirstName: "Ann", LastName: "Lee"}
	Chef     = &models.User{ID: 2, Email: "chef@example.com", Username: "chef", FirstName: "Julia", LastName: "Child", Avatar: "users/chef.png"}
)

var ChefRecipes = []*models.Recipe{
	{ID: 12, AuthorID: 2, Name: "Soup", Image: "recipes/images/soup.png", CookingTime: 40},
	{ID: 11, AuthorID: 2, Name: "Bread", Image: "recipes/images/bread.png", CookingTime: 90},
}
