package models

type RecipeIngredientRequest struct {
	ID     int64 `json:"id" validate:"required,gt=0"`
	Amount int   `json:"amount"`
}

// RecipeRequest is the body of recipe create and update. Range checks on
// amounts and cooking time happen in the recipe service.
type RecipeRequest struct {
	Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
	Tags        []int64                   `json:"tags" validate:"dive,gt=0"`
	Image       string                    `json:"image"`
	Name        string                    `json:"name"`
	Text        string                    `json:"text"`
	CookingTime int                       `json:"cooking_time"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SetPasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required"`
	CurrentPassword string `json:"current_password" validate:"required"`
}

type AvatarRequest struct {
	Avatar string `json:"avatar" validate:"required"`
}
