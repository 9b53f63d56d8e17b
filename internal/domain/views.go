package domain

import "github.com/sunar87/foodgram/internal/gateways/database/models"

// ImageURLFunc turns a stored image ref into a public URL.
type ImageURLFunc func(ref string) string

type UserView struct {
	Email        string `json:"email"`
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
	Avatar       string `json:"avatar"`
}

func NewUserView(u *models.User, subscribed bool, imageURL ImageURLFunc) UserView {
	return UserView{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
		Avatar:       imageURL(u.Avatar),
	}
}

// RecipeShort is the compact recipe form returned by favorite, cart and
// subscription endpoints.
type RecipeShort struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func NewRecipeShort(r *models.Recipe, imageURL ImageURLFunc) RecipeShort {
	return RecipeShort{
		ID:          r.ID,
		Name:        r.Name,
		Image:       imageURL(r.Image),
		CookingTime: r.CookingTime,
	}
}
