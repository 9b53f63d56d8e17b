package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Email        string    `bun:"email,notnull,unique,type:varchar(254)"`
	Username     string    `bun:"username,notnull,unique,type:varchar(150)"`
	FirstName    string    `bun:"first_name,notnull,type:varchar(150)"`
	LastName     string    `bun:"last_name,notnull,type:varchar(150)"`
	PasswordHash string    `bun:"password_hash,notnull"`
	Avatar       string    `bun:"avatar,notnull"`
	IsAdmin      bool      `bun:"is_admin,notnull"`
	TokenVersion int64     `bun:"token_version,notnull,default:0"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`
}

// Subscription records that UserID follows AuthorID.
type Subscription struct {
	bun.BaseModel `bun:"table:subscriptions,alias:s"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull,unique:subscription_user_author"`
	AuthorID  int64     `bun:"author_id,notnull,unique:subscription_user_author"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

type ShortLink struct {
	bun.BaseModel `bun:"table:short_links,alias:sl"`

	ID        int64     `bun:"id,pk,autoincrement"`
	URL       string    `bun:"url,notnull,unique"`
	Token     string    `bun:"token,notnull,unique,type:varchar(16)"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}
