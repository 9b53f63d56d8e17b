package models

import "github.com/uptrace/bun"

type Tag struct {
	bun.BaseModel `bun:"table:tags,alias:t"`

	ID   int64  `bun:"id,pk,autoincrement" json:"id"`
	Name string `bun:"name,notnull,type:varchar(32)" json:"name"`
	Slug string `bun:"slug,notnull,unique,type:varchar(32)" json:"slug"`
}

// Ingredient is unique on (name, measurement_unit) so catalog loads can be
// replayed without duplicating rows.
type Ingredient struct {
	bun.BaseModel `bun:"table:ingredients,alias:i"`

	ID              int64  `bun:"id,pk,autoincrement" json:"id"`
	Name            string `bun:"name,notnull,unique:ingredient_name_unit,type:varchar(128)" json:"name"`
	MeasurementUnit string `bun:"measurement_unit,notnull,unique:ingredient_name_unit,type:varchar(64)" json:"measurement_unit"`
}
