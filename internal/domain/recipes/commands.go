package recipes

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/internal/domain"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

type IngredientSpec struct {
	ID     int64
	Amount int
}

// RecipeCommand carries the writable fields of a recipe. Image is a data
// URL; on update an empty Image keeps the stored picture.
type RecipeCommand struct {
	Name        string
	Text        string
	CookingTime int
	Image       string
	TagIDs      []int64
	Ingredients []IngredientSpec
}

// Validate checks the command without touching storage. Reference
// existence is checked later inside the write transaction.
func (c RecipeCommand) Validate(requireImage bool) domain.ValidationErrors {
	var errs domain.ValidationErrors

	name := strings.TrimSpace(c.Name)
	switch {
	case name == "":
		errs.Add(domain.CodeRequired, "name", "this field is required")
	case utf8.RuneCountInString(name) > config.MaxRecipeNameLength:
		errs.Add(domain.CodeTooLong, "name", fmt.Sprintf("must be at most %d characters", config.MaxRecipeNameLength))
	}

	if strings.TrimSpace(c.Text) == "" {
		errs.Add(domain.CodeRequired, "text", "this field is required")
	}

	if c.CookingTime < config.MinCookingTime || c.CookingTime > config.MaxCookingTime {
		errs.Add(domain.CodeCookingTimeOutOfRange, "cooking_time",
			fmt.Sprintf("must be between %d and %d", config.MinCookingTime, config.MaxCookingTime))
	}

	if requireImage && strings.TrimSpace(c.Image) == "" {
		errs.Add(domain.CodeRequired, "image", "this field is required")
	}

	if len(c.TagIDs) == 0 {
		errs.Add(domain.CodeMissingTags, "tags", "at least one tag is required")
	} else if dups := duplicates(c.TagIDs); len(dups) > 0 {
		errs.Add(domain.CodeDuplicateTag, "tags", "tags must not repeat", dups...)
	}

	if len(c.Ingredients) == 0 {
		errs.Add(domain.CodeMissingIngredients, "ingredients", "at least one ingredient is required")
		return errs
	}

	ids := make([]int64, len(c.Ingredients))
	for i, ing := range c.Ingredients {
		ids[i] = ing.ID
		switch {
		case ing.Amount < config.MinAmount:
			errs.Add(domain.CodeNonPositiveAmount, "ingredients",
				fmt.Sprintf("amount must be at least %d", config.MinAmount), ing.ID)
		case ing.Amount > config.MaxAmount:
			errs.Add(domain.CodeAmountTooLarge, "ingredients",
				fmt.Sprintf("amount must be at most %d", config.MaxAmount), ing.ID)
		}
	}
	if dups := duplicates(ids); len(dups) > 0 {
		errs.Add(domain.CodeDuplicateIngredient, "ingredients", "ingredients must not repeat", dups...)
	}

	return errs
}

func (c RecipeCommand) ingredientRows() []models.RecipeIngredient {
	rows := make([]models.RecipeIngredient, len(c.Ingredients))
	for i, ing := range c.Ingredients {
		rows[i] = models.RecipeIngredient{IngredientID: ing.ID, Amount: ing.Amount}
	}
	return rows
}

// duplicates returns each id that occurs more than once, in first-seen order.
func duplicates(ids []int64) []int64 {
	seen := make(map[int64]int, len(ids))
	var out []int64
	for _, id := range ids {
		seen[id]++
		if seen[id] == 2 {
			out = append(out, id)
		}
	}
	return out
}
