package users

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/internal/domain"
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	validate        = validator.New()
)

// reservedUsername collides with the /users/me route.
const reservedUsername = "me"

type RegisterCommand struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

func (c RegisterCommand) Validate() domain.ValidationErrors {
	var errs domain.ValidationErrors

	email := strings.TrimSpace(c.Email)
	switch {
	case email == "":
		errs.Add(domain.CodeRequired, "email", "this field is required")
	case utf8.RuneCountInString(email) > config.MaxEmailLength:
		errs.Add(domain.CodeTooLong, "email", fmt.Sprintf("must be at most %d characters", config.MaxEmailLength))
	case validate.Var(email, "email") != nil:
		errs.Add(domain.CodeInvalidFormat, "email", "enter a valid email address")
	}

	username := strings.TrimSpace(c.Username)
	switch {
	case username == "":
		errs.Add(domain.CodeRequired, "username", "this field is required")
	case utf8.RuneCountInString(username) > config.MaxUsernameLength:
		errs.Add(domain.CodeTooLong, "username", fmt.Sprintf("must be at most %d characters", config.MaxUsernameLength))
	case !usernamePattern.MatchString(username):
		errs.Add(domain.CodeInvalidFormat, "username", "may contain only letters, digits and @/./+/-/_")
	case strings.EqualFold(username, reservedUsername):
		errs.Add(domain.CodeReserved, "username", fmt.Sprintf("%q is reserved", reservedUsername))
	}

	checkName(&errs, "first_name", c.FirstName)
	checkName(&errs, "last_name", c.LastName)
	checkPassword(&errs, "password", c.Password)
	return errs
}

func checkName(errs *domain.ValidationErrors, field, value string) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		errs.Add(domain.CodeRequired, field, "this field is required")
	case utf8.RuneCountInString(value) > config.MaxNameLength:
		errs.Add(domain.CodeTooLong, field, fmt.Sprintf("must be at most %d characters", config.MaxNameLength))
	}
}

func checkPassword(errs *domain.ValidationErrors, field, value string) {
	if utf8.RuneCountInString(value) < config.MinPasswordLength {
		errs.Add(domain.CodeRequired, field, "this field is required")
	}
}

type SetPasswordCommand struct {
	CurrentPassword string
	NewPassword     string
}

func (c SetPasswordCommand) Validate() domain.ValidationErrors {
	var errs domain.ValidationErrors
	checkPassword(&errs, "current_password", c.CurrentPassword)
	checkPassword(&errs, "new_password", c.NewPassword)
	return errs
}
