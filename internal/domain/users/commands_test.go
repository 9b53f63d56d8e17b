package users

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sunar87/foodgram/internal/domain"
)

func TestRegisterCommand_Validate(t *testing.T) {
	valid := RegisterCommand{
		Email:     "cook@example.com",
		Username:  "cook.1",
		FirstName: "Ann",
		LastName:  "Lee",
		Password:  "pass",
	}

	tests := []struct {
		name   string
		mutate func(c *RegisterCommand)
		field  string
		code   domain.ErrorCode
	}{
		{name: "Missing email", mutate: func(c *RegisterCommand) { c.Email = "" }, field: "email", code: domain.CodeRequired},
		{name: "Bad email", mutate: func(c *RegisterCommand) { c.Email = "nope" }, field: "email", code: domain.CodeInvalidFormat},
		{name: "Long email", mutate: func(c *RegisterCommand) { c.Email = strings.Repeat("a", 250) + "@x.io" }, field: "email", code: domain.CodeTooLong},
		{name: "Bad username", mutate: func(c *RegisterCommand) { c.Username = "has space" }, field: "username", code: domain.CodeInvalidFormat},
		{name: "Reserved username", mutate: func(c *RegisterCommand) { c.Username = "me" }, field: "username", code: domain.CodeReserved},
		{name: "Long first name", mutate: func(c *RegisterCommand) { c.FirstName = strings.Repeat("x", 151) }, field: "first_name", code: domain.CodeTooLong},
		{name: "Missing last name", mutate: func(c *RegisterCommand) { c.LastName = " " }, field: "last_name", code: domain.CodeRequired},
		{name: "Missing password", mutate: func(c *RegisterCommand) { c.Password = "" }, field: "password", code: domain.CodeRequired},
	}

	assert.Empty(t, valid.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mutate(&cmd)
			errs := cmd.Validate()
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.code, errs[0].Code)
		})
	}
}
