package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type ErrorCode string

const (
	CodeRequired              ErrorCode = "required"
	CodeTooLong               ErrorCode = "too_long"
	CodeInvalidFormat         ErrorCode = "invalid_format"
	CodeMissingTags           ErrorCode = "missing_tags"
	CodeDuplicateTag          ErrorCode = "duplicate_tag"
	CodeUnknownReference      ErrorCode = "unknown_reference"
	CodeMissingIngredients    ErrorCode = "missing_ingredients"
	CodeNonPositiveAmount     ErrorCode = "non_positive_amount"
	CodeAmountTooLarge        ErrorCode = "amount_too_large"
	CodeDuplicateIngredient   ErrorCode = "duplicate_ingredient"
	CodeCookingTimeOutOfRange ErrorCode = "cooking_time_out_of_range"
	CodeSelfSubscription      ErrorCode = "self_subscription"
	CodeWrongPassword         ErrorCode = "wrong_password"
	CodeInvalidCredentials    ErrorCode = "invalid_credentials"
	CodeReserved              ErrorCode = "reserved"
	CodeTaken                 ErrorCode = "taken"
)

// ValidationError is a single field-level rejection. IDs carries the
// offending references for duplicate or unknown id errors.
type ValidationError struct {
	Code    ErrorCode
	Field   string
	Message string
	IDs     []int64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationErrors) Add(code ErrorCode, field, message string, ids ...int64) {
	*v = append(*v, &ValidationError{Code: code, Field: field, Message: message, IDs: ids})
}

// Err returns nil when nothing was collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) HasCode(code ErrorCode) bool {
	for _, e := range v {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Fields folds the errors into field -> message, joining repeated fields.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if prev, ok := out[e.Field]; ok {
			out[e.Field] = prev + "; " + e.Message
			continue
		}
		out[e.Field] = e.Message
	}
	return out
}

// AsValidation extracts validation failures from err, accepting both a single
// *ValidationError and a ValidationErrors list.
func AsValidation(err error) (ValidationErrors, bool) {
	var list ValidationErrors
	if errors.As(err, &list) {
		return list, true
	}
	var single *ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}, true
	}
	return nil, false
}

// UnknownReferences reports ids that do not exist in the catalog.
func UnknownReferences(field string, ids []int64) *ValidationError {
	sorted := append([]int64(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &ValidationError{
		Code:    CodeUnknownReference,
		Field:   field,
		Message: fmt.Sprintf("unknown ids: %s", joinIDs(sorted)),
		IDs:     sorted,
	}
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}

type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %v not found", e.Entity, e.ID)
}

type ConflictError struct {
	Entity string
	Field  string
	Value  any
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s already exists", e.Entity)
	}
	return fmt.Sprintf("%s with %s %v already exists", e.Entity, e.Field, e.Value)
}

// IntegrityError is an unexpected constraint violation. The wrapped error is
// for logs only and never reaches a client.
type IntegrityError struct {
	Op  string
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation during %s: %v", e.Op, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

type ForbiddenError struct {
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("not allowed to %s", e.Action)
}

type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	if e.Reason == "" {
		return "authentication required"
	}
	return e.Reason
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target *ForbiddenError
	return errors.As(err, &target)
}

func IsIntegrity(err error) bool {
	var target *IntegrityError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target *UnauthorizedError
	return errors.As(err, &target)
}
