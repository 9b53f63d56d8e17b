package utils

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sunar87/foodgram/backend/models"
	"github.com/sunar87/foodgram/internal/domain"
)

func SendJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// SendSuccess wraps data in the APIResponse envelope.
func SendSuccess(c *fiber.Ctx, data interface{}, message string) error {
	response := models.NewSuccessResponse(data, message)
	return SendJSON(c, http.StatusOK, response)
}

func SendOK(c *fiber.Ctx, data interface{}) error {
	return SendJSON(c, http.StatusOK, data)
}

func SendCreated(c *fiber.Ctx, data interface{}) error {
	return SendJSON(c, http.StatusCreated, data)
}

func SendError(c *fiber.Ctx, statusCode int, code, message string, details map[string]string) error {
	response := models.NewErrorResponse(code, message, details)
	return SendJSON(c, statusCode, response)
}

func SendBadRequest(c *fiber.Ctx, message string, details map[string]string) error {
	return SendError(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func SendValidationError(c *fiber.Ctx, details map[string]string) error {
	return SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
}

func SendUnauthorized(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func SendForbidden(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}

func SendNotFound(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func SendInternalServerError(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}

func SendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusNoContent)
}

// SendPaginated answers with {count, next, previous, results}. The links
// keep the request's other query parameters.
func SendPaginated[T any](c *fiber.Ctx, page domain.Page, result domain.PageResult[T]) error {
	items := result.Items
	if items == nil {
		items = []T{}
	}
	response := models.PageResponse[T]{
		Count:   result.Count,
		Results: items,
	}
	if page.HasNext(result.Count) {
		next := pageURL(c, page.Number+1)
		response.Next = &next
	}
	if page.Number > 1 {
		prev := pageURL(c, page.Number-1)
		response.Previous = &prev
	}
	return SendJSON(c, http.StatusOK, response)
}

func pageURL(c *fiber.Ctx, number int) string {
	query, _ := url.ParseQuery(string(c.Request().URI().QueryString()))
	if number <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(number))
	}

	link := c.BaseURL() + c.Path()
	if encoded := query.Encode(); encoded != "" {
		link += "?" + encoded
	}
	return link
}

// SendList answers with a JSON array, never null.
func SendList[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return SendJSON(c, http.StatusOK, items)
}
