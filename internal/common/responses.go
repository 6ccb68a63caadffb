package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// CreateErrorResponse creates a standardized error response
func CreateErrorResponse(code string, message string, details map[string]string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	return &resp
}

// SendValidationError sends a validation error response
func SendValidationError(c echo.Context, field, message string) error {
	details := map[string]string{
		field: message,
	}
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("VALIDATION_ERROR", "Validation failed", details))
}

// SendClientError sends a client error response
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("CLIENT_ERROR", message, nil))
}

// SendServerError sends a server error response
func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, CreateErrorResponse("SERVER_ERROR", message, nil))
}

// SendNotFoundError sends a not found error response
func SendNotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, CreateErrorResponse("NOT_FOUND", fmt.Sprintf("%s not found", resource), nil))
}

// SendDomainError maps a domain error to its HTTP representation: NotFound to
// 404, the balance/stock/argument failures to 400, anything else to 500.
func SendDomainError(c echo.Context, err error) error {
	var notFound *NotFoundError
	var invalid *InvalidArgumentError
	var stock *InsufficientStockError
	var balance *InsufficientBalanceError

	switch {
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, CreateErrorResponse("NOT_FOUND", notFound.Error(), nil))
	case errors.As(err, &invalid):
		return SendValidationError(c, invalid.Field, invalid.Message)
	case errors.As(err, &stock):
		return c.JSON(http.StatusBadRequest, CreateErrorResponse("INSUFFICIENT_STOCK", stock.Error(), nil))
	case errors.As(err, &balance):
		return c.JSON(http.StatusBadRequest, CreateErrorResponse("INSUFFICIENT_BALANCE", balance.Error(), nil))
	default:
		return SendServerError(c, err.Error())
	}
}
