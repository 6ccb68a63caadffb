package common

import "fmt"

// NotFoundError indicates that a referenced entity does not exist.
// Surfaced as HTTP 404.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// InvalidArgumentError indicates a rule-violating input value, such as a
// non-positive charge amount or a stock adjustment that would go negative.
// Surfaced as HTTP 400.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InsufficientStockError indicates an order requested more units of a product
// than are in stock. Surfaced as HTTP 400.
type InsufficientStockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// InsufficientBalanceError indicates the user's balance does not cover the
// order total. Surfaced as HTTP 400.
type InsufficientBalanceError struct {
	UserID   int64
	Required float64
	Balance  float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %.2f, available %.2f",
		e.UserID, e.Required, e.Balance)
}
