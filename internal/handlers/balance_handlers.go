package handlers

import (
	"net/http"
	"strconv"

	"shopmart/internal/common"
	"shopmart/internal/services"

	"github.com/labstack/echo/v4"
)

// BalanceHandlers handles HTTP requests for the user ledger
type BalanceHandlers struct {
	userService services.UserService
}

// NewBalanceHandlers creates a new balance handlers instance
func NewBalanceHandlers(userService services.UserService) *BalanceHandlers {
	return &BalanceHandlers{
		userService: userService,
	}
}

// GetBalance handles GET /api/balance/:userId
func (h *BalanceHandlers) GetBalance(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return common.SendClientError(c, "Invalid user ID")
	}

	user, err := h.userService.FindByID(c.Request().Context(), userID)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"userId":  user.ID,
		"balance": user.Balance,
	})
}

// ChargeBalance handles POST /api/balance/charge
func (h *BalanceHandlers) ChargeBalance(c echo.Context) error {
	// The DTO admits amount = 0; the ledger rejects it. The service rule is
	// authoritative.
	var req struct {
		UserID int64   `json:"userId" validate:"required"`
		Amount float64 `json:"amount" validate:"min=0"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "amount", "amount must be a non-negative number")
	}

	user, err := h.userService.ChargeBalance(c.Request().Context(), req.UserID, req.Amount)
	if err != nil {
		return common.SendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
