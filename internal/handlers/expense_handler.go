package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"wealthwatch/internal/dto"
	apierrors "wealthwatch/internal/errors"
	"wealthwatch/internal/services"
	"wealthwatch/internal/storage"
)

// ExpenseHandler handles the expense CRUD endpoints. Every operation is
// scoped to the authenticated user; a record owned by someone else produces
// the same 404 as a record that does not exist.
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List handles GET /api/expenses, returning the user's expenses newest first.
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenses, err := h.expenseService.List(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, expenses)
}

// Get handles GET /api/expenses/:id.
func (h *ExpenseHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expense, err := h.expenseService.Get(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, expense)
}

// Create handles POST /api/expenses, responding 201 with the stored record.
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, expense)
}

// Update handles PATCH /api/expenses/:id. Only the fields present in the
// request change; omitted fields keep their stored values.
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.Update(c.Request().Context(), c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return SendError(c, apierrors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, expense)
}

// Delete handles DELETE /api/expenses/:id. Deleting a record that is absent
// or not owned responds 404; the operation itself is idempotent.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	deleted, err := h.expenseService.Delete(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	if !deleted {
		return SendError(c, apierrors.ExpenseNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Expense deleted successfully",
	})
}
