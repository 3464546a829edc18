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

// BudgetHandler handles the monthly budget endpoints.
type BudgetHandler struct {
	budgetService    services.BudgetServiceInterface
	analyticsService services.AnalyticsServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	budgetService services.BudgetServiceInterface,
	analyticsService services.AnalyticsServiceInterface,
) *BudgetHandler {
	return &BudgetHandler{
		budgetService:    budgetService,
		analyticsService: analyticsService,
	}
}

// List handles GET /api/budgets, returning budgets newest month first.
func (h *BudgetHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budgets, err := h.budgetService.List(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budgets)
}

// Get handles GET /api/budgets/:id.
func (h *BudgetHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budget, err := h.budgetService.Get(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// Create handles POST /api/budgets, responding 201 with the stored record.
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.Create(c.Request().Context(), userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, budget)
}

// Update handles PATCH /api/budgets/:id with partial update semantics.
func (h *BudgetHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.Update(c.Request().Context(), c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// Delete handles DELETE /api/budgets/:id.
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	deleted, err := h.budgetService.Delete(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	if !deleted {
		return SendError(c, apierrors.BudgetNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Budget deleted successfully",
	})
}

// Comparison handles GET /api/budgets/comparison, pairing each budget with
// the spend accumulated against it in its month.
func (h *BudgetHandler) Comparison(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	comparisons, err := h.analyticsService.BudgetComparisons(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, comparisons)
}
