package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vowplan/internal/service"
)

// BudgetHandler handles budget endpoints.
type BudgetHandler struct {
	svc service.BudgetService
}

// NewBudgetHandler creates a new budget handler.
func NewBudgetHandler(svc service.BudgetService) *BudgetHandler {
	return &BudgetHandler{svc: svc}
}

// List godoc
// @Summary List the caller's budget items
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.BudgetItem
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget [get]
func (h *BudgetHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	items, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// Create godoc
// @Summary Create a budget item
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.BudgetItemInput true "Budget item data"
// @Success 200 {object} model.BudgetItem
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget [post]
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req service.BudgetItemInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.svc.Create(c.Request().Context(), userID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Update godoc
// @Summary Update a budget item
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Budget item ID"
// @Param request body service.BudgetItemUpdate true "Fields to change"
// @Success 200 {object} model.BudgetItem
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget/{id} [patch]
func (h *BudgetHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req service.BudgetItemUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.svc.Update(c.Request().Context(), userID, id, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a budget item
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param id path string true "Budget item ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget/{id} [delete]
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), userID, id); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "Item removed"})
}

// Summary godoc
// @Summary Budget totals for the caller
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.BudgetSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /budget/summary [get]
func (h *BudgetHandler) Summary(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	summary, err := h.svc.Summary(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
