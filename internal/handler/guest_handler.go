package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vowplan/internal/service"
)

// GuestHandler handles guest list endpoints.
type GuestHandler struct {
	svc service.GuestService
}

// NewGuestHandler creates a new guest handler.
func NewGuestHandler(svc service.GuestService) *GuestHandler {
	return &GuestHandler{svc: svc}
}

// List godoc
// @Summary List the caller's guests
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Guest
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /guests [get]
func (h *GuestHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	guests, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, guests)
}

// Create godoc
// @Summary Add a guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.GuestInput true "Guest data"
// @Success 200 {object} model.Guest
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /guests [post]
func (h *GuestHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req service.GuestInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	guest, err := h.svc.Create(c.Request().Context(), userID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, guest)
}

// Update godoc
// @Summary Update a guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param request body service.GuestUpdate true "Fields to change"
// @Success 200 {object} model.Guest
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /guests/{id} [patch]
func (h *GuestHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req service.GuestUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	guest, err := h.svc.Update(c.Request().Context(), userID, id, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, guest)
}

// Delete godoc
// @Summary Remove a guest
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /guests/{id} [delete]
func (h *GuestHandler) Delete(c echo.Context) error {
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
	return c.JSON(http.StatusOK, map[string]string{"msg": "Guest removed"})
}

// Stats godoc
// @Summary Headcount aggregate for the caller's guest list
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.GuestStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /guests/stats [get]
func (h *GuestHandler) Stats(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	stats, err := h.svc.Stats(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
