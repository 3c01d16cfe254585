package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vowplan/internal/service"
)

// TimelineHandler handles wedding-day timeline endpoints.
type TimelineHandler struct {
	svc service.TimelineService
}

// NewTimelineHandler creates a new timeline handler.
func NewTimelineHandler(svc service.TimelineService) *TimelineHandler {
	return &TimelineHandler{svc: svc}
}

// List godoc
// @Summary List the caller's timeline events, ascending by date
// @Tags timeline
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.TimelineEvent
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /timeline [get]
func (h *TimelineHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	events, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, events)
}

// Create godoc
// @Summary Create a timeline event
// @Tags timeline
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.TimelineEventInput true "Event data"
// @Success 200 {object} model.TimelineEvent
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /timeline [post]
func (h *TimelineHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req service.TimelineEventInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.svc.Create(c.Request().Context(), userID, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, event)
}

// Update godoc
// @Summary Update a timeline event
// @Tags timeline
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body service.TimelineEventUpdate true "Fields to change"
// @Success 200 {object} model.TimelineEvent
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /timeline/{id} [patch]
func (h *TimelineHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req service.TimelineEventUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.svc.Update(c.Request().Context(), userID, id, req)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, event)
}

// Delete godoc
// @Summary Delete a timeline event
// @Tags timeline
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /timeline/{id} [delete]
func (h *TimelineHandler) Delete(c echo.Context) error {
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
	return c.JSON(http.StatusOK, map[string]string{"msg": "Event removed"})
}
