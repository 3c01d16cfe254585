package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vowplan/internal/errors"
	"vowplan/internal/service"
)

// SeedHandler handles demo data endpoints for development setups.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedDemoResponse represents the seed response.
type SeedDemoResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	Count   int    `json:"count"`
}

// SeedDemo godoc
// @Summary Provision the demo account with sample data
// @Tags seed
// @Produce json
// @Success 200 {object} SeedDemoResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	user, count, err := h.seedService.SeedDemo(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to seed demo data",
			Code:  "SEED_FAILED",
		})
	}
	return c.JSON(http.StatusOK, SeedDemoResponse{
		Message: "demo data seeded",
		Email:   user.Email,
		Count:   count,
	})
}
