package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vowplan/internal/auth"
	"vowplan/internal/errors"
)

// callerID extracts the authenticated user's identifier from the JWT the
// middleware attached to the request context.
func callerID(c echo.Context) (uuid.UUID, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token",
			Code:  "INVALID_TOKEN",
		})
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token claims",
			Code:  "INVALID_TOKEN",
		})
	}
	id, err := auth.UserIDFromClaims(claims)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token subject",
			Code:  "INVALID_TOKEN",
		})
	}
	return id, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

// bindAndValidate decodes the request body and runs the field validator.
// A validation failure is returned as a 400 carrying every failed field
// message, not just the first.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		if verr, ok := err.(*errors.ValidationError); ok {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ValidationErrorResponse{
				Errors: verr.Fields,
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return nil
}

// serviceError maps a domain error to its HTTP response. Validation
// errors surfaced by a service keep the field-message array shape.
func serviceError(err error) error {
	if verr, ok := err.(*errors.ValidationError); ok {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ValidationErrorResponse{
			Errors: verr.Fields,
		})
	}
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
