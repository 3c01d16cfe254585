package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrRecordNotFound is returned when a record does not exist for the
	// caller. Ownership failures deliberately collapse into this error so
	// a non-owner cannot learn whether the record exists.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidRSVPStatus is returned when a guest update supplies an
	// unrecognized RSVP state.
	ErrInvalidRSVPStatus = errors.New("invalid rsvp status")
	// ErrInvalidGuestSide is returned when a guest payload supplies an
	// unrecognized side.
	ErrInvalidGuestSide = errors.New("invalid guest side")
	// ErrInvalidBudgetStatus is returned when a budget item update
	// supplies an unrecognized payment state.
	ErrInvalidBudgetStatus = errors.New("invalid budget status")
	// ErrInvalidEventCategory is returned when a timeline event supplies
	// an unrecognized category.
	ErrInvalidEventCategory = errors.New("invalid event category")
	// ErrNegativeAmount is returned when a budget amount is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrPaidExceedsEstimate is returned when paidAmount is greater than
	// estimatedCost.
	ErrPaidExceedsEstimate = errors.New("paid amount exceeds estimated cost")
)

// Is reports whether any error in err's chain matches target. It lets
// callers that import this package match sentinels through %w wrapping
// without a second errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// FieldError names a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failed field rule for one request. The
// whole list is returned in a single 400 response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msg := e.Fields[0].Message
	for _, f := range e.Fields[1:] {
		msg += "; " + f.Message
	}
	return msg
}

// ValidationErrorResponse is the 400 body shape: an array of field
// messages, never just the first failure.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Store failures and
// anything unrecognized become a generic 500 so driver detail is never
// leaked to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidRSVPStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RSVP_STATUS")
	case errors.Is(err, ErrInvalidGuestSide):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_GUEST_SIDE")
	case errors.Is(err, ErrInvalidBudgetStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_BUDGET_STATUS")
	case errors.Is(err, ErrInvalidEventCategory):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EVENT_CATEGORY")
	case errors.Is(err, ErrNegativeAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NEGATIVE_AMOUNT")
	case errors.Is(err, ErrPaidExceedsEstimate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PAID_EXCEEDS_ESTIMATE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
