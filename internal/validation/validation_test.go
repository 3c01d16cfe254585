package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vowplan/internal/errors"
)

type registerRequest struct {
	Name     string `json:"name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidator_CollectsAllFailures(t *testing.T) {
	v := New()

	err := v.Validate(registerRequest{})

	verr, ok := err.(*errors.ValidationError)
	assert.True(t, ok)
	assert.Len(t, verr.Fields, 3)

	// one message per failed field, in declaration order
	assert.Equal(t, "name", verr.Fields[0].Field)
	assert.Equal(t, "name is required", verr.Fields[0].Message)
	assert.Equal(t, "email", verr.Fields[1].Field)
	assert.Equal(t, "email is required", verr.Fields[1].Message)
	assert.Equal(t, "password", verr.Fields[2].Field)
	assert.Equal(t, "password is required", verr.Fields[2].Message)
}

func TestValidator_PartialFailure(t *testing.T) {
	v := New()

	err := v.Validate(registerRequest{
		Name:     "Ada",
		Email:    "not-an-email",
		Password: "short",
	})

	verr, ok := err.(*errors.ValidationError)
	assert.True(t, ok)
	assert.Len(t, verr.Fields, 2)
	assert.Equal(t, "email must be a valid email", verr.Fields[0].Message)
	assert.Equal(t, "password must be at least 8", verr.Fields[1].Message)
}

func TestValidator_NotBlankRejectsWhitespace(t *testing.T) {
	v := New()

	err := v.Validate(registerRequest{
		Name:     "   ",
		Email:    "ada@example.com",
		Password: "long-enough-password",
	})

	verr, ok := err.(*errors.ValidationError)
	assert.True(t, ok)
	assert.Len(t, verr.Fields, 1)
	assert.Equal(t, "name", verr.Fields[0].Field)
	assert.Equal(t, "name is required", verr.Fields[0].Message)
}

func TestValidator_ValidInput(t *testing.T) {
	v := New()

	err := v.Validate(registerRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "long-enough-password",
	})

	assert.NoError(t, err)
}

func TestValidator_OptionalFieldsSkippedWhenEmpty(t *testing.T) {
	type guestPatch struct {
		Name  *string `json:"name,omitempty" validate:"omitempty,notblank"`
		Email *string `json:"email,omitempty" validate:"omitempty,email"`
	}

	v := New()

	assert.NoError(t, v.Validate(guestPatch{}))

	blank := "  "
	err := v.Validate(guestPatch{Name: &blank})
	verr, ok := err.(*errors.ValidationError)
	assert.True(t, ok)
	assert.Len(t, verr.Fields, 1)
	assert.Equal(t, "name is required", verr.Fields[0].Message)
}
