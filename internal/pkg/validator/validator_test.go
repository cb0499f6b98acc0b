package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Message string `json:"message" validate:"required"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	errs := Validate(&contactForm{Email: "not-an-email"})
	require.NotNil(t, errs)
	assert.Equal(t, "is required", errs["name"])
	assert.Equal(t, "must be a valid email address", errs["email"])
	assert.Equal(t, "is required", errs["message"])
}

func TestValidatePassesValidInput(t *testing.T) {
	errs := Validate(&contactForm{
		Name:    "홍길동",
		Email:   "hong@example.com",
		Message: "견적 문의드립니다.",
	})
	assert.Nil(t, errs)
}

func TestValidateMinLength(t *testing.T) {
	type changePassword struct {
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	errs := Validate(&changePassword{NewPassword: "short"})
	require.NotNil(t, errs)
	assert.Equal(t, "must be at least 8 characters", errs["new_password"])
}
