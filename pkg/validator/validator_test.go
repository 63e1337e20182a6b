package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Severity int    `validate:"gte=1,lte=10"`
	Source   string `validate:"omitempty,oneof=web mobile kiosk api"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "alice@example.com", Severity: 5, Source: "web"})

	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "not-an-email", Severity: 11, Source: "fax"})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Severity must be less than or equal to 10", formatted["Severity"])
	assert.Equal(t, "Source must be one of: web mobile kiosk api", formatted["Source"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Severity: 5})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email is required", formatted["Email"])
}
