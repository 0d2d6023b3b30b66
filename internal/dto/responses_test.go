package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError_FieldMessages(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")

	req := CreateLeadRequest{
		FullName: "A",
		Email:    "not-an-email",
		Phone:    "123",
	}
	err := v.Struct(req)
	require.Error(t, err)

	resp := NewValidationError(err)
	assert.Equal(t, "Validation failed", resp.Message)
	require.NotEmpty(t, resp.Errors)

	byField := make(map[string]string, len(resp.Errors))
	for _, fe := range resp.Errors {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "must be at least 2 characters", byField["fullName"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "must be at least 9 characters", byField["phone"])
	assert.Equal(t, "is required", byField["countryCode"])
}

func TestNewValidationError_NonValidatorError(t *testing.T) {
	resp := NewValidationError(assert.AnError)
	assert.Contains(t, resp.Message, "Validation failed")
	assert.Empty(t, resp.Errors)
}
