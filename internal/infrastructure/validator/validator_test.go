package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateEmail("alice@example.com"))
	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("not-an-email"))
}

func TestValidatePasswordStrength(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidatePasswordStrength("Password123"))
	assert.Error(t, v.ValidatePasswordStrength("short1A"), "too short")
	assert.Error(t, v.ValidatePasswordStrength("alllowercase1"), "no uppercase")
	assert.Error(t, v.ValidatePasswordStrength("NoDigitsHere"), "no digit")
}

func TestValidateRating(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateRating(0))
	assert.NoError(t, v.ValidateRating(4.5))
	assert.NoError(t, v.ValidateRating(5))
	assert.Error(t, v.ValidateRating(-0.1))
	assert.Error(t, v.ValidateRating(5.1))
}

func TestValidateProgress(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateProgress(0))
	assert.NoError(t, v.ValidateProgress(100))
	assert.Error(t, v.ValidateProgress(-1))
	assert.Error(t, v.ValidateProgress(101))
}
