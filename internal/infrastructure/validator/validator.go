package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/domain/entity"
	usecasecontract "github.com/17SergioFurtado/mongodb-eduhub-project/internal/usecase/contract"
)

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecasecontract.IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength checks if the password meets the strength requirements.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	return av.validate.Var(password, "containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ,containsany=abcdefghijklmnopqrstuvwxyz,containsany=0123456789")
}

// ValidateRating checks the course rating bound.
func (av *AppValidator) ValidateRating(rating float64) error {
	if rating < entity.MinRating || rating > entity.MaxRating {
		return fmt.Errorf("rating must be between %.0f and %.0f", entity.MinRating, entity.MaxRating)
	}
	return nil
}

// ValidateProgress checks the enrollment progress bound.
func (av *AppValidator) ValidateProgress(progress int) error {
	if progress < 0 || progress > entity.MaxProgress {
		return fmt.Errorf("progress must be between 0 and %d", entity.MaxProgress)
	}
	return nil
}
