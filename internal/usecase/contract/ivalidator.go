package usecasecontract

// IValidator validates request-level values before they reach the store.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
	// ValidateRating checks the 0-5 course rating bound.
	ValidateRating(rating float64) error
	// ValidateProgress checks the 0-100 progress bound.
	ValidateProgress(progress int) error
}
