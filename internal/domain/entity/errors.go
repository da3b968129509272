package entity

import "errors"

// Sentinel errors shared across repositories and usecases.
var (
	// ErrNotFound is returned when a lookup by ID or unique key matches nothing.
	// Empty list results are not errors.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when an insert would violate the unique
	// index on users.email. The existing record is left untouched.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrAlreadyEnrolled is returned when an insert would violate the unique
	// (course_id, student_id) index on enrollments.
	ErrAlreadyEnrolled = errors.New("student already enrolled in course")
)
