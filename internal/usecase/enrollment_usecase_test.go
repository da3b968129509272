package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/17SergioFurtado/mongodb-eduhub-project/internal/infrastructure/validator"
)

func TestUpdateProgressRejectsOutOfRange(t *testing.T) {
	uc := NewEnrollmentUsecase(nil, nil, nil, nil, nil, nil, validator.NewValidator(), nopLogger{})

	assert.Error(t, uc.UpdateProgress(context.Background(), "enr-1", -1))
	assert.Error(t, uc.UpdateProgress(context.Background(), "enr-1", 101))
}

func TestRateCourseRejectsOutOfRange(t *testing.T) {
	uc := NewEnrollmentUsecase(nil, nil, nil, nil, nil, nil, validator.NewValidator(), nopLogger{})

	assert.Error(t, uc.RateCourse(context.Background(), "enr-1", -0.5))
	assert.Error(t, uc.RateCourse(context.Background(), "enr-1", 5.5))
}
