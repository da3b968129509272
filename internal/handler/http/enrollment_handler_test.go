package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/17SergioFurtado/mongodb-eduhub-project/internal/handler/http"
	dto "github.com/17SergioFurtado/mongodb-eduhub-project/internal/handler/http/dto"
	mocks "github.com/17SergioFurtado/mongodb-eduhub-project/internal/handler/http/mocks"
)

func setupEnrollmentRouter(h *handler.EnrollmentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.POST("/enrollments", h.Enroll)
	r.PUT("/enrollments/:id/progress", h.UpdateProgress)
	r.PUT("/enrollments/:id/rating", h.RateCourse)
	return r
}

func TestEnroll(t *testing.T) {
	mockUsecase := mocks.NewMockEnrollmentUsecase()
	h := handler.NewEnrollmentHandler(mockUsecase)
	r := setupEnrollmentRouter(h)
	payload := dto.EnrollRequest{CourseID: "crs-1", StudentID: "usr-1"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/enrollments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "mock-enrollment-id")
}

func TestEnroll_Duplicate(t *testing.T) {
	mockUsecase := mocks.NewMockEnrollmentUsecase()
	mockUsecase.EnrollDuplicate = true
	h := handler.NewEnrollmentHandler(mockUsecase)
	r := setupEnrollmentRouter(h)
	payload := dto.EnrollRequest{CourseID: "crs-1", StudentID: "usr-1"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/enrollments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already enrolled")
}

func TestUpdateProgress(t *testing.T) {
	mockUsecase := mocks.NewMockEnrollmentUsecase()
	h := handler.NewEnrollmentHandler(mockUsecase)
	r := setupEnrollmentRouter(h)
	payload := dto.UpdateProgressRequest{Progress: 75}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/enrollments/enr-1/progress", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Progress updated successfully")
}

func TestUpdateProgress_OutOfRange(t *testing.T) {
	mockUsecase := mocks.NewMockEnrollmentUsecase()
	h := handler.NewEnrollmentHandler(mockUsecase)
	r := setupEnrollmentRouter(h)
	payload := dto.UpdateProgressRequest{Progress: 150}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/enrollments/enr-1/progress", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// rejected by the binding tag before the usecase runs
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateCourse_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockEnrollmentUsecase()
	mockUsecase.ShouldFailRateCourse = true
	h := handler.NewEnrollmentHandler(mockUsecase)
	r := setupEnrollmentRouter(h)
	payload := dto.RateCourseRequest{Rating: 4.5}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/enrollments/enr-unknown/rating", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Enrollment not found")
}
