package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/17SergioFurtado/mongodb-eduhub-project/internal/handler/http"
	mocks "github.com/17SergioFurtado/mongodb-eduhub-project/internal/handler/http/mocks"
)

func setupReportRouter(h *handler.ReportHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.GET("/reports/completion-rates", h.GetCompletionRates)
	r.GET("/reports/courses/:id/completion-rate", h.GetCourseCompletionRate)
	r.GET("/reports/average-ratings", h.GetAverageRatings)
	r.GET("/reports/overdue-students", h.GetOverdueStudents)
	return r
}

func TestGetCompletionRates(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	h := handler.NewReportHandler(mockUsecase)
	r := setupReportRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reports/completion-rates", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rate":0.5`)
}

func TestGetCourseCompletionRate_UnknownCourse(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	h := handler.NewReportHandler(mockUsecase)
	r := setupReportRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reports/courses/crs-empty/completion-rate", nil)
	r.ServeHTTP(w, req)

	// an unknown course yields a zero-rate row, not an error
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"course_id":"crs-empty"`)
	assert.Contains(t, w.Body.String(), `"rate":0`)
}

func TestGetAverageRatings(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	h := handler.NewReportHandler(mockUsecase)
	r := setupReportRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reports/average-ratings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"average_rating":4.5`)
}

func TestGetOverdueStudents_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	mockUsecase.ShouldFail = true
	h := handler.NewReportHandler(mockUsecase)
	r := setupReportRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reports/overdue-students", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch overdue students")
}
