package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tpcell/placement-portal/internal/app/models"
	"github.com/tpcell/placement-portal/internal/middleware"
	"github.com/tpcell/placement-portal/internal/pkg/apperrors"
)

// stubPlacementService returns canned results for handler tests.
type stubPlacementService struct {
	drives []*models.Drive
	drive  *models.Drive
	err    error
}

func (s *stubPlacementService) ListEligibleDrives(context.Context, int64) ([]*models.Drive, error) {
	return s.drives, s.err
}

func (s *stubPlacementService) SubmitStatus(context.Context, int64, int64, string) (*models.Drive, error) {
	return s.drive, s.err
}

func (s *stubPlacementService) PastDrives(context.Context, int64) ([]*models.Drive, error) {
	return s.drives, s.err
}

func placementRouter(service *stubPlacementService, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewPlacementController(service)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID > 0 {
			c.Set(middleware.ContextUserID, userID)
		}
	})
	router.GET("/get-drives", controller.GetDrives)
	router.POST("/update-status", controller.UpdateStatus)
	return router
}

func TestGetDrivesMarksPastDrives(t *testing.T) {
	service := &stubPlacementService{
		drives: []*models.Drive{
			{ID: 1, CompanyName: "Acme", Deadline: time.Now().Add(time.Hour)},
			{ID: 2, CompanyName: "Ended", Deadline: time.Now().Add(-time.Hour)},
		},
	}
	router := placementRouter(service, 5)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get-drives", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"isPast":false`)
	assert.Contains(t, body, `"isPast":true`)
}

func TestGetDrivesWithoutPrincipal(t *testing.T) {
	router := placementRouter(&stubPlacementService{}, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get-drives", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateStatusDeadlinePassed(t *testing.T) {
	service := &stubPlacementService{err: apperrors.ErrDeadlinePassed}
	router := placementRouter(service, 5)

	req := httptest.NewRequest(http.MethodPost, "/update-status",
		strings.NewReader(`{"driveId": 1, "status": "Applied"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "This drive has ended")
}

func TestUpdateStatusRejectsMissingFields(t *testing.T) {
	router := placementRouter(&stubPlacementService{}, 5)

	req := httptest.NewRequest(http.MethodPost, "/update-status",
		strings.NewReader(`{"driveId": 1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
