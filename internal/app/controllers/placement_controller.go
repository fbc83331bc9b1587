package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tpcell/placement-portal/internal/app/models/dto"
	"github.com/tpcell/placement-portal/internal/app/services"
	"github.com/tpcell/placement-portal/internal/middleware"
	"github.com/tpcell/placement-portal/internal/pkg/logger"
)

// PlacementController handles the student-facing placement endpoints
type PlacementController struct {
	placementService services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.PlacementService) *PlacementController {
	return &PlacementController{
		placementService: placementService,
	}
}

// GetDrives lists the drives the student is eligible for
// @Summary List eligible drives
// @Description Lists active drives matching the student's specialization and passout year. Each drive carries a freshly computed isPast flag.
// @Tags placement
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.DriveResponse} "Drives retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placement/get-drives [get]
func (c *PlacementController) GetDrives(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	drives, err := c.placementService.ListEligibleDrives(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	now := time.Now()
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      dto.NewDriveResponses(drives, now),
		Timestamp: now,
	})
}

// UpdateStatus records the student's self-reported stage in a drive
// @Summary Submit hiring status
// @Description Records or updates the student's self-reported stage within a drive. Rejected once the drive deadline has passed.
// @Tags placement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateStatusRequest true "Drive and status"
// @Success 200 {object} dto.APIResponse{data=dto.DriveResponse} "Status recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Drive deadline has passed"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placement/update-status [post]
func (c *PlacementController) UpdateStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	drive, err := c.placementService.SubmitStatus(ctx.Request.Context(), userID, req.DriveID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("userId", userID).Int64("driveId", req.DriveID).
		Str("status", req.Status).Msg("Status submitted")

	now := time.Now()
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      dto.NewDriveResponse(drive, now),
		Timestamp: now,
	})
}

// PastDrives lists the drives the student has registered in
// @Summary List registered drives
// @Description Lists every drive the student has submitted a status for, including inactive and past ones.
// @Tags placement
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.DriveResponse} "Drives retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placement/past-drives [get]
func (c *PlacementController) PastDrives(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	drives, err := c.placementService.PastDrives(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	now := time.Now()
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      dto.NewDriveResponses(drives, now),
		Timestamp: now,
	})
}
