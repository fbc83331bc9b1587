package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tpcell/placement-portal/internal/app/models/dto"
	"github.com/tpcell/placement-portal/internal/app/repositories"
	"github.com/tpcell/placement-portal/internal/app/services"
	"github.com/tpcell/placement-portal/internal/middleware"
	"github.com/tpcell/placement-portal/internal/pkg/logger"
)

// AdminController handles the admin-facing drive management and student
// directory endpoints
type AdminController struct {
	driveAdminService services.DriveAdminService
	adminService      services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(driveAdminService services.DriveAdminService, adminService services.AdminService) *AdminController {
	return &AdminController{
		driveAdminService: driveAdminService,
		adminService:      adminService,
	}
}

func parseDriveID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("driveId"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid drive ID")
		errorDetail = errorDetail.WithDetails("Drive ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateDrive handles drive creation
// @Summary Create a drive
// @Description Creates a placement drive. Eligibility and status lists must be non-empty; new drives start active.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDriveRequest true "Drive definition"
// @Success 201 {object} dto.APIResponse{data=dto.DriveResponse} "Drive created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placement/create-drive [post]
func (c *AdminController) CreateDrive(ctx *gin.Context) {
	var req dto.CreateDriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid drive data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	drive, err := c.driveAdminService.CreateDrive(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("driveId", drive.ID).Str("company", drive.CompanyName).Msg("Drive created")

	now := time.Now()
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      dto.NewDriveResponse(drive, now),
		Timestamp: now,
	})
}

// GetAllDrives lists all drives for the admin dashboard
// @Summary List all drives
// @Description Lists every drive regardless of eligibility, newest first. Supports companyName and isActive query filters.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param companyName query string false "Filter by company name substring"
// @Param isActive query bool false "Filter by active flag"
// @Success 200 {object} dto.APIResponse{data=[]dto.DriveResponse} "Drives retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placement/admin/all-drives [get]
func (c *AdminController) GetAllDrives(ctx *gin.Context) {
	filters := repositories.DriveFilters{
		CompanyName: ctx.Query("companyName"),
	}
	if raw, exists := ctx.GetQuery("isActive"); exists {
		if active, err := strconv.ParseBool(raw); err == nil {
			filters.IsActive = &active
		}
	}

	drives, err := c.driveAdminService.GetAllDrives(ctx.Request.Context(), filters)
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

// GetDrive returns one drive with its registrations
// @Summary Get drive details
// @Description Returns a drive and its registrations in first-registration order, each joined to the current student record.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DriveResponse} "Drive retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placement/admin/drive/{driveId} [get]
func (c *AdminController) GetDrive(ctx *gin.Context) {
	id, ok := parseDriveID(ctx)
	if !ok {
		return
	}

	drive, err := c.driveAdminService.GetDrive(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	now := time.Now()
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      dto.NewDriveResponse(drive, now),
		Timestamp: now,
	})
}

// UpdateDrive replaces a drive's definition
// @Summary Update a drive
// @Description Replaces all definition fields of a drive. Existing registrations are untouched even when eligibility shrinks.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID" Format(int64) minimum(1)
// @Param request body dto.UpdateDriveRequest true "New drive definition"
// @Success 200 {object} dto.APIResponse{data=dto.DriveResponse} "Drive updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placement/admin/update-drive/{driveId} [put]
func (c *AdminController) UpdateDrive(ctx *gin.Context) {
	id, ok := parseDriveID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateDriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid drive data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	drive, err := c.driveAdminService.UpdateDrive(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("driveId", id).Msg("Drive updated")

	now := time.Now()
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      dto.NewDriveResponse(drive, now),
		Timestamp: now,
	})
}

// DeleteDrive removes a drive and its registrations
// @Summary Delete a drive
// @Description Deletes a drive together with every registration recorded in it.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param driveId path int true "Drive ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Drive deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placement/admin/delete-drive/{driveId} [delete]
func (c *AdminController) DeleteDrive(ctx *gin.Context) {
	id, ok := parseDriveID(ctx)
	if !ok {
		return
	}

	if err := c.driveAdminService.DeleteDrive(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("driveId", id).Msg("Drive deleted")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Drive deleted successfully"))
}

// CollegeStats returns registered-student counts per college
// @Summary Student counts by college
// @Description Returns the number of registered students for each college name.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=map[string]int} "Stats retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/college-stats [get]
func (c *AdminController) CollegeStats(ctx *gin.Context) {
	stats, err := c.adminService.CollegeStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}

// StudentsByCollege lists the students of one college
// @Summary List students of a college
// @Description Lists all students registered under the given college name, sorted by name.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param college path string true "College name"
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Students retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students-by-college/{college} [get]
func (c *AdminController) StudentsByCollege(ctx *gin.Context) {
	students, err := c.adminService.StudentsByCollege(ctx.Request.Context(), ctx.Param("college"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      students,
		Timestamp: time.Now(),
	})
}
