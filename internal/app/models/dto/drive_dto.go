package dto

import (
	"time"

	"github.com/tpcell/placement-portal/internal/app/models"
)

// CreateDriveRequest represents the admin drive creation payload
type CreateDriveRequest struct {
	CompanyName          string    `json:"companyName" binding:"required"`
	Statuses             []string  `json:"statuses" binding:"required,min=1"`
	Deadline             time.Time `json:"deadline" binding:"required"`
	EligibleCourses      []string  `json:"eligibleCourses" binding:"required,min=1"`
	EligiblePassoutYears []string  `json:"eligiblePassoutYears" binding:"required,min=1"`
}

// UpdateDriveRequest represents the admin drive edit payload.
// All definition fields are replaced in full; registrations are untouched.
type UpdateDriveRequest struct {
	CompanyName          string    `json:"companyName" binding:"required"`
	Statuses             []string  `json:"statuses" binding:"required,min=1"`
	Deadline             time.Time `json:"deadline" binding:"required"`
	EligibleCourses      []string  `json:"eligibleCourses" binding:"required,min=1"`
	EligiblePassoutYears []string  `json:"eligiblePassoutYears" binding:"required,min=1"`
	IsActive             *bool     `json:"isActive" binding:"required"`
}

// UpdateStatusRequest represents a student's self-reported stage submission
type UpdateStatusRequest struct {
	DriveID int64  `json:"driveId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// DriveResponse is a drive annotated with a freshly computed isPast flag.
// The flag is derived at response time and never persisted.
type DriveResponse struct {
	*models.Drive
	IsPast bool `json:"isPast"`
}

// NewDriveResponse annotates a drive with isPast as of now
func NewDriveResponse(drive *models.Drive, now time.Time) DriveResponse {
	return DriveResponse{
		Drive:  drive,
		IsPast: drive.IsPast(now),
	}
}

// NewDriveResponses annotates a list of drives with isPast as of now
func NewDriveResponses(drives []*models.Drive, now time.Time) []DriveResponse {
	responses := make([]DriveResponse, 0, len(drives))
	for _, drive := range drives {
		responses = append(responses, NewDriveResponse(drive, now))
	}
	return responses
}
