package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tpcell/placement-portal/internal/app/models"
	"github.com/tpcell/placement-portal/internal/app/models/dto"
	"github.com/tpcell/placement-portal/internal/app/repositories"
	"github.com/tpcell/placement-portal/internal/pkg/apperrors"
)

// DriveAdminService defines the admin-facing drive management operations
type DriveAdminService interface {
	CreateDrive(ctx context.Context, req *dto.CreateDriveRequest) (*models.Drive, error)
	UpdateDrive(ctx context.Context, id int64, req *dto.UpdateDriveRequest) (*models.Drive, error)
	DeleteDrive(ctx context.Context, id int64) error
	GetAllDrives(ctx context.Context, filters repositories.DriveFilters) ([]*models.Drive, error)
	GetDrive(ctx context.Context, id int64) (*models.Drive, error)
}

// driveAdminServiceImpl implements the DriveAdminService interface
type driveAdminServiceImpl struct {
	driveStore DriveStore
}

// NewDriveAdminService creates a new drive admin service instance
func NewDriveAdminService(driveStore DriveStore) DriveAdminService {
	return &driveAdminServiceImpl{
		driveStore: driveStore,
	}
}

// cleanSet trims the entries of a drive definition list and drops blanks.
func cleanSet(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}

// validateDefinition checks the fields shared by create and update requests.
// Eligibility and status sets must stay non-empty: an empty set would make
// the drive invisible to every student or leave them nothing to report.
func validateDefinition(companyName string, deadline time.Time, courses, years, statuses []string) error {
	if strings.TrimSpace(companyName) == "" {
		return fmt.Errorf("%w: company name is required", apperrors.ErrValidationFailed)
	}
	if deadline.IsZero() {
		return fmt.Errorf("%w: deadline is required", apperrors.ErrValidationFailed)
	}
	if len(courses) == 0 {
		return fmt.Errorf("%w: at least one eligible course is required", apperrors.ErrValidationFailed)
	}
	if len(years) == 0 {
		return fmt.Errorf("%w: at least one eligible passout year is required", apperrors.ErrValidationFailed)
	}
	if len(statuses) == 0 {
		return fmt.Errorf("%w: at least one status option is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateDrive validates and stores a new drive definition
func (s *driveAdminServiceImpl) CreateDrive(ctx context.Context, req *dto.CreateDriveRequest) (*models.Drive, error) {
	courses := cleanSet(req.EligibleCourses)
	years := cleanSet(req.EligiblePassoutYears)
	statuses := cleanSet(req.Statuses)

	if err := validateDefinition(req.CompanyName, req.Deadline, courses, years, statuses); err != nil {
		return nil, err
	}

	drive := &models.Drive{
		CompanyName:          strings.TrimSpace(req.CompanyName),
		Deadline:             req.Deadline,
		EligibleCourses:      courses,
		EligiblePassoutYears: years,
		Statuses:             statuses,
		IsActive:             true,
	}

	if err := s.driveStore.Create(ctx, drive); err != nil {
		return nil, err
	}

	return drive, nil
}

// UpdateDrive validates and fully replaces a drive's definition fields.
// Existing registrations keep their snapshots even when eligibility shrinks.
func (s *driveAdminServiceImpl) UpdateDrive(ctx context.Context, id int64, req *dto.UpdateDriveRequest) (*models.Drive, error) {
	courses := cleanSet(req.EligibleCourses)
	years := cleanSet(req.EligiblePassoutYears)
	statuses := cleanSet(req.Statuses)

	if err := validateDefinition(req.CompanyName, req.Deadline, courses, years, statuses); err != nil {
		return nil, err
	}
	if req.IsActive == nil {
		return nil, fmt.Errorf("%w: isActive is required", apperrors.ErrValidationFailed)
	}

	drive := &models.Drive{
		ID:                   id,
		CompanyName:          strings.TrimSpace(req.CompanyName),
		Deadline:             req.Deadline,
		EligibleCourses:      courses,
		EligiblePassoutYears: years,
		Statuses:             statuses,
		IsActive:             *req.IsActive,
	}

	if err := s.driveStore.Update(ctx, drive); err != nil {
		return nil, err
	}

	return s.driveStore.GetByID(ctx, id)
}

// DeleteDrive removes a drive and its registrations
func (s *driveAdminServiceImpl) DeleteDrive(ctx context.Context, id int64) error {
	return s.driveStore.Delete(ctx, id)
}

// GetAllDrives lists drives for the admin dashboard, newest first
func (s *driveAdminServiceImpl) GetAllDrives(ctx context.Context, filters repositories.DriveFilters) ([]*models.Drive, error) {
	return s.driveStore.GetAll(ctx, filters)
}

// GetDrive returns one drive with its registrations joined to the current
// student records
func (s *driveAdminServiceImpl) GetDrive(ctx context.Context, id int64) (*models.Drive, error) {
	return s.driveStore.GetWithRegistrations(ctx, id)
}
