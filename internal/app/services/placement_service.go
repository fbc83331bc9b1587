package services

import (
	"context"

	"github.com/tpcell/placement-portal/internal/app/models"
)

// PlacementService defines the student-facing placement operations
type PlacementService interface {
	ListEligibleDrives(ctx context.Context, userID int64) ([]*models.Drive, error)
	SubmitStatus(ctx context.Context, userID, driveID int64, status string) (*models.Drive, error)
	PastDrives(ctx context.Context, userID int64) ([]*models.Drive, error)
}

// placementServiceImpl implements the PlacementService interface
type placementServiceImpl struct {
	driveStore DriveStore
	userStore  UserStore
}

// NewPlacementService creates a new placement service instance
func NewPlacementService(driveStore DriveStore, userStore UserStore) PlacementService {
	return &placementServiceImpl{
		driveStore: driveStore,
		userStore:  userStore,
	}
}

// ListEligibleDrives returns the active drives whose eligibility sets contain
// the student's specialization and passout year. Past drives are included;
// the response layer marks them.
func (s *placementServiceImpl) ListEligibleDrives(ctx context.Context, userID int64) ([]*models.Drive, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.driveStore.GetEligible(ctx, user.Specialization, user.PassoutYear)
}

// SubmitStatus records the student's self-reported stage in a drive and
// returns the drive with its registrations. The status value is stored
// verbatim; the drive's statuses list is advisory for clients, not a
// server-side whitelist. The deadline gate and the one-registration-per-
// student rule live in the store.
func (s *placementServiceImpl) SubmitStatus(ctx context.Context, userID, driveID int64, status string) (*models.Drive, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	reg := &models.Registration{
		DriveID:            driveID,
		UserID:             user.ID,
		UserName:           user.Name,
		UserEmail:          user.Email,
		UserRegNo:          user.RegNo,
		UserMobile:         user.Mobile,
		UserSpecialization: user.Specialization,
		UserBranch:         user.Branch,
		UserYear:           user.Year,
		UserPassoutYear:    user.PassoutYear,
		Status:             status,
	}

	if err := s.driveStore.SubmitRegistration(ctx, reg); err != nil {
		return nil, err
	}

	drive, err := s.driveStore.GetWithRegistrations(ctx, driveID)
	if err != nil {
		return nil, err
	}

	// Students see the registration snapshots only, not the joined records.
	for i := range drive.Registrations {
		drive.Registrations[i].Student = nil
	}

	return drive, nil
}

// PastDrives returns every drive the student has a registration in,
// regardless of the drive's active flag or deadline.
func (s *placementServiceImpl) PastDrives(ctx context.Context, userID int64) ([]*models.Drive, error) {
	return s.driveStore.GetRegisteredByUser(ctx, userID)
}
