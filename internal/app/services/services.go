// Package services holds the business logic between controllers and
// repositories.
//
// Services defined in this package:
//   - AuthService: student registration/login, admin login, profile reads
//   - PlacementService: eligibility-filtered drive listing and status writes
//   - DriveAdminService: lifecycle management of drive definitions
//   - AdminService: student directory views for the placement cell
package services

import (
	"context"

	"github.com/tpcell/placement-portal/internal/app/models"
	"github.com/tpcell/placement-portal/internal/app/repositories"
)

// DriveStore is the drive persistence surface the services need.
// *repositories.DriveRepository satisfies it.
type DriveStore interface {
	Create(ctx context.Context, drive *models.Drive) error
	GetByID(ctx context.Context, id int64) (*models.Drive, error)
	GetAll(ctx context.Context, filters repositories.DriveFilters) ([]*models.Drive, error)
	GetEligible(ctx context.Context, specialization, passoutYear string) ([]*models.Drive, error)
	GetRegisteredByUser(ctx context.Context, userID int64) ([]*models.Drive, error)
	GetWithRegistrations(ctx context.Context, id int64) (*models.Drive, error)
	Update(ctx context.Context, drive *models.Drive) error
	Delete(ctx context.Context, id int64) error
	SubmitRegistration(ctx context.Context, reg *models.Registration) error
}

// UserStore is the student-account persistence surface the services need.
// *repositories.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CountByCollege(ctx context.Context) (map[string]int, error)
	GetByCollege(ctx context.Context, collegeName string) ([]*models.User, error)
}
