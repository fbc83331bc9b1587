package services

import (
	"context"

	"github.com/tpcell/placement-portal/internal/app/models"
)

// AdminService defines the admin-facing student directory operations
type AdminService interface {
	CollegeStats(ctx context.Context) (map[string]int, error)
	StudentsByCollege(ctx context.Context, collegeName string) ([]*models.User, error)
}

type adminServiceImpl struct {
	userStore UserStore
}

// NewAdminService creates a new admin service instance
func NewAdminService(userStore UserStore) AdminService {
	return &adminServiceImpl{
		userStore: userStore,
	}
}

// CollegeStats returns registered-student counts keyed by college name
func (s *adminServiceImpl) CollegeStats(ctx context.Context) (map[string]int, error) {
	return s.userStore.CountByCollege(ctx)
}

// StudentsByCollege lists the students of one college, sorted by name
func (s *adminServiceImpl) StudentsByCollege(ctx context.Context, collegeName string) ([]*models.User, error) {
	return s.userStore.GetByCollege(ctx, collegeName)
}
