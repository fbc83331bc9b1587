package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tpcell/placement-portal/internal/app/models"
	"github.com/tpcell/placement-portal/internal/app/repositories"
	"github.com/tpcell/placement-portal/internal/pkg/apperrors"
)

// memUserStore is an in-memory UserStore for service tests.
type memUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range s.users {
		switch {
		case existing.Email == user.Email:
			return apperrors.ErrEmailAlreadyExists
		case existing.CollegeEmail == user.CollegeEmail:
			return apperrors.ErrCollegeEmailAlreadyExists
		case existing.RegNo == user.RegNo:
			return apperrors.ErrRegNoAlreadyExists
		}
	}
	user.ID = s.nextID
	s.nextID++
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return nil
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *memUserStore) CountByCollege(_ context.Context) (map[string]int, error) {
	stats := make(map[string]int)
	for _, user := range s.users {
		stats[user.CollegeName]++
	}
	return stats, nil
}

func (s *memUserStore) GetByCollege(_ context.Context, collegeName string) ([]*models.User, error) {
	var users []*models.User
	for _, user := range s.users {
		if user.CollegeName == collegeName {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

// memDriveStore is an in-memory DriveStore for service tests. It mirrors the
// postgres repository's contract: the deadline gate, the one-registration-per-
// student rule and the asymmetric snapshot refresh on resubmission.
type memDriveStore struct {
	drives    map[int64]*models.Drive
	regs      map[int64][]models.Registration
	users     *memUserStore
	nextID    int64
	nextRegID int64
}

func newMemDriveStore(users *memUserStore) *memDriveStore {
	return &memDriveStore{
		drives:    make(map[int64]*models.Drive),
		regs:      make(map[int64][]models.Registration),
		users:     users,
		nextID:    1,
		nextRegID: 1,
	}
}

func (s *memDriveStore) Create(_ context.Context, drive *models.Drive) error {
	drive.ID = s.nextID
	s.nextID++
	drive.CreatedAt = time.Now()
	drive.Registrations = []models.Registration{}
	s.drives[drive.ID] = drive
	return nil
}

func (s *memDriveStore) GetByID(_ context.Context, id int64) (*models.Drive, error) {
	drive, ok := s.drives[id]
	if !ok {
		return nil, apperrors.ErrDriveNotFound
	}
	copied := *drive
	copied.Registrations = []models.Registration{}
	return &copied, nil
}

func (s *memDriveStore) GetAll(_ context.Context, filters repositories.DriveFilters) ([]*models.Drive, error) {
	var drives []*models.Drive
	for id, drive := range s.drives {
		if name := strings.TrimSpace(filters.CompanyName); name != "" &&
			!strings.Contains(strings.ToLower(drive.CompanyName), strings.ToLower(name)) {
			continue
		}
		if filters.IsActive != nil && drive.IsActive != *filters.IsActive {
			continue
		}
		copied := *drive
		copied.Registrations = append([]models.Registration{}, s.regs[id]...)
		drives = append(drives, &copied)
	}
	sort.Slice(drives, func(i, j int) bool { return drives[i].CreatedAt.After(drives[j].CreatedAt) })
	return drives, nil
}

func (s *memDriveStore) GetEligible(_ context.Context, specialization, passoutYear string) ([]*models.Drive, error) {
	var drives []*models.Drive
	for _, drive := range s.drives {
		if drive.IsActive && contains(drive.EligibleCourses, specialization) &&
			contains(drive.EligiblePassoutYears, passoutYear) {
			drives = append(drives, drive)
		}
	}
	sort.Slice(drives, func(i, j int) bool { return drives[i].CreatedAt.After(drives[j].CreatedAt) })
	return drives, nil
}

func (s *memDriveStore) GetRegisteredByUser(_ context.Context, userID int64) ([]*models.Drive, error) {
	var drives []*models.Drive
	for id, drive := range s.drives {
		for _, reg := range s.regs[id] {
			if reg.UserID == userID {
				copied := *drive
				copied.Registrations = append([]models.Registration{}, s.regs[id]...)
				drives = append(drives, &copied)
				break
			}
		}
	}
	sort.Slice(drives, func(i, j int) bool { return drives[i].CreatedAt.After(drives[j].CreatedAt) })
	return drives, nil
}

func (s *memDriveStore) GetWithRegistrations(ctx context.Context, id int64) (*models.Drive, error) {
	drive, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	regs := append([]models.Registration{}, s.regs[id]...)
	for i := range regs {
		if user, ok := s.users.users[regs[i].UserID]; ok {
			regs[i].Student = &models.StudentSummary{
				ID:             user.ID,
				Name:           user.Name,
				Email:          user.Email,
				Specialization: user.Specialization,
				Branch:         user.Branch,
				Year:           user.Year,
			}
		}
	}
	drive.Registrations = regs
	return drive, nil
}

func (s *memDriveStore) Update(_ context.Context, drive *models.Drive) error {
	existing, ok := s.drives[drive.ID]
	if !ok {
		return apperrors.ErrDriveNotFound
	}
	drive.CreatedAt = existing.CreatedAt
	s.drives[drive.ID] = drive
	return nil
}

func (s *memDriveStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.drives[id]; !ok {
		return apperrors.ErrDriveNotFound
	}
	delete(s.drives, id)
	delete(s.regs, id)
	return nil
}

func (s *memDriveStore) SubmitRegistration(_ context.Context, reg *models.Registration) error {
	drive, ok := s.drives[reg.DriveID]
	if !ok {
		return apperrors.ErrDriveNotFound
	}

	if !time.Now().Before(drive.Deadline) {
		return apperrors.ErrDeadlinePassed
	}

	regs := s.regs[reg.DriveID]
	for i := range regs {
		if regs[i].UserID == reg.UserID {
			regs[i].Status = reg.Status
			regs[i].Timestamp = time.Now()
			regs[i].UserName = reg.UserName
			regs[i].UserEmail = reg.UserEmail
			regs[i].UserMobile = reg.UserMobile
			*reg = regs[i]
			return nil
		}
	}

	reg.ID = s.nextRegID
	s.nextRegID++
	reg.Timestamp = time.Now()
	s.regs[reg.DriveID] = append(regs, *reg)
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
