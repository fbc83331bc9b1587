package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tpcell/placement-portal/internal/app/models"
	"github.com/tpcell/placement-portal/internal/app/models/dto"
	"github.com/tpcell/placement-portal/internal/app/repositories"
	"github.com/tpcell/placement-portal/internal/pkg/apperrors"
)

type DriveAdminServiceSuite struct {
	suite.Suite
	drives  *memDriveStore
	service DriveAdminService
}

func TestDriveAdminServiceSuite(t *testing.T) {
	suite.Run(t, new(DriveAdminServiceSuite))
}

func (s *DriveAdminServiceSuite) SetupTest() {
	s.drives = newMemDriveStore(newMemUserStore())
	s.service = NewDriveAdminService(s.drives)
}

func validCreateRequest() *dto.CreateDriveRequest {
	return &dto.CreateDriveRequest{
		CompanyName:          "Acme",
		Deadline:             time.Now().Add(72 * time.Hour),
		EligibleCourses:      []string{"CSE", "IT"},
		EligiblePassoutYears: []string{"2026"},
		Statuses:             []string{"Applied", "Selected"},
	}
}

func (s *DriveAdminServiceSuite) TestCreateDrive() {
	ctx := context.Background()

	s.Run("new drives start active", func() {
		drive, err := s.service.CreateDrive(ctx, validCreateRequest())
		s.Require().NoError(err)
		s.True(drive.IsActive)
		s.NotZero(drive.ID)
	})

	s.Run("blank company name is rejected", func() {
		req := validCreateRequest()
		req.CompanyName = "   "
		_, err := s.service.CreateDrive(ctx, req)
		s.ErrorIs(err, apperrors.ErrValidationFailed)
	})

	s.Run("zero deadline is rejected", func() {
		req := validCreateRequest()
		req.Deadline = time.Time{}
		_, err := s.service.CreateDrive(ctx, req)
		s.ErrorIs(err, apperrors.ErrValidationFailed)
	})

	s.Run("eligibility sets of only blanks are rejected", func() {
		req := validCreateRequest()
		req.EligibleCourses = []string{"  ", ""}
		_, err := s.service.CreateDrive(ctx, req)
		s.ErrorIs(err, apperrors.ErrValidationFailed)
	})

	s.Run("empty status list is rejected", func() {
		req := validCreateRequest()
		req.Statuses = nil
		_, err := s.service.CreateDrive(ctx, req)
		s.ErrorIs(err, apperrors.ErrValidationFailed)
	})

	s.Run("set entries are trimmed", func() {
		req := validCreateRequest()
		req.EligibleCourses = []string{" CSE ", "IT"}
		drive, err := s.service.CreateDrive(ctx, req)
		s.Require().NoError(err)
		s.Equal([]string{"CSE", "IT"}, drive.EligibleCourses)
	})
}

func (s *DriveAdminServiceSuite) TestUpdateDrive() {
	ctx := context.Background()
	created, err := s.service.CreateDrive(ctx, validCreateRequest())
	s.Require().NoError(err)

	active := false
	req := &dto.UpdateDriveRequest{
		CompanyName:          "Acme Corp",
		Deadline:             time.Now().Add(24 * time.Hour),
		EligibleCourses:      []string{"CSE"},
		EligiblePassoutYears: []string{"2026", "2027"},
		Statuses:             []string{"Applied"},
		IsActive:             &active,
	}

	s.Run("unknown drive returns not found", func() {
		_, err := s.service.UpdateDrive(ctx, 999, req)
		s.ErrorIs(err, apperrors.ErrDriveNotFound)
	})

	s.Run("missing isActive is rejected", func() {
		broken := *req
		broken.IsActive = nil
		_, err := s.service.UpdateDrive(ctx, created.ID, &broken)
		s.ErrorIs(err, apperrors.ErrValidationFailed)
	})

	s.Run("definition is replaced in full", func() {
		updated, err := s.service.UpdateDrive(ctx, created.ID, req)
		s.Require().NoError(err)
		s.Equal("Acme Corp", updated.CompanyName)
		s.Equal([]string{"2026", "2027"}, updated.EligiblePassoutYears)
		s.False(updated.IsActive)
	})
}

func (s *DriveAdminServiceSuite) TestDeleteDrive() {
	ctx := context.Background()
	created, err := s.service.CreateDrive(ctx, validCreateRequest())
	s.Require().NoError(err)

	s.Run("unknown drive returns not found", func() {
		s.ErrorIs(s.service.DeleteDrive(ctx, 999), apperrors.ErrDriveNotFound)
	})

	s.Run("deleted drive is gone", func() {
		s.NoError(s.service.DeleteDrive(ctx, created.ID))
		_, err := s.service.GetDrive(ctx, created.ID)
		s.ErrorIs(err, apperrors.ErrDriveNotFound)
	})
}

func (s *DriveAdminServiceSuite) TestGetAllDrives() {
	ctx := context.Background()

	first, err := s.service.CreateDrive(ctx, validCreateRequest())
	s.Require().NoError(err)

	req := validCreateRequest()
	req.CompanyName = "Globex"
	second, err := s.service.CreateDrive(ctx, req)
	s.Require().NoError(err)

	inactive := false
	_, err = s.service.UpdateDrive(ctx, first.ID, &dto.UpdateDriveRequest{
		CompanyName:          first.CompanyName,
		Deadline:             first.Deadline,
		EligibleCourses:      first.EligibleCourses,
		EligiblePassoutYears: first.EligiblePassoutYears,
		Statuses:             first.Statuses,
		IsActive:             &inactive,
	})
	s.Require().NoError(err)

	s.Run("no filters returns everything", func() {
		drives, err := s.service.GetAllDrives(ctx, repositories.DriveFilters{})
		s.NoError(err)
		s.Len(drives, 2)
	})

	s.Run("listing carries each drive's registrations", func() {
		s.Require().NoError(s.drives.SubmitRegistration(ctx, &models.Registration{
			DriveID:  second.ID,
			UserID:   1,
			UserName: "Asha Verma",
			Status:   "Applied",
		}))

		drives, err := s.service.GetAllDrives(ctx, repositories.DriveFilters{})
		s.Require().NoError(err)

		counts := make(map[int64]int)
		for _, drive := range drives {
			counts[drive.ID] = len(drive.Registrations)
		}
		s.Equal(1, counts[second.ID])
		s.Equal(0, counts[first.ID])
	})

	s.Run("company name filter narrows the list", func() {
		drives, err := s.service.GetAllDrives(ctx, repositories.DriveFilters{CompanyName: "glob"})
		s.NoError(err)
		s.Require().Len(drives, 1)
		s.Equal("Globex", drives[0].CompanyName)
	})

	s.Run("active flag filter narrows the list", func() {
		active := true
		drives, err := s.service.GetAllDrives(ctx, repositories.DriveFilters{IsActive: &active})
		s.NoError(err)
		s.Require().Len(drives, 1)
		s.Equal("Globex", drives[0].CompanyName)
	})
}
