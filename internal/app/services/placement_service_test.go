package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tpcell/placement-portal/internal/app/models"
	"github.com/tpcell/placement-portal/internal/pkg/apperrors"
)

type PlacementServiceSuite struct {
	suite.Suite
	users   *memUserStore
	drives  *memDriveStore
	service PlacementService
	student *models.User
}

func TestPlacementServiceSuite(t *testing.T) {
	suite.Run(t, new(PlacementServiceSuite))
}

func (s *PlacementServiceSuite) SetupTest() {
	s.users = newMemUserStore()
	s.drives = newMemDriveStore(s.users)
	s.service = NewPlacementService(s.drives, s.users)

	s.student = &models.User{
		Name:           "Asha Verma",
		Email:          "asha@example.com",
		CollegeEmail:   "asha.verma@raisoni.net",
		Mobile:         "9876543210",
		RollNo:         "42",
		RegNo:          "REG2023001",
		CollegeName:    "GHRCE",
		Specialization: "CSE",
		Branch:         "Computer Science",
		Year:           "4",
		PassoutYear:    "2026",
	}
	s.Require().NoError(s.users.Create(context.Background(), s.student))
}

func (s *PlacementServiceSuite) addDrive(company string, deadline time.Time, courses, years []string, active bool) *models.Drive {
	drive := &models.Drive{
		CompanyName:          company,
		Deadline:             deadline,
		EligibleCourses:      courses,
		EligiblePassoutYears: years,
		Statuses:             []string{"Applied", "Shortlisted", "Selected"},
		IsActive:             active,
	}
	s.Require().NoError(s.drives.Create(context.Background(), drive))
	return drive
}

func (s *PlacementServiceSuite) TestListEligibleDrives() {
	ctx := context.Background()
	future := time.Now().Add(48 * time.Hour)

	s.Run("unknown user returns not found", func() {
		_, err := s.service.ListEligibleDrives(ctx, 999)
		s.ErrorIs(err, apperrors.ErrUserNotFound)
	})

	s.Run("both eligibility sets must match", func() {
		matching := s.addDrive("Acme", future, []string{"CSE", "IT"}, []string{"2026"}, true)
		s.addDrive("WrongCourse", future, []string{"MECH"}, []string{"2026"}, true)
		s.addDrive("WrongYear", future, []string{"CSE"}, []string{"2025"}, true)
		s.addDrive("Inactive", future, []string{"CSE"}, []string{"2026"}, false)

		drives, err := s.service.ListEligibleDrives(ctx, s.student.ID)
		s.NoError(err)
		s.Require().Len(drives, 1)
		s.Equal(matching.ID, drives[0].ID)
	})

	s.Run("past drives stay listed while active", func() {
		past := s.addDrive("Ended", time.Now().Add(-time.Hour), []string{"CSE"}, []string{"2026"}, true)

		drives, err := s.service.ListEligibleDrives(ctx, s.student.ID)
		s.NoError(err)

		var found *models.Drive
		for _, d := range drives {
			if d.ID == past.ID {
				found = d
			}
		}
		s.Require().NotNil(found)
		s.True(found.IsPast(time.Now()))
	})
}

func (s *PlacementServiceSuite) TestSubmitStatus() {
	ctx := context.Background()
	drive := s.addDrive("Acme", time.Now().Add(48*time.Hour), []string{"CSE"}, []string{"2026"}, true)

	s.Run("unknown drive returns not found", func() {
		_, err := s.service.SubmitStatus(ctx, s.student.ID, 999, "Applied")
		s.ErrorIs(err, apperrors.ErrDriveNotFound)
	})

	s.Run("unknown user returns not found", func() {
		_, err := s.service.SubmitStatus(ctx, 999, drive.ID, "Applied")
		s.ErrorIs(err, apperrors.ErrUserNotFound)
	})

	s.Run("first submission snapshots the full profile", func() {
		result, err := s.service.SubmitStatus(ctx, s.student.ID, drive.ID, "Applied")
		s.Require().NoError(err)
		s.Require().Len(result.Registrations, 1)

		reg := result.Registrations[0]
		s.Equal(s.student.ID, reg.UserID)
		s.Equal("Applied", reg.Status)
		s.Equal("Asha Verma", reg.UserName)
		s.Equal("REG2023001", reg.UserRegNo)
		s.Equal("Computer Science", reg.UserBranch)
		s.Equal("2026", reg.UserPassoutYear)
		s.Nil(reg.Student)
	})

	s.Run("resubmission keeps one registration and refreshes contact fields only", func() {
		s.student.Name = "Asha V"
		s.student.Mobile = "9000000000"
		s.student.Branch = "Electronics"
		s.student.RegNo = "REG-CHANGED"

		result, err := s.service.SubmitStatus(ctx, s.student.ID, drive.ID, "Shortlisted")
		s.Require().NoError(err)
		s.Require().Len(result.Registrations, 1)

		reg := result.Registrations[0]
		s.Equal("Shortlisted", reg.Status)
		s.Equal("Asha V", reg.UserName)
		s.Equal("9000000000", reg.UserMobile)
		// Snapshot taken at first registration is preserved
		s.Equal("Computer Science", reg.UserBranch)
		s.Equal("REG2023001", reg.UserRegNo)
	})

	s.Run("status value is stored verbatim", func() {
		result, err := s.service.SubmitStatus(ctx, s.student.ID, drive.ID, "Offer Declined")
		s.Require().NoError(err)
		s.Equal("Offer Declined", result.Registrations[0].Status)
	})

	s.Run("deadline gate rejects late submissions", func() {
		ended := s.addDrive("Ended", time.Now().Add(-time.Minute), []string{"CSE"}, []string{"2026"}, true)

		_, err := s.service.SubmitStatus(ctx, s.student.ID, ended.ID, "Applied")
		s.ErrorIs(err, apperrors.ErrDeadlinePassed)
	})
}

func (s *PlacementServiceSuite) TestPastDrives() {
	ctx := context.Background()

	registered := s.addDrive("Acme", time.Now().Add(48*time.Hour), []string{"CSE"}, []string{"2026"}, true)
	s.addDrive("Untouched", time.Now().Add(48*time.Hour), []string{"CSE"}, []string{"2026"}, true)

	_, err := s.service.SubmitStatus(ctx, s.student.ID, registered.ID, "Applied")
	s.Require().NoError(err)

	// Deactivating a drive does not remove it from the student's history
	registered.IsActive = false

	drives, err := s.service.PastDrives(ctx, s.student.ID)
	s.NoError(err)
	s.Require().Len(drives, 1)
	s.Equal(registered.ID, drives[0].ID)
	s.Len(drives[0].Registrations, 1)
}
