package models

import (
	"time"
)

// Drive defines a company placement drive based on the 'drives' table.
// A drive is the root aggregate: deleting it discards its registrations.
type Drive struct {
	ID                   int64     `json:"id" db:"id" example:"1"`                                       // Unique identifier for the drive
	CompanyName          string    `json:"companyName" db:"company_name" example:"TCS"`                  // Hiring company
	Deadline             time.Time `json:"deadline" db:"deadline" example:"2026-03-01T23:59:59Z"`        // Registration deadline; student writes rejected after this
	EligibleCourses      []string  `json:"eligibleCourses" db:"eligible_courses" example:"B.Tech,MBA"`   // Specializations allowed to see/act on the drive
	EligiblePassoutYears []string  `json:"eligiblePassoutYears" db:"eligible_passout_years"`             // Passout years allowed to see/act on the drive
	Statuses             []string  `json:"statuses" db:"statuses" example:"Applied,Interview,Selected"`  // Admin-defined pipeline stage labels (display order only)
	IsActive             bool      `json:"isActive" db:"is_active" example:"true"`                       // Inactive drives are hidden from students without deleting history
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`                                    // Timestamp when the drive was created

	// Registrations in first-registration order (populated when needed)
	Registrations []Registration `json:"registrations"`
}

// IsPast reports whether the drive deadline lies strictly before now.
// Pure function of wall-clock time; recomputed on every read, never stored.
func (d *Drive) IsPast(now time.Time) bool {
	return d.Deadline.Before(now)
}

// Registration is one student's latest self-reported stage within a drive.
// At most one registration exists per (drive, user) pair.
type Registration struct {
	ID      int64 `json:"id" db:"id"`
	DriveID int64 `json:"driveId" db:"drive_id"`
	UserID  int64 `json:"userId" db:"user_id"`

	// Snapshot of the student profile taken at write time. The full snapshot
	// is populated on first insert; later submissions refresh only name,
	// email and mobile.
	UserName           string `json:"userName" db:"user_name"`
	UserEmail          string `json:"userEmail" db:"user_email"`
	UserRegNo          string `json:"userRegNo" db:"user_reg_no"`
	UserMobile         string `json:"userMobile" db:"user_mobile"`
	UserSpecialization string `json:"userSpecialization" db:"user_specialization"`
	UserBranch         string `json:"userBranch" db:"user_branch"`
	UserYear           string `json:"userYear" db:"user_year"`
	UserPassoutYear    string `json:"userPassoutYear" db:"user_passout_year"`

	Status    string    `json:"status" db:"status"`         // Stage label; stored verbatim, membership in Drive.Statuses is not enforced
	Timestamp time.Time `json:"timestamp" db:"updated_at"`  // Last-write time

	// Current student record joined at read time (admin drive detail only)
	Student *StudentSummary `json:"student,omitempty"`
}

// StudentSummary is the populated student view attached to registrations
// on the admin drive detail endpoint.
type StudentSummary struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Branch         string `json:"branch"`
	Year           string `json:"year"`
}
