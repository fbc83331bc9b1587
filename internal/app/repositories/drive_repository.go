package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tpcell/placement-portal/internal/app/models"
	"github.com/tpcell/placement-portal/internal/db"
	"github.com/tpcell/placement-portal/internal/pkg/apperrors"
)

// DriveRepository handles database operations for placement drives and
// their registrations.
type DriveRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDriveRepository creates a new drive repository
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const driveColumns = `id, company_name, deadline, eligible_courses,
	eligible_passout_years, statuses, is_active, created_at`

func scanDrive(row pgx.Row) (*models.Drive, error) {
	var drive models.Drive
	err := row.Scan(
		&drive.ID, &drive.CompanyName, &drive.Deadline, &drive.EligibleCourses,
		&drive.EligiblePassoutYears, &drive.Statuses, &drive.IsActive,
		&drive.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDriveNotFound
		}
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}
	drive.Registrations = []models.Registration{}
	return &drive, nil
}

func (r *DriveRepository) scanDrives(rows pgx.Rows) ([]*models.Drive, error) {
	defer rows.Close()

	var drives []*models.Drive
	for rows.Next() {
		var drive models.Drive
		if err := rows.Scan(
			&drive.ID, &drive.CompanyName, &drive.Deadline, &drive.EligibleCourses,
			&drive.EligiblePassoutYears, &drive.Statuses, &drive.IsActive,
			&drive.CreatedAt,
		); err != nil {
			return nil, err
		}
		drive.Registrations = []models.Registration{}
		drives = append(drives, &drive)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drives, nil
}

// Create inserts a new drive definition
func (r *DriveRepository) Create(ctx context.Context, drive *models.Drive) error {
	query := `
		INSERT INTO drives (company_name, deadline, eligible_courses,
			eligible_passout_years, statuses, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		drive.CompanyName, drive.Deadline, drive.EligibleCourses,
		drive.EligiblePassoutYears, drive.Statuses, drive.IsActive,
	).Scan(&drive.ID, &drive.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating drive: %w", err)
	}

	return nil
}

// GetByID retrieves a drive definition without its registrations
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.Drive, error) {
	query := `SELECT ` + driveColumns + ` FROM drives WHERE id = $1`
	return scanDrive(r.db.QueryRow(ctx, query, id))
}

// DriveFilters narrows the admin drive listing
type DriveFilters struct {
	CompanyName string
	IsActive    *bool
}

// GetAll retrieves all drives with their registrations, most recently
// created first, with optional company-name and active-flag filtering.
func (r *DriveRepository) GetAll(ctx context.Context, filters DriveFilters) ([]*models.Drive, error) {
	query := r.sb.Select("id", "company_name", "deadline", "eligible_courses",
		"eligible_passout_years", "statuses", "is_active", "created_at").
		From("drives").
		OrderBy("created_at DESC")

	if name := strings.TrimSpace(filters.CompanyName); name != "" {
		query = query.Where(squirrel.ILike{"company_name": "%" + name + "%"})
	}
	if filters.IsActive != nil {
		query = query.Where(squirrel.Eq{"is_active": *filters.IsActive})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build drive listing query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving drives: %w", err)
	}

	drives, err := r.scanDrives(rows)
	if err != nil {
		return nil, err
	}

	// The admin dashboard shows per-drive registration counts, so the
	// listing carries each drive's registrations.
	for _, drive := range drives {
		registrations, err := r.getRegistrations(ctx, drive.ID, false)
		if err != nil {
			return nil, err
		}
		drive.Registrations = registrations
	}

	return drives, nil
}

// GetEligible retrieves active drives whose eligibility sets contain the
// given specialization and passout year, most recently created first.
// Both current and past drives are returned; classification happens at
// response time.
func (r *DriveRepository) GetEligible(ctx context.Context, specialization, passoutYear string) ([]*models.Drive, error) {
	query := `
		SELECT ` + driveColumns + `
		FROM drives
		WHERE is_active
		  AND $1 = ANY(eligible_courses)
		  AND $2 = ANY(eligible_passout_years)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, specialization, passoutYear)
	if err != nil {
		return nil, fmt.Errorf("error retrieving eligible drives: %w", err)
	}

	return r.scanDrives(rows)
}

// GetRegisteredByUser retrieves every drive containing a registration by the
// given student, regardless of the drive's active flag or deadline.
func (r *DriveRepository) GetRegisteredByUser(ctx context.Context, userID int64) ([]*models.Drive, error) {
	query := `
		SELECT d.id, d.company_name, d.deadline, d.eligible_courses,
			d.eligible_passout_years, d.statuses, d.is_active, d.created_at
		FROM drives d
		JOIN registrations r ON r.drive_id = d.id
		WHERE r.user_id = $1
		ORDER BY d.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registered drives: %w", err)
	}

	drives, err := r.scanDrives(rows)
	if err != nil {
		return nil, err
	}

	for _, drive := range drives {
		registrations, err := r.getRegistrations(ctx, drive.ID, false)
		if err != nil {
			return nil, err
		}
		drive.Registrations = registrations
	}

	return drives, nil
}

// Update replaces a drive's definition fields in full. Registrations are
// untouched.
func (r *DriveRepository) Update(ctx context.Context, drive *models.Drive) error {
	query := `
		UPDATE drives
		SET company_name = $1, deadline = $2, eligible_courses = $3,
			eligible_passout_years = $4, statuses = $5, is_active = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		drive.CompanyName, drive.Deadline, drive.EligibleCourses,
		drive.EligiblePassoutYears, drive.Statuses, drive.IsActive, drive.ID)
	if err != nil {
		return fmt.Errorf("error updating drive: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	return nil
}

// Delete removes a drive; its registrations go with it (ON DELETE CASCADE).
func (r *DriveRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM drives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting drive: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	return nil
}

// GetWithRegistrations retrieves a drive and its registrations in
// first-registration order, each joined to the current student record.
func (r *DriveRepository) GetWithRegistrations(ctx context.Context, id int64) (*models.Drive, error) {
	drive, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	registrations, err := r.getRegistrations(ctx, id, true)
	if err != nil {
		return nil, err
	}
	drive.Registrations = registrations

	return drive, nil
}

func (r *DriveRepository) getRegistrations(ctx context.Context, driveID int64, populateStudent bool) ([]models.Registration, error) {
	query := `
		SELECT r.id, r.drive_id, r.user_id, r.user_name, r.user_email,
			r.user_reg_no, r.user_mobile, r.user_specialization, r.user_branch,
			r.user_year, r.user_passout_year, r.status, r.updated_at,
			u.id, u.name, u.email, u.specialization, u.branch, u.year
		FROM registrations r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.drive_id = $1
		ORDER BY r.id
	`

	rows, err := r.db.Query(ctx, query, driveID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving registrations: %w", err)
	}
	defer rows.Close()

	registrations := []models.Registration{}
	for rows.Next() {
		var reg models.Registration
		var studentID *int64
		var studentName, studentEmail, studentSpecialization, studentBranch, studentYear *string

		if err := rows.Scan(
			&reg.ID, &reg.DriveID, &reg.UserID, &reg.UserName, &reg.UserEmail,
			&reg.UserRegNo, &reg.UserMobile, &reg.UserSpecialization,
			&reg.UserBranch, &reg.UserYear, &reg.UserPassoutYear,
			&reg.Status, &reg.Timestamp,
			&studentID, &studentName, &studentEmail, &studentSpecialization,
			&studentBranch, &studentYear,
		); err != nil {
			return nil, err
		}

		if populateStudent && studentID != nil {
			reg.Student = &models.StudentSummary{
				ID:             *studentID,
				Name:           *studentName,
				Email:          *studentEmail,
				Specialization: *studentSpecialization,
				Branch:         *studentBranch,
				Year:           *studentYear,
			}
		}

		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

// SubmitRegistration records or updates a student's stage within a drive.
// The drive row is locked for the duration so the deadline check and the
// upsert observe a consistent deadline; the UNIQUE(drive_id, user_id)
// constraint keeps registrations at one per student. The ON CONFLICT branch
// deliberately refreshes only status, timestamp, name, email and mobile:
// the rest of the snapshot stays as taken at first registration.
func (r *DriveRepository) SubmitRegistration(ctx context.Context, reg *models.Registration) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var deadline time.Time
		err := tx.QueryRow(ctx,
			`SELECT deadline FROM drives WHERE id = $1 FOR UPDATE`,
			reg.DriveID).Scan(&deadline)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrDriveNotFound
			}
			return fmt.Errorf("error locking drive: %w", err)
		}

		if !time.Now().Before(deadline) {
			return apperrors.ErrDeadlinePassed
		}

		query := `
			INSERT INTO registrations (drive_id, user_id, user_name, user_email,
				user_reg_no, user_mobile, user_specialization, user_branch,
				user_year, user_passout_year, status, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
			ON CONFLICT ON CONSTRAINT registrations_drive_user_key DO UPDATE
			SET status = EXCLUDED.status,
				updated_at = NOW(),
				user_name = EXCLUDED.user_name,
				user_email = EXCLUDED.user_email,
				user_mobile = EXCLUDED.user_mobile
			RETURNING id, updated_at
		`

		err = tx.QueryRow(ctx, query,
			reg.DriveID, reg.UserID, reg.UserName, reg.UserEmail, reg.UserRegNo,
			reg.UserMobile, reg.UserSpecialization, reg.UserBranch, reg.UserYear,
			reg.UserPassoutYear, reg.Status,
		).Scan(&reg.ID, &reg.Timestamp)
		if err != nil {
			return fmt.Errorf("error recording registration: %w", err)
		}

		return nil
	})
}
