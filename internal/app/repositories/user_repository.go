package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tpcell/placement-portal/internal/app/models"
	"github.com/tpcell/placement-portal/internal/pkg/apperrors"
	"github.com/tpcell/placement-portal/internal/pkg/dberrors"
)

// UserRepository handles database operations for student accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new student account. Unique violations on email,
// college email and registration number map to their sentinel errors.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, college_email, password, mobile, roll_no,
			reg_no, college_name, specialization, branch, year, passout_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.CollegeEmail, user.Password, user.Mobile,
		user.RollNo, user.RegNo, user.CollegeName, user.Specialization,
		user.Branch, user.Year, user.PassoutYear,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "users_email_key"):
			return apperrors.ErrEmailAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, "users_college_email_key"):
			return apperrors.ErrCollegeEmailAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, "users_reg_no_key"):
			return apperrors.ErrRegNoAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

const userColumns = `id, name, email, college_email, password, mobile, roll_no,
	reg_no, college_name, specialization, branch, year, passout_year, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.CollegeEmail, &user.Password,
		&user.Mobile, &user.RollNo, &user.RegNo, &user.CollegeName,
		&user.Specialization, &user.Branch, &user.Year, &user.PassoutYear,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a student account by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a student account by personal email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// CountByCollege returns the number of registered students per college
func (r *UserRepository) CountByCollege(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT college_name, COUNT(*) FROM users GROUP BY college_name`)
	if err != nil {
		return nil, fmt.Errorf("error counting students by college: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var college string
		var count int
		if err := rows.Scan(&college, &count); err != nil {
			return nil, err
		}
		stats[college] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetByCollege retrieves all students of one college, sorted by name
func (r *UserRepository) GetByCollege(ctx context.Context, collegeName string) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE college_name = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, collegeName)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by college: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.CollegeEmail, &user.Password,
			&user.Mobile, &user.RollNo, &user.RegNo, &user.CollegeName,
			&user.Specialization, &user.Branch, &user.Year, &user.PassoutYear,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
