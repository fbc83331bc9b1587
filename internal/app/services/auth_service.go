package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/tpcell/placement-portal/internal/app/models"
	"github.com/tpcell/placement-portal/internal/app/models/dto"
	"github.com/tpcell/placement-portal/internal/pkg/apperrors"
	"github.com/tpcell/placement-portal/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	AdminLogin(ctx context.Context, password string) (*dto.AdminAuthResponse, error)
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userStore          UserStore
	jwtService         *auth.JWTService
	adminPassword      string
	collegeEmailDomain string
}

// NewAuthService creates a new auth service instance
func NewAuthService(userStore UserStore, jwtService *auth.JWTService, adminPassword, collegeEmailDomain string) AuthService {
	return &authServiceImpl{
		userStore:          userStore,
		jwtService:         jwtService,
		adminPassword:      adminPassword,
		collegeEmailDomain: collegeEmailDomain,
	}
}

// validateRegistration checks the parts of a registration request that the
// binding layer cannot express.
func (s *authServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if !strings.HasSuffix(strings.ToLower(req.CollegeEmail), s.collegeEmailDomain) {
		return fmt.Errorf("%w: college email must end with %s", apperrors.ErrValidationFailed, s.collegeEmailDomain)
	}

	for _, c := range req.Mobile {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: mobile number must be exactly 10 digits", apperrors.ErrValidationFailed)
		}
	}

	return nil
}

// Register creates a student account and returns an access token for it
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:           req.Name,
		Email:          strings.ToLower(req.Email),
		CollegeEmail:   strings.ToLower(req.CollegeEmail),
		Password:       hashed,
		Mobile:         req.Mobile,
		RollNo:         req.RollNo,
		RegNo:          req.RegNo,
		CollegeName:    req.CollegeName,
		Specialization: req.Specialization,
		Branch:         req.Branch,
		Year:           req.Year,
		PassoutYear:    req.PassoutYear,
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.tokenResponse(user)
}

// Login authenticates a student by personal email and password
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userStore.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.tokenResponse(user)
}

func (s *authServiceImpl) tokenResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateStudentToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: user,
	}, nil
}

// AdminLogin authenticates the shared admin principal
func (s *authServiceImpl) AdminLogin(ctx context.Context, password string) (*dto.AdminAuthResponse, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAdminToken()
	if err != nil {
		return nil, fmt.Errorf("error generating admin token: %w", err)
	}

	return &dto.AdminAuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Role: string(models.RoleAdmin),
	}, nil
}

// GetProfile retrieves a student account by ID
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userStore.GetByID(ctx, userID)
}
