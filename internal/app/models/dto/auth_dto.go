package dto

import "github.com/tpcell/placement-portal/internal/app/models"

// RegisterRequest represents a student registration request
type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	CollegeEmail   string `json:"collegeEmail" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Mobile         string `json:"mobile" binding:"required,len=10,numeric"`
	RollNo         string `json:"rollNo" binding:"required"`
	RegNo          string `json:"regNo" binding:"required"`
	CollegeName    string `json:"collegeName" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	Branch         string `json:"branch" binding:"required"`
	Year           string `json:"year" binding:"required"`
	PassoutYear    string `json:"passoutYear" binding:"required"`
}

// LoginRequest represents student login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest represents the admin shared-secret login
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents a successful student authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  *models.User  `json:"user"`
}

// AdminAuthResponse represents a successful admin authentication response
type AdminAuthResponse struct {
	Token TokenResponse `json:"token"`
	Role  string        `json:"role" example:"ADMIN"`
}
