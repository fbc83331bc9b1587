package models

// RoleType represents the authenticated principal's role
type RoleType string

const (
	// RoleStudent is a registered student account
	RoleStudent RoleType = "STUDENT"
	// RoleAdmin is the placement cell administrator (shared-secret principal)
	RoleAdmin RoleType = "ADMIN"
)
