package models

import (
	"time"
)

// User defines the student account model based on the 'users' table
type User struct {
	ID             int64     `json:"id" db:"id" example:"1"`                                             // Unique identifier for the user
	Name           string    `json:"name" db:"name" example:"Priya Sharma"`                              // Student's full name
	Email          string    `json:"email" db:"email" example:"priya@gmail.com"`                         // Personal email address (unique)
	CollegeEmail   string    `json:"collegeEmail" db:"college_email" example:"priya.sharma@raisoni.net"` // College-issued email (unique, domain restricted)
	Password       string    `json:"-" db:"password"`                                                    // Hashed password (excluded from JSON)
	Mobile         string    `json:"mobile" db:"mobile" example:"9876543210"`                            // 10-digit mobile number
	RollNo         string    `json:"rollNo" db:"roll_no" example:"42"`                                   // Class roll number
	RegNo          string    `json:"regNo" db:"reg_no" example:"BT21CSE042"`                             // Registration number (unique)
	CollegeName    string    `json:"collegeName" db:"college_name" example:"GHRCEM"`                     // College the student belongs to
	Specialization string    `json:"specialization" db:"specialization" example:"B.Tech"`                // Course/specialization
	Branch         string    `json:"branch" db:"branch" example:"CSE"`                                   // Branch within the specialization
	Year           string    `json:"year" db:"year" example:"4"`                                         // Current year of study
	PassoutYear    string    `json:"passoutYear" db:"passout_year" example:"2026"`                       // Expected passout year
	CreatedAt      time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`           // Timestamp when the account was created
}
