package employee

import (
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

// CanManage reports whether the role may use the admin surface.
// HR shares the attendance and leave management endpoints with admin.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleHR
}

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "Active"
	StatusOnLeave  EmploymentStatus = "On Leave"
	StatusInactive EmploymentStatus = "Inactive"
)

func (s EmploymentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusInactive:
		return true
	}
	return false
}

type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeCode string
	Phone        string
	DepartmentID *string
	Status       EmploymentStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
}
