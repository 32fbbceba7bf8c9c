package employee

import (
	"context"
)

type EmployeeService interface {
	// ListEmployees returns the employee directory for the admin surface
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// CreateEmployee registers a new employee with a hashed password
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee applies a partial update to an employee record
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee record
	DeleteEmployee(ctx context.Context, id string) error

	// GetProfile returns the authenticated user's own record
	GetProfile(ctx context.Context) (EmployeeResponse, error)
}
