package employee

import (
	"context"
)

type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by id regardless of role
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetEmployeeByID retrieves an employee-role identity by id.
	// Used by the admin attendance override to verify the target.
	GetEmployeeByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email for authentication
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ListEmployees retrieves all employee-role identities ordered by name
	ListEmployees(ctx context.Context) ([]Employee, error)

	// Update updates an existing employee record
	Update(ctx context.Context, emp Employee) (Employee, error)

	// Delete removes an employee record
	Delete(ctx context.Context, id string) error
}
