package department

import "context"

type DepartmentRepository interface {
	// Create creates a new department
	Create(ctx context.Context, dept Department) (Department, error)

	// GetByID retrieves a department by id
	GetByID(ctx context.Context, id string) (Department, error)

	// GetByName retrieves a department by its exact name
	GetByName(ctx context.Context, name string) (Department, error)

	// List retrieves all active departments ordered by name
	List(ctx context.Context) ([]Department, error)
}
