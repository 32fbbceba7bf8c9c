package department

import "context"

type DepartmentService interface {
	// ListDepartments returns all active departments
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)

	// CreateDepartment registers a new department
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
}
