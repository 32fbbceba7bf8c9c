package department

import (
	"context"
	"errors"
	"strings"

	"github.com/emsuite/ems-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

// ListDepartments implements department.DepartmentService.
func (d *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := d.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	return department.ToDepartmentResponses(departments), nil
}

// CreateDepartment implements department.DepartmentService.
func (d *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	name := strings.TrimSpace(req.Name)

	_, err := d.DepartmentRepository.GetByName(ctx, name)
	if err == nil {
		return department.DepartmentResponse{}, department.ErrDepartmentExists
	}
	if !errors.Is(err, department.ErrDepartmentNotFound) {
		return department.DepartmentResponse{}, err
	}

	created, err := d.DepartmentRepository.Create(ctx, department.Department{
		Name:        name,
		Code:        strings.TrimSpace(req.Code),
		Description: strings.TrimSpace(req.Description),
		IsActive:    true,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToDepartmentResponse(created), nil
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepo,
	}
}
