package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	return employee.ToEmployeeResponses(employees), nil
}

// CreateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := employee.Role(req.Role)
	if role == "" {
		role = employee.RoleEmployee
	}
	status := employee.EmploymentStatus(req.Status)
	if status == "" {
		status = employee.StatusActive
	}

	created, err := e.EmployeeRepository.Create(ctx, employee.Employee{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
		EmployeeCode: strings.TrimSpace(req.EmployeeCode),
		Phone:        strings.TrimSpace(req.Phone),
		DepartmentID: req.DepartmentID,
		Status:       status,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToEmployeeResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		emp.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}
	if req.Phone != nil {
		emp.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.Status != nil {
		emp.Status = employee.EmploymentStatus(*req.Status)
	}

	updated, err := e.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return e.EmployeeRepository.Delete(ctx, id)
}

// GetProfile implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetProfile(ctx context.Context) (employee.EmployeeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return employee.EmployeeResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	emp, err := e.EmployeeRepository.GetByID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToEmployeeResponse(emp), nil
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}
